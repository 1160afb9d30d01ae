// Package missionaries models the missionaries-and-cannibals river crossing:
// three missionaries and three cannibals must cross from the west bank to the
// east bank in a boat carrying one or two people, and on neither bank may
// missionaries, if present, be outnumbered by cannibals.
package missionaries

import "fmt"

// MaxNum is the number of missionaries, and of cannibals.
const MaxNum = 3

// State is the west-bank head count plus the side the boat is on.
// East-bank counts are derived.
type State struct {
	WestMissionaries int
	WestCannibals    int
	BoatWest         bool
}

// Start returns everyone, boat included, on the west bank.
func Start() State { return State{MaxNum, MaxNum, true} }

// EastMissionaries returns the missionaries on the east bank.
func (s State) EastMissionaries() int { return MaxNum - s.WestMissionaries }

// EastCannibals returns the cannibals on the east bank.
func (s State) EastCannibals() int { return MaxNum - s.WestCannibals }

// Legal reports whether the counts are in range and no bank holding
// missionaries has more cannibals than missionaries.
func (s State) Legal() bool {
	if s.WestMissionaries < 0 || s.WestMissionaries > MaxNum ||
		s.WestCannibals < 0 || s.WestCannibals > MaxNum {
		return false
	}
	if s.WestMissionaries > 0 && s.WestMissionaries < s.WestCannibals {
		return false
	}
	if em, ec := s.EastMissionaries(), s.EastCannibals(); em > 0 && em < ec {
		return false
	}
	return true
}

// GoalTest reports whether everyone has reached the east bank.
func (s State) GoalTest() bool {
	return s.Legal() && s.EastMissionaries() == MaxNum && s.EastCannibals() == MaxNum
}

// loads lists the boat loads (missionaries, cannibals) in generation order.
var loads = [...][2]int{{2, 0}, {1, 0}, {0, 2}, {0, 1}, {1, 1}}

// Successors returns the legal states one crossing away.
func (s State) Successors() []State {
	sign := -1 // people leave the west bank
	if !s.BoatWest {
		sign = 1
	}
	out := make([]State, 0, len(loads))
	for _, l := range loads {
		next := State{
			WestMissionaries: s.WestMissionaries + sign*l[0],
			WestCannibals:    s.WestCannibals + sign*l[1],
			BoatWest:         !s.BoatWest,
		}
		if next.Legal() {
			out = append(out, next)
		}
	}
	return out
}

// String describes both banks.
func (s State) String() string {
	boat := "east"
	if s.BoatWest {
		boat = "west"
	}
	return fmt.Sprintf("On the west bank there are %d missionaries and %d cannibals.\n"+
		"On the east bank there are %d missionaries and %d cannibals.\n"+
		"The boat is on the %s bank.",
		s.WestMissionaries, s.WestCannibals, s.EastMissionaries(), s.EastCannibals(), boat)
}

// Narrate describes path as its first state followed by, for each crossing,
// the move and the resulting state.
func Narrate(path []State) []string {
	if len(path) == 0 {
		return nil
	}
	out := make([]string, 0, 2*len(path)-1)
	out = append(out, path[0].String())
	for i := 1; i < len(path); i++ {
		prev, cur := path[i-1], path[i]
		if cur.BoatWest {
			out = append(out, fmt.Sprintf("%d missionaries and %d cannibals moved from the east bank to the west bank.",
				prev.EastMissionaries()-cur.EastMissionaries(), prev.EastCannibals()-cur.EastCannibals()))
		} else {
			out = append(out, fmt.Sprintf("%d missionaries and %d cannibals moved from the west bank to the east bank.",
				prev.WestMissionaries-cur.WestMissionaries, prev.WestCannibals-cur.WestCannibals))
		}
		out = append(out, cur.String())
	}
	return out
}
