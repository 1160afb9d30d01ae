package cli

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Tardigrada777/copec-cspy-book/graph"
)

//go:embed data/cities.toml
var citiesTOML []byte

// fileConfig is the TOML document accepted by --config.
type fileConfig struct {
	Maze mazeConfig `toml:"maze"`
}

// mazeConfig holds the parameters of the maze command.
type mazeConfig struct {
	Rows       int     `toml:"rows"`
	Columns    int     `toml:"columns"`
	Sparseness float64 `toml:"sparseness"`
	Seed       int64   `toml:"seed"`
	Method     string  `toml:"method"`
	Heuristic  string  `toml:"heuristic"`
	// Layout, if set, is a textual maze used instead of a random one.
	Layout string `toml:"layout"`
}

func defaultMazeConfig() mazeConfig {
	return mazeConfig{
		Rows:       10,
		Columns:    10,
		Sparseness: 0.2,
		Method:     "bfs",
		Heuristic:  "manhattan",
	}
}

// loadConfig decodes the TOML file at path over the defaults.
func loadConfig(path string) (fileConfig, error) {
	cfg := fileConfig{Maze: defaultMazeConfig()}
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

// graphFile is the TOML form of a weighted graph.
type graphFile struct {
	Vertices []string   `toml:"vertices"`
	Edges    []edgeSpec `toml:"edges"`
}

type edgeSpec struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

var errNoVertices = errors.New("graph file has no vertices")

// loadGraph reads a weighted graph from path, or the bundled US city graph
// when path is empty.
func loadGraph(path string) (*graph.WeightedGraph[string], error) {
	data := citiesTOML
	name := "built-in cities"
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read graph: %w", err)
		}
		name = path
	}
	return parseGraph(name, data)
}

func parseGraph(name string, data []byte) (*graph.WeightedGraph[string], error) {
	var gf graphFile
	if err := toml.Unmarshal(data, &gf); err != nil {
		return nil, fmt.Errorf("parse graph %s: %w", name, err)
	}
	if len(gf.Vertices) == 0 {
		return nil, fmt.Errorf("parse graph %s: %w", name, errNoVertices)
	}
	g, err := graph.NewWeighted(gf.Vertices...)
	if err != nil {
		return nil, fmt.Errorf("parse graph %s: %w", name, err)
	}
	for i, e := range gf.Edges {
		if err := g.AddEdgeByVertices(e.From, e.To, e.Weight); err != nil {
			return nil, fmt.Errorf("parse graph %s: edge %d: %w", name, i, err)
		}
	}
	return g, nil
}
