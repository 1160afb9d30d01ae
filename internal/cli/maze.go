package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Tardigrada777/copec-cspy-book/maze"
	"github.com/Tardigrada777/copec-cspy-book/search"
)

func newMazeCmd() *cobra.Command {
	var configPath string
	flagCfg := defaultMazeConfig()

	cmd := &cobra.Command{
		Use:   "maze",
		Short: "Solve a grid maze",
		Long: `Solve a grid maze from the top-left to the bottom-right corner.

The maze is random (see --rows, --cols, --sparseness, --seed) unless the
config file supplies a layout. Flags given on the command line override the
config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			cfg := file.Maze
			flags := cmd.Flags()
			if flags.Changed("rows") {
				cfg.Rows = flagCfg.Rows
			}
			if flags.Changed("cols") {
				cfg.Columns = flagCfg.Columns
			}
			if flags.Changed("sparseness") {
				cfg.Sparseness = flagCfg.Sparseness
			}
			if flags.Changed("seed") {
				cfg.Seed = flagCfg.Seed
			}
			if flags.Changed("method") {
				cfg.Method = flagCfg.Method
			}
			if flags.Changed("heuristic") {
				cfg.Heuristic = flagCfg.Heuristic
			}
			return runMaze(cmd, cfg)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML config file with a [maze] table")
	cmd.Flags().IntVar(&flagCfg.Rows, "rows", flagCfg.Rows, "number of rows")
	cmd.Flags().IntVar(&flagCfg.Columns, "cols", flagCfg.Columns, "number of columns")
	cmd.Flags().Float64Var(&flagCfg.Sparseness, "sparseness", flagCfg.Sparseness, "probability that a cell is blocked")
	cmd.Flags().Int64Var(&flagCfg.Seed, "seed", flagCfg.Seed, "random seed (0: time-based)")
	cmd.Flags().StringVarP(&flagCfg.Method, "method", "m", flagCfg.Method, "search method: dfs, bfs, astar")
	cmd.Flags().StringVar(&flagCfg.Heuristic, "heuristic", flagCfg.Heuristic, "A* heuristic: manhattan, euclidean")

	return cmd
}

func buildMaze(cfg mazeConfig) (*maze.Maze, error) {
	if strings.TrimSpace(cfg.Layout) != "" {
		return maze.Parse(cfg.Layout)
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return maze.New(cfg.Rows, cfg.Columns, cfg.Sparseness,
		maze.Location{},
		maze.Location{Row: cfg.Rows - 1, Column: cfg.Columns - 1},
		maze.WithRand(rand.New(rand.NewSource(seed))),
	)
}

func heuristicFor(name string, goal maze.Location) (search.HeuristicFunc[maze.Location], error) {
	switch strings.ToLower(name) {
	case "manhattan", "":
		return maze.Manhattan(goal), nil
	case "euclidean":
		return maze.Euclidean(goal), nil
	default:
		return nil, fmt.Errorf("unknown heuristic %q (want manhattan or euclidean)", name)
	}
}

func runMaze(cmd *cobra.Command, cfg mazeConfig) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	method, err := search.ParseMethod(cfg.Method)
	if err != nil {
		return err
	}
	m, err := buildMaze(cfg)
	if err != nil {
		return err
	}
	h, err := heuristicFor(cfg.Heuristic, m.GoalLocation())
	if err != nil {
		return err
	}
	logger.Debug("Maze ready", "rows", m.Rows(), "cols", m.Columns(), "method", method)

	var stats search.Stats
	prog := newProgress(logger)
	node, err := search.Run(method, m.Problem(h),
		search.WithContext(ctx),
		search.WithLogger(logger),
		search.WithStats(&stats),
	)
	if err != nil {
		return fmt.Errorf("solve maze: %w", err)
	}
	prog.done(fmt.Sprintf("Searched %d states", stats.Expanded))

	if node == nil {
		fmt.Fprint(out, renderMaze(m))
		printWarning(out, "no path from %v to %v", m.StartLocation(), m.GoalLocation())
		return nil
	}
	path := node.Path()
	m.Mark(path)
	fmt.Fprint(out, renderMaze(m))
	printSuccess(out, "%s found a path", strings.ToUpper(string(method)))
	printKeyValue(out, "steps", styleNumber.Render(fmt.Sprint(node.Depth)))
	printKeyValue(out, "expanded", styleNumber.Render(fmt.Sprint(stats.Expanded)))
	printKeyValue(out, "discovered", styleNumber.Render(fmt.Sprint(stats.Discovered)))
	return nil
}
