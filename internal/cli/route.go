package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tardigrada777/copec-cspy-book/graph"
	"github.com/Tardigrada777/copec-cspy-book/search"
)

func newRouteCmd() *cobra.Command {
	var (
		from, to   string
		methodName string
		graphPath  string
		svgPath    string
	)

	cmd := &cobra.Command{
		Use:   "route",
		Short: "Route between two vertices of a weighted graph",
		Long: `Route between two vertices of a weighted graph.

BFS finds the route with the fewest hops; A* finds the cheapest one. The
built-in graph of US cities is used unless --graph names a TOML file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			method, err := search.ParseMethod(methodName)
			if err != nil {
				return err
			}
			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			return runRoute(cmd, g, method, from, to, svgPath)
		},
	}

	cmd.Flags().StringVar(&from, "from", "Boston", "start vertex")
	cmd.Flags().StringVar(&to, "to", "Miami", "destination vertex")
	cmd.Flags().StringVarP(&methodName, "method", "m", string(search.MethodAStar), "search method: dfs, bfs, astar")
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "TOML graph file (default: built-in US cities)")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write the graph with the route highlighted to this SVG file")

	return cmd
}

func runRoute(cmd *cobra.Command, g *graph.WeightedGraph[string], method search.Method, from, to, svgPath string) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	out := cmd.OutOrStdout()

	for _, v := range []string{from, to} {
		if _, err := g.IndexOf(v); err != nil {
			return err
		}
	}

	var stats search.Stats
	node, err := search.Run(method, search.Problem[string]{
		Initial:    from,
		Goal:       func(v string) bool { return v == to },
		Successors: g.NeighborsForVertex,
		Cost:       g.Cost,
	}, search.WithContext(ctx), search.WithLogger(logger), search.WithStats(&stats))
	if err != nil {
		return fmt.Errorf("route: %w", err)
	}
	if node == nil {
		printWarning(out, "no route from %s to %s", from, to)
		return nil
	}

	path := node.Path()
	edges, err := g.PathEdges(path)
	if err != nil {
		return err
	}
	printTitle(out, fmt.Sprintf("%s to %s", from, to))
	fmt.Fprintln(out, renderPath(path))
	printKeyValue(out, "hops", styleNumber.Render(fmt.Sprint(node.Depth)))
	printKeyValue(out, "distance", styleNumber.Render(fmt.Sprintf("%g", graph.TotalWeight(edges))))
	printKeyValue(out, "expanded", styleNumber.Render(fmt.Sprint(stats.Expanded)))

	if svgPath != "" {
		return writeSVG(cmd, g, edges, svgPath)
	}
	return nil
}

// writeSVG renders g with highlight and writes it to path.
func writeSVG(cmd *cobra.Command, g *graph.WeightedGraph[string], highlight []graph.WeightedEdge, path string) error {
	prog := newProgress(loggerFromContext(cmd.Context()))
	svg, err := graph.RenderSVG(cmd.Context(), graph.ToDOT(g, highlight))
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	prog.done("Rendered SVG")
	printFile(cmd.OutOrStdout(), path)
	return nil
}
