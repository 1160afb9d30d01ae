package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Tardigrada777/copec-cspy-book/graph"
)

func newMSTCmd() *cobra.Command {
	var (
		start     string
		graphPath string
		svgPath   string
	)

	cmd := &cobra.Command{
		Use:   "mst",
		Short: "Print the minimum spanning tree of a weighted graph",
		Long: `Print the minimum spanning tree of a weighted graph, grown with Prim's
algorithm from --start (default: the first vertex). Only the start's
connected component is spanned.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := loadGraph(graphPath)
			if err != nil {
				return err
			}
			return runMST(cmd, g, start, svgPath)
		},
	}

	cmd.Flags().StringVar(&start, "start", "", "start vertex (default: first vertex)")
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "TOML graph file (default: built-in US cities)")
	cmd.Flags().StringVar(&svgPath, "svg", "", "write the graph with the tree highlighted to this SVG file")

	return cmd
}

func runMST(cmd *cobra.Command, g *graph.WeightedGraph[string], start, svgPath string) error {
	out := cmd.OutOrStdout()

	index := 0
	if start != "" {
		var err error
		if index, err = g.IndexOf(start); err != nil {
			return err
		}
	}
	tree, err := graph.MST(g, index)
	if err != nil {
		return err
	}
	loggerFromContext(cmd.Context()).Debug("Spanning tree built", "start", g.VertexAt(index), "edges", len(tree))

	printTitle(out, "Minimum spanning tree from "+g.VertexAt(index))
	for _, e := range tree {
		fmt.Fprintf(out, "%s %s %s\n",
			styleValue.Render(g.VertexAt(e.U)),
			styleHighlight.Render(fmt.Sprintf("%g>", e.Weight)),
			styleValue.Render(g.VertexAt(e.V)))
	}
	printKeyValue(out, "total", styleNumber.Render(fmt.Sprintf("%g", graph.TotalWeight(tree))))

	if svgPath != "" {
		return writeSVG(cmd, g, tree, svgPath)
	}
	return nil
}
