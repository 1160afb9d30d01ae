package graph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

// ToDOT converts wg to an undirected Graphviz DOT document. Each connection
// is drawn once, labelled with its weight; connections listed in highlight
// (in either direction) are drawn bold and coloured.
func ToDOT[V comparable](wg *WeightedGraph[V], highlight []WeightedEdge) string {
	marked := make(map[Edge]bool, 2*len(highlight))
	for _, e := range highlight {
		marked[e.Edge] = true
		marked[e.Edge.Reversed()] = true
	}

	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [color=grey, fontsize=11];\n")
	buf.WriteString("\n")

	for i, v := range wg.list {
		fmt.Fprintf(&buf, "  n%d [label=%q];\n", i, fmt.Sprint(v))
	}

	buf.WriteString("\n")
	for u, es := range wg.edges {
		for _, e := range es {
			if e.V < u {
				continue // drawn from the other endpoint
			}
			attrs := fmt.Sprintf("label=%q", fmt.Sprintf("%g", e.Weight))
			if marked[e.Edge] {
				attrs += ", color=\"#e4572e\", penwidth=3, fontcolor=\"#e4572e\""
			}
			fmt.Fprintf(&buf, "  n%d -- n%d [%s];\n", e.U, e.V, attrs)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG lays out a DOT document with Graphviz and returns the SVG bytes.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
