// Package render turns lesson structures into Graphviz DOT and SVG.
package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/lvldsa/bst"
	"github.com/katalvlaran/lvldsa/core"
)

// TreeDOT renders a binary tree top-down. Missing children become small
// invisible points so left and right stay visually distinct.
func TreeDOT(root *bst.Node) string {
	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	buf.WriteString("  node [shape=circle, fontsize=14];\n")
	buf.WriteString("  nodesep=0.3;\n")

	id := 0
	var walk func(n *bst.Node) string
	walk = func(n *bst.Node) string {
		name := fmt.Sprintf("n%d", id)
		id++
		if n == nil {
			fmt.Fprintf(&buf, "  %s [shape=point, style=invis];\n", name)
			return name
		}
		fmt.Fprintf(&buf, "  %s [label=%q];\n", name, fmt.Sprint(n.Key))
		if n.Left == nil && n.Right == nil {
			return name
		}
		l := walk(n.Left)
		r := walk(n.Right)
		fmt.Fprintf(&buf, "  %s -> %s%s;\n", name, l, invisIf(n.Left == nil))
		fmt.Fprintf(&buf, "  %s -> %s%s;\n", name, r, invisIf(n.Right == nil))
		return name
	}
	if root != nil {
		walk(root)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func invisIf(b bool) string {
	if b {
		return " [style=invis]"
	}
	return ""
}

// GraphDOT renders g with weights as edge labels when the graph is weighted.
func GraphDOT(g *core.Graph) string {
	var buf bytes.Buffer
	kind, arrow := "graph", "--"
	if g.Directed() {
		kind, arrow = "digraph", "->"
	}
	fmt.Fprintf(&buf, "%s G {\n", kind)
	buf.WriteString("  node [shape=circle];\n")
	for _, v := range g.Vertices() {
		fmt.Fprintf(&buf, "  %q;\n", v)
	}
	for _, e := range g.Edges() {
		if g.Weighted() {
			fmt.Fprintf(&buf, "  %q %s %q [label=%q];\n", e.From, arrow, e.To, fmt.Sprint(e.Weight))
			continue
		}
		fmt.Fprintf(&buf, "  %q %s %q;\n", e.From, arrow, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SVG lays out a DOT document with Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
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
