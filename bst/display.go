package bst

import (
	"fmt"
	"io"
	"strings"
)

// DisplayKeys prints n rotated 90° clockwise: right subtree on top, one level
// of indentation (space) per depth, "*" for an empty child of an inner node.
//
//	    8
//	  7
//	    6
//	5
//	  ...
func DisplayKeys(w io.Writer, n *Node, space string) {
	displayKeys(w, n, space, 0)
}

func displayKeys(w io.Writer, n *Node, space string, level int) {
	pad := strings.Repeat(space, level)
	if n == nil {
		fmt.Fprintln(w, pad+"*")
		return
	}
	if n.Left == nil && n.Right == nil {
		fmt.Fprintf(w, "%s%d\n", pad, n.Key)
		return
	}
	displayKeys(w, n.Right, space, level+1)
	fmt.Fprintf(w, "%s%d\n", pad, n.Key)
	displayKeys(w, n.Left, space, level+1)
}

// DisplayHorizontal prints n top-down with explicit L/R markers, two spaces
// per level, and "None" for a missing sibling:
//
//	Root: 2
//	  L--- 3
//	    L--- 1
//	    R--- None
func DisplayHorizontal(w io.Writer, n *Node) {
	displayHorizontal(w, n, 0, "Root: ")
}

func displayHorizontal(w io.Writer, n *Node, level int, prefix string) {
	pad := strings.Repeat("  ", level)
	if n == nil {
		fmt.Fprintln(w, pad+prefix+"None")
		return
	}
	fmt.Fprintf(w, "%s%s%d\n", pad, prefix, n.Key)
	if n.Left == nil && n.Right == nil {
		return
	}
	childPad := strings.Repeat("  ", level+1)
	if n.Left != nil {
		displayHorizontal(w, n.Left, level+1, "L--- ")
	} else {
		fmt.Fprintln(w, childPad+"L--- None")
	}
	if n.Right != nil {
		displayHorizontal(w, n.Right, level+1, "R--- ")
	} else {
		fmt.Fprintln(w, childPad+"R--- None")
	}
}

// DisplayCompact prints n with "+- " connectors; a vertical bar continues
// under every child that still has a later sibling.
//
//	+- 2
//	   +- 3
//	   |  +- 1
//	   +- 5
func DisplayCompact(w io.Writer, n *Node) {
	displayCompact(w, n, "", true)
}

func displayCompact(w io.Writer, n *Node, indent string, last bool) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s+- %d\n", indent, n.Key)
	if last {
		indent += "   "
	} else {
		indent += "|  "
	}
	children := make([]*Node, 0, 2)
	if n.Left != nil {
		children = append(children, n.Left)
	}
	if n.Right != nil {
		children = append(children, n.Right)
	}
	for i, c := range children {
		displayCompact(w, c, indent, i == len(children)-1)
	}
}

// DisplayPretty prints n with "+-- " and "|-- " connectors, announcing every
// child with an "[L]" or "[R]" tag line before the subtree itself:
//
//	+-- 2
//	|-- [L]
//	    |-- 1
//	+-- [R]
//	    +-- 3
func DisplayPretty(w io.Writer, n *Node) {
	displayPretty(w, n, "", true)
}

func displayPretty(w io.Writer, n *Node, prefix string, tail bool) {
	if n == nil {
		return
	}
	fmt.Fprintf(w, "%s%s%d\n", prefix, connector(tail), n.Key)
	ext := "|   "
	if tail {
		ext = "    "
	}

	type child struct {
		side string
		node *Node
	}
	children := make([]child, 0, 2)
	if n.Left != nil {
		children = append(children, child{"L", n.Left})
	}
	if n.Right != nil {
		children = append(children, child{"R", n.Right})
	}
	for i, c := range children {
		last := i == len(children)-1
		fmt.Fprintf(w, "%s%s[%s]\n", prefix, connector(last), c.side)
		displayPretty(w, c.node, prefix+ext, last)
	}
}

func connector(last bool) string {
	if last {
		return "+-- "
	}

	return "|-- "
}
