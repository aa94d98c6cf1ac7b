package routetree

import (
	"fmt"
	"io"
	"strings"
)

// Print writes a readable dump of the tree to w.
func (t *Tree) Print(w io.Writer) {
	fmt.Fprintln(w, "Route Tree:")
	fmt.Fprintln(w, "===========")
	if len(t.roots) == 0 {
		fmt.Fprintln(w, "Empty tree")
		return
	}

	_ = t.Walk(func(_ string, n *Node) error {
		printNode(w, n)
		return nil
	})
	fmt.Fprintln(w, "===========")
}

func printNode(w io.Writer, n *Node) {
	indent := strings.Repeat("  ", n.Depth)

	switch {
	case n.Depth == 0:
		fmt.Fprintf(w, "%s%s/", indent, n.Component)
	case n.Dynamic:
		fmt.Fprintf(w, "%s$%s/ (expr: %s)", indent, n.Name, n.Expr)
	default:
		fmt.Fprintf(w, "%s%s/", indent, n.Component)
	}

	if len(n.Methods) > 0 {
		fmt.Fprintf(w, " [%s]", strings.Join(n.Methods, " "))
	}
	fmt.Fprintln(w)
}
