package routetree

import (
	"regexp"

	"github.com/sjc5/routesplit/pkg/errutil"
	"github.com/sjc5/routesplit/pkg/namedgroup"
)

type Node struct {
	// Component is the raw path component, e.g. "posts" or "(?P<id>[\d]+)".
	// For a namespace root it is the namespace itself.
	Component string
	// Depth is 0 for a namespace root and grows by one per component.
	Depth int
	// Name is the component for static nodes and the group name for
	// dynamic ones.
	Name string
	// Expr is the group's inner expression; empty for static nodes.
	Expr    string
	Dynamic bool
	// Methods and Routes are set on nodes where at least one route ends.
	Methods []string
	Routes  []string

	children map[string]*Node
	order    []*Node
	re       *regexp.Regexp
}

// Children returns the node's children in insertion order.
func (n *Node) Children() []*Node {
	return n.order
}

// Child returns the child with the given raw component, or nil.
func (n *Node) Child(component string) *Node {
	return n.children[component]
}

func (n *Node) IsLeaf() bool {
	return len(n.order) == 0
}

// Accepts reports whether value may stand in for this node in a concrete
// path: static nodes accept only their own text, dynamic nodes accept
// values fully matching their group expression.
func (n *Node) Accepts(value string) bool {
	if !n.Dynamic {
		return value == n.Component
	}
	return n.re.MatchString(value)
}

func (n *Node) findOrCreateChild(component string) (*Node, error) {
	if child, ok := n.children[component]; ok {
		return child, nil
	}

	child := &Node{Component: component, Depth: n.Depth + 1, Name: component}

	if m, ok := namedgroup.Find(component); ok && m.Text == component {
		re, err := regexp.Compile("^(?:" + m.Expr + ")$")
		if err != nil {
			return nil, errutil.Maybe("compile named group "+m.Name, err)
		}
		child.Dynamic = true
		child.Name = m.Name
		child.Expr = m.Expr
		child.re = re
	}

	if n.children == nil {
		n.children = make(map[string]*Node)
	}
	n.children[component] = child
	n.order = append(n.order, child)
	return child, nil
}

func (n *Node) walk(ns string, fn func(string, *Node) error) error {
	if err := fn(ns, n); err != nil {
		return err
	}
	for _, child := range n.order {
		if err := child.walk(ns, fn); err != nil {
			return err
		}
	}
	return nil
}
