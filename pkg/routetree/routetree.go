// Package routetree assembles route patterns into a per-namespace tree of
// path components. Each pattern is split with splitpath, so named capture
// groups such as "(?P<id>[\d]+)" become single dynamic levels of the tree.
package routetree

import (
	"fmt"
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/sjc5/routesplit/pkg/colorlog"
	"github.com/sjc5/routesplit/pkg/errutil"
	"github.com/sjc5/routesplit/pkg/splitpath"
)

// Route is one registered endpoint, e.g. namespace "wp/v2" and path
// "/wp/v2/posts/(?P<id>[\d]+)".
type Route struct {
	Namespace string   `json:"namespace" validate:"required"`
	Path      string   `json:"path" validate:"required,startswith=/"`
	Methods   []string `json:"methods" validate:"dive,oneof=GET POST PUT PATCH DELETE HEAD OPTIONS"`
}

type Options struct {
	// Logger defaults to a colorlog logger labeled "routetree".
	Logger *slog.Logger
	// Splitter, if set, memoizes component splitting across builds.
	Splitter *splitpath.Splitter
	// Validator defaults to a fresh validator instance.
	Validator *validator.Validate
}

type Tree struct {
	roots map[string]*Node
}

var IsValidationError = errutil.IsValidationError

// Build validates routes and merges their components into a Tree. Routes
// sharing a namespace share a root; components shared by several routes
// share a node.
func Build(routes []Route, opts *Options) (*Tree, error) {
	if opts == nil {
		opts = new(Options)
	}
	log := opts.Logger
	if log == nil {
		log = colorlog.New("routetree")
	}
	v := opts.Validator
	if v == nil {
		v = validator.New(validator.WithRequiredStructEnabled())
	}

	t := &Tree{roots: make(map[string]*Node)}

	for i, r := range routes {
		r.Namespace = strings.Trim(r.Namespace, "/")
		r.Methods = normalizeMethods(r.Methods)

		if err := v.Struct(r); err != nil {
			return nil, errutil.Maybe(fmt.Sprintf("route %d (%q)", i, r.Path), errutil.Validation(err))
		}

		rest, inNamespace := stripNamespace(r.Path, r.Namespace)
		if !inNamespace {
			log.Warn("route is outside its namespace", "namespace", r.Namespace, "path", r.Path)
		}

		components := opts.Splitter.Split(rest)

		if err := t.insert(r, components); err != nil {
			return nil, errutil.Maybe(fmt.Sprintf("route %d (%q)", i, r.Path), err)
		}

		log.Debug("registered route", "path", r.Path, "components", len(components))
	}

	return t, nil
}

func (t *Tree) insert(r Route, components []string) error {
	current, ok := t.roots[r.Namespace]
	if !ok {
		current = &Node{Component: r.Namespace, Name: r.Namespace}
		t.roots[r.Namespace] = current
	}

	for _, c := range components {
		child, err := current.findOrCreateChild(c)
		if err != nil {
			return err
		}
		current = child
	}

	current.Methods = mergeMethods(current.Methods, r.Methods)
	if !slices.Contains(current.Routes, r.Path) {
		current.Routes = append(current.Routes, r.Path)
	}
	return nil
}

// Namespaces returns the tree's namespaces in sorted order.
func (t *Tree) Namespaces() []string {
	namespaces := make([]string, 0, len(t.roots))
	for ns := range t.roots {
		namespaces = append(namespaces, ns)
	}
	sort.Strings(namespaces)
	return namespaces
}

// Root returns the root node of namespace ns, or nil.
func (t *Tree) Root(ns string) *Node {
	return t.roots[strings.Trim(ns, "/")]
}

// Walk visits every node depth-first, namespaces in sorted order and
// children in insertion order. A non-nil error from fn stops the walk.
func (t *Tree) Walk(fn func(ns string, n *Node) error) error {
	for _, ns := range t.Namespaces() {
		if err := t.roots[ns].walk(ns, fn); err != nil {
			return err
		}
	}
	return nil
}

// stripNamespace removes the leading "/<ns>" from path. The bool is false
// when path does not live under ns, in which case path is returned as is.
func stripNamespace(path, ns string) (string, bool) {
	prefix := "/" + ns
	switch {
	case path == prefix:
		return "", true
	case strings.HasPrefix(path, prefix+"/"):
		return path[len(prefix)+1:], true
	default:
		return path, false
	}
}

func normalizeMethods(methods []string) []string {
	if len(methods) == 0 {
		return nil
	}
	out := make([]string, 0, len(methods))
	for _, m := range methods {
		out = append(out, strings.ToUpper(strings.TrimSpace(m)))
	}
	return out
}

func mergeMethods(existing, added []string) []string {
	merged := append(slices.Clone(existing), added...)
	slices.Sort(merged)
	return slices.Compact(merged)
}
