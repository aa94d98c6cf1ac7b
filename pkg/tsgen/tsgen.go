// Package tsgen renders a route tree as a TypeScript module, so front-end
// code can walk the same component levels the Go side builds.
package tsgen

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/sjc5/routesplit/pkg/errutil"
	"github.com/sjc5/routesplit/pkg/fsutil"
	"github.com/sjc5/routesplit/pkg/routetree"
	"github.com/tkrajina/typescriptify-golang-structs/typescriptify"
)

// Level is the TypeScript-facing shape of one routetree.Node.
type Level struct {
	Component string   `json:"component"`
	Name      string   `json:"name"`
	Depth     int      `json:"depth"`
	Dynamic   bool     `json:"dynamic"`
	Expr      string   `json:"expr,omitempty"`
	Methods   []string `json:"methods,omitempty"`
	Routes    []string `json:"routes,omitempty"`
}

type levelTree struct {
	Level
	Children []levelTree `json:"children"`
}

const header = "/*\n * This file is auto-generated. Do not edit.\n */\n"

const treeType = `
export type LevelTree = Level & { children: LevelTree[] };
`

// Generate returns the TypeScript source for tree.
func Generate(tree *routetree.Tree) (string, error) {
	if tree == nil {
		return "", errors.New("tsgen: nil route tree")
	}

	converter := newConverter()
	converter.Add(Level{})

	levelTS, err := converter.Convert(make(map[string]string))
	if err != nil {
		return "", errutil.Maybe("failed to convert Level to ts", err)
	}

	roots := make(map[string]levelTree)
	for _, ns := range tree.Namespaces() {
		roots[ns] = toLevelTree(tree.Root(ns))
	}

	treeJSON, err := json.MarshalIndent(roots, "", "  ")
	if err != nil {
		return "", errutil.Maybe("failed to marshal route tree", err)
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString(strings.TrimSpace(levelTS))
	b.WriteString("\n")
	b.WriteString(treeType)
	b.WriteString("\nexport const ROUTE_TREE: Record<string, LevelTree> = ")
	b.Write(treeJSON)
	b.WriteString(";\n")

	for _, ns := range tree.Namespaces() {
		ident := namespaceIdent(ns)
		if ident == "" {
			continue
		}
		b.WriteString("export const " + ident + " = ROUTE_TREE[" + quote(ns) + "];\n")
	}

	return b.String(), nil
}

// GenerateToFile writes the output of Generate to outPath, creating parent
// directories as needed.
func GenerateToFile(tree *routetree.Tree, outPath string) error {
	ts, err := Generate(tree)
	if err != nil {
		return err
	}
	return errutil.Maybe("failed to write ts file", fsutil.WriteFile(outPath, []byte(ts)))
}

func toLevelTree(n *routetree.Node) levelTree {
	lt := levelTree{
		Level: Level{
			Component: n.Component,
			Name:      n.Name,
			Depth:     n.Depth,
			Dynamic:   n.Dynamic,
			Expr:      n.Expr,
			Methods:   n.Methods,
			Routes:    n.Routes,
		},
		Children: make([]levelTree, 0, len(n.Children())),
	}
	for _, child := range n.Children() {
		lt.Children = append(lt.Children, toLevelTree(child))
	}
	return lt
}

func quote(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func newConverter() *typescriptify.TypeScriptify {
	converter := typescriptify.New()
	converter.CreateInterface = true
	return converter
}
