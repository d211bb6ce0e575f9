// Package tree folds flattened project path snapshots into a project forest.
package tree

import (
	"sort"
	"strings"

	"github.com/xolan/timetrace/internal/model"
	"github.com/xolan/timetrace/internal/sqlbuilder"
)

// Unlimited disables depth pruning.
const Unlimited = -1

// Node is one project in the forest.
type Node struct {
	Name            string  `json:"name"`
	Path            string  `json:"path"`
	DurationSeconds int64   `json:"duration_seconds"`
	Children        []*Node `json:"children,omitempty"`
}

type branch struct {
	path     string
	total    int64
	children map[string]*branch
}

// Build parses every path once, folds the segments into nested maps and
// flattens the result with siblings sorted by name.
//
// Every row's total is credited to each node on its path, so a node's
// duration includes pruned descendants. maxDepth < 1 means Unlimited.
func Build(rows []model.PathTotal, maxDepth int) []*Node {
	roots := make(map[string]*branch)

	for _, row := range rows {
		segments := splitPath(row.Path)
		level := roots
		path := ""
		for depth, seg := range segments {
			if maxDepth >= 1 && depth >= maxDepth {
				break
			}
			if path == "" {
				path = seg
			} else {
				path += sqlbuilder.PathSeparator + seg
			}
			b, ok := level[seg]
			if !ok {
				b = &branch{path: path, children: make(map[string]*branch)}
				level[seg] = b
			}
			b.total += row.TotalSeconds
			level = b.children
		}
	}

	return flatten(roots)
}

func splitPath(path string) []string {
	parts := strings.Split(path, sqlbuilder.PathSeparator)
	segments := parts[:0]
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

func flatten(level map[string]*branch) []*Node {
	if len(level) == 0 {
		return nil
	}
	names := make([]string, 0, len(level))
	for name := range level {
		names = append(names, name)
	}
	sort.Strings(names)

	nodes := make([]*Node, 0, len(names))
	for _, name := range names {
		b := level[name]
		nodes = append(nodes, &Node{
			Name:            name,
			Path:            b.path,
			DurationSeconds: b.total,
			Children:        flatten(b.children),
		})
	}
	return nodes
}

// RootNames returns the names of the top-level nodes.
func RootNames(nodes []*Node) []string {
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Name
	}
	return names
}

// Find returns the node with the given full path, or nil.
func Find(nodes []*Node, path string) *Node {
	for _, n := range nodes {
		if n.Path == path {
			return n
		}
		if strings.HasPrefix(path, n.Path+sqlbuilder.PathSeparator) {
			return Find(n.Children, path)
		}
	}
	return nil
}

// Walk visits every node depth-first, parents before children.
func Walk(nodes []*Node, fn func(n *Node, depth int)) {
	walk(nodes, 0, fn)
}

func walk(nodes []*Node, depth int, fn func(n *Node, depth int)) {
	for _, n := range nodes {
		fn(n, depth)
		walk(n.Children, depth+1, fn)
	}
}
