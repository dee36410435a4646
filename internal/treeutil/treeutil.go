// Package treeutil provides tree-walk helpers over model.Node that play
// the role the teacher's internal/graph map-based ContainsNode/GetNodes
// helpers play for an adjacency list: existence checks and typed lookups,
// here over a parent/children tree instead of a node-id map.
package treeutil

import "github.com/go-cyberiada/cyberiadaml/internal/model"

// FindByID walks root's subtree depth-first in pre-order (a node, then
// each child's whole subtree in order, before the node's later
// siblings) and returns the first node whose ID matches id.
func FindByID(root *model.Node, id model.NodeID) *model.Node {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return root
	}
	for _, child := range root.Children {
		if found := FindByID(child, id); found != nil {
			return found
		}
	}
	return nil
}

// FindByType walks root's subtree depth-first and appends every node
// whose Kind intersects any of the given kinds or kind masks (e.g.
// model.CommentMask), in document order.
func FindByType(root *model.Node, kinds ...model.NodeKind) []*model.Node {
	var out []*model.Node
	var walk func(n *model.Node)
	walk = func(n *model.Node) {
		if n == nil {
			return
		}
		for _, k := range kinds {
			if n.Kind.Is(k) {
				out = append(out, n)
				break
			}
		}
		for _, child := range n.Children {
			walk(child)
		}
	}
	walk(root)
	return out
}

// ContainsID reports whether id appears anywhere in root's subtree.
func ContainsID(root *model.Node, id model.NodeID) bool {
	return FindByID(root, id) != nil
}

// Siblings returns n's sibling nodes (n excluded), in their parent's
// child order. Returns nil for a root node.
func Siblings(n *model.Node) []*model.Node {
	if n == nil || n.Parent == nil {
		return nil
	}
	var out []*model.Node
	for _, s := range n.Parent.Children {
		if s != n {
			out = append(out, s)
		}
	}
	return out
}

// Depth returns the number of ancestors between n and the state machine
// root (the root itself is depth 0).
func Depth(n *model.Node) int {
	d := 0
	for p := n; p != nil && p.Parent != nil; p = p.Parent {
		d++
	}
	return d
}
