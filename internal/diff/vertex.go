package diff

import "github.com/go-cyberiada/cyberiadaml/internal/model"

// vertex is one enumerated node plus its precomputed degrees, mirroring
// isomorph.c's Vertex struct.
type vertex struct {
	node      *model.Node
	degreeIn  int
	degreeOut int
	matched   bool
}

// enumerateVertexes walks root's descendants in depth-first, document
// order (matching cyberiada_enumerate_vertexes), skipping comments when
// ignoreComments is set, and computes in/out degree against edges.
func enumerateVertexes(root *model.Node, edges []*model.Edge, ignoreComments bool) []vertex {
	var out []vertex
	var walk func(n *model.Node)
	walk = func(n *model.Node) {
		for _, c := range n.Children {
			if ignoreComments && c.Kind.Is(model.CommentMask) {
				continue
			}
			din, dout := nodeDegrees(c, edges)
			out = append(out, vertex{node: c, degreeIn: din, degreeOut: dout})
			walk(c)
		}
	}
	walk(root)
	return out
}

func nodeDegrees(n *model.Node, edges []*model.Edge) (in, out int) {
	for _, e := range edges {
		if e.Source == n {
			out++
		}
		if e.Target == n {
			in++
		}
	}
	return in, out
}

// kindCompatible reports whether two node kinds are diff-compatible:
// equal, or one SimpleState and the other CompositeState.
func kindCompatible(a, b model.NodeKind) bool {
	if a == b {
		return true
	}
	simpleComposite := func(x, y model.NodeKind) bool {
		return x == model.SimpleState && y == model.CompositeState
	}
	return simpleComposite(a, b) || simpleComposite(b, a)
}

// findTopLevelInitial returns the single top-level Initial node of root
// and the edge leaving it, if any.
func findTopLevelInitial(root *model.Node, edges []*model.Edge) (*model.Node, *model.Edge) {
	var initial *model.Node
	count := 0
	for _, c := range root.Children {
		if c.Kind == model.Initial {
			initial = c
			count++
		}
	}
	if count != 1 {
		return nil, nil
	}
	for _, e := range edges {
		if e.Source == initial {
			return initial, e
		}
	}
	return initial, nil
}
