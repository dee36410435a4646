package reconstruct

import "github.com/go-cyberiada/cyberiadaml/internal/model"

// promoteComposites walks root's subtree and upgrades any SimpleState
// that has at least one non-comment child to CompositeState. model.Node
// .AddChild already does this incrementally as nodes are attached during
// decode, but this pass makes the promotion unconditional and
// idempotent regardless of how the tree was assembled (a decoder could
// legally build the children slice directly rather than through
// AddChild, e.g. when re-parenting during legacy-dialect group
// flattening).
func promoteComposites(root *model.Node) {
	var walk func(n *model.Node)
	walk = func(n *model.Node) {
		if n.Kind == model.SimpleState {
			for _, c := range n.Children {
				if !c.Kind.Is(model.CommentMask) {
					n.Kind = model.CompositeState
					break
				}
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
}
