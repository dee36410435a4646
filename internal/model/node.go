package model

// Node is a vertex in the HSM tree: a state, pseudostate, comment, or the
// state-machine root. A node exclusively owns its children (order
// preserved verbatim through round-trip) and its actions/comment/link/
// geometry/color; Parent is a weak, non-owning back-reference.
type Node struct {
	ID          NodeID
	Title       string
	FormalTitle string
	Kind        NodeKind

	Actions []Action

	Comment *CommentData
	Link    *Link

	// Geometry: exclusively one of GeometryPoint or GeometryRect (I4).
	GeometryPoint *Point
	GeometryRect  *Rect
	Color         string

	Parent   *Node // weak
	Children []*Node
}

// AddChild appends child to n's children and sets its parent pointer,
// promoting n from SimpleState to CompositeState per I6 if the child is
// not a comment.
func (n *Node) AddChild(child *Node) {
	child.Parent = n
	n.Children = append(n.Children, child)
	if n.Kind == SimpleState && !child.Kind.Is(CommentMask) {
		n.Kind = CompositeState
	}
}

// IsPseudostate reports whether n's kind is one of the pseudostate kinds.
func (n *Node) IsPseudostate() bool {
	return n.Kind.Is(PseudostateMask)
}

// RequiresPointGeometry reports whether n's kind must use Point geometry
// exclusively (I4): Initial, Final, Terminate.
func (n *Node) RequiresPointGeometry() bool {
	return n.Kind.Is(PointGeometryMask)
}

// clone deep-copies n and its subtree; the returned node has parent set
// to newParent (which the caller is responsible for having already
// cloned and linked).
func (n *Node) clone(newParent *Node) *Node {
	if n == nil {
		return nil
	}
	c := &Node{
		ID:          n.ID,
		Title:       n.Title,
		FormalTitle: n.FormalTitle,
		Kind:        n.Kind,
		Color:       n.Color,
		Parent:      newParent,
	}
	if len(n.Actions) > 0 {
		c.Actions = append([]Action(nil), n.Actions...)
	}
	if n.Comment != nil {
		cc := *n.Comment
		c.Comment = &cc
	}
	if n.Link != nil {
		ll := *n.Link
		c.Link = &ll
	}
	if n.GeometryPoint != nil {
		p := *n.GeometryPoint
		c.GeometryPoint = &p
	}
	if n.GeometryRect != nil {
		r := *n.GeometryRect
		c.GeometryRect = &r
	}
	if len(n.Children) > 0 {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.clone(c)
		}
	}
	return c
}
