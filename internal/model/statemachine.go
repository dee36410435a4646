package model

// StateMachine owns a node tree rooted in exactly one StateMachineRoot
// node (I1) and an edge list (I3). Successor machines within a Document
// form an ordered list.
type StateMachine struct {
	Root     *Node
	Name     string
	Geometry *Rect
	Edges    []*Edge
}

// TopLevelNodes returns the root's direct children: the first region of
// the state machine.
func (sm *StateMachine) TopLevelNodes() []*Node {
	if sm.Root == nil {
		return nil
	}
	return sm.Root.Children
}

func (sm *StateMachine) clone() *StateMachine {
	if sm == nil {
		return nil
	}
	c := &StateMachine{Name: sm.Name}
	if sm.Geometry != nil {
		r := *sm.Geometry
		c.Geometry = &r
	}
	c.Root = sm.Root.clone(nil)

	// Rebuild edges against the cloned tree's nodes (resolve by id, since
	// edges hold weak non-owning pointers into the owning SM's tree).
	byID := make(map[NodeID]*Node)
	indexNodes(c.Root, byID)

	if len(sm.Edges) > 0 {
		c.Edges = make([]*Edge, len(sm.Edges))
		for i, e := range sm.Edges {
			ce := e.clone()
			ce.Source = byID[ce.SourceID]
			ce.Target = byID[ce.TargetID]
			c.Edges[i] = ce
		}
	}
	return c
}

func indexNodes(n *Node, byID map[NodeID]*Node) {
	if n == nil {
		return
	}
	byID[n.ID] = n
	for _, ch := range n.Children {
		indexNodes(ch, byID)
	}
}
