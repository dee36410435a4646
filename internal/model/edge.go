package model

// Edge is a transition or comment-subject link. Source/Target are weak,
// non-owning references resolved by the reconstruction pass from
// SourceID/TargetID.
type Edge struct {
	ID       EdgeID
	Kind     EdgeKind
	SourceID NodeID
	TargetID NodeID
	Source   *Node // weak
	Target   *Node // weak

	Action         *Action
	CommentSubject *CommentSubject

	Polyline     Polyline
	SourcePoint  *Point
	TargetPoint  *Point
	LabelPoint   *Point // exclusive with LabelRect
	LabelRect    *Rect
	Color        string
}

func (e *Edge) clone() *Edge {
	if e == nil {
		return nil
	}
	c := &Edge{
		ID:       e.ID,
		Kind:     e.Kind,
		SourceID: e.SourceID,
		TargetID: e.TargetID,
		Color:    e.Color,
	}
	if e.Action != nil {
		a := *e.Action
		c.Action = &a
	}
	if e.CommentSubject != nil {
		cs := *e.CommentSubject
		c.CommentSubject = &cs
	}
	if len(e.Polyline) > 0 {
		c.Polyline = append(Polyline(nil), e.Polyline...)
	}
	if e.SourcePoint != nil {
		p := *e.SourcePoint
		c.SourcePoint = &p
	}
	if e.TargetPoint != nil {
		p := *e.TargetPoint
		c.TargetPoint = &p
	}
	if e.LabelPoint != nil {
		p := *e.LabelPoint
		c.LabelPoint = &p
	}
	if e.LabelRect != nil {
		r := *e.LabelRect
		c.LabelRect = &r
	}
	return c
}
