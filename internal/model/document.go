package model

// Document is the root of the in-memory model: a format tag, the
// document-wide metadata record, the ordered list of state machines, a
// bounding rectangle, and the four geometry-format descriptors that
// declare how every coordinate in the document must be interpreted.
type Document struct {
	FormatTag string
	Metadata  Metadata

	StateMachines []*StateMachine

	BoundingRect Rect

	NodeCoordFormat     CoordFormat
	EdgeCoordFormat     CoordFormat
	EdgePolylineFormat  CoordFormat
	EdgeEndpointPlace   EndpointPlacement
}

// NewDocument returns an empty document with the default metadata of a
// successful decode (I8).
func NewDocument() *Document {
	return &Document{
		Metadata: DefaultMetadata(),
	}
}

// Clone performs a full recursive deep copy of the document, used by the
// encoder so in-place geometry conversion never mutates the caller's
// model (§4.8/§5).
func (d *Document) Clone() *Document {
	if d == nil {
		return nil
	}
	c := &Document{
		FormatTag:          d.FormatTag,
		Metadata:           d.Metadata,
		BoundingRect:       d.BoundingRect,
		NodeCoordFormat:    d.NodeCoordFormat,
		EdgeCoordFormat:    d.EdgeCoordFormat,
		EdgePolylineFormat: d.EdgePolylineFormat,
		EdgeEndpointPlace:  d.EdgeEndpointPlace,
	}
	if len(d.Metadata.Extensions) > 0 {
		c.Metadata.Extensions = append([]KV(nil), d.Metadata.Extensions...)
	}
	if len(d.StateMachines) > 0 {
		c.StateMachines = make([]*StateMachine, len(d.StateMachines))
		for i, sm := range d.StateMachines {
			c.StateMachines[i] = sm.clone()
		}
	}
	return c
}
