package encode

import (
	"strconv"

	"github.com/go-cyberiada/cyberiadaml/internal/actiontext"
	"github.com/go-cyberiada/cyberiadaml/internal/metadata"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
	"github.com/go-cyberiada/cyberiadaml/internal/treeutil"
	"github.com/go-cyberiada/cyberiadaml/internal/xmlnode"
)

const metaCommentTitle = "CGML_META"

func encodeNative(doc *model.Document, flags Flags) *xmlnode.Element {
	syncMetaComment(doc)

	root := xmlnode.NewElement("graphml")
	root.SetAttr("xmlns", "http://graphml.graphdrawing.org/xmlns")

	for _, k := range nativeKeyOrder {
		key := root.AddChild(xmlnode.NewElement("key"))
		key.SetAttr("id", defaultKeyIDFor(k))
		key.SetAttr("attr.name", string(k))
		key.SetAttr("attr.type", "string")
	}

	formatData := root.AddChild(xmlnode.NewElement("data"))
	formatData.SetAttr("key", defaultKeyIDFor(keyFormatName))
	formatData.CharData = doc.FormatTag

	for _, sm := range doc.StateMachines {
		root.AddChild(encodeStateMachine(sm, flags))
	}

	return root
}

func syncMetaComment(doc *model.Document) {
	if len(doc.StateMachines) == 0 {
		return
	}
	root := doc.StateMachines[0].Root
	body := metadata.Encode(doc.Metadata)

	for _, c := range treeutil.FindByType(root, model.FormalComment) {
		if c.Title == metaCommentTitle {
			if c.Comment == nil {
				c.Comment = &model.CommentData{}
			}
			c.Comment.Body = body
			return
		}
	}

	meta := &model.Node{
		ID:      "nMeta",
		Kind:    model.FormalComment,
		Title:   metaCommentTitle,
		Comment: &model.CommentData{Body: body},
	}
	root.Children = append([]*model.Node{meta}, root.Children...)
	meta.Parent = root
}

func encodeStateMachine(sm *model.StateMachine, flags Flags) *xmlnode.Element {
	g := xmlnode.NewElement("graph")
	g.SetAttr("edgedefault", "directed")

	marker := g.AddChild(xmlnode.NewElement("data"))
	marker.SetAttr("key", defaultKeyIDFor(keyStateMachineName))

	nameData := g.AddChild(xmlnode.NewElement("data"))
	nameData.SetAttr("key", defaultKeyIDFor(keyNameName))
	nameData.CharData = sm.Name

	if !flags.SkipGeometry && sm.Geometry != nil {
		geomData := g.AddChild(xmlnode.NewElement("data"))
		geomData.SetAttr("key", defaultKeyIDFor(keyGeometryName))
		geomData.AddChild(rectElement(*sm.Geometry))
	}

	for _, n := range sm.Root.Children {
		g.AddChild(encodeNode(n, flags))
	}
	for _, e := range sm.Edges {
		g.AddChild(encodeEdge(e, flags))
	}

	return g
}

func encodeNode(n *model.Node, flags Flags) *xmlnode.Element {
	el := xmlnode.NewElement("node")
	el.SetAttr("id", string(n.ID))

	if v := vertexValue(n.Kind); v != "" {
		data := el.AddChild(xmlnode.NewElement("data"))
		data.SetAttr("key", defaultKeyIDFor(keyVertexName))
		data.CharData = v
	}

	if n.Title != "" {
		data := el.AddChild(xmlnode.NewElement("data"))
		data.SetAttr("key", defaultKeyIDFor(keyNameName))
		data.CharData = n.Title
	}

	if n.Kind.Is(model.CommentMask) {
		note := el.AddChild(xmlnode.NewElement("data"))
		note.SetAttr("key", defaultKeyIDFor(keyNoteName))
		if n.Kind == model.FormalComment {
			note.CharData = "formal"
		} else {
			note.CharData = "informal"
		}
		if n.Comment != nil && n.Comment.Body != "" {
			body := el.AddChild(xmlnode.NewElement("data"))
			body.SetAttr("key", defaultKeyIDFor(keyDataName))
			body.CharData = n.Comment.Body
		}
		if n.Comment != nil && n.Comment.Markup != "" {
			markup := el.AddChild(xmlnode.NewElement("data"))
			markup.SetAttr("key", defaultKeyIDFor(keyMarkupName))
			markup.CharData = n.Comment.Markup
		}
	} else if len(n.Actions) > 0 {
		data := el.AddChild(xmlnode.NewElement("data"))
		data.SetAttr("key", defaultKeyIDFor(keyDataName))
		data.CharData = actiontext.EncodeNodeActions(n.Actions)
	}

	if n.Link != nil {
		link := el.AddChild(xmlnode.NewElement("data"))
		link.SetAttr("key", defaultKeyIDFor(keySubmachineStateName))
		link.CharData = n.Link.Ref
	}

	if !flags.SkipGeometry {
		if n.GeometryPoint != nil {
			data := el.AddChild(xmlnode.NewElement("data"))
			data.SetAttr("key", defaultKeyIDFor(keyGeometryName))
			data.AddChild(pointElement(*n.GeometryPoint))
		} else if n.GeometryRect != nil {
			data := el.AddChild(xmlnode.NewElement("data"))
			data.SetAttr("key", defaultKeyIDFor(keyGeometryName))
			data.AddChild(rectElement(*n.GeometryRect))
		}
	}

	if n.Color != "" {
		data := el.AddChild(xmlnode.NewElement("data"))
		data.SetAttr("key", defaultKeyIDFor(keyColorName))
		data.CharData = n.Color
	}

	if len(n.Children) > 0 {
		sub := el.AddChild(xmlnode.NewElement("graph"))
		sub.SetAttr("edgedefault", "directed")
		for _, c := range n.Children {
			sub.AddChild(encodeNode(c, flags))
		}
	}

	return el
}

func encodeEdge(e *model.Edge, flags Flags) *xmlnode.Element {
	el := xmlnode.NewElement("edge")
	el.SetAttr("id", string(e.ID))
	el.SetAttr("source", string(e.SourceID))
	el.SetAttr("target", string(e.TargetID))

	if e.Kind == model.CommentEdge && e.CommentSubject != nil {
		pivot := el.AddChild(xmlnode.NewElement("data"))
		pivot.SetAttr("key", defaultKeyIDFor(keyPivotName))
		switch e.CommentSubject.Kind {
		case model.SubjectNameFragment:
			pivot.CharData = defaultKeyIDFor(keyNameName)
		case model.SubjectDataFragment:
			pivot.CharData = defaultKeyIDFor(keyDataName)
		}
		if e.CommentSubject.Kind == model.SubjectNameFragment || e.CommentSubject.Kind == model.SubjectDataFragment {
			chunk := el.AddChild(xmlnode.NewElement("data"))
			chunk.SetAttr("key", defaultKeyIDFor(keyChunkName))
			chunk.CharData = e.CommentSubject.Fragment
		}
	} else if e.Action != nil {
		data := el.AddChild(xmlnode.NewElement("data"))
		data.SetAttr("key", defaultKeyIDFor(keyDataName))
		data.CharData = actiontext.EncodeEdgeAction(e.Action)
	}

	if !flags.SkipGeometry {
		if len(e.Polyline) > 0 {
			data := el.AddChild(xmlnode.NewElement("data"))
			data.SetAttr("key", defaultKeyIDFor(keyGeometryName))
			for _, p := range e.Polyline {
				data.AddChild(pointElement(p))
			}
		}
		if e.SourcePoint != nil {
			data := el.AddChild(xmlnode.NewElement("data"))
			data.SetAttr("key", defaultKeyIDFor(keySourcePointName))
			data.AddChild(pointElement(*e.SourcePoint))
		}
		if e.TargetPoint != nil {
			data := el.AddChild(xmlnode.NewElement("data"))
			data.SetAttr("key", defaultKeyIDFor(keyTargetPointName))
			data.AddChild(pointElement(*e.TargetPoint))
		}
		if e.LabelPoint != nil {
			data := el.AddChild(xmlnode.NewElement("data"))
			data.SetAttr("key", defaultKeyIDFor(keyLabelGeometryName))
			data.AddChild(pointElement(*e.LabelPoint))
		} else if e.LabelRect != nil {
			data := el.AddChild(xmlnode.NewElement("data"))
			data.SetAttr("key", defaultKeyIDFor(keyLabelGeometryName))
			data.AddChild(rectElement(*e.LabelRect))
		}
	}

	if e.Color != "" {
		data := el.AddChild(xmlnode.NewElement("data"))
		data.SetAttr("key", defaultKeyIDFor(keyColorName))
		data.CharData = e.Color
	}

	return el
}

func pointElement(p model.Point) *xmlnode.Element {
	el := xmlnode.NewElement("point")
	el.SetAttr("x", formatFloat(p.X))
	el.SetAttr("y", formatFloat(p.Y))
	return el
}

func rectElement(r model.Rect) *xmlnode.Element {
	el := xmlnode.NewElement("rect")
	el.SetAttr("x", formatFloat(r.X))
	el.SetAttr("y", formatFloat(r.Y))
	el.SetAttr("width", formatFloat(r.W))
	el.SetAttr("height", formatFloat(r.H))
	return el
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func vertexValue(k model.NodeKind) string {
	switch k {
	case model.Initial:
		return "initial"
	case model.Final:
		return "final"
	case model.Choice:
		return "choice"
	case model.Terminate:
		return "terminate"
	case model.ShallowHistory:
		return "shallowHistory"
	case model.DeepHistory:
		return "deepHistory"
	case model.EntryPoint:
		return "entryPoint"
	case model.ExitPoint:
		return "exitPoint"
	case model.Fork:
		return "fork"
	case model.Join:
		return "join"
	default:
		return ""
	}
}
