package encode

import (
	"fmt"

	"github.com/go-cyberiada/cyberiadaml/internal/actiontext"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
	"github.com/go-cyberiada/cyberiadaml/internal/xmlnode"
)

const eventCharacteristicStart = "EVENT_CHARACTERISTIC_START"

// encodeLegacy builds a single yEd-flavored GraphML document for doc's
// lone state machine. Encode has already rejected multi-SM documents
// before calling this.
func encodeLegacy(doc *model.Document, flags Flags) *xmlnode.Element {
	sm := doc.StateMachines[0]

	root := xmlnode.NewElement("graphml")
	root.SetAttr("xmlns", "http://graphml.graphdrawing.org/xmlns")
	root.SetAttr("xmlns:y", "http://www.yworks.com/xml/graphml")

	g := root.AddChild(xmlnode.NewElement("graph"))
	g.SetAttr("edgedefault", "directed")

	for _, n := range sm.Root.Children {
		g.AddChild(encodeLegacyNode(n, flags))
	}
	for _, e := range sm.Edges {
		g.AddChild(encodeLegacyEdge(e))
	}

	return root
}

func encodeLegacyNode(n *model.Node, flags Flags) *xmlnode.Element {
	el := xmlnode.NewElement("node")
	el.SetAttr("id", string(n.ID))

	rect := n.GeometryRect
	if rect == nil && n.GeometryPoint != nil {
		r := model.Rect{X: n.GeometryPoint.X, Y: n.GeometryPoint.Y}
		rect = &r
	}

	switch {
	case n.Kind.Is(model.CommentMask):
		note := xmlnode.NewElement("y:UMLNoteNode")
		if rect != nil && !flags.SkipGeometry {
			note.AddChild(legacyGeometry(*rect))
		}
		body := ""
		if n.Comment != nil {
			body = n.Comment.Body
		}
		note.AddChild(legacyLabel(n.Title, body))
		wrapLegacyShape(el, note)
	case len(n.Children) > 0:
		group := xmlnode.NewElement("y:GroupNode")
		if rect != nil && !flags.SkipGeometry {
			group.AddChild(legacyGeometry(*rect))
		}
		group.AddChild(legacyLabel(n.Title, actiontext.EncodeLegacyNodeActions(n.Actions)))
		wrapLegacyShape(el, group)

		sub := el.AddChild(xmlnode.NewElement("graph"))
		sub.SetAttr("edgedefault", "directed")
		for _, c := range n.Children {
			sub.AddChild(encodeLegacyNode(c, flags))
		}
	default:
		generic := xmlnode.NewElement("y:GenericNode")
		if n.Kind == model.Initial {
			prop := generic.AddChild(xmlnode.NewElement("y:Property"))
			prop.SetAttr("name", eventCharacteristicStart)
			prop.SetAttr("value", eventCharacteristicStart)
		}
		if rect != nil && !flags.SkipGeometry {
			generic.AddChild(legacyGeometry(*rect))
		}
		generic.AddChild(legacyLabel(n.Title, actiontext.EncodeLegacyNodeActions(n.Actions)))
		wrapLegacyShape(el, generic)
	}

	return el
}

// wrapLegacyShape attaches shape as the payload of a
// <data key="d_node"><y:...Node>...</y:...Node></data> wrapper, the
// yFiles convention of nesting vendor XML inside a GraphML data element.
func wrapLegacyShape(el, shape *xmlnode.Element) {
	data := xmlnode.NewElement("data")
	data.SetAttr("key", "d_node")
	data.AddChild(shape)
	el.AddChild(data)
}

func legacyGeometry(r model.Rect) *xmlnode.Element {
	el := xmlnode.NewElement("y:Geometry")
	el.SetAttr("x", formatFloat(r.X))
	el.SetAttr("y", formatFloat(r.Y))
	el.SetAttr("width", formatFloat(r.W))
	el.SetAttr("height", formatFloat(r.H))
	return el
}

func legacyLabel(title, actions string) *xmlnode.Element {
	el := xmlnode.NewElement("y:NodeLabel")
	if actions == "" {
		el.CharData = title
	} else {
		el.CharData = fmt.Sprintf("%s\n%s", title, actions)
	}
	return el
}

func encodeLegacyEdge(e *model.Edge) *xmlnode.Element {
	el := xmlnode.NewElement("edge")
	el.SetAttr("id", string(e.ID))
	el.SetAttr("source", string(e.SourceID))
	el.SetAttr("target", string(e.TargetID))

	data := xmlnode.NewElement("data")
	data.SetAttr("key", "d_edge")

	pl := xmlnode.NewElement("y:PolyLineEdge")
	if len(e.Polyline) > 0 {
		path := xmlnode.NewElement("y:Path")
		for _, p := range e.Polyline {
			pt := xmlnode.NewElement("y:Point")
			pt.SetAttr("x", formatFloat(p.X))
			pt.SetAttr("y", formatFloat(p.Y))
			path.AddChild(pt)
		}
		pl.AddChild(path)
	}
	if e.Action != nil {
		label := xmlnode.NewElement("y:EdgeLabel")
		label.CharData = actiontext.EncodeEdgeAction(e.Action)
		pl.AddChild(label)
	}
	data.AddChild(pl)
	el.AddChild(data)

	return el
}
