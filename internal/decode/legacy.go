package decode

import (
	"strings"

	"github.com/go-cyberiada/cyberiadaml/internal/actiontext"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
	"github.com/go-cyberiada/cyberiadaml/internal/treeutil"
	"github.com/go-cyberiada/cyberiadaml/internal/xmlnode"
)

const eventCharacteristicStart = "EVENT_CHARACTERISTIC_START"

type legacyDecoder struct {
	flattened bool
	stack     treeutil.Stack
}

func decodeLegacy(root *xmlnode.Element, flattened bool) (*model.Document, error) {
	d := &legacyDecoder{flattened: flattened}

	doc := model.NewDocument()
	doc.FormatTag = "yed"

	graphs := root.ChildrenNamed("graph")
	if len(graphs) == 0 {
		graphs = []*xmlnode.Element{root}
	}
	g := graphs[0]

	sm := &model.StateMachine{Root: &model.Node{Kind: model.StateMachineRoot}}
	d.stack.Push("graph")
	d.stack.SetTopNode(sm.Root)

	for _, n := range g.ChildrenNamed("node") {
		node, err := d.decodeNode(n)
		if err != nil {
			return nil, err
		}
		sm.Root.AddChild(node)
	}
	for _, e := range g.ChildrenNamed("edge") {
		edge, err := d.decodeEdge(e)
		if err != nil {
			return nil, err
		}
		sm.Edges = append(sm.Edges, edge)
	}

	doc.StateMachines = []*model.StateMachine{sm}
	doc.Metadata.Name = sm.Name
	return doc, nil
}

func (d *legacyDecoder) decodeNode(n *xmlnode.Element) (*model.Node, error) {
	id, _ := n.Attr("id")
	node := &model.Node{ID: model.NodeID(id), Kind: model.SimpleState}

	var actionText string
	var isStart bool

	payload := legacyPayload(n)

	if generic := payload.FirstChildNamed("y:GenericNode"); generic != nil {
		if props := propertyValue(generic, eventCharacteristicStart); props {
			isStart = true
		}
		node.GeometryRect = geometryOf(generic)
		node.Title, actionText = labelText(generic)
	} else if group := payload.FirstChildNamed("y:GroupNode"); group != nil {
		node.Kind = model.CompositeState
		node.GeometryRect = geometryOf(group)
		node.Title, actionText = labelText(group)
	} else if note := payload.FirstChildNamed("y:UMLNoteNode"); note != nil {
		node.Kind = model.Comment
		node.GeometryRect = geometryOf(note)
		title, body := labelText(note)
		node.Comment = &model.CommentData{Body: body}
		node.Title = title
	} else {
		node.Title, actionText = labelText(payload)
	}

	if isStart {
		node.Kind = model.Initial
		if node.GeometryRect != nil {
			c := node.GeometryRect.Center()
			node.GeometryPoint = &c
			node.GeometryRect = nil
		}
	}

	if actionText != "" && !node.Kind.Is(model.CommentMask) {
		actions, err := actiontext.DecodeLegacyNodeActions(actionText, d.flattened)
		if err != nil {
			return nil, err
		}
		node.Actions = actions
	}

	for _, g := range n.ChildrenNamed("graph") {
		for _, child := range g.ChildrenNamed("node") {
			c, err := d.decodeNode(child)
			if err != nil {
				return nil, err
			}
			node.AddChild(c)
		}
	}

	return node, nil
}

func (d *legacyDecoder) decodeEdge(e *xmlnode.Element) (*model.Edge, error) {
	id, _ := e.Attr("id")
	source, _ := e.Attr("source")
	target, _ := e.Attr("target")

	edge := &model.Edge{
		ID:       model.EdgeID(id),
		Kind:     model.LocalTransition,
		SourceID: model.NodeID(source),
		TargetID: model.NodeID(target),
	}

	payload := legacyPayload(e)
	if pl := payload.FirstChildNamed("y:PolyLineEdge"); pl != nil {
		if label := pl.FirstChildNamed("y:EdgeLabel"); label != nil {
			action, err := actiontext.DecodeLegacyEdgeAction(label.CharData)
			if err != nil {
				return nil, err
			}
			edge.Action = action
		}
		if path := pl.FirstChildNamed("y:Path"); path != nil {
			edge.Polyline = polylineOf(path)
		}
	}

	return edge, nil
}

// legacyPayload returns the element actually holding a node/edge's yFiles
// vendor shape: yEd nests it inside a <data key="d_node"/"d_edge"> wrapper
// rather than as a direct child, so a plain FirstChildNamed("y:...") against
// the <node>/<edge> element itself always misses. Falls back to el so a
// document that (unusually) places the shape directly under the element
// still decodes.
func legacyPayload(el *xmlnode.Element) *xmlnode.Element {
	for _, d := range el.ChildrenNamed("data") {
		if len(d.Children) > 0 {
			return d
		}
	}
	return el
}

// propertyValue reports whether el carries a <y:Property value=.../>
// child matching want.
func propertyValue(el *xmlnode.Element, want string) bool {
	for _, p := range el.ChildrenNamed("y:Property") {
		if v, ok := p.Attr("value"); ok && v == want {
			return true
		}
	}
	return false
}

// geometryOf reads a <y:Geometry x= y= width= height=/> child.
func geometryOf(el *xmlnode.Element) *model.Rect {
	g := el.FirstChildNamed("y:Geometry")
	if g == nil {
		return nil
	}
	return parseRect(g)
}

// labelText returns a node's title (the first y:NodeLabel's text) and
// its action text (the remaining lines, if the label holds more than
// one), matching the yEd convention of cramming title and actions into
// one multi-line label.
func labelText(el *xmlnode.Element) (title, actions string) {
	label := el.FirstChildNamed("y:NodeLabel")
	if label == nil {
		return "", ""
	}
	lines := strings.SplitN(label.CharData, "\n", 2)
	title = strings.TrimSpace(lines[0])
	if len(lines) > 1 {
		actions = lines[1]
	}
	return title, actions
}

// polylineOf reads every <y:Point x= y=/> child of a <y:Path> element.
func polylineOf(path *xmlnode.Element) model.Polyline {
	pts := path.ChildrenNamed("y:Point")
	if len(pts) == 0 {
		return nil
	}
	out := make(model.Polyline, len(pts))
	for i, p := range pts {
		out[i] = *parsePoint(p)
	}
	return out
}
