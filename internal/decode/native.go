package decode

import (
	"github.com/go-cyberiada/cyberiadaml/internal/actiontext"
	"github.com/go-cyberiada/cyberiadaml/internal/cyberr"
	"github.com/go-cyberiada/cyberiadaml/internal/metadata"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
	"github.com/go-cyberiada/cyberiadaml/internal/treeutil"
	"github.com/go-cyberiada/cyberiadaml/internal/xmlnode"
)

const metaCommentTitle = "CGML_META"

// nativeDecoder holds the per-call state a native decode needs: the key
// table (declared fresh per Decode, never a package global) and the
// frame stack tracking which node/graph is currently open.
type nativeDecoder struct {
	keys  *keyTable
	stack treeutil.Stack
}

func decodeNative(root *xmlnode.Element) (*model.Document, error) {
	d := &nativeDecoder{keys: newKeyTable()}

	for _, k := range root.ChildrenNamed("key") {
		id, _ := k.Attr("id")
		attrName, _ := k.Attr("attr.name")
		d.keys.declare(id, attrName)
	}

	doc := model.NewDocument()
	doc.FormatTag = "Cyberiada-GraphML-1.0"

	for _, data := range root.ChildrenNamed("data") {
		if key, ok := d.resolveData(data); ok && key == keyFormat {
			doc.FormatTag = data.CharData
		}
	}

	for _, g := range root.ChildrenNamed("graph") {
		sm, err := d.decodeStateMachine(g)
		if err != nil {
			return nil, err
		}
		doc.StateMachines = append(doc.StateMachines, sm)
	}

	if len(doc.StateMachines) > 0 {
		if meta := findMetaComment(doc.StateMachines[0].Root); meta != nil {
			m, err := metadata.Decode(meta.Comment.Body)
			if err != nil {
				return nil, err
			}
			doc.Metadata = m
		}
	}

	return doc, nil
}

func (d *nativeDecoder) resolveData(el *xmlnode.Element) (logicalKey, bool) {
	id, ok := el.Attr("key")
	if !ok {
		return "", false
	}
	return d.keys.resolve(id)
}

func findMetaComment(root *model.Node) *model.Node {
	for _, c := range treeutil.FindByType(root, model.FormalComment) {
		if c.Title == metaCommentTitle {
			return c
		}
	}
	return nil
}

func (d *nativeDecoder) decodeStateMachine(g *xmlnode.Element) (*model.StateMachine, error) {
	sm := &model.StateMachine{Root: &model.Node{Kind: model.StateMachineRoot}}
	d.stack.Push("graph")
	d.stack.SetTopNode(sm.Root)
	defer d.stack.Pop()

	for _, data := range g.ChildrenNamed("data") {
		key, ok := d.resolveData(data)
		if !ok {
			continue
		}
		switch key {
		case keyName:
			sm.Name = data.CharData
		case keyGeometry:
			_, r := parseGeometryChild(data)
			sm.Geometry = r
		}
	}

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

	return sm, nil
}

func (d *nativeDecoder) decodeNode(n *xmlnode.Element) (*model.Node, error) {
	id, _ := n.Attr("id")
	node := &model.Node{ID: model.NodeID(id), Kind: model.SimpleState}

	d.stack.Push("node")
	d.stack.SetTopNode(node)
	defer d.stack.Pop()

	note := ""
	var actionText string
	hasActionText := false

	for _, data := range n.ChildrenNamed("data") {
		key, ok := d.resolveData(data)
		if !ok {
			continue
		}
		switch key {
		case keyVertex:
			node.Kind = vertexKind(data.CharData)
		case keyName:
			node.Title = data.CharData
		case keyNote:
			note = data.CharData
		case keyData:
			actionText = data.CharData
			hasActionText = true
		case keyGeometry:
			p, r := parseGeometryChild(data)
			node.GeometryPoint, node.GeometryRect = p, r
		case keyColor:
			node.Color = data.CharData
		case keyMarkup:
			if node.Comment == nil {
				node.Comment = &model.CommentData{}
			}
			node.Comment.Markup = data.CharData
		case keySubmachineState:
			node.Link = &model.Link{Ref: data.CharData}
		}
	}

	if note != "" {
		if note == "formal" {
			node.Kind = model.FormalComment
		} else {
			node.Kind = model.Comment
		}
	}

	if node.Kind.Is(model.CommentMask) {
		if node.Comment == nil {
			node.Comment = &model.CommentData{}
		}
		if hasActionText {
			node.Comment.Body = actionText
		}
	} else if hasActionText {
		actions, err := actiontext.DecodeNodeActions(actionText)
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

func (d *nativeDecoder) decodeEdge(e *xmlnode.Element) (*model.Edge, error) {
	id, _ := e.Attr("id")
	source, _ := e.Attr("source")
	target, _ := e.Attr("target")

	edge := &model.Edge{
		ID:       model.EdgeID(id),
		Kind:     model.LocalTransition,
		SourceID: model.NodeID(source),
		TargetID: model.NodeID(target),
	}

	for _, data := range e.ChildrenNamed("data") {
		key, ok := d.resolveData(data)
		if !ok {
			continue
		}
		switch key {
		case keyData:
			action, err := actiontext.DecodeEdgeAction(data.CharData)
			if err != nil {
				return nil, err
			}
			edge.Action = action
		case keyGeometry:
			edge.Polyline = parsePolyline(data)
		case keySourcePoint:
			if p := data.FirstChildNamed("point"); p != nil {
				edge.SourcePoint = parsePoint(p)
			}
		case keyTargetPoint:
			if p := data.FirstChildNamed("point"); p != nil {
				edge.TargetPoint = parsePoint(p)
			}
		case keyLabelGeometry:
			p, r := parseGeometryChild(data)
			if p != nil && r != nil {
				return nil, cyberr.Format("edge %q label carries both point and rect geometry", id)
			}
			edge.LabelPoint, edge.LabelRect = p, r
		case keyColor:
			edge.Color = data.CharData
		case keyPivot:
			if edge.CommentSubject != nil {
				return nil, cyberr.Format("edge %q comment subject set twice", id)
			}
			edge.Kind = model.CommentEdge
			subjectKind, err := pivotSubjectKind(d.keys, data.CharData)
			if err != nil {
				return nil, err
			}
			edge.CommentSubject = &model.CommentSubject{Kind: subjectKind}
		case keyChunk:
			if edge.CommentSubject == nil {
				return nil, cyberr.Format("edge %q comment subject is empty", id)
			}
			if edge.CommentSubject.Kind == model.SubjectNameFragment || edge.CommentSubject.Kind == model.SubjectDataFragment {
				edge.CommentSubject.Fragment = data.CharData
			}
		}
	}

	return edge, nil
}

// pivotSubjectKind interprets a <data key=pivot> body, which (per
// cyberiadaml.c) is empty for a whole-node subject or otherwise itself a
// <key> id resolving to "name" or "data" for a name/data fragment subject.
func pivotSubjectKind(keys *keyTable, value string) (model.CommentSubjectKind, error) {
	if value == "" {
		return model.SubjectNode, nil
	}
	key, ok := keys.resolve(value)
	if !ok {
		return 0, cyberr.Format("cannot find pivot key with id %q", value)
	}
	switch key {
	case keyName:
		return model.SubjectNameFragment, nil
	case keyData:
		return model.SubjectDataFragment, nil
	default:
		return 0, cyberr.Format("unsupported edge comment subject type %q", key)
	}
}

// vertexKind maps a native <data key=vertex> value to its NodeKind.
func vertexKind(v string) model.NodeKind {
	switch v {
	case "initial":
		return model.Initial
	case "final":
		return model.Final
	case "choice":
		return model.Choice
	case "terminate":
		return model.Terminate
	case "shallowHistory":
		return model.ShallowHistory
	case "deepHistory":
		return model.DeepHistory
	case "entryPoint":
		return model.EntryPoint
	case "exitPoint":
		return model.ExitPoint
	case "fork":
		return model.Fork
	case "join":
		return model.Join
	default:
		return model.SimpleState
	}
}
