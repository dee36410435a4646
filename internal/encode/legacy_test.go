package encode

import (
	"strings"
	"testing"

	"github.com/go-cyberiada/cyberiadaml/internal/model"
)

func TestEncodeLegacyNodeCommentProducesUMLNoteNode(t *testing.T) {
	n := &model.Node{ID: "c1", Kind: model.Comment, Title: "note", Comment: &model.CommentData{Body: "hi"}}
	el := encodeLegacyNode(n, Flags{})

	wrapper := el.FirstChildNamed("data")
	if wrapper == nil {
		t.Fatal("expected a wrapping <data key=\"d_node\"> element")
	}
	if key, _ := wrapper.Attr("key"); key != "d_node" {
		t.Errorf("wrapper key = %q, want d_node", key)
	}
	note := wrapper.FirstChildNamed("y:UMLNoteNode")
	if note == nil {
		t.Fatal("expected a y:UMLNoteNode shape inside the wrapper")
	}
	label := note.FirstChildNamed("y:NodeLabel")
	if label == nil || !strings.Contains(label.CharData, "note") || !strings.Contains(label.CharData, "hi") {
		t.Errorf("y:NodeLabel = %+v, want title and comment body", label)
	}
}

func TestEncodeLegacyNodeGroupForCompositeState(t *testing.T) {
	parent := &model.Node{ID: "p", Kind: model.SimpleState, Title: "P"}
	child := &model.Node{ID: "c", Kind: model.SimpleState, Title: "C"}
	parent.AddChild(child)

	el := encodeLegacyNode(parent, Flags{})
	wrapper := el.FirstChildNamed("data")
	if wrapper == nil || wrapper.FirstChildNamed("y:GroupNode") == nil {
		t.Fatal("composite state should wrap a y:GroupNode")
	}
	sub := el.FirstChildNamed("graph")
	if sub == nil || len(sub.ChildrenNamed("node")) != 1 {
		t.Error("composite state should still emit its own nested <graph> with its children, alongside the group wrapper")
	}
}

func TestEncodeLegacyNodeGenericForSimpleState(t *testing.T) {
	n := &model.Node{ID: "s1", Kind: model.SimpleState, Title: "S1"}
	el := encodeLegacyNode(n, Flags{})
	wrapper := el.FirstChildNamed("data")
	if wrapper == nil || wrapper.FirstChildNamed("y:GenericNode") == nil {
		t.Fatal("a plain state should wrap a y:GenericNode")
	}
}

func TestEncodeLegacyNodeInitialEmitsEventCharacteristicStart(t *testing.T) {
	n := &model.Node{ID: "i1", Kind: model.Initial, GeometryPoint: &model.Point{X: 1, Y: 1}}
	el := encodeLegacyNode(n, Flags{})
	generic := el.FirstChildNamed("data").FirstChildNamed("y:GenericNode")
	if generic == nil {
		t.Fatal("expected a y:GenericNode for the initial pseudostate")
	}
	prop := generic.FirstChildNamed("y:Property")
	if prop == nil {
		t.Fatal("expected a y:Property marking the initial pseudostate")
	}
	name, _ := prop.Attr("name")
	value, _ := prop.Attr("value")
	if name != eventCharacteristicStart || value != eventCharacteristicStart {
		t.Errorf("property = {%s: %s}, want {%s: %s}", name, value, eventCharacteristicStart, eventCharacteristicStart)
	}
}

func TestEncodeLegacyNodeNonInitialOmitsEventCharacteristicStart(t *testing.T) {
	n := &model.Node{ID: "s1", Kind: model.SimpleState, Title: "S1"}
	el := encodeLegacyNode(n, Flags{})
	generic := el.FirstChildNamed("data").FirstChildNamed("y:GenericNode")
	if generic.FirstChildNamed("y:Property") != nil {
		t.Error("only an Initial node should carry the EVENT_CHARACTERISTIC_START property")
	}
}

func TestEncodeLegacyNodeCollapsesPointToRectForGeometry(t *testing.T) {
	n := &model.Node{ID: "i1", Kind: model.Initial, GeometryPoint: &model.Point{X: 5, Y: 6}}
	el := encodeLegacyNode(n, Flags{})
	generic := el.FirstChildNamed("data").FirstChildNamed("y:GenericNode")
	geom := generic.FirstChildNamed("y:Geometry")
	if geom == nil {
		t.Fatal("expected y:Geometry built from the point")
	}
	if x, _ := geom.Attr("x"); x != "5" {
		t.Errorf("x = %q, want 5", x)
	}
	if y, _ := geom.Attr("y"); y != "6" {
		t.Errorf("y = %q, want 6", y)
	}
}

func TestEncodeLegacyNodeSkipGeometryOmitsShapeGeometry(t *testing.T) {
	n := &model.Node{ID: "s1", Kind: model.SimpleState, GeometryRect: &model.Rect{X: 1, Y: 1, W: 1, H: 1}}
	el := encodeLegacyNode(n, Flags{SkipGeometry: true})
	generic := el.FirstChildNamed("data").FirstChildNamed("y:GenericNode")
	if generic.FirstChildNamed("y:Geometry") != nil {
		t.Error("SkipGeometry should omit the y:Geometry child")
	}
}

func TestLegacyLabelOmitsNewlineWithoutActions(t *testing.T) {
	el := legacyLabel("Title", "")
	if el.CharData != "Title" {
		t.Errorf("legacyLabel with no actions = %q, want just the title", el.CharData)
	}
}

func TestLegacyLabelJoinsTitleAndActionsWithNewline(t *testing.T) {
	el := legacyLabel("Title", "entry/ foo()")
	if el.CharData != "Title\nentry/ foo()" {
		t.Errorf("legacyLabel = %q, want title and actions separated by a newline", el.CharData)
	}
}

func TestEncodeLegacyEdgeWrapsPolyLineEdge(t *testing.T) {
	e := &model.Edge{
		ID: "e1", SourceID: "a", TargetID: "b",
		Action:   &model.Action{Trigger: "go"},
		Polyline: model.Polyline{{X: 1, Y: 2}, {X: 3, Y: 4}},
	}
	el := encodeLegacyEdge(e)

	if src, _ := el.Attr("source"); src != "a" {
		t.Errorf("source = %q, want a", src)
	}
	data := el.FirstChildNamed("data")
	if data == nil {
		t.Fatal("expected a wrapping <data key=\"d_edge\"> element")
	}
	if key, _ := data.Attr("key"); key != "d_edge" {
		t.Errorf("wrapper key = %q, want d_edge", key)
	}
	pl := data.FirstChildNamed("y:PolyLineEdge")
	if pl == nil {
		t.Fatal("expected a y:PolyLineEdge shape")
	}
	path := pl.FirstChildNamed("y:Path")
	if path == nil || len(path.ChildrenNamed("y:Point")) != 2 {
		t.Error("expected two y:Point children under y:Path")
	}
	label := pl.FirstChildNamed("y:EdgeLabel")
	if label == nil || label.CharData != "go" {
		t.Errorf("y:EdgeLabel = %+v, want CharData \"go\"", label)
	}
}

func TestEncodeLegacyEdgeOmitsPathWithoutPolyline(t *testing.T) {
	e := &model.Edge{ID: "e1", SourceID: "a", TargetID: "b"}
	el := encodeLegacyEdge(e)
	pl := el.FirstChildNamed("data").FirstChildNamed("y:PolyLineEdge")
	if pl.FirstChildNamed("y:Path") != nil {
		t.Error("an edge with no polyline should not emit a y:Path")
	}
	if pl.FirstChildNamed("y:EdgeLabel") != nil {
		t.Error("an edge with no action should not emit a y:EdgeLabel")
	}
}

func TestEncodeLegacyBuildsSingleGraphForLoneStateMachine(t *testing.T) {
	doc := legacyReadyDoc()
	root := encodeLegacy(doc, Flags{})
	if ns, _ := root.Attr("xmlns:y"); ns == "" {
		t.Error("legacy root should declare the yFiles xmlns:y namespace")
	}
	graphs := root.ChildrenNamed("graph")
	if len(graphs) != 1 {
		t.Fatalf("got %d <graph> children, want 1", len(graphs))
	}
	if len(graphs[0].ChildrenNamed("node")) != 1 {
		t.Error("expected the one top-level state encoded as a <node>")
	}
}
