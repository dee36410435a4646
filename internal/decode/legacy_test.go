package decode

import (
	"strings"
	"testing"

	"github.com/go-cyberiada/cyberiadaml/internal/model"
	"github.com/go-cyberiada/cyberiadaml/internal/xmlnode"
)

// yEd always nests a node/edge's vendor shape inside a <data key="d_node"
// or "d_edge"> wrapper rather than as a direct child of <node>/<edge>;
// this is also what this library's own legacy encoder produces, so
// decodeLegacy has to look one level deeper (legacyPayload) or a
// document this library wrote itself wouldn't decode back.
const legacyDoc = `<?xml version="1.0" encoding="UTF-8"?>
<graphml xmlns:y="http://www.yworks.com/xml/graphml">
  <graph>
    <node id="n1">
      <data key="d_node">
        <y:GenericNode>
          <y:Geometry x="0" y="0" width="10" height="10"/>
          <y:NodeLabel>State1</y:NodeLabel>
        </y:GenericNode>
      </data>
    </node>
    <node id="n2">
      <data key="d_node">
        <y:GenericNode>
          <y:NodeLabel>State2</y:NodeLabel>
        </y:GenericNode>
      </data>
    </node>
    <edge id="e1" source="n1" target="n2">
      <data key="d_edge">
        <y:PolyLineEdge>
          <y:EdgeLabel>click[ready]/go()</y:EdgeLabel>
          <y:Path>
            <y:Point x="1" y="1"/>
          </y:Path>
        </y:PolyLineEdge>
      </data>
    </edge>
  </graph>
</graphml>`

func TestDecodeLegacyFindsShapeInsideDataWrapper(t *testing.T) {
	root, err := xmlnode.Parse(strings.NewReader(legacyDoc))
	if err != nil {
		t.Fatalf("xmlnode.Parse: %v", err)
	}

	doc, err := decodeLegacy(root, false)
	if err != nil {
		t.Fatalf("decodeLegacy: %v", err)
	}

	sm := doc.StateMachines[0]
	top := sm.TopLevelNodes()
	if len(top) != 2 {
		t.Fatalf("len(TopLevelNodes) = %d, want 2", len(top))
	}

	var n1, n2 *model.Node
	for _, n := range top {
		switch n.ID {
		case "n1":
			n1 = n
		case "n2":
			n2 = n
		}
	}
	if n1 == nil || n1.Title != "State1" {
		t.Errorf("n1 = %+v, want title State1 (the wrapped y:NodeLabel should have been found)", n1)
	}
	if n1 == nil || n1.GeometryRect == nil {
		t.Error("n1 should have picked up its wrapped y:Geometry")
	}
	if n2 == nil || n2.Title != "State2" {
		t.Errorf("n2 = %+v, want title State2", n2)
	}

	if len(sm.Edges) != 1 {
		t.Fatalf("len(Edges) = %d, want 1", len(sm.Edges))
	}
	e := sm.Edges[0]
	if e.Action == nil {
		t.Error("edge action should have been decoded from inside the wrapped y:PolyLineEdge")
	}
	if len(e.Polyline) != 1 || e.Polyline[0].X != 1 {
		t.Errorf("Polyline = %v, want one point at x=1", e.Polyline)
	}
}

func TestLegacyPayloadFallsBackToElementItself(t *testing.T) {
	// A node whose shape sits directly under <node>, with no <data>
	// wrapper at all, must still resolve (defensive fallback).
	n := &xmlnode.Element{Name: "node"}
	n.AddChild(&xmlnode.Element{Name: "y:GenericNode"})
	if got := legacyPayload(n); got != n {
		t.Errorf("legacyPayload fell back incorrectly: got %v, want the element itself", got)
	}
}

func TestLegacyPayloadPrefersNonEmptyDataChild(t *testing.T) {
	n := &xmlnode.Element{Name: "node"}
	empty := &xmlnode.Element{Name: "data"}
	wrapped := &xmlnode.Element{Name: "data"}
	wrapped.AddChild(&xmlnode.Element{Name: "y:GenericNode"})
	n.Children = []*xmlnode.Element{empty, wrapped}

	got := legacyPayload(n)
	if got != wrapped {
		t.Error("legacyPayload should pick the data child that actually has content")
	}
}
