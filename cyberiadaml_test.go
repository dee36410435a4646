package cyberiadaml

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-cyberiada/cyberiadaml/internal/diag"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
)

const minimalNativeDoc = `<?xml version="1.0" encoding="UTF-8"?>
<graphml>
  <graph>
    <node id="nMeta">
      <data key="d_note">formal</data>
      <data key="d_name">CGML_META</data>
      <data key="d_data">standardVersion/ 1.0</data>
    </node>
    <node id="nInit">
      <data key="d_vertex">initial</data>
    </node>
    <node id="nOn">
      <data key="d_name">on</data>
    </node>
    <edge id="e1" source="nInit" target="nOn"/>
  </graph>
</graphml>`

const legacyDoc = `<?xml version="1.0" encoding="UTF-8"?>
<graphml xmlns:y="http://www.yworks.com/xml/graphml">
  <graph>
    <node id="n1">
      <data key="d_node">
        <y:GenericNode>
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
        </y:PolyLineEdge>
      </data>
    </edge>
  </graph>
</graphml>`

func TestDecodeNilSinkDefaultsToNop(t *testing.T) {
	doc, err := Decode(strings.NewReader(minimalNativeDoc), DialectAuto, Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(doc.StateMachines) != 1 {
		t.Fatalf("len(StateMachines) = %d, want 1", len(doc.StateMachines))
	}
}

func TestDecodeWithExplicitSink(t *testing.T) {
	sink := diag.NewSink(nil)
	doc, err := Decode(strings.NewReader(minimalNativeDoc), DialectNative, Options{Sink: sink})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if len(doc.StateMachines) != 1 {
		t.Fatalf("len(StateMachines) = %d, want 1", len(doc.StateMachines))
	}
}

func TestDecodeBytesMatchesDecode(t *testing.T) {
	doc, err := DecodeBytes([]byte(minimalNativeDoc), DialectAuto, Options{})
	if err != nil {
		t.Fatalf("DecodeBytes: %v", err)
	}
	if len(doc.StateMachines) != 1 {
		t.Fatalf("len(StateMachines) = %d, want 1", len(doc.StateMachines))
	}
}

func TestDecodeLegacyDialectHint(t *testing.T) {
	doc, err := Decode(strings.NewReader(legacyDoc), DialectLegacy, Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	sm := doc.StateMachines[0]
	top := sm.TopLevelNodes()
	if len(top) != 2 {
		t.Fatalf("len(TopLevelNodes) = %d, want 2", len(top))
	}
	var n1 *model.Node
	for _, n := range top {
		if n.ID == "n1" {
			n1 = n
		}
	}
	if n1 == nil || n1.Title != "State1" {
		t.Errorf("n1 = %+v, want title State1", n1)
	}
}

func TestEncodeRoundTripsNativeDocument(t *testing.T) {
	doc, err := Decode(strings.NewReader(minimalNativeDoc), DialectNative, Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(doc, DialectNative, EncodeFlags{SkipGeometry: true}, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	back, err := Decode(&buf, DialectAuto, Options{Flags: DecodeFlags{SkipGeometry: true}})
	if err != nil {
		t.Fatalf("re-Decode of encoded output: %v", err)
	}
	if len(back.StateMachines) != 1 {
		t.Fatalf("len(StateMachines) = %d, want 1", len(back.StateMachines))
	}
	top := back.StateMachines[0].TopLevelNodes()
	if len(top) != 3 {
		t.Fatalf("len(TopLevelNodes) = %d, want 3 (meta, initial, on)", len(top))
	}
}

func TestEncodeRoundTripsLegacyDocument(t *testing.T) {
	doc, err := Decode(strings.NewReader(legacyDoc), DialectLegacy, Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	var buf bytes.Buffer
	if err := Encode(doc, DialectLegacy, EncodeFlags{SkipGeometry: true}, &buf); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	back, err := Decode(&buf, DialectLegacy, Options{Flags: DecodeFlags{SkipGeometry: true}})
	if err != nil {
		t.Fatalf("re-Decode of encoded output: %v", err)
	}
	top := back.StateMachines[0].TopLevelNodes()
	if len(top) != 2 {
		t.Fatalf("len(TopLevelNodes) = %d, want 2", len(top))
	}
}

func TestLoadAndSaveRoundTripThroughFilesystem(t *testing.T) {
	doc, err := Decode(strings.NewReader(minimalNativeDoc), DialectNative, Options{})
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	path := filepath.Join(t.TempDir(), "doc.graphml")
	if err := Save(doc, DialectNative, EncodeFlags{SkipGeometry: true}, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	back, err := Load(path, DialectAuto, Options{Flags: DecodeFlags{SkipGeometry: true}})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(back.StateMachines) != 1 {
		t.Fatalf("len(StateMachines) = %d, want 1", len(back.StateMachines))
	}
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "does-not-exist.graphml"), DialectAuto, Options{})
	if err == nil {
		t.Error("expected an error loading a nonexistent file")
	}
	if !os.IsNotExist(err) {
		t.Errorf("expected an os.IsNotExist error, got %v", err)
	}
}

func TestDiffDelegatesToInternalDiff(t *testing.T) {
	root1 := &model.Node{ID: "root", Kind: model.StateMachineRoot}
	s1a := &model.Node{ID: "s1", Kind: model.SimpleState, Title: "S1"}
	root1.AddChild(s1a)
	a := &StateMachine{Root: root1}

	root2 := &model.Node{ID: "root", Kind: model.StateMachineRoot}
	s1b := &model.Node{ID: "s1", Kind: model.SimpleState, Title: "S1"}
	root2.AddChild(s1b)
	b := &StateMachine{Root: root2}

	res, err := Diff(a, b, DiffOptions{})
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if res.Verdict != DiffIdentical {
		t.Errorf("Verdict = %v, want DiffIdentical", res.Verdict)
	}
}

func TestDiffNonIsomorphicThroughFacade(t *testing.T) {
	root1 := &model.Node{ID: "root", Kind: model.StateMachineRoot}
	s1a := &model.Node{ID: "s1", Kind: model.SimpleState, Title: "S1"}
	root1.AddChild(s1a)
	a := &StateMachine{Root: root1}

	root2 := &model.Node{ID: "root", Kind: model.StateMachineRoot}
	s1b := &model.Node{ID: "s1", Kind: model.SimpleState, Title: "S1"}
	s2b := &model.Node{ID: "s2", Kind: model.SimpleState, Title: "S2"}
	root2.AddChild(s1b)
	root2.AddChild(s2b)
	b := &StateMachine{Root: root2}

	res, err := Diff(a, b, DiffOptions{})
	if err != nil {
		t.Fatalf("Diff: %v", err)
	}
	if res.Verdict != DiffNonIsomorphic {
		t.Errorf("Verdict = %v, want DiffNonIsomorphic", res.Verdict)
	}
}
