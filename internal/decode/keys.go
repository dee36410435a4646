// Package decode implements the GraphML decoder (C6): one decoder per
// dialect (nativeDecoder, legacyDecoder) that walks an xmlnode.Element
// tree recursively and builds a model.Document. Each decoder pushes its
// element/node frames onto a treeutil.Stack; elements are handled by
// plain per-element code, not by a table of state-transition handlers.
package decode

// logicalKey is one of the fixed logical names the native dialect's
// <key> table maps opaque ids onto.
type logicalKey string

const (
	keyData            logicalKey = "data"
	keyVertex          logicalKey = "vertex"
	keyName            logicalKey = "name"
	keyNote            logicalKey = "note"
	keyGeometry        logicalKey = "geometry"
	keySourcePoint     logicalKey = "sourcePoint"
	keyTargetPoint     logicalKey = "targetPoint"
	keyLabelGeometry   logicalKey = "labelGeometry"
	keyColor           logicalKey = "color"
	keyMarkup          logicalKey = "markup"
	keySubmachineState logicalKey = "submachineState"
	keyPivot           logicalKey = "pivot"
	keyChunk           logicalKey = "chunk"
	keyFormat          logicalKey = "format"
	keyStateMachine    logicalKey = "stateMachine"
)

// defaultKeyIDs is the library's own default id for each logical key,
// used whenever a document doesn't declare a <key> element providing its
// own id for that name.
var defaultKeyIDs = map[logicalKey]string{
	keyData:            "d_data",
	keyVertex:          "d_vertex",
	keyName:            "d_name",
	keyNote:            "d_note",
	keyGeometry:        "d_geometry",
	keySourcePoint:     "d_sourcePoint",
	keyTargetPoint:     "d_targetPoint",
	keyLabelGeometry:   "d_labelGeometry",
	keyColor:           "d_color",
	keyMarkup:          "d_markup",
	keySubmachineState: "d_submachineState",
	keyPivot:           "d_pivot",
	keyChunk:           "d_chunk",
	keyFormat:          "d_format",
	keyStateMachine:    "d_stateMachine",
}

// keyTable resolves <data key="..."> ids to logical names for a single
// decode call. It is built fresh per Decode invocation (the decoder
// holds it as a local field, not a package global — see SPEC_FULL.md's C6
// note on the original's module-level override table), starting from
// defaultKeyIDs and overridden by any <key> elements the document itself
// declares.
type keyTable struct {
	idToKey map[string]logicalKey
}

func newKeyTable() *keyTable {
	kt := &keyTable{idToKey: make(map[string]logicalKey, len(defaultKeyIDs))}
	for key, id := range defaultKeyIDs {
		kt.idToKey[id] = key
	}
	return kt
}

// declare overrides the default id for a logical name if attrName names
// one of the recognized logical keys; unrecognized attr.name values (a
// document-specific extension key) are ignored rather than rejected.
func (kt *keyTable) declare(id, attrName string) {
	key := logicalKey(attrName)
	if _, known := defaultKeyIDs[key]; !known {
		return
	}
	// remove the old id->key mapping so only the overriding id resolves
	for existingID, k := range kt.idToKey {
		if k == key {
			delete(kt.idToKey, existingID)
		}
	}
	kt.idToKey[id] = key
}

// resolve returns the logical name for a <data key="id"> id, and
// whether it is recognized at all.
func (kt *keyTable) resolve(id string) (logicalKey, bool) {
	k, ok := kt.idToKey[id]
	return k, ok
}
