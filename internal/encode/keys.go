package encode

// The logical key names below mirror internal/decode's keyTable exactly
// (same strings, same default "d_..." ids) so a round-tripped document
// declares the identical <key> table it was decoded from.
const (
	keyDataName            = "data"
	keyVertexName          = "vertex"
	keyNameName             = "name"
	keyNoteName             = "note"
	keyGeometryName         = "geometry"
	keySourcePointName      = "sourcePoint"
	keyTargetPointName      = "targetPoint"
	keyLabelGeometryName    = "labelGeometry"
	keyColorName            = "color"
	keyMarkupName           = "markup"
	keySubmachineStateName  = "submachineState"
	keyPivotName            = "pivot"
	keyChunkName            = "chunk"
	keyFormatName           = "format"
	keyStateMachineName     = "stateMachine"
)

// nativeKeyOrder is the fixed declaration order for the <key> table in an
// encoded native-dialect document.
var nativeKeyOrder = []string{
	keyDataName,
	keyVertexName,
	keyNameName,
	keyNoteName,
	keyGeometryName,
	keySourcePointName,
	keyTargetPointName,
	keyLabelGeometryName,
	keyColorName,
	keyMarkupName,
	keySubmachineStateName,
	keyPivotName,
	keyChunkName,
	keyFormatName,
	keyStateMachineName,
}

var keyDefaultIDs = map[string]string{
	keyDataName:           "d_data",
	keyVertexName:         "d_vertex",
	keyNameName:           "d_name",
	keyNoteName:           "d_note",
	keyGeometryName:       "d_geometry",
	keySourcePointName:    "d_sourcePoint",
	keyTargetPointName:    "d_targetPoint",
	keyLabelGeometryName:  "d_labelGeometry",
	keyColorName:          "d_color",
	keyMarkupName:         "d_markup",
	keySubmachineStateName: "d_submachineState",
	keyPivotName:          "d_pivot",
	keyChunkName:          "d_chunk",
	keyFormatName:         "d_format",
	keyStateMachineName:   "d_stateMachine",
}

// defaultKeyIDFor returns the library's own default id for a logical key
// name, used when encoding since an encoded document always uses the
// library's own ids.
func defaultKeyIDFor(name string) string {
	return keyDefaultIDs[name]
}
