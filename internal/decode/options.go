package decode

import (
	"github.com/go-cyberiada/cyberiadaml/internal/cyberr"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
	"github.com/go-cyberiada/cyberiadaml/internal/reconstruct"
)

// Dialect selects which GraphML vocabulary a document is decoded
// against.
type Dialect int

const (
	// DialectAuto inspects the root element's namespace declarations and
	// picks Native or Legacy accordingly.
	DialectAuto Dialect = iota
	DialectNative
	DialectLegacy
)

// Flags is the closed set of decode-time options from spec.md §6.
type Flags struct {
	NodeCoordFormat    model.CoordFormat
	EdgeCoordFormat    model.CoordFormat
	EdgePolylineFormat model.CoordFormat
	EndpointPlacement  model.EndpointPlacement

	ReconstructGeometry   bool
	ReconstructSMGeometry bool
	SkipGeometry          bool
	RoundGeometry         bool

	// Flattened hints that the legacy dialect's action text was exported
	// without embedded newlines (auto-detected by the caller scanning
	// the raw bytes for adjacent whitespace; see DetectFlattened).
	Flattened bool

	RequireInitial bool

	DuplicateAction reconstruct.DuplicateActionPolicy
}

// Validate rejects flag combinations spec.md §6 calls out as illegal.
func (f Flags) Validate() error {
	if f.SkipGeometry && (f.NodeCoordFormat != 0 || f.EdgeCoordFormat != 0 || f.EdgePolylineFormat != 0) {
		return cyberr.BadParameterf("skip-geometry cannot be combined with a geometry-coordinate format flag")
	}
	if f.RoundGeometry {
		return cyberr.BadParameterf("round-geometry is an export-only flag; it cannot be requested on decode")
	}
	if f.ReconstructGeometry || f.ReconstructSMGeometry {
		return cyberr.BadParameterf("reconstruct-geometry is an export-only flag; it cannot be requested on decode")
	}
	return nil
}
