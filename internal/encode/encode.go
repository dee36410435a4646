package encode

import (
	"io"

	"github.com/go-cyberiada/cyberiadaml/internal/geometry"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
	"github.com/go-cyberiada/cyberiadaml/internal/xmlnode"
)

// Encode writes doc to w as a GraphML document in the requested dialect.
// The source document is never mutated: Encode works against a deep
// copy so a caller can keep decoding/diffing/re-encoding the same
// in-memory Document.
func Encode(doc *model.Document, dialect Dialect, flags Flags, w io.Writer) error {
	if err := flags.Validate(); err != nil {
		return err
	}
	if dialect == DialectLegacy && len(doc.StateMachines) != 1 {
		return errMultiSMLegacy
	}

	cp := doc.Clone()

	if flags.SkipGeometry {
		stripGeometry(cp)
	} else if err := (geometry.Identity{}).Convert(cp, policyFor(dialect)); err != nil {
		return err
	}

	var root *xmlnode.Element
	if dialect == DialectLegacy {
		root = encodeLegacy(cp, flags)
	} else {
		root = encodeNative(cp, flags)
	}

	return xmlnode.Write(w, root)
}

func stripGeometry(doc *model.Document) {
	for _, sm := range doc.StateMachines {
		sm.Geometry = nil
		stripNodeGeometry(sm.Root)
		for _, e := range sm.Edges {
			e.Polyline = nil
			e.SourcePoint = nil
			e.TargetPoint = nil
			e.LabelPoint = nil
			e.LabelRect = nil
		}
	}
}

func stripNodeGeometry(n *model.Node) {
	n.GeometryPoint = nil
	n.GeometryRect = nil
	for _, c := range n.Children {
		stripNodeGeometry(c)
	}
}
