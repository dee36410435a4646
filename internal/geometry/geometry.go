// Package geometry owns the call boundary to the coordinate-conversion
// engine: converting node/edge geometry between absolute, left-top-local,
// and center-local coordinate spaces. The conversion math itself (walking
// a node's ancestor chain, accumulating offsets) is a separate concern
// this library treats as an external collaborator; Identity is the only
// implementation shipped here, enough to round-trip documents whose
// declared coordinate format never changes across decode/encode.
package geometry

import (
	"github.com/go-cyberiada/cyberiadaml/internal/cyberr"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
)

// Policy describes the coordinate formats an encode pass must produce,
// per dialect (the table in spec.md §4.8 step 2).
type Policy struct {
	NodeFormat         model.CoordFormat
	EdgeCoordFormat    model.CoordFormat
	EdgePolylineFormat model.CoordFormat
	EndpointPlacement  model.EndpointPlacement
}

// NativePolicy is the coordinate policy the native dialect always
// exports with: every tier left-top-local, border endpoint placement.
var NativePolicy = Policy{
	NodeFormat:         model.CoordLeftTopLocal,
	EdgeCoordFormat:    model.CoordLeftTopLocal,
	EdgePolylineFormat: model.CoordLeftTopLocal,
	EndpointPlacement:  model.EndpointBorder,
}

// LegacyPolicy is the coordinate policy the yEd dialect exports with:
// absolute node geometry, center-local edge endpoints, absolute
// polylines, center endpoint placement.
var LegacyPolicy = Policy{
	NodeFormat:         model.CoordAbsolute,
	EdgeCoordFormat:    model.CoordCenterLocal,
	EdgePolylineFormat: model.CoordAbsolute,
	EndpointPlacement:  model.EndpointCenter,
}

// Converter transforms every geometry value in doc in place so it
// satisfies policy, given the format doc currently declares for each
// tier. A document whose current format already matches policy is left
// untouched.
type Converter interface {
	Convert(doc *model.Document, policy Policy) error
}

// Identity is the zero-cost Converter: it requires the document's
// current geometry formats already match policy and returns an error
// otherwise, rather than silently emitting geometry under the wrong
// coordinate-format label.
type Identity struct{}

func (Identity) Convert(doc *model.Document, policy Policy) error {
	if doc.NodeCoordFormat != policy.NodeFormat ||
		doc.EdgeCoordFormat != policy.EdgeCoordFormat ||
		doc.EdgePolylineFormat != policy.EdgePolylineFormat ||
		doc.EdgeEndpointPlace != policy.EndpointPlacement {
		return cyberr.NotImplementedf("document coordinate format does not match the requested policy; a real coordinate converter is required for this conversion")
	}
	doc.NodeCoordFormat = policy.NodeFormat
	doc.EdgeCoordFormat = policy.EdgeCoordFormat
	doc.EdgePolylineFormat = policy.EdgePolylineFormat
	doc.EdgeEndpointPlace = policy.EndpointPlacement
	return nil
}
