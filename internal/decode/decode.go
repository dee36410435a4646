package decode

import (
	"io"

	"go.uber.org/zap"

	"github.com/go-cyberiada/cyberiadaml/internal/diag"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
	"github.com/go-cyberiada/cyberiadaml/internal/reconstruct"
	"github.com/go-cyberiada/cyberiadaml/internal/xmlnode"
)

// Decode reads a GraphML document from r, dispatches to the native or
// legacy dialect decoder, then runs the four reconstruction passes
// before returning the finished Document.
func Decode(r io.Reader, hint Dialect, flags Flags, sink *diag.Sink) (*model.Document, error) {
	if err := flags.Validate(); err != nil {
		return nil, err
	}

	root, err := xmlnode.Parse(r)
	if err != nil {
		return nil, err
	}

	dialect, err := resolveDialect(root, hint)
	if err != nil {
		return nil, err
	}

	var doc *model.Document
	switch dialect {
	case DialectNative:
		doc, err = decodeNative(root)
	case DialectLegacy:
		doc, err = decodeLegacy(root, flags.Flattened)
	}
	if err != nil {
		return nil, err
	}

	doc.NodeCoordFormat = flags.NodeCoordFormat
	doc.EdgeCoordFormat = flags.EdgeCoordFormat
	doc.EdgePolylineFormat = flags.EdgePolylineFormat
	doc.EdgeEndpointPlace = flags.EndpointPlacement

	opts := reconstruct.Options{
		RequireInitial:  flags.RequireInitial,
		SkipGeometry:    flags.SkipGeometry,
		DuplicateAction: flags.DuplicateAction,
	}
	if err := reconstruct.Reconstruct(doc, opts); err != nil {
		sink.Error("reconstruction failed", zap.Error(err))
		return nil, err
	}

	return doc, nil
}
