// Package encode implements the GraphML encoder (C8): deep-copy,
// geometry-policy conversion, metadata resynchronization, and dialect-
// specific XML tree assembly.
package encode

import (
	"github.com/go-cyberiada/cyberiadaml/internal/cyberr"
	"github.com/go-cyberiada/cyberiadaml/internal/geometry"
)

// Dialect mirrors decode.Dialect but excludes Auto: an encode call
// always names the target dialect explicitly.
type Dialect int

const (
	DialectNative Dialect = iota
	DialectLegacy
)

// Flags is the closed set of encode-time options from spec.md §6.
type Flags struct {
	SkipGeometry  bool
	RoundGeometry bool
}

func (f Flags) Validate() error {
	return nil
}

func policyFor(dialect Dialect) geometry.Policy {
	if dialect == DialectLegacy {
		return geometry.LegacyPolicy
	}
	return geometry.NativePolicy
}

var errMultiSMLegacy = cyberr.BadParameterf("legacy dialect documents must contain exactly one state machine")
