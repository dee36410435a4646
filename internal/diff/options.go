// Package diff implements the isomorphism / structural comparison
// algorithm (C9): a degree- and kind-compatibility matrix, a greedy
// maximum matching, and a verdict derived from the per-pair and
// per-edge differences the matching exposes. Grounded in
// original_source/isomorph.c.
package diff

// Options is the closed set of comparison-time flags.
type Options struct {
	IgnoreComments bool
	RequireInitial bool
}

// Verdict classifies how closely two state machines match.
type Verdict int

const (
	Identical Verdict = iota
	Equal
	Isomorphic
	NonIsomorphic
)

func (v Verdict) String() string {
	switch v {
	case Identical:
		return "identical"
	case Equal:
		return "equal"
	case Isomorphic:
		return "isomorphic"
	case NonIsomorphic:
		return "non-isomorphic"
	default:
		return "unknown"
	}
}

// Flag is one bit of the closed per-pair/per-result difference
// taxonomy from spec.md §4.9 step 4/6.
type Flag uint32

const (
	FlagIDDiffers Flag = 1 << iota
	FlagKindDiffers
	FlagTitleDiffers
	FlagActionsDiffer
	FlagSMLinkDiffers
	FlagChildCountDiffers
	FlagEdgeCountDiffers

	FlagDiffStates
	FlagDiffInitial
	FlagDiffEdges
)

func (f Flag) Has(bit Flag) bool { return f&bit != 0 }
