package reconstruct

// DuplicateActionPolicy selects Pass D's behavior when a node carries
// more than one Entry or Exit action. The original importer always
// rejects; its own CLI front end exposes a "join doubles" mode for
// callers that would rather merge than fail (see DESIGN.md). This
// library exposes both and defaults to merging.
type DuplicateActionPolicy int

const (
	// MergeDoubles concatenates duplicate Entry/Exit behaviors with a
	// newline separator, keeping the first action and discarding the
	// rest.
	MergeDoubles DuplicateActionPolicy = iota
	// RejectDoubles fails Pass D with a format error on the first
	// duplicate Entry or Exit action found.
	RejectDoubles
)

// Options controls which of the four reconstruction passes run and how
// they resolve ambiguity.
type Options struct {
	// RequireInitial enforces, in Pass C, that every region (the
	// top-level region of each SM) contains exactly one Initial
	// pseudostate.
	RequireInitial bool

	// SkipGeometry disables Pass C's geometry discipline checks
	// entirely — used when the caller requested geometry stripped on
	// decode.
	SkipGeometry bool

	// DuplicateAction selects Pass D's duplicate Entry/Exit handling.
	DuplicateAction DuplicateActionPolicy
}
