package diff

import "github.com/go-cyberiada/cyberiadaml/internal/model"

// NodePair is a matched (or partially matched) pair of nodes plus the
// flags distinguishing them.
type NodePair struct {
	A, B  *model.Node
	Flags Flag
}

// EdgePair is a matched pair of edges plus the flags distinguishing
// them.
type EdgePair struct {
	A, B  *model.Edge
	Flags Flag
}

// Result is the structured comparison C9 produces: a verdict, the
// matched pairs that differ, and the nodes/edges present on only one
// side.
type Result struct {
	Verdict Verdict
	Flags   Flag

	DifferingNodes []NodePair
	NewNodes       []*model.Node // present in B, not in A
	MissingNodes   []*model.Node // present in A, not in B

	DifferingEdges []EdgePair
	NewEdges       []*model.Edge // present in B, not in A
	MissingEdges   []*model.Edge // present in A, not in B

	// NewInitialTarget is set when RequireInitial is set and the two
	// SMs' top-level initial pseudostates transition to different
	// targets under the node matching (spec.md §4.9 step 7).
	NewInitialTarget *model.Node
}
