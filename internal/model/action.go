package model

// ActionKind distinguishes a node's entry/exit/do behavior from an
// (internal-transition or edge) transition action.
type ActionKind int

const (
	Transition ActionKind = iota
	Entry
	Exit
	Do
)

func (k ActionKind) String() string {
	switch k {
	case Transition:
		return "Transition"
	case Entry:
		return "Entry"
	case Exit:
		return "Exit"
	case Do:
		return "Do"
	default:
		return "Unknown"
	}
}

// Action is {kind, trigger, guard, behavior}. A node's internal
// transitions are actions of kind Transition attached to that node
// (§3/§4.5); an edge carries at most one action, also of kind Transition.
type Action struct {
	Kind     ActionKind
	Trigger  string
	Guard    string
	Behavior string
}

// Equal reports tuple equality, used by ActionsEqual for the multiset
// comparison required by P8 and the diff engine.
func (a Action) Equal(o Action) bool {
	return a.Kind == o.Kind && a.Trigger == o.Trigger && a.Guard == o.Guard && a.Behavior == o.Behavior
}

// ActionsEqual reports whether two action lists have the same multiset of
// (kind, trigger, guard, behavior) tuples, independent of order (P8).
func ActionsEqual(a, b []Action) bool {
	if len(a) != len(b) {
		return false
	}
	used := make([]bool, len(b))
	for _, av := range a {
		matched := false
		for j, bv := range b {
			if used[j] {
				continue
			}
			if av.Equal(bv) {
				used[j] = true
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}
