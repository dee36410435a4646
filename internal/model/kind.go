package model

// NodeKind is a bitmask, not a plain enum: find_node_by_type
// (treeutil.FindByType) and the comment-kind checks (Is(CommentMask))
// test membership via mask intersection against a closed set of kinds,
// matching CyberiadaNodeTypeMask in cyberiadaml.h. The diff
// compatibility check (internal/diff) compares kinds for equality.
type NodeKind uint32

const (
	StateMachineRoot NodeKind = 1 << iota
	SimpleState
	CompositeState
	SubmachineState
	Comment
	FormalComment
	Initial
	Final
	Choice
	Terminate
	EntryPoint
	ExitPoint
	ShallowHistory
	DeepHistory
	Fork
	Join
)

// PseudostateMask covers every vertex that is not a state.
const PseudostateMask = Initial | Final | Choice | Terminate | EntryPoint |
	ExitPoint | ShallowHistory | DeepHistory | Fork | Join

// PointGeometryMask is the set of kinds whose geometry, when present,
// must be a Point rather than a Rect (I4).
const PointGeometryMask = Initial | Final | Terminate

// CommentMask covers both comment kinds, which never carry actions.
const CommentMask = Comment | FormalComment

// Is reports whether k has any bit of mask set.
func (k NodeKind) Is(mask NodeKind) bool {
	return k&mask != 0
}

func (k NodeKind) String() string {
	switch k {
	case StateMachineRoot:
		return "StateMachineRoot"
	case SimpleState:
		return "SimpleState"
	case CompositeState:
		return "CompositeState"
	case SubmachineState:
		return "SubmachineState"
	case Comment:
		return "Comment"
	case FormalComment:
		return "FormalComment"
	case Initial:
		return "Initial"
	case Final:
		return "Final"
	case Choice:
		return "Choice"
	case Terminate:
		return "Terminate"
	case EntryPoint:
		return "EntryPoint"
	case ExitPoint:
		return "ExitPoint"
	case ShallowHistory:
		return "ShallowHistory"
	case DeepHistory:
		return "DeepHistory"
	case Fork:
		return "Fork"
	case Join:
		return "Join"
	default:
		return "Unknown"
	}
}

// EdgeKind distinguishes a transition edge from a comment-subject edge.
type EdgeKind int

const (
	LocalTransition EdgeKind = iota
	ExternalTransition
	CommentEdge
)

func (k EdgeKind) String() string {
	switch k {
	case LocalTransition:
		return "LocalTransition"
	case ExternalTransition:
		return "ExternalTransition"
	case CommentEdge:
		return "CommentEdge"
	default:
		return "Unknown"
	}
}
