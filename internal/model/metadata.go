package model

// TransitionOrder is a trit: whether transitions fire before or after
// exit actions when a region is left.
type TransitionOrder int

const (
	TransitionOrderUnset TransitionOrder = iota
	TransitionFirst
	ExitFirst
)

func (t TransitionOrder) String() string {
	switch t {
	case TransitionFirst:
		return "transition-first"
	case ExitFirst:
		return "exit-first"
	default:
		return "unset"
	}
}

// EventPropagation is a trit: whether an unhandled event is blocked at
// the state that received it or propagated to its ancestors.
type EventPropagation int

const (
	EventPropagationUnset EventPropagation = iota
	Block
	Propagate
)

func (e EventPropagation) String() string {
	switch e {
	case Block:
		return "block"
	case Propagate:
		return "propagate"
	default:
		return "unset"
	}
}

// KV is a verbatim-preserved metadata extension (an unrecognized
// name/value pair in the CGML_META comment body).
type KV struct {
	Key, Value string
}

// Metadata is the document-wide metadata record (§3/§4.4/§6).
type Metadata struct {
	StandardVersion   string
	TransitionOrder   TransitionOrder
	EventPropagation  EventPropagation
	Platform          string
	PlatformVersion   string
	PlatformLanguage  string
	Target            string
	Name              string
	Author            string
	Contact           string
	Description       string
	Version           string
	Date              string
	MarkupLanguage    string
	Extensions        []KV
}

// DefaultMetadata returns the metadata record a successful decode
// produces when optional flags are entirely absent from the document
// (§4.4 step 6 / S1).
func DefaultMetadata() Metadata {
	return Metadata{
		StandardVersion:  "1.0",
		TransitionOrder:  TransitionFirst,
		EventPropagation: Block,
	}
}
