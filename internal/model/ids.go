// Package model is the in-memory hierarchical state machine (HSM) data
// model: Document, StateMachine, Node, Edge, Action, CommentData,
// Metadata and the geometry primitives, grounded on cyberiadaml.h of the
// original C library and laid out the way the teacher repo
// (ritamzico/pgraph) lays out its own internal/graph package: small
// newtype ids, a handful of leaf value types, and one or two larger
// container types that own everything reachable from them.
package model

// NodeID and EdgeID are opaque identifiers; comparisons are byte-wise.
type NodeID string

type EdgeID string
