// Package reconstruct runs the post-decode passes that turn a raw parsed
// tree into a structurally valid Document: identifier synthesis,
// composite-state promotion, structural validation, and action hygiene.
package reconstruct

import (
	"fmt"

	"github.com/go-cyberiada/cyberiadaml/internal/cyberr"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
	"github.com/go-cyberiada/cyberiadaml/internal/treeutil"
)

// synthesizeNodeIDs walks root depth-first assigning ids to every node
// whose id is empty. Only missing ids are synthesized, so this is
// idempotent by construction: nothing changes id on a second pass.
//
// It also returns the old-id->new-id name map cyberiada_graphs_recon
// struct_node_identifiers builds alongside the rename (see
// cyberiada_add_name_to_list in original_source/cyb_graph_recon.c):
// every renamed node's pre-synthesis id (always "" in this library,
// since an existing id is never touched) is recorded against its fresh
// id. Because more than one node can share the empty old id, the map
// keeps only the FIRST such node, matching cyberiada_list_find's
// first-match linear scan — later empty-id nodes still get their own
// fresh id, but an edge endpoint that referenced the empty id resolves
// to the first one, same as upstream.
func synthesizeNodeIDs(root *model.Node) map[model.NodeID]model.NodeID {
	nameMap := make(map[model.NodeID]model.NodeID)
	counter := uint(0)
	var walk func(n *model.Node)
	walk = func(n *model.Node) {
		if n.ID == "" {
			oldID := n.ID
			for {
				candidate := candidateNodeID(n, counter)
				counter++
				if !treeutil.ContainsID(root, candidate) {
					n.ID = candidate
					break
				}
			}
			if _, ok := nameMap[oldID]; !ok {
				nameMap[oldID] = n.ID
			}
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return nameMap
}

// candidateNodeID reproduces the original depth-keyed naming scheme:
// the state-machine root gets g<n>, a direct child of the root gets
// n<n>, and anything deeper gets "<parent-id>::n<n>".
func candidateNodeID(n *model.Node, counter uint) model.NodeID {
	switch {
	case n.Parent == nil:
		return model.NodeID(fmt.Sprintf("g%d", counter))
	case n.Parent.Parent == nil:
		return model.NodeID(fmt.Sprintf("n%d", counter))
	default:
		return model.NodeID(fmt.Sprintf("%s::n%d", n.Parent.ID, counter))
	}
}

// remapEdgeEndpointIDs rewrites every edge's empty SourceID/TargetID
// through nameMap, mirroring the first loop of
// cyberiada_graphs_reconstruct_edge_identifiers: an edge that names no
// endpoint explicitly was always pointing at "the node with no id", so
// once that node (or, if several shared the empty id, the first of
// them) has a real id, the edge is rewired to it before edge ids or
// endpoint pointers are resolved.
func remapEdgeEndpointIDs(sm *model.StateMachine, nameMap map[model.NodeID]model.NodeID) error {
	for _, e := range sm.Edges {
		if e.SourceID == "" {
			newID, ok := nameMap[""]
			if !ok {
				return cyberr.Format("cannot find replacement for empty source id on edge %q", e.ID)
			}
			e.SourceID = newID
		}
		if e.TargetID == "" {
			newID, ok := nameMap[""]
			if !ok {
				return cyberr.Format("cannot find replacement for empty target id on edge %q", e.ID)
			}
			e.TargetID = newID
		}
	}
	return nil
}

// synthesizeEdgeIDs assigns ids to edges whose id is empty: "<source>-
// <target>", with a "#<n>" suffix appended until the id is unique among
// sm's edges.
func synthesizeEdgeIDs(sm *model.StateMachine) {
	existing := make(map[model.EdgeID]bool, len(sm.Edges))
	for _, e := range sm.Edges {
		if e.ID != "" {
			existing[e.ID] = true
		}
	}
	counter := uint(0)
	for _, e := range sm.Edges {
		if e.ID != "" {
			continue
		}
		base := fmt.Sprintf("%s-%s", e.SourceID, e.TargetID)
		candidate := model.EdgeID(base)
		for existing[candidate] {
			candidate = model.EdgeID(fmt.Sprintf("%s#%d", base, counter))
			counter++
		}
		e.ID = candidate
		existing[candidate] = true
	}
}

// resolveEdgeEndpoints links every edge's Source/Target pointer to the
// matching node in sm's tree, failing with a format error if either
// endpoint cannot be found.
func resolveEdgeEndpoints(sm *model.StateMachine) error {
	for _, e := range sm.Edges {
		src := treeutil.FindByID(sm.Root, e.SourceID)
		if src == nil {
			return cyberr.Format("cannot find source node %q for edge %q", e.SourceID, e.ID)
		}
		dst := treeutil.FindByID(sm.Root, e.TargetID)
		if dst == nil {
			return cyberr.Format("cannot find target node %q for edge %q", e.TargetID, e.ID)
		}
		e.Source = src
		e.Target = dst
	}
	return nil
}
