package diff

import "github.com/go-cyberiada/cyberiadaml/internal/model"

// compareNodes computes the per-pair flag set for a matched node pair,
// per spec.md §4.9 step 4 / isomorph.c's cyberiada_compare_two_nodes.
func compareNodes(a, b *model.Node, aIn, aOut, bIn, bOut int) Flag {
	var f Flag

	if a.ID != b.ID {
		f |= FlagIDDiffers
	}
	if a.Kind != b.Kind {
		f |= FlagKindDiffers
	}
	if a.Title != b.Title {
		f |= FlagTitleDiffers
	}
	if !model.ActionsEqual(a.Actions, b.Actions) {
		f |= FlagActionsDiffer
	}
	if (a.Link != nil) != (b.Link != nil) || (a.Link != nil && b.Link != nil && a.Link.Ref != b.Link.Ref) {
		f |= FlagSMLinkDiffers
	}
	if len(a.Children) != len(b.Children) {
		f |= FlagChildCountDiffers
	}
	if aIn != bIn || aOut != bOut {
		f |= FlagEdgeCountDiffers
	}

	return f
}

// compareEdges computes the per-pair flag set for a matched edge pair.
func compareEdges(a, b *model.Edge) Flag {
	var f Flag
	if a.ID != b.ID {
		f |= FlagIDDiffers
	}
	if !actionEqual(a.Action, b.Action) {
		f |= FlagActionsDiffer
	}
	return f
}

func actionEqual(a, b *model.Action) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Equal(*b)
}
