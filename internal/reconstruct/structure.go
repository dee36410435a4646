package reconstruct

import "github.com/go-cyberiada/cyberiadaml/internal/cyberr"
import "github.com/go-cyberiada/cyberiadaml/internal/model"

// checkStructure runs Pass C over every region (a node's direct
// children) of sm's tree: at most one Initial pseudostate with at most
// one outgoing edge, and — unless opts.SkipGeometry — the point/rect
// geometry discipline.
func checkStructure(sm *model.StateMachine, opts Options) error {
	if err := checkRegion(sm.Root, sm, opts); err != nil {
		return err
	}
	var walk func(n *model.Node) error
	walk = func(n *model.Node) error {
		if err := checkRegion(n, sm, opts); err != nil {
			return err
		}
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	for _, c := range sm.Root.Children {
		if err := walk(c); err != nil {
			return err
		}
	}

	if opts.RequireInitial {
		if err := requireSingleInitial(sm.Root, sm); err != nil {
			return err
		}
	}
	return nil
}

// checkRegion validates the "at most one Initial, at most one outgoing
// edge from it" invariant for the direct children of region.
func checkRegion(region *model.Node, sm *model.StateMachine, opts Options) error {
	var initial *model.Node
	for _, c := range region.Children {
		if !opts.SkipGeometry {
			if err := checkGeometryDiscipline(c); err != nil {
				return err
			}
		}
		if c.Kind != model.Initial {
			continue
		}
		if initial != nil {
			return cyberr.Format("region under %q has more than one Initial pseudostate", region.ID)
		}
		initial = c
	}
	if initial != nil {
		outgoing := 0
		for _, e := range sm.Edges {
			if e.SourceID == initial.ID {
				outgoing++
			}
		}
		if outgoing > 1 {
			return cyberr.Format("initial pseudostate %q has more than one outgoing transition", initial.ID)
		}
	}
	return nil
}

func requireSingleInitial(root *model.Node, sm *model.StateMachine) error {
	var initial *model.Node
	for _, c := range root.Children {
		if c.Kind == model.Initial {
			if initial != nil {
				return cyberr.Format("top region has more than one Initial pseudostate")
			}
			initial = c
		}
	}
	if initial == nil {
		return cyberr.Format("top region does not contain an Initial pseudostate")
	}
	return nil
}

// checkGeometryDiscipline enforces point-vs-rect exclusivity (I4): a
// node must not carry both, a node requiring point geometry must not
// carry a rect, and a node that is neither point-kind nor a pseudostate
// must not carry a point; a zero-sized rect is normalized to "no
// geometry" rather than rejected.
func checkGeometryDiscipline(n *model.Node) error {
	if n.GeometryRect != nil && n.GeometryRect.IsEmpty() {
		n.GeometryRect = nil
	}
	if n.GeometryPoint != nil && n.GeometryRect != nil {
		return cyberr.Format("node %q carries both point and rect geometry", n.ID)
	}
	if n.RequiresPointGeometry() && n.GeometryRect != nil {
		return cyberr.Format("node %q requires point geometry but has rect geometry", n.ID)
	}
	if !n.RequiresPointGeometry() && n.GeometryPoint != nil && !n.IsPseudostate() {
		return cyberr.Format("node %q carries point geometry but is not a point-kind node", n.ID)
	}
	return nil
}
