package diff

import "github.com/go-cyberiada/cyberiadaml/internal/model"

// Diff compares two state machines and classifies their structural
// difference. It always succeeds (spec.md §4.10: "individual comparison
// operations always succeed — they classify rather than reject"); the
// error return exists only to keep this call site's signature uniform
// with the rest of the module's public API.
func Diff(a, b *model.StateMachine, opts Options) (Result, error) {
	v1 := enumerateVertexes(a.Root, a.Edges, opts.IgnoreComments)
	v2 := enumerateVertexes(b.Root, b.Edges, opts.IgnoreComments)

	m := buildCompatMatrix(v1, v2)
	p := greedyMaximumMatching(m)

	var res Result
	identical := len(v1) == len(v2) && countEdges(a.Edges, opts.IgnoreComments) == countEdges(b.Edges, opts.IgnoreComments)

	anyDiff := false
	nodeMap := make(map[*model.Node]*model.Node, len(v1)) // A node -> matched B node

	for i := range v1 {
		matchedJ := -1
		for j := range v2 {
			if p[i][j] {
				matchedJ = j
				break
			}
		}
		if matchedJ < 0 {
			res.MissingNodes = append(res.MissingNodes, v1[i].node)
			anyDiff = true
			continue
		}
		v1[i].matched = true
		v2[matchedJ].matched = true
		nodeMap[v1[i].node] = v2[matchedJ].node

		flags := compareNodes(v1[i].node, v2[matchedJ].node,
			v1[i].degreeIn, v1[i].degreeOut, v2[matchedJ].degreeIn, v2[matchedJ].degreeOut)
		if flags != 0 {
			res.DifferingNodes = append(res.DifferingNodes, NodePair{A: v1[i].node, B: v2[matchedJ].node, Flags: flags})
			anyDiff = true
		}
	}
	for j := range v2 {
		if !v2[j].matched {
			res.NewNodes = append(res.NewNodes, v2[j].node)
			anyDiff = true
		}
	}

	diffEdges := diffEdgeSets(a.Edges, b.Edges, nodeMap, opts.IgnoreComments, &res)
	anyDiff = anyDiff || diffEdges

	res.Verdict, res.Flags = deriveVerdict(identical, res)

	if opts.RequireInitial {
		applyInitialCheck(a, b, nodeMap, &res)
	}

	return res, nil
}

func countEdges(edges []*model.Edge, ignoreComments bool) int {
	n := 0
	for _, e := range edges {
		if ignoreComments && e.Kind == model.CommentEdge {
			continue
		}
		n++
	}
	return n
}

// diffEdgeSets matches SM1 edges to SM2 edges through nodeMap (the node
// correspondence the vertex matching established), comparing by id and
// action, and reports unmatched edges on either side. Returns whether
// any edge-level difference was found.
func diffEdgeSets(e1, e2 []*model.Edge, nodeMap map[*model.Node]*model.Node, ignoreComments bool, res *Result) bool {
	found := false
	consumed := make(map[*model.Edge]bool, len(e2))

	for _, ea := range e1 {
		if ignoreComments && ea.Kind == model.CommentEdge {
			continue
		}
		mappedSrc := nodeMap[ea.Source]
		mappedDst := nodeMap[ea.Target]
		if mappedSrc == nil || mappedDst == nil {
			res.MissingEdges = append(res.MissingEdges, ea)
			found = true
			continue
		}

		var match *model.Edge
		for _, eb := range e2 {
			if consumed[eb] {
				continue
			}
			if ignoreComments && eb.Kind == model.CommentEdge {
				continue
			}
			if eb.Source == mappedSrc && eb.Target == mappedDst {
				match = eb
				break
			}
		}
		if match == nil {
			res.MissingEdges = append(res.MissingEdges, ea)
			found = true
			continue
		}
		consumed[match] = true

		flags := compareEdges(ea, match)
		if flags != 0 {
			res.DifferingEdges = append(res.DifferingEdges, EdgePair{A: ea, B: match, Flags: flags})
			found = true
		}
	}

	for _, eb := range e2 {
		if ignoreComments && eb.Kind == model.CommentEdge {
			continue
		}
		if !consumed[eb] {
			res.NewEdges = append(res.NewEdges, eb)
			found = true
		}
	}

	return found
}

// deriveVerdict implements spec.md §4.9 step 6.
func deriveVerdict(identical bool, res Result) (Verdict, Flag) {
	if len(res.MissingNodes) > 0 || len(res.NewNodes) > 0 {
		return NonIsomorphic, aggregateFlags(res) | FlagDiffStates
	}

	onlyIDDiffers := true
	anyDiff := len(res.DifferingNodes) > 0 || len(res.DifferingEdges) > 0 ||
		len(res.MissingEdges) > 0 || len(res.NewEdges) > 0

	for _, np := range res.DifferingNodes {
		if np.Flags&^FlagIDDiffers != 0 {
			onlyIDDiffers = false
		}
	}
	for _, ep := range res.DifferingEdges {
		if ep.Flags&^FlagIDDiffers != 0 {
			onlyIDDiffers = false
		}
	}
	if len(res.MissingEdges) > 0 || len(res.NewEdges) > 0 {
		onlyIDDiffers = false
	}

	if !anyDiff && identical {
		return Identical, 0
	}
	if onlyIDDiffers {
		return Equal, aggregateFlags(res)
	}
	if len(res.MissingEdges) > 0 || len(res.NewEdges) > 0 {
		return NonIsomorphic, aggregateFlags(res) | FlagDiffEdges
	}
	return Isomorphic, aggregateFlags(res)
}

func aggregateFlags(res Result) Flag {
	var f Flag
	for _, np := range res.DifferingNodes {
		f |= np.Flags
	}
	for _, ep := range res.DifferingEdges {
		f |= ep.Flags
	}
	return f
}

// applyInitialCheck implements spec.md §4.9 step 7.
func applyInitialCheck(a, b *model.StateMachine, nodeMap map[*model.Node]*model.Node, res *Result) {
	initA, edgeA := findTopLevelInitial(a.Root, a.Edges)
	_, edgeB := findTopLevelInitial(b.Root, b.Edges)
	if initA == nil || edgeA == nil || edgeB == nil {
		return
	}

	mappedTarget := nodeMap[edgeA.Target]
	if mappedTarget != edgeB.Target {
		res.Flags |= FlagDiffInitial
		res.NewInitialTarget = edgeB.Target
		if res.Verdict == Identical || res.Verdict == Equal {
			res.Verdict = Isomorphic
		}
	}
}
