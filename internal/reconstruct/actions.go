package reconstruct

import (
	"github.com/go-cyberiada/cyberiadaml/internal/cyberr"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
)

// hygieneActions runs Pass D over every node's action list: duplicate
// Entry/Exit detection (reject or merge per opts.DuplicateAction), then
// removal of actions with both an empty guard and an empty behavior.
func hygieneActions(root *model.Node, opts Options) error {
	var walk func(n *model.Node) error
	walk = func(n *model.Node) error {
		actions, err := resolveDoubles(n.Actions, opts.DuplicateAction)
		if err != nil {
			return cyberr.Wrap(cyberr.FormatError, err, "node %q", n.ID)
		}
		n.Actions = removeEmpty(actions)
		for _, c := range n.Children {
			if err := walk(c); err != nil {
				return err
			}
		}
		return nil
	}
	return walk(root)
}

func resolveDoubles(actions []model.Action, policy DuplicateActionPolicy) ([]model.Action, error) {
	var entryIdx, exitIdx = -1, -1
	out := make([]model.Action, 0, len(actions))

	for _, a := range actions {
		switch a.Kind {
		case model.Entry:
			if entryIdx >= 0 {
				if policy == RejectDoubles {
					return nil, cyberr.Format("multiple entry actions")
				}
				out[entryIdx].Behavior = joinBehavior(out[entryIdx].Behavior, a.Behavior)
				continue
			}
			entryIdx = len(out)
		case model.Exit:
			if exitIdx >= 0 {
				if policy == RejectDoubles {
					return nil, cyberr.Format("multiple exit actions")
				}
				out[exitIdx].Behavior = joinBehavior(out[exitIdx].Behavior, a.Behavior)
				continue
			}
			exitIdx = len(out)
		}
		out = append(out, a)
	}
	return out, nil
}

func joinBehavior(existing, add string) string {
	if existing == "" {
		return add
	}
	if add == "" {
		return existing
	}
	return existing + "\n" + add
}

func removeEmpty(actions []model.Action) []model.Action {
	out := actions[:0]
	for _, a := range actions {
		if a.Guard == "" && a.Behavior == "" {
			continue
		}
		out = append(out, a)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
