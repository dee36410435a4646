package actiontext

import (
	"strings"

	"github.com/go-cyberiada/cyberiadaml/internal/model"
)

// DecodeNodeActions parses a native-dialect node's full action text
// (one action per blank-line-separated block) into a slice of
// model.Action, in document order.
func DecodeNodeActions(text string) ([]model.Action, error) {
	var actions []model.Action
	for _, block := range SplitNodeActionBlocks(text) {
		p, err := ParseNodeBlockAction(block)
		if err != nil {
			return nil, err
		}
		if p.IsBlank() {
			continue
		}
		actions = append(actions, p.ToAction())
	}
	return actions, nil
}

// DecodeLegacyNodeActions parses a yEd-dialect node's action text.
func DecodeLegacyNodeActions(text string, flatten bool) ([]model.Action, error) {
	var actions []model.Action
	for _, block := range SplitLegacyActionBlocks(text, flatten) {
		p, err := ParseLegacyEdgeAction(block)
		if err != nil {
			return nil, err
		}
		if p.IsBlank() {
			continue
		}
		actions = append(actions, p.ToAction())
	}
	return actions, nil
}

// DecodeEdgeAction parses a native-dialect edge label into at most one
// transition action. A blank or empty label yields (nil, nil): an edge
// is allowed to carry no action at all.
func DecodeEdgeAction(text string) (*model.Action, error) {
	p, err := ParseEdgeAction(text)
	if err != nil {
		return nil, err
	}
	if p.IsBlank() {
		return nil, nil
	}
	a := p.ToAction()
	return &a, nil
}

// DecodeLegacyEdgeAction parses a yEd-dialect edge label into at most
// one transition action.
func DecodeLegacyEdgeAction(text string) (*model.Action, error) {
	p, err := ParseLegacyEdgeAction(text)
	if err != nil {
		return nil, err
	}
	if p.IsBlank() {
		return nil, nil
	}
	a := p.ToAction()
	return &a, nil
}

// EncodeNodeActions renders a node's actions back into the native
// dialect's wire layout (cyberiada_write_action_text): each action is a
// header line ending in "/" (trigger, optionally "[guard]", per
// encodeHeader), followed — if the action has a behavior or isn't the
// last one — by a newline, then the behavior on its own line if
// non-empty, then a blank-line separator if another action follows.
// This is the inverse of SplitNodeActionBlocks/DecodeNodeActions, not a
// single line per action.
func EncodeNodeActions(actions []model.Action) string {
	var out strings.Builder
	for i, a := range actions {
		if a.Kind == model.Transition && a.Trigger == "" && a.Guard == "" && a.Behavior == "" {
			continue
		}
		out.WriteString(encodeHeader(a))
		hasNext := i < len(actions)-1
		if !hasNext && a.Behavior == "" {
			continue
		}
		out.WriteByte('\n')
		if a.Behavior != "" {
			out.WriteString(a.Behavior)
			out.WriteByte('\n')
		}
		if hasNext {
			out.WriteByte('\n')
		}
	}
	return out.String()
}

// EncodeLegacyNodeActions renders a node's actions into the yEd-dialect
// single-line-per-action text representation ("trigger [guard] /
// behavior", one physical line per action), the inverse of
// DecodeLegacyNodeActions/SplitLegacyActionBlocks, which — unlike the
// native dialect — cuts blocks at single newlines rather than at a
// blank-line paragraph separator.
func EncodeLegacyNodeActions(actions []model.Action) string {
	lines := make([]string, len(actions))
	for i, a := range actions {
		lines[i] = encodeLegacyActionLine(a)
	}
	return strings.Join(lines, "\n")
}

func encodeLegacyActionLine(a model.Action) string {
	trigger := a.Trigger
	if trigger == "" {
		switch a.Kind {
		case model.Entry:
			trigger = "entry"
		case model.Exit:
			trigger = "exit"
		case model.Do:
			trigger = "do"
		}
	}
	s := trigger
	if a.Guard != "" {
		s += " [" + a.Guard + "]"
	}
	if a.Behavior != "" || a.Kind != model.Transition {
		s += " / " + a.Behavior
	}
	return s
}

// encodeHeader renders one action's trigger/guard header line, always
// ending in "/" with no space before it, matching
// cyberiada_write_action_text's "%s/" / "%s [%s]/" / "[%s]/" templates.
func encodeHeader(a model.Action) string {
	trigger := a.Trigger
	if trigger == "" {
		switch a.Kind {
		case model.Entry:
			trigger = "entry"
		case model.Exit:
			trigger = "exit"
		case model.Do:
			trigger = "do"
		}
	}
	switch {
	case a.Guard != "" && trigger != "":
		return trigger + " [" + a.Guard + "]/"
	case a.Guard != "":
		return "[" + a.Guard + "]/"
	default:
		return trigger + "/"
	}
}

// EncodeEdgeAction renders a single transition action as an edge label.
// A nil action renders as an empty label.
func EncodeEdgeAction(a *model.Action) string {
	if a == nil {
		return ""
	}
	s := a.Trigger
	if a.Guard != "" {
		s += " [" + a.Guard + "]"
	}
	if a.Behavior != "" {
		if s != "" {
			s += " "
		}
		s += "/ " + a.Behavior
	}
	return s
}
