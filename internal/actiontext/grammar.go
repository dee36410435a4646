// Package actiontext implements the action/transition text mini-language:
// parsing a single "trigger [guard] / behavior" line (or, for edges, the
// same line with every part optional) into a trigger, a guard, a
// propagation hint, and a behavior body.
//
// Go's regexp package (like the original POSIX regex.h engine) only
// recognizes \w and \s as ASCII classes, so a multi-byte UTF-8
// identifier would silently fail to match \w. Every string this package
// feeds to a pattern is first passed through textutil.EscapeUTF8, which
// turns each non-ASCII byte into a 6-byte all-ASCII escape the \w class
// accepts, and every captured fragment is unescaped again on the way
// out.
package actiontext

import (
	"regexp"
	"strings"

	"github.com/go-cyberiada/cyberiadaml/internal/cyberr"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
	"github.com/go-cyberiada/cyberiadaml/internal/textutil"
)

var (
	edgeActionRe = regexp.MustCompile(
		`^\s*(\w((\w| |\.)*\w)?(\(\w+\))?)?\s*(\[([^]]+)\])?\s*(propagate|block)?\s*(/\s*(.*))?\s*$`)
	// (?s) makes "." match newlines: the original's regcomp calls omit
	// REG_NEWLINE, so POSIX "." already matched "\n" there too, and a
	// node action block split on a blank-line paragraph boundary (see
	// SplitNodeActionBlocks) may itself hold the header line and its
	// behavior on two physical lines.
	nodeActionRe = regexp.MustCompile(
		`(?s)^\s*(\w((\w| |\.)*\w)?(\(\w+\))?)\s*(\[([^]]+)\])?\s*(propagate|block)?\s*(/\s*(.*)?)\s*$`)
	legacyNodeSplitRe = regexp.MustCompile(
		`^\s*(\w((\w| |\.)*\w)?(\(\w+\))?)\s*(\[([^]]+)\])?\s*/`)
	legacyEdgeActionRe = regexp.MustCompile(
		`^\s*(\w((\w| |\.)*\w)?(\(\w+\))?)?\s*/?\s*(\[([^]]+)\])?(\s*(.*))?\s*$`)
	spacesOnlyRe = regexp.MustCompile(`^\s*$`)
)

// group indices, named after the capture positions in the patterns
// above (group 0 is always the whole match).
const (
	edgeTrigger = 1
	edgeGuard   = 6
	edgeProp    = 7
	edgeBehave  = 9

	nodeTrigger = 1
	nodeGuard   = 6
	nodeBehave  = 9

	legacyEdgeTrigger = 1
	legacyEdgeGuard   = 6
	legacyEdgeBehave  = 7
)

// Propagation is a parsed propagate/block keyword, distinct from
// model.EventPropagation so callers can tell "absent" from "explicit".
type Propagation int

const (
	PropagationNone Propagation = iota
	PropagationBlock
	PropagationPropagate
)

// Parsed holds the four captures of one action/transition line.
type Parsed struct {
	Trigger     string
	Guard       string
	Propagation Propagation
	Behavior    string
}

// IsBlank reports whether p captured nothing at all.
func (p Parsed) IsBlank() bool {
	return p.Trigger == "" && p.Guard == "" && p.Behavior == "" && p.Propagation == PropagationNone
}

func submatch(re *regexp.Regexp, text string) ([]string, bool) {
	m := re.FindStringSubmatch(text)
	return m, m != nil
}

func group(m []string, i int) string {
	if i >= len(m) {
		return ""
	}
	return textutil.TrimTrailingSpace(strings.TrimSpace(textutil.UnescapeUTF8(m[i])))
}

// ParseEdgeAction parses a transition label, in which every part
// (trigger, guard, propagation, behavior) is optional — an edge with an
// empty label is legal.
func ParseEdgeAction(text string) (Parsed, error) {
	escaped := textutil.EscapeUTF8(text)
	m, ok := submatch(edgeActionRe, escaped)
	if !ok {
		return Parsed{}, cyberr.ActionFormat("edge action text does not match the action grammar")
	}
	return Parsed{
		Trigger:     group(m, edgeTrigger),
		Guard:       group(m, edgeGuard),
		Propagation: parseProp(group(m, edgeProp)),
		Behavior:    group(m, edgeBehave),
	}, nil
}

// ParseNodeBlockAction parses one block of a node's action list, where a
// trigger is mandatory (an entry/exit/do keyword or an event name).
func ParseNodeBlockAction(text string) (Parsed, error) {
	m, ok := submatch(nodeActionRe, textutil.EscapeUTF8(text))
	if !ok {
		return Parsed{}, cyberr.ActionFormat("node action text does not match the action grammar")
	}
	return Parsed{
		Trigger:  group(m, nodeTrigger),
		Guard:    group(m, nodeGuard),
		Behavior: group(m, nodeBehave),
	}, nil
}

// ParseLegacyEdgeAction parses a yEd-dialect transition label, which
// mixes trigger, guard, and behavior without a reliable separator other
// than a single optional slash.
func ParseLegacyEdgeAction(text string) (Parsed, error) {
	escaped := textutil.EscapeUTF8(text)
	m, ok := submatch(legacyEdgeActionRe, escaped)
	if !ok {
		return Parsed{}, cyberr.ActionFormat("legacy edge action text does not match the action grammar")
	}
	return Parsed{
		Trigger:  group(m, legacyEdgeTrigger),
		Guard:    group(m, legacyEdgeGuard),
		Behavior: group(m, legacyEdgeBehave),
	}, nil
}

func parseProp(s string) Propagation {
	switch s {
	case "propagate":
		return PropagationPropagate
	case "block":
		return PropagationBlock
	default:
		return PropagationNone
	}
}

// IsBlankLine reports whether s contains only whitespace.
func IsBlankLine(s string) bool {
	return spacesOnlyRe.MatchString(s)
}

// looksLikeLegacyActionStart reports whether s begins a new yEd action
// block: "<trigger>[guard]/" at the front of the line.
func looksLikeLegacyActionStart(s string) bool {
	return legacyNodeSplitRe.MatchString(textutil.EscapeUTF8(s))
}

// triggerToKind maps a parsed trigger keyword to its action kind;
// anything that isn't entry/exit/do is a triggered transition.
func triggerToKind(trigger string) model.ActionKind {
	switch trigger {
	case "entry":
		return model.Entry
	case "exit":
		return model.Exit
	case "do":
		return model.Do
	default:
		return model.Transition
	}
}

// ToAction converts a parsed block into a model.Action of the
// appropriate kind.
func (p Parsed) ToAction() model.Action {
	return model.Action{
		Kind:     triggerToKind(p.Trigger),
		Trigger:  p.Trigger,
		Guard:    p.Guard,
		Behavior: p.Behavior,
	}
}
