package actiontext

import (
	"testing"

	"github.com/go-cyberiada/cyberiadaml/internal/model"
)

// cyberiada_write_action_text: a header line ending in "/", the behavior
// on its own following line, then a blank line before the next action.
func TestEncodeNodeActionsWritesHeaderBehaviorBlankLineLayout(t *testing.T) {
	actions := []model.Action{
		{Kind: model.Entry, Behavior: "x = 1"},
		{Kind: model.Transition, Trigger: "click", Guard: "ready", Behavior: "y = 2"},
	}
	got := EncodeNodeActions(actions)
	want := "entry/\nx = 1\n\nclick [ready]/\ny = 2\n"
	if got != want {
		t.Errorf("EncodeNodeActions = %q, want %q", got, want)
	}
}

func TestEncodeNodeActionsLastActionHasNoTrailingBlankLine(t *testing.T) {
	actions := []model.Action{{Kind: model.Exit, Behavior: "cleanup()"}}
	got := EncodeNodeActions(actions)
	want := "exit/\ncleanup()\n"
	if got != want {
		t.Errorf("EncodeNodeActions = %q, want %q", got, want)
	}
}

func TestEncodeNodeActionsOmitsBlankTransition(t *testing.T) {
	actions := []model.Action{{Kind: model.Transition}}
	got := EncodeNodeActions(actions)
	if got != "" {
		t.Errorf("EncodeNodeActions = %q, want empty string for a blank transition", got)
	}
}

// DecodeNodeActions(EncodeNodeActions(actions)) should reconstruct the
// same actions, exercising a genuine multi-line native action block
// round trip through the split/grammar layer together.
func TestEncodeThenDecodeNodeActionsRoundTrips(t *testing.T) {
	actions := []model.Action{
		{Kind: model.Entry, Trigger: "entry", Behavior: "x = 1"},
		{Kind: model.Transition, Trigger: "click", Guard: "ready", Behavior: "counter = counter + 1"},
		{Kind: model.Do, Trigger: "do", Behavior: "poll()"},
	}
	encoded := EncodeNodeActions(actions)
	got, err := DecodeNodeActions(encoded)
	if err != nil {
		t.Fatalf("DecodeNodeActions(%q): %v", encoded, err)
	}
	if len(got) != len(actions) {
		t.Fatalf("len(got) = %d, want %d (encoded: %q)", len(got), len(actions), encoded)
	}
	for i, want := range actions {
		if !got[i].Equal(want) {
			t.Errorf("action %d = %+v, want %+v", i, got[i], want)
		}
	}
}

// Legacy output stays one physical line per action, since
// SplitLegacyActionBlocks cuts at single newlines, not blank-line
// paragraphs.
func TestEncodeLegacyNodeActionsOneLinePerAction(t *testing.T) {
	actions := []model.Action{
		{Kind: model.Transition, Trigger: "click", Guard: "ready", Behavior: "a()"},
		{Kind: model.Transition, Trigger: "go", Behavior: "b()"},
	}
	got := EncodeLegacyNodeActions(actions)
	want := "click [ready] / a()\ngo / b()"
	if got != want {
		t.Errorf("EncodeLegacyNodeActions = %q, want %q", got, want)
	}
}
