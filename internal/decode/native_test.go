package decode

import (
	"testing"

	"github.com/go-cyberiada/cyberiadaml/internal/model"
)

func TestVertexKindMapsKnownValues(t *testing.T) {
	cases := map[string]model.NodeKind{
		"initial":        model.Initial,
		"final":          model.Final,
		"choice":         model.Choice,
		"terminate":      model.Terminate,
		"shallowHistory": model.ShallowHistory,
		"deepHistory":    model.DeepHistory,
		"entryPoint":     model.EntryPoint,
		"exitPoint":      model.ExitPoint,
		"fork":           model.Fork,
		"join":           model.Join,
	}
	for v, want := range cases {
		if got := vertexKind(v); got != want {
			t.Errorf("vertexKind(%q) = %v, want %v", v, got, want)
		}
	}
}

func TestVertexKindUnknownDefaultsToSimpleState(t *testing.T) {
	if got := vertexKind("something-else"); got != model.SimpleState {
		t.Errorf("vertexKind(unknown) = %v, want SimpleState", got)
	}
}
