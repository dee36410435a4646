package cyberr

import (
	"errors"
	"fmt"
	"testing"
)

func TestKindString(t *testing.T) {
	cases := map[Kind]string{
		NoError:             "no-error",
		XMLError:            "xml-error",
		FormatError:         "format-error",
		ActionFormatError:   "action-format-error",
		MetadataFormatError: "metadata-format-error",
		NotFound:            "not-found",
		BadParameter:        "bad-parameter",
		Assert:              "assert",
		NotImplemented:      "not-implemented",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestKindStringUnknown(t *testing.T) {
	if got := Kind(999).String(); got != "unknown-error" {
		t.Errorf("Kind(999).String() = %q, want unknown-error", got)
	}
}

func TestErrorErrorWithoutCause(t *testing.T) {
	e := New(BadParameter, "missing %s", "id")
	want := "bad-parameter: missing id"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorErrorWithCause(t *testing.T) {
	cause := errors.New("underlying")
	e := Wrap(XMLError, cause, "malformed")
	want := "xml-error: malformed: underlying"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestErrorUnwrapReturnsCause(t *testing.T) {
	cause := errors.New("underlying")
	e := Wrap(XMLError, cause, "malformed")
	if got := e.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
}

func TestErrorUnwrapNilWhenNoCause(t *testing.T) {
	e := New(BadParameter, "x")
	if got := e.Unwrap(); got != nil {
		t.Errorf("Unwrap() = %v, want nil", got)
	}
}

func TestErrorsIsClassifiesByKind(t *testing.T) {
	err := fmt.Errorf("context: %w", New(NotFound, "no such key"))
	if !errors.Is(err, New(NotFound, "")) {
		t.Error("errors.Is should match on Kind alone, through a wrapping %w")
	}
	if errors.Is(err, New(BadParameter, "")) {
		t.Error("errors.Is should not match a different Kind")
	}
}

func TestErrorsIsRejectsNonCyberrTarget(t *testing.T) {
	e := New(NotFound, "x")
	if e.Is(errors.New("plain")) {
		t.Error("Is should reject a target that isn't a *cyberr.Error")
	}
}

func TestKindOfNilIsNoError(t *testing.T) {
	if got := KindOf(nil); got != NoError {
		t.Errorf("KindOf(nil) = %v, want NoError", got)
	}
}

func TestKindOfDirectError(t *testing.T) {
	if got := KindOf(New(XMLError, "x")); got != XMLError {
		t.Errorf("KindOf(direct) = %v, want XMLError", got)
	}
}

func TestKindOfWrappedError(t *testing.T) {
	err := fmt.Errorf("outer: %w", New(MetadataFormatError, "bad"))
	if got := KindOf(err); got != MetadataFormatError {
		t.Errorf("KindOf(wrapped) = %v, want MetadataFormatError", got)
	}
}

func TestKindOfUntypedErrorIsAssert(t *testing.T) {
	if got := KindOf(errors.New("plain")); got != Assert {
		t.Errorf("KindOf(plain error) = %v, want Assert", got)
	}
}

func TestConstructorsProduceExpectedKinds(t *testing.T) {
	cases := []struct {
		name string
		err  *Error
		want Kind
	}{
		{"XML", XML("x"), XMLError},
		{"Format", Format("x"), FormatError},
		{"ActionFormat", ActionFormat("x"), ActionFormatError},
		{"MetadataFormat", MetadataFormat("x"), MetadataFormatError},
		{"NotFoundf", NotFoundf("x"), NotFound},
		{"BadParameterf", BadParameterf("x"), BadParameter},
		{"Assertf", Assertf("x"), Assert},
		{"NotImplementedf", NotImplementedf("x"), NotImplemented},
	}
	for _, tc := range cases {
		if tc.err.Kind != tc.want {
			t.Errorf("%s: Kind = %v, want %v", tc.name, tc.err.Kind, tc.want)
		}
	}
}

func TestNewFormatsMessage(t *testing.T) {
	e := New(BadParameter, "got %d, want %d", 1, 2)
	if e.Message != "got 1, want 2" {
		t.Errorf("Message = %q, want formatted string", e.Message)
	}
}
