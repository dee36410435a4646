package textutil

import (
	"strings"
	"testing"
)

func TestCopyWithinLimitIsUnchanged(t *testing.T) {
	s := "short string"
	if got := Copy(s); got != s {
		t.Errorf("Copy(%q) = %q, want unchanged", s, got)
	}
}

func TestCopyTruncatesAtLimit(t *testing.T) {
	s := strings.Repeat("a", MaxStringLen+100)
	got := Copy(s)
	if len(got) != MaxStringLen {
		t.Fatalf("len(Copy(s)) = %d, want %d", len(got), MaxStringLen)
	}
	if got != s[:MaxStringLen] {
		t.Error("Copy did not truncate to the string's own prefix")
	}
}

func TestTrimTrailingSpaceOnlyTrimsTrailing(t *testing.T) {
	cases := []struct{ in, want string }{
		{"  leading kept  ", "  leading kept"},
		{"no trailing space", "no trailing space"},
		{"trailing\t\n \r", "trailing"},
		{"", ""},
		{"   ", ""},
	}
	for _, tc := range cases {
		if got := TrimTrailingSpace(tc.in); got != tc.want {
			t.Errorf("TrimTrailingSpace(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestAppendWithSeparator(t *testing.T) {
	got := Append("a", "\n", "b")
	if got != "a\nb" {
		t.Errorf("Append = %q, want %q", got, "a\nb")
	}
}

func TestAppendEmptySidesSkipSeparator(t *testing.T) {
	if got := Append("", "\n", "b"); got != "b" {
		t.Errorf("Append(\"\", sep, b) = %q, want %q", got, "b")
	}
	if got := Append("a", "\n", ""); got != "a" {
		t.Errorf("Append(a, sep, \"\") = %q, want %q", got, "a")
	}
	if got := Append("", "\n", ""); got != "" {
		t.Errorf("Append(\"\", sep, \"\") = %q, want empty", got)
	}
}

func TestAppendReappliesLengthCap(t *testing.T) {
	base := strings.Repeat("a", MaxStringLen-1)
	got := Append(base, "", "bb")
	if len(got) != MaxStringLen {
		t.Fatalf("len(Append(...)) = %d, want %d", len(got), MaxStringLen)
	}
}
