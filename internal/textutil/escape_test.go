package textutil

import "testing"

func TestEscapeUTF8ASCIIIsIdentity(t *testing.T) {
	cases := []string{"", "hello", "hello world 123", "a/b[c]/d"}
	for _, s := range cases {
		if got := EscapeUTF8(s); got != s {
			t.Errorf("EscapeUTF8(%q) = %q, want unchanged", s, got)
		}
	}
}

func TestEscapeUTF8NonASCII(t *testing.T) {
	got := EscapeUTF8("caf\xc3\xa9")
	want := "caf__x_C3__x_A9"
	if got != want {
		t.Errorf("EscapeUTF8 = %q, want %q", got, want)
	}
}

func TestEscapeDecodeRoundTripASCII(t *testing.T) {
	cases := []string{"", "x", "click [ready] / counter = counter + 1"}
	for _, s := range cases {
		got := UnescapeUTF8(EscapeUTF8(s))
		if got != s {
			t.Errorf("round trip %q = %q", s, got)
		}
	}
}

func TestEscapeDecodeRoundTripArbitraryBytes(t *testing.T) {
	// P6: decode_utf8(encode_utf8(s)) = s for every finite byte string.
	cases := []string{
		"hello 世界",
		"emoji \xf0\x9f\x8c\x8d",
		string([]byte{0x00, 0x7f, 0x80, 0xff}),
		"mixed ascii and \xe6\x97\xa5\xe6\x9c\xac\xe8\xaa\x9e text",
	}
	for _, s := range cases {
		got := UnescapeUTF8(EscapeUTF8(s))
		if got != s {
			t.Errorf("round trip %q = %q", s, got)
		}
	}
}

func TestUnescapeUTF8LeavesUnrelatedUnderscoresAlone(t *testing.T) {
	s := "some_value_here"
	if got := UnescapeUTF8(s); got != s {
		t.Errorf("UnescapeUTF8(%q) = %q, want unchanged", s, got)
	}
}

func TestUnescapeUTF8MalformedEscapeIsLeftVerbatim(t *testing.T) {
	s := "__x_ZZ"
	if got := UnescapeUTF8(s); got != s {
		t.Errorf("UnescapeUTF8(%q) = %q, want unchanged (bad hex digits)", s, got)
	}
}

func TestUnescapeUTF8TruncatedEscapeAtEndOfString(t *testing.T) {
	s := "abc__x_4"
	if got := UnescapeUTF8(s); got != s {
		t.Errorf("UnescapeUTF8(%q) = %q, want unchanged (too short to decode)", s, got)
	}
}
