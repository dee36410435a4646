package textutil

// MaxStringLen bounds every persisted string in the model; copies are
// truncated silently rather than rejected.
const MaxStringLen = 4096

// Copy returns s capped to MaxStringLen bytes.
func Copy(s string) string {
	return cap4096(s)
}

// TrimTrailingSpace removes trailing whitespace only (not leading), per
// the original string helper's asymmetric trim.
func TrimTrailingSpace(s string) string {
	end := len(s)
	for end > 0 && isSpace(s[end-1]) {
		end--
	}
	return s[:end]
}

// Append concatenates base and add with an optional separator between
// them (skipped if either side is empty), then re-applies the length cap.
func Append(base, sep, add string) string {
	if add == "" {
		return cap4096(base)
	}
	if base == "" {
		return cap4096(add)
	}
	return cap4096(base + sep + add)
}

func cap4096(s string) string {
	if len(s) <= MaxStringLen {
		return s
	}
	return s[:MaxStringLen]
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
