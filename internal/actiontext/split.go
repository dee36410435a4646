package actiontext

import "strings"

// SplitNodeActionBlocks splits a native-dialect node's action text on the
// blank-line paragraph separator ("\n\n" or "\r\n\r\n") per spec.md §4.2,
// skipping any paragraph left blank. A block may itself span more than
// one physical line (a header line ending in "/" and the behavior on
// its own following line, the layout EncodeNodeActions writes) — only a
// blank line actually starts the next action. Each returned block is fed
// to ParseNodeBlockAction independently.
func SplitNodeActionBlocks(text string) []string {
	var blocks []string
	for _, para := range splitParagraphs(text) {
		if strings.TrimSpace(para) == "" {
			continue
		}
		blocks = append(blocks, para)
	}
	return blocks
}

// splitParagraphs normalizes CRLF to LF (so "\r\n\r\n" and "\n\n" are
// handled identically) and splits on the resulting blank-line separator.
func splitParagraphs(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n\n")
}

// SplitLegacyActionBlocks splits a yEd-dialect node's action text into
// blocks. Without flatten it works line by line: blank lines are skipped,
// a line that begins "<trigger>[guard]/" (looksLikeLegacyActionStart)
// starts a new block, and any other line is appended to the current
// block, so a behavior may continue over several lines. With flatten it
// walks the text one character at a time and closes a block after every
// literal '/' or ')' (splitFlattenedLegacyBlocks).
func SplitLegacyActionBlocks(text string, flatten bool) []string {
	if flatten {
		return splitFlattenedLegacyBlocks(text)
	}
	return splitLegacyBlocksByLine(text)
}

func splitLegacyBlocksByLine(text string) []string {
	var blocks []string
	var current strings.Builder
	for _, line := range splitLines(text) {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		if looksLikeLegacyActionStart(trimmed) && current.Len() > 0 {
			blocks = append(blocks, current.String())
			current.Reset()
		}
		if current.Len() > 0 {
			current.WriteByte('\n')
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		blocks = append(blocks, current.String())
	}
	return blocks
}

// splitFlattenedLegacyBlocks walks the text one character at a time,
// closing a block at every '/' or ')' it finds — the two characters that
// can legally end an action's guard-or-behavior portion in the flattened
// yEd encoding, where a single physical line holds every action run
// together without newlines between them.
func splitFlattenedLegacyBlocks(text string) []string {
	var blocks []string
	start := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '/', ')':
			blocks = append(blocks, text[start:i+1])
			start = i + 1
		}
	}
	if start < len(text) {
		rest := strings.TrimSpace(text[start:])
		if rest != "" {
			blocks = append(blocks, rest)
		}
	}
	return blocks
}

func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	return strings.Split(text, "\n")
}
