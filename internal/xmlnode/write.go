package xmlnode

import (
	"fmt"
	"io"
	"strings"
)

const indentUnit = "  "

// Write serializes el and its subtree with 2-space indentation, one
// element per line, matching the layout both GraphML dialects expect on
// export. This is a direct tree walk rather than encoding/xml's struct-
// tag marshaler because element and attribute order here is dictated by
// the format (the key table must precede the graph content, attributes
// must appear in a fixed order per element kind) and a generic
// marshaler has no way to express that against a tree of *Element.
func Write(w io.Writer, el *Element) error {
	bw := &errWriter{w: w}
	bw.writeString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	writeElement(bw, el, 0)
	return bw.err
}

func writeElement(w *errWriter, el *Element, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	w.writeString(indent)
	w.writeString("<")
	w.writeString(el.Name)
	for _, a := range el.Attrs {
		w.writeString(fmt.Sprintf(` %s="%s"`, a.Name, escapeAttr(a.Value)))
	}

	hasChildren := len(el.Children) > 0
	hasText := el.CharData != ""

	if !hasChildren && !hasText {
		w.writeString("/>\n")
		return
	}

	w.writeString(">")
	if hasText && !hasChildren {
		w.writeString(escapeText(el.CharData))
		w.writeString("</")
		w.writeString(el.Name)
		w.writeString(">\n")
		return
	}

	w.writeString("\n")
	for _, c := range el.Children {
		writeElement(w, c, depth+1)
	}
	w.writeString(indent)
	w.writeString("</")
	w.writeString(el.Name)
	w.writeString(">\n")
}

func escapeAttr(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)
	return r.Replace(s)
}

func escapeText(s string) string {
	r := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	return r.Replace(s)
}

// errWriter accumulates the first write error so the recursive writer
// doesn't need an error return on every call.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) writeString(s string) {
	if e.err != nil {
		return
	}
	_, e.err = io.WriteString(e.w, s)
}
