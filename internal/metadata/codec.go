package metadata

import (
	"strings"

	"github.com/go-cyberiada/cyberiadaml/internal/cyberr"
	"github.com/go-cyberiada/cyberiadaml/internal/model"
)

// Encode renders m as the comment body text stored in the CGML_META
// formal comment: one "key/ value" line per set field, a blank line
// after each, then transitionOrder and eventPropagation (always written;
// any value other than exitFirst / propagate is written as
// transitionFirst / block), then any Extensions in stored order.
func Encode(m model.Metadata) string {
	var b strings.Builder
	for _, f := range fields {
		if v := f.get(&m); v != "" {
			b.WriteString(f.key)
			b.WriteString("/ ")
			b.WriteString(v)
			b.WriteString("\n\n")
		}
	}

	b.WriteString(keyTransitionOrder)
	b.WriteString("/ ")
	if m.TransitionOrder == model.ExitFirst {
		b.WriteString(valExitFirst)
	} else {
		b.WriteString(valTransitionFirst)
	}
	b.WriteString("\n\n")

	b.WriteString(keyEventPropagation)
	b.WriteString("/ ")
	if m.EventPropagation == model.Propagate {
		b.WriteString(valPropagate)
	} else {
		b.WriteString(valBlock)
	}
	b.WriteString("\n\n")

	for _, kv := range m.Extensions {
		b.WriteString(kv.Key)
		b.WriteString("/ ")
		b.WriteString(kv.Value)
		b.WriteString("\n\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// Decode parses a CGML_META comment body into a model.Metadata. Unknown
// keys are preserved verbatim in Extensions rather than rejected: the
// original importer treats an unrecognized key as a hard format error,
// but a library meant to round-trip documents written by newer importers
// should not lose data it doesn't yet understand, so this is a
// deliberate widening (see DESIGN.md).
func Decode(body string) (model.Metadata, error) {
	var m model.Metadata
	seen := make(map[string]bool)

	for _, line := range splitEntries(body) {
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, "/")
		if !ok {
			return model.Metadata{}, cyberr.MetadataFormat("cannot find separator in metadata line %q", line)
		}
		key = strings.TrimSpace(key)
		value = strings.TrimLeft(value, " \t")
		value = strings.TrimRight(value, " \t\r\n")

		switch key {
		case keyTransitionOrder:
			switch value {
			case valTransitionFirst:
				m.TransitionOrder = model.TransitionFirst
			case valExitFirst:
				m.TransitionOrder = model.ExitFirst
			default:
				return model.Metadata{}, cyberr.MetadataFormat("bad value of transitionOrder: %q", value)
			}
			continue
		case keyEventPropagation:
			switch value {
			case valBlock:
				m.EventPropagation = model.Block
			case valPropagate:
				m.EventPropagation = model.Propagate
			default:
				return model.Metadata{}, cyberr.MetadataFormat("bad value of eventPropagation: %q", value)
			}
			continue
		}

		if f := fieldByKey(key); f != nil {
			if seen[key] {
				return model.Metadata{}, cyberr.MetadataFormat("double metadata parameter: %s", f.title)
			}
			seen[key] = true
			f.set(&m, value)
			continue
		}

		m.Extensions = append(m.Extensions, model.KV{Key: key, Value: value})
	}

	if m.StandardVersion == "" {
		return model.Metadata{}, cyberr.MetadataFormat("standard version is not set")
	}
	if m.StandardVersion != standardVersion10 {
		return model.Metadata{}, cyberr.MetadataFormat("unsupported standard version: %s", m.StandardVersion)
	}

	if m.TransitionOrder == model.TransitionOrderUnset {
		m.TransitionOrder = model.TransitionFirst
	}
	if m.EventPropagation == model.EventPropagationUnset {
		m.EventPropagation = model.Block
	}

	return m, nil
}

// splitEntries turns the comment body into logical lines, tolerating
// both LF and CRLF line endings and the blank-line separators between
// entries.
func splitEntries(body string) []string {
	body = strings.ReplaceAll(body, "\r\n", "\n")
	return strings.Split(body, "\n")
}
