package decode

import (
	"github.com/go-cyberiada/cyberiadaml/internal/cyberr"
	"github.com/go-cyberiada/cyberiadaml/internal/xmlnode"
)

const yedNamespace = "http://www.yworks.com/xml/graphml"

// detectDialect inspects root's attributes for a yEd namespace
// declaration (any attribute named "xmlns:<prefix>" whose value is the
// yFiles namespace URI). Absence selects Native.
func detectDialect(root *xmlnode.Element) Dialect {
	for _, a := range root.Attrs {
		if a.Value == yedNamespace {
			return DialectLegacy
		}
	}
	return DialectNative
}

// resolveDialect reconciles a caller-supplied hint against what the
// document's namespaces actually declare.
func resolveDialect(root *xmlnode.Element, hint Dialect) (Dialect, error) {
	detected := detectDialect(root)
	if hint == DialectAuto {
		return detected, nil
	}
	if hint != detected {
		return 0, cyberr.XML("dialect hint does not match document namespace declarations")
	}
	return hint, nil
}

// DetectFlattened scans raw for any pair of adjacent whitespace
// characters; their absence means the yEd export ran its "flattened"
// action-text mode, where a node's several actions share one physical
// line with no separating newlines (spec.md §6).
func DetectFlattened(raw []byte) bool {
	for i := 0; i+1 < len(raw); i++ {
		if isSpaceByte(raw[i]) && isSpaceByte(raw[i+1]) {
			return false
		}
	}
	return true
}

func isSpaceByte(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
