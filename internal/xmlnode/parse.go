package xmlnode

import (
	"encoding/xml"
	"io"
	"strings"

	"github.com/go-cyberiada/cyberiadaml/internal/cyberr"
)

// Parse reads a full XML document from r and returns its root Element.
// Local names are kept as written (including any namespace prefix, e.g.
// "y:GenericNode") since the decoders look elements up by the same raw
// names the dialects use; the xmlns declarations themselves are kept
// as ordinary attributes, which dialect detection reads.
func Parse(r io.Reader) (*Element, error) {
	dec := xml.NewDecoder(r)
	dec.Strict = false

	var stack []*Element
	var root *Element

	for {
		tok, err := dec.RawToken()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, cyberr.Wrap(cyberr.XMLError, err, "malformed XML")
		}

		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Name: rawName(t.Name)}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: rawName(a.Name), Value: a.Value})
			}
			if len(stack) > 0 {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, el)
			}
			stack = append(stack, el)

		case xml.EndElement:
			if len(stack) == 0 {
				return nil, cyberr.XML("unbalanced end element </%s>", t.Name.Local)
			}
			el := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				root = el
			}

		case xml.CharData:
			if len(stack) > 0 {
				top := stack[len(stack)-1]
				top.CharData += string(t)
			}
		}
	}

	if root == nil {
		return nil, cyberr.XML("document has no root element")
	}
	return root, nil
}

// rawName reproduces the "prefix:local" spelling an element or
// attribute had in the source document. encoding/xml splits a qualified
// name into (Space, Local); Space holds the prefix verbatim when the
// decoder isn't asked to resolve namespaces against a URI table, which
// is exactly the behavior GraphML's two dialects need here.
func rawName(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	if strings.Contains(n.Space, "/") || strings.Contains(n.Space, ":") {
		// Space looks like a namespace URI, not a prefix (what
		// xml.Decoder.Token, unlike RawToken, puts there). Fall back to
		// the local name; the decoders match on local names for
		// anything in the default namespace.
		return n.Local
	}
	return n.Space + ":" + n.Local
}
