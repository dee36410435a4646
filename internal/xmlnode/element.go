// Package xmlnode is a minimal, generic XML element tree: just enough
// DOM to decode a GraphML document into something the decoder can walk
// by element name and attribute, and to serialize a tree back out with
// the 2-space indentation the GraphML dialects expect. It is not a
// general-purpose XML library — there is no namespace resolution beyond
// carrying prefixes verbatim, no DTD/entity support, and no streaming
// write path.
package xmlnode

// Attr is one attribute of an Element, in document order.
type Attr struct {
	Name  string
	Value string
}

// Element is one node of the tree: an XML start tag, its attributes,
// any child elements, and the character data collected between its
// child elements (GraphML never mixes significant text with nested
// elements at the same level, so a single CharData field is enough).
type Element struct {
	Name     string
	Attrs    []Attr
	Children []*Element
	CharData string
}

// Attr returns the value of the named attribute and whether it was
// present.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr sets (or replaces) the named attribute.
func (e *Element) SetAttr(name, value string) {
	for i, a := range e.Attrs {
		if a.Name == name {
			e.Attrs[i].Value = value
			return
		}
	}
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// AddChild appends child and returns it, for convenient call chaining
// while building an encode-side tree.
func (e *Element) AddChild(child *Element) *Element {
	e.Children = append(e.Children, child)
	return child
}

// ChildrenNamed returns e's direct children whose Name matches name.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// FirstChildNamed returns e's first direct child named name, or nil.
func (e *Element) FirstChildNamed(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// NewElement constructs a detached Element ready to receive attributes
// and children.
func NewElement(name string) *Element {
	return &Element{Name: name}
}
