package doctree

import (
	"fmt"

	"github.com/npillmayer/containers/array"
	"github.com/npillmayer/containers/sstring"
)

// Kind is the type of a document node.
type Kind uint8

// Kinds of document nodes.
const (
	DocumentKind Kind = iota
	ElementKind
	TextKind
	CommentKind
)

func (k Kind) String() string {
	switch k {
	case DocumentKind:
		return "document"
	case ElementKind:
		return "element"
	case TextKind:
		return "text"
	case CommentKind:
		return "comment"
	}
	return "unknown"
}

// Attr is an attribute of an element.
type Attr struct {
	Key   string
	Value sstring.String
}

// Clone copies an attribute.
func (a *Attr) Clone() (Attr, error) {
	v, err := a.Value.Clone()
	if err != nil {
		return Attr{}, err
	}
	return Attr{Key: a.Key, Value: v}, nil
}

// Destroy releases the value of a.
func (a *Attr) Destroy() {
	a.Value.Destroy()
}

// Element is the payload of a document tree node.
type Element struct {
	Kind  Kind
	Tag   string         // element name for ElementKind
	Text  sstring.String // content of text and comment nodes
	Attrs array.Array[Attr]
}

// Attr returns the value of the attribute named key.
func (e *Element) Attr(key string) (string, bool) {
	for _, a := range e.Attrs.All() {
		if a.Key == key {
			return a.Value.String(), true
		}
	}
	return "", false
}

// Clone returns a deep copy of e.
func (e *Element) Clone() (Element, error) {
	text, err := e.Text.Clone()
	if err != nil {
		return Element{}, err
	}
	attrs, err := e.Attrs.Clone()
	if err != nil {
		text.Destroy()
		return Element{}, err
	}
	return Element{Kind: e.Kind, Tag: e.Tag, Text: text, Attrs: attrs}, nil
}

// Destroy releases text and attributes of e.
func (e *Element) Destroy() {
	e.Text.Destroy()
	e.Attrs.Clear()
}

func (e *Element) String() string {
	switch e.Kind {
	case ElementKind:
		return "<" + e.Tag + ">"
	case TextKind, CommentKind:
		return fmt.Sprintf("%s %q", e.Kind, e.Text.String())
	}
	return e.Kind.String()
}
