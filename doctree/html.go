package doctree

import (
	"fmt"
	"io"
	"iter"

	"github.com/npillmayer/containers"
	"github.com/npillmayer/containers/sstring"
	"github.com/npillmayer/containers/tree"
	"golang.org/x/net/html"
)

// Tree is a document tree.
type Tree = tree.Node[Element]

// FromHTML parses an HTML fragment and returns a document tree. The root of
// the tree is of DocumentKind and holds the top-level nodes of the
// fragment.
func FromHTML(input io.Reader) (*Tree, error) {
	nodes, err := html.ParseFragment(input, nil)
	if err != nil {
		return nil, err
	}
	doc := tree.NewRoot(Element{Kind: DocumentKind})
	for _, n := range nodes {
		if err := addConverted(doc, n); err != nil {
			doc.Destroy()
			return nil, err
		}
	}
	tracer().Debugf("doctree: parsed fragment into %d nodes", doc.Count())
	return doc, nil
}

// FromNode converts the subtree of an HTML node into a document tree.
// Doctype nodes are dropped.
func FromNode(n *html.Node) (*Tree, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil HTML node", containers.ErrIllegalArguments)
	}
	var e Element
	switch n.Type {
	case html.DocumentNode:
		e.Kind = DocumentKind
	case html.ElementNode:
		e.Kind, e.Tag = ElementKind, n.Data
		for _, a := range n.Attr {
			attr := Attr{Key: a.Key}
			if err := attr.Value.AssignString(a.Val); err != nil {
				return nil, err
			}
			if err := e.Attrs.Add(attr); err != nil {
				attr.Destroy()
				e.Destroy()
				return nil, err
			}
		}
	case html.TextNode, html.CommentNode:
		e.Kind = TextKind
		if n.Type == html.CommentNode {
			e.Kind = CommentKind
		}
		if err := e.Text.AssignString(n.Data); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w: cannot convert HTML node of type %d",
			containers.ErrIllegalArguments, n.Type)
	}
	root := tree.NewRoot(e)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := addConverted(root, c); err != nil {
			root.Destroy()
			return nil, err
		}
	}
	return root, nil
}

func addConverted(parent *Tree, n *html.Node) error {
	if n.Type == html.DoctypeNode {
		return nil
	}
	child, err := FromNode(n)
	if err != nil {
		return err
	}
	if _, err = parent.Add(child); err != nil {
		child.Destroy()
	}
	return err
}

// InnerText returns the textual content of a document node and all its
// descendents. It resembles the text produced by
//
//	document.getElementById("myNode").innerText
//
// in JavaScript, except that it cannot respect CSS styling suppressing the
// visibility of descendents.
func InnerText(node *Tree) (*sstring.String, error) {
	if node == nil {
		return nil, containers.ErrIllegalArguments
	}
	text := &sstring.String{}
	for n := range node.All() {
		if n.Value.Kind != TextKind {
			continue
		}
		if err := text.Append(&n.Value.Text); err != nil {
			return nil, err
		}
	}
	return text, nil
}

// TextFromHTML extracts the pure text of an HTML fragment.
func TextFromHTML(input io.Reader) (*sstring.String, error) {
	doc, err := FromHTML(input)
	if err != nil {
		return nil, err
	}
	defer doc.Destroy()
	return InnerText(doc)
}

// ElementsByTag returns the element nodes below node with the given tag,
// in document order.
func ElementsByTag(node *Tree, tag string) iter.Seq[*Tree] {
	return func(yield func(*Tree) bool) {
		for n := range node.All() {
			if n.Value.Kind == ElementKind && n.Value.Tag == tag {
				if !yield(n) {
					return
				}
			}
		}
	}
}
