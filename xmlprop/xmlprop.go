// Package xmlprop converts XML documents into property trees.
//
// The first top-level element becomes the single child of an empty root,
// keyed by its tag. Within an element, attributes become value-only children
// keyed by attribute name, followed by the child elements keyed by tag. The
// leading text of an element is its value, unchanged, unless it is only
// whitespace such as indentation.
package xmlprop

import (
	"errors"
	"fmt"
	"strings"

	"github.com/beevik/etree"

	"github.com/signadot/prop-format/ir"
)

var ErrXML = errors.New("xml error")

func Parse(d []byte) (*ir.Node, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrXML, err)
	}
	root := ir.New()
	el := doc.Root()
	if el == nil {
		return root, nil
	}
	root.AddChild(el.FullTag(), FromElement(el))
	return root, nil
}

// FromElement converts one element and everything below it.
func FromElement(el *etree.Element) *ir.Node {
	node := ir.New()
	if text := el.Text(); strings.TrimSpace(text) != "" {
		node.SetValue(text)
	}
	for _, attr := range el.Attr {
		node.AddValue(attr.FullKey(), attr.Value)
	}
	for _, child := range el.ChildElements() {
		tag := child.FullTag()
		if tag == "" {
			continue
		}
		node.AddChild(tag, FromElement(child))
	}
	return node
}
