package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/prop-format/ir"
	"github.com/signadot/prop-format/token"
)

type EncState struct {
	depth  int
	indent string
	wire   bool

	Color func(ColorAttr, string) string
}

// Encode writes the children of node, in order, to w. The value of node
// itself has no place in prop text and is not written.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: "\t",
	}
	for _, opt := range opts {
		opt(es)
	}
	for _, c := range node.Children {
		if err := encodeEntry(w, c.Key, c.Node, es); err != nil {
			return err
		}
	}
	return nil
}

func (es *EncState) nl() string {
	if es.wire {
		return " "
	}
	return "\n"
}

func (es *EncState) assign() string {
	if es.wire {
		return "="
	}
	return " = "
}

func (es *EncState) indentString() string {
	if es.wire {
		return ""
	}
	return strings.Repeat(es.indent, es.depth)
}

func encodeEntry(w io.Writer, key string, node *ir.Node, es *EncState) error {
	if !token.IsLabel(key) {
		return fmt.Errorf("%w: key %q is not a valid label", ErrEncoding, key)
	}
	indent := es.indentString()
	var sb strings.Builder
	sb.WriteString(indent)
	sb.WriteString(applyColor(es, KeyColor, key))
	if v, err := node.Value(); err == nil {
		sb.WriteString(applyColor(es, SepColor, es.assign()))
		sb.WriteString(applyColor(es, ValueColor, strconv.Quote(v)))
	}
	sb.WriteString(es.nl())
	if !node.HasChildren() {
		return writeString(w, sb.String())
	}
	sb.WriteString(indent)
	sb.WriteString(applyColor(es, SepColor, "{"))
	sb.WriteString(es.nl())
	if err := writeString(w, sb.String()); err != nil {
		return err
	}
	es.depth++
	for _, c := range node.Children {
		if err := encodeEntry(w, c.Key, c.Node, es); err != nil {
			return err
		}
	}
	es.depth--
	return writeString(w, indent+applyColor(es, SepColor, "}")+es.nl())
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(attr, v)
}
