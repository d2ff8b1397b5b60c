// Package parse provides prop text parsing support.
package parse

import (
	"bytes"
	"fmt"

	"github.com/signadot/prop-format/debug"
	"github.com/signadot/prop-format/ir"
	"github.com/signadot/prop-format/token"
)

// Parse reads prop text into a tree whose top-level children are the
// entries of the document.
//
//	; comment to end of line
//	name = value
//	block = "optional value" { nested = "x" empty }
//	empty
//
// A leading UTF-8 byte order mark is skipped.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if pOpts.maxDepth <= 0 {
		pOpts.maxDepth = DefaultMaxDepth
	}
	d = bytes.TrimPrefix(d, utf8BOM)
	p := &parser{s: token.NewStream(d), opts: pOpts}
	root := ir.New()
	for {
		t, err := p.next()
		if err != nil {
			return nil, err
		}
		if t.Type == token.TEOF {
			break
		}
		if !isLabel(&t) {
			return nil, p.syntaxErr(&t, fmt.Errorf("%w: invalid label", ErrSyntax))
		}
		if err := p.parseEntry(root.Add(t.Text)); err != nil {
			return nil, err
		}
	}
	if debug.Parse() {
		debug.Logf("parsed %s: %d entries\n", pOpts.filename, root.Len())
	}
	return root, nil
}

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

type parser struct {
	s     *token.Stream
	opts  *parseOpts
	depth int
}

func isLabel(t *token.Token) bool {
	return t.Type == token.TWord && token.IsLabel(t.Text)
}

func (p *parser) syntaxErr(t *token.Token, err error) error {
	return &SyntaxError{
		File:  p.opts.filename,
		Pos:   t.Pos,
		Token: t.Text,
		Err:   err,
	}
}

func (p *parser) tokenErr(err error) error {
	return &SyntaxError{
		File: p.opts.filename,
		Pos:  p.s.Pos(),
		Err:  fmt.Errorf("%w: %w", ErrSyntax, err),
	}
}

// next returns the next token, skipping ';' line comments.
func (p *parser) next() (token.Token, error) {
	for {
		t, err := p.s.Next()
		if err != nil {
			return t, p.tokenErr(err)
		}
		if !t.Is(';') {
			return t, nil
		}
		p.s.RestOfLine()
	}
}

func (p *parser) peek() (token.Token, error) {
	for {
		t, err := p.s.Peek()
		if err != nil {
			return t, p.tokenErr(err)
		}
		if !t.Is(';') {
			return t, nil
		}
		p.s.Next()
		p.s.RestOfLine()
	}
}

// parseEntry reads what follows a label: an optional "= value" and then an
// optional "{ ... }" block. A bare label is an empty node.
func (p *parser) parseEntry(node *ir.Node) error {
	t, err := p.peek()
	if err != nil {
		return err
	}
	if t.Is('=') {
		p.next()
		v, err := p.next()
		if err != nil {
			return err
		}
		switch v.Type {
		case token.TWord, token.TString:
			node.SetValue(v.Text)
		case token.TEOF:
			return p.syntaxErr(&v, fmt.Errorf("%w: missing value at end of input", ErrSyntax))
		default:
			return p.syntaxErr(&v, fmt.Errorf("%w: expected value", ErrSyntax))
		}
		if t, err = p.peek(); err != nil {
			return err
		}
	}
	if !t.Is('{') {
		return nil
	}
	p.next()
	return p.parseBlock(node, &t)
}

func (p *parser) parseBlock(node *ir.Node, open *token.Token) error {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > p.opts.maxDepth {
		return p.syntaxErr(open, fmt.Errorf("%w (max %d)", ErrTooDeep, p.opts.maxDepth))
	}
	for {
		t, err := p.next()
		if err != nil {
			return err
		}
		switch {
		case t.Type == token.TEOF:
			return p.syntaxErr(open, ErrUnterminated)
		case t.Is('}'):
			return nil
		case isLabel(&t):
			if err := p.parseEntry(node.Add(t.Text)); err != nil {
				return err
			}
		default:
			return p.syntaxErr(&t, fmt.Errorf("%w: invalid token", ErrSyntax))
		}
	}
}
