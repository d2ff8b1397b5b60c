package token

import (
	"fmt"
	"strconv"
	"strings"
)

// Stream tokenizes an in-memory document.
type Stream struct {
	d []byte

	i, line, col int
	peeked       *Token
}

func NewStream(d []byte) *Stream {
	return &Stream{
		d:    d,
		line: 1,
		col:  1,
	}
}

func (s *Stream) Pos() Pos {
	if s.peeked != nil {
		return s.peeked.Pos
	}
	return Pos{Offset: s.i, Line: s.line, Col: s.col}
}

// Next consumes and returns the next token. At the end of input it returns a
// TEOF token, repeatedly.
func (s *Stream) Next() (Token, error) {
	if s.peeked != nil {
		t := *s.peeked
		s.peeked = nil
		return t, nil
	}
	return s.scan()
}

// Peek returns the next token without consuming it.
func (s *Stream) Peek() (Token, error) {
	if s.peeked != nil {
		return *s.peeked, nil
	}
	t, err := s.scan()
	if err != nil {
		return t, err
	}
	s.peeked = &t
	return t, nil
}

// RestOfLine consumes input up to and including the next newline and returns
// it without the newline. A peeked token is discarded and the line is read
// from where that token started.
func (s *Stream) RestOfLine() string {
	if s.peeked != nil {
		p := s.peeked.Pos
		s.i, s.line, s.col = p.Offset, p.Line, p.Col
		s.peeked = nil
	}
	start := s.i
	for s.i < len(s.d) && s.d[s.i] != '\n' {
		s.advance()
	}
	end := s.i
	if s.i < len(s.d) {
		s.advance()
	}
	return strings.TrimSuffix(string(s.d[start:end]), "\r")
}

func (s *Stream) advance() {
	c := s.d[s.i]
	s.i++
	switch {
	case c == '\n':
		s.line++
		s.col = 1
	case c&0xC0 != 0x80:
		s.col++
	}
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

func isDelim(c byte) bool {
	return strings.IndexByte(Delims, c) != -1
}

func (s *Stream) scan() (Token, error) {
	for s.i < len(s.d) && isSpace(s.d[s.i]) {
		s.advance()
	}
	pos := Pos{Offset: s.i, Line: s.line, Col: s.col}
	if s.i == len(s.d) {
		return Token{Type: TEOF, Pos: pos}, nil
	}
	c := s.d[s.i]
	switch {
	case isDelim(c):
		s.advance()
		return Token{Type: TDelim, Pos: pos, Text: string(c)}, nil
	case c == '"':
		return s.scanQuoted(pos)
	}
	start := s.i
	for s.i < len(s.d) {
		c := s.d[s.i]
		if isSpace(c) || isDelim(c) {
			break
		}
		s.advance()
	}
	return Token{Type: TWord, Pos: pos, Text: string(s.d[start:s.i])}, nil
}

func (s *Stream) scanQuoted(pos Pos) (Token, error) {
	j := s.i + 1
	for {
		if j >= len(s.d) || s.d[j] == '\n' {
			return Token{}, fmt.Errorf("%w %s", ErrUnterminatedString, pos)
		}
		c := s.d[j]
		if c == '\\' {
			j += 2
			continue
		}
		j++
		if c == '"' {
			break
		}
	}
	raw := string(s.d[s.i:j])
	v, err := strconv.Unquote(raw)
	if err != nil {
		return Token{}, fmt.Errorf("invalid string %s %s: %w", raw, pos, err)
	}
	for s.i < j {
		s.advance()
	}
	return Token{Type: TString, Pos: pos, Text: v}, nil
}
