package token

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Delims is the delimiter set of the prop format.
const Delims = "={};"

type TokenType int

const (
	TEOF TokenType = iota
	TDelim
	TWord
	TString
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TEOF:    "TEOF",
		TDelim:  "TDelim",
		TWord:   "TWord",
		TString: "TString",
	}[t]
}

type Token struct {
	Type TokenType
	Pos  Pos
	// Text is the token text; for TString it is the unquoted value.
	Text string
}

func (t *Token) Is(delim byte) bool {
	return t.Type == TDelim && t.Text[0] == delim
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos)
}

// IsLabel reports whether s can be used as a key in prop text: it must
// start with a letter and contain no whitespace, delimiter or quote.
func IsLabel(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || !unicode.IsLetter(r) {
		return false
	}
	return !strings.ContainsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '"' || strings.ContainsRune(Delims, r)
	})
}
