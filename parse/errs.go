package parse

import (
	"errors"
	"fmt"

	"github.com/signadot/prop-format/token"
)

var (
	ErrSyntax       = errors.New("syntax error")
	ErrUnterminated = fmt.Errorf("%w: unterminated block", ErrSyntax)
	ErrTooDeep      = fmt.Errorf("%w: blocks nested too deeply", ErrSyntax)
)

// SyntaxError reports malformed prop text. Err is ErrSyntax or one of the
// errors wrapping it.
type SyntaxError struct {
	File  string
	Pos   token.Pos
	Token string
	Err   error
}

func (e *SyntaxError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	if e.Token == "" {
		return fmt.Sprintf("%s:%d:%d: %v", file, e.Pos.Line, e.Pos.Col, e.Err)
	}
	return fmt.Sprintf("%s:%d:%d: %v: %q", file, e.Pos.Line, e.Pos.Col, e.Err, e.Token)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}
