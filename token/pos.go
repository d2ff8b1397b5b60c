package token

import "fmt"

// Pos is a 1-based line and column plus a byte offset.
type Pos struct {
	Offset int
	Line   int
	Col    int
}

func (p Pos) String() string {
	return fmt.Sprintf("at offset %d (line=%d, col=%d)", p.Offset, p.Line, p.Col)
}
