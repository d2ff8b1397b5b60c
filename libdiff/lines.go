// Package libdiff computes line differences between property trees.
//
// Both trees are rendered as readable prop text and compared line by line,
// so the result reads the way the files do.
package libdiff

import (
	"bytes"
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/signadot/prop-format/encode"
	"github.com/signadot/prop-format/ir"
)

type Op int8

const (
	OpEqual Op = iota
	OpDelete
	OpInsert
)

func (o Op) String() string {
	switch o {
	case OpDelete:
		return "-"
	case OpInsert:
		return "+"
	default:
		return " "
	}
}

// Line is one line of output, without its newline.
type Line struct {
	Op   Op
	Text string
}

func Lines(from, to *ir.Node) ([]Line, error) {
	a, err := text(from)
	if err != nil {
		return nil, err
	}
	b, err := text(to)
	if err != nil {
		return nil, err
	}
	return Text(a, b), nil
}

// Text diffs two texts line by line.
func Text(a, b string) []Line {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)
	var res []Line
	for _, d := range diffs {
		op := OpEqual
		switch d.Type {
		case diffpatch.DiffDelete:
			op = OpDelete
		case diffpatch.DiffInsert:
			op = OpInsert
		}
		for _, ln := range splitLines(d.Text) {
			res = append(res, Line{Op: op, Text: ln})
		}
	}
	return res
}

// Equal reports whether lines contains no changes.
func Equal(lines []Line) bool {
	for i := range lines {
		if lines[i].Op != OpEqual {
			return false
		}
	}
	return true
}

func text(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
