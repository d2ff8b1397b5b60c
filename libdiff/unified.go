package libdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Unified renders lines in unified diff form with n lines of context around
// each change. A negative n keeps every line and omits hunk headers.
func Unified(lines []Line, n int) string {
	return unified(lines, n, nil)
}

// UnifiedColor is Unified with ANSI colors, whether or not the output is a
// terminal.
func UnifiedColor(lines []Line, n int) string {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	hdr := color.New(color.FgCyan)
	for _, c := range []*color.Color{del, ins, hdr} {
		c.EnableColor()
	}
	return unified(lines, n, &palette{
		del: del.SprintFunc(),
		ins: ins.SprintFunc(),
		hdr: hdr.SprintFunc(),
	})
}

type palette struct {
	del, ins, hdr func(...any) string
}

func (p *palette) line(ln Line) string {
	s := ln.Op.String() + ln.Text
	if p == nil {
		return s
	}
	switch ln.Op {
	case OpDelete:
		return p.del(s)
	case OpInsert:
		return p.ins(s)
	}
	return s
}

func (p *palette) header(s string) string {
	if p == nil {
		return s
	}
	return p.hdr(s)
}

func unified(lines []Line, n int, p *palette) string {
	var sb strings.Builder
	if n < 0 {
		for _, ln := range lines {
			sb.WriteString(p.line(ln))
			sb.WriteByte('\n')
		}
		return sb.String()
	}
	for _, h := range hunks(lines, n) {
		sb.WriteString(p.header(h.header(lines)))
		sb.WriteByte('\n')
		for _, ln := range lines[h.start:h.end] {
			sb.WriteString(p.line(ln))
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

type hunk struct {
	start, end int
}

// hunks groups the changes of lines into ranges padded by n lines of
// context; ranges which touch are joined.
func hunks(lines []Line, n int) []hunk {
	var res []hunk
	for i, ln := range lines {
		if ln.Op == OpEqual {
			continue
		}
		start := max(0, i-n)
		end := min(len(lines), i+n+1)
		if k := len(res) - 1; k >= 0 && start <= res[k].end {
			res[k].end = max(res[k].end, end)
			continue
		}
		res = append(res, hunk{start: start, end: end})
	}
	return res
}

func (h hunk) header(lines []Line) string {
	oldPos, newPos := 0, 0
	for _, ln := range lines[:h.start] {
		if ln.Op != OpInsert {
			oldPos++
		}
		if ln.Op != OpDelete {
			newPos++
		}
	}
	oldN, newN := 0, 0
	for _, ln := range lines[h.start:h.end] {
		if ln.Op != OpInsert {
			oldN++
		}
		if ln.Op != OpDelete {
			newN++
		}
	}
	return fmt.Sprintf("@@ -%s +%s @@", span(oldPos, oldN), span(newPos, newN))
}

func span(pos, n int) string {
	if n == 0 {
		return fmt.Sprintf("%d,0", pos)
	}
	return fmt.Sprintf("%d,%d", pos+1, n)
}
