package parse

import (
	"errors"
	"strings"
	"testing"

	"github.com/signadot/prop-format/encode"
	"github.com/signadot/prop-format/ir"
)

func tree(build func(root *ir.Node)) *ir.Node {
	root := ir.New()
	build(root)
	return root
}

func TestParseOK(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want *ir.Node
	}{
		{
			name: "empty",
			in:   "",
			want: ir.New(),
		},
		{
			name: "byte order mark",
			in:   "\ufeffa = 1\nb",
			want: tree(func(r *ir.Node) {
				r.AddValue("a", "1")
				r.Add("b")
			}),
		},
		{
			name: "only comments",
			in:   "; one\n  ; two\n",
			want: ir.New(),
		},
		{
			name: "duplicate keys",
			in:   "a=1 a=2",
			want: tree(func(r *ir.Node) {
				r.AddValue("a", "1")
				r.AddValue("a", "2")
			}),
		},
		{
			name: "quoted",
			in:   `name = "hello world" blank = ""`,
			want: tree(func(r *ir.Node) {
				r.AddValue("name", "hello world")
				r.AddValue("blank", "")
			}),
		},
		{
			name: "nested",
			in: `
server {
	host = localhost ; trailing comment
	port = 8080
	tls { enabled = false }
}
`,
			want: tree(func(r *ir.Node) {
				s := r.Add("server")
				s.AddValue("host", "localhost")
				s.AddValue("port", "8080")
				s.Add("tls").AddValue("enabled", "false")
			}),
		},
		{
			name: "empty nodes",
			in:   "a b { } c { d }",
			want: tree(func(r *ir.Node) {
				r.Add("a")
				r.Add("b")
				r.Add("c").Add("d")
			}),
		},
		{
			name: "value and block",
			in:   "a = \"x\"\n{\n\tb = \"y\"\n}\n",
			want: tree(func(r *ir.Node) {
				r.AddValue("a", "x").AddValue("b", "y")
			}),
		},
		{
			name: "comment between value and block",
			in:   "a = x ; note\n{ b = y }",
			want: tree(func(r *ir.Node) {
				r.AddValue("a", "x").AddValue("b", "y")
			}),
		},
		{
			name: "comment inside block",
			in:   "a {\n; b = 1\nc = 2\n}",
			want: tree(func(r *ir.Node) {
				r.Add("a").AddValue("c", "2")
			}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.in))
			if err != nil {
				t.Fatalf("parse %q: %v", tt.in, err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got\n%s\nwant\n%s", encode.MustString(got), encode.MustString(tt.want))
			}
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		in    string
		e     error
		token string
		line  int
	}{
		{in: "a =", e: ErrSyntax, line: 1},
		{in: "a = {", e: ErrSyntax, token: "{"},
		{in: "a = }", e: ErrSyntax, token: "}"},
		{in: "1abc = 2", e: ErrSyntax, token: "1abc"},
		{in: "}", e: ErrSyntax, token: "}"},
		{in: "a { 1 }", e: ErrSyntax, token: "1"},
		{in: "a { b = 1 =", e: ErrSyntax, token: "="},
		{in: "a {\n b = 1\n", e: ErrUnterminated, token: "{", line: 1},
		{in: "a { b { c = 1 }", e: ErrUnterminated, token: "{"},
		{in: `a = "open`, e: ErrSyntax},
		{in: "a = 1\n\n= 2", e: ErrSyntax, token: "=", line: 3},
	}
	for _, tt := range tests {
		_, err := Parse([]byte(tt.in), Filename("test.prop"))
		if err == nil {
			t.Errorf("%q: expected error", tt.in)
			continue
		}
		if !errors.Is(err, tt.e) {
			t.Errorf("%q: got %v, want %v", tt.in, err, tt.e)
		}
		var se *SyntaxError
		if !errors.As(err, &se) {
			t.Errorf("%q: %T is not a *SyntaxError", tt.in, err)
			continue
		}
		if se.Token != tt.token {
			t.Errorf("%q: token %q, want %q", tt.in, se.Token, tt.token)
		}
		if tt.line != 0 && se.Pos.Line != tt.line {
			t.Errorf("%q: line %d, want %d", tt.in, se.Pos.Line, tt.line)
		}
		if !strings.HasPrefix(err.Error(), "test.prop:") {
			t.Errorf("%q: message %q lacks file name", tt.in, err)
		}
	}
}

func TestParseMaxDepth(t *testing.T) {
	in := strings.Repeat("a { ", 4) + strings.Repeat("} ", 4)
	if _, err := Parse([]byte(in), MaxDepth(4)); err != nil {
		t.Errorf("depth 4: %v", err)
	}
	_, err := Parse([]byte(in), MaxDepth(3))
	if !errors.Is(err, ErrTooDeep) {
		t.Errorf("depth 3: got %v", err)
	}
	deep := strings.Repeat("a{", DefaultMaxDepth+1)
	if _, err := Parse([]byte(deep)); !errors.Is(err, ErrTooDeep) {
		t.Errorf("default depth: got %v", err)
	}
}
