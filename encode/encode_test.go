package encode_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/signadot/prop-format/encode"
	"github.com/signadot/prop-format/ir"
	"github.com/signadot/prop-format/parse"
)

func sample() *ir.Node {
	root := ir.New()
	root.AddValue("name", "alice")
	srv := root.Add("server")
	srv.AddValue("host", "localhost")
	srv.Add("tls").AddValue("enabled", "false")
	root.Add("empty")
	return root
}

func encodeString(t *testing.T, node *ir.Node, opts ...encode.EncodeOption) string {
	t.Helper()
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(node, buf, opts...); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func TestEncodeReadable(t *testing.T) {
	want := `name = "alice"
server
{
	host = "localhost"
	tls
	{
		enabled = "false"
	}
}
empty
`
	if got := encodeString(t, sample()); got != want {
		t.Errorf("got\n%s\nwant\n%s", got, want)
	}
}

func TestEncodeWire(t *testing.T) {
	want := `name="alice" server { host="localhost" tls { enabled="false" } } empty `
	if got := encodeString(t, sample(), encode.EncodeWire(true)); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func TestEncodeIndent(t *testing.T) {
	root := ir.New()
	root.Add("a").AddValue("b", "c")
	want := "a\n{\n  b = \"c\"\n}\n"
	if got := encodeString(t, root, encode.EncodeIndent("  ")); got != want {
		t.Errorf("got %q\nwant %q", got, want)
	}
}

func roundTripTrees() map[string]*ir.Node {
	dups := ir.New()
	dups.AddValue("a", "1")
	dups.AddValue("a", "2")

	both := ir.New()
	b := both.AddValue("b", "value")
	b.AddValue("c", "child")
	b.Add("d").Add("e")

	odd := ir.New()
	odd.AddValue("quote", `say "hi"`)
	odd.AddValue("newline", "line1\nline2")
	odd.AddValue("delims", "a=b {c} ;d")
	odd.AddValue("unicode", "héllo wörld")
	odd.AddValue("blank", "")
	odd.AddValue("backslash", `C:\path\to`)

	return map[string]*ir.Node{
		"empty":  ir.New(),
		"sample": sample(),
		"dups":   dups,
		"both":   both,
		"odd":    odd,
	}
}

func TestRoundTrip(t *testing.T) {
	for name, tree := range roundTripTrees() {
		for _, wire := range []bool{false, true} {
			text := encodeString(t, tree, encode.EncodeWire(wire))
			back, err := parse.Parse([]byte(text))
			if err != nil {
				t.Errorf("%s wire=%v: %v\n%s", name, wire, err, text)
				continue
			}
			if !back.Equal(tree) {
				t.Errorf("%s wire=%v: round trip changed tree\n%s\n%s", name, wire, text, encode.MustString(back))
			}
		}
	}
}

func TestEncodeBadKey(t *testing.T) {
	for _, key := range []string{"", "1a", "a b", "a=b", "_x"} {
		root := ir.New()
		root.Add("ok").AddValue(key, "v")
		err := encode.Encode(root, bytes.NewBuffer(nil))
		if !errors.Is(err, encode.ErrEncoding) {
			t.Errorf("key %q: got %v", key, err)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	colors := &encode.Colors{
		Default: func(s string, _ ...any) string { return s },
		Map: map[encode.ColorAttr]func(string, ...any) string{
			encode.KeyColor:   func(s string, _ ...any) string { return "<" + s + ">" },
			encode.ValueColor: func(s string, _ ...any) string { return "[" + s + "]" },
		},
	}
	root := ir.New()
	root.AddValue("a", "1")
	got := encodeString(t, root, encode.EncodeColors(colors))
	if got != "<a> = [\"1\"]\n" {
		t.Errorf("got %q", got)
	}
}

func TestMustString(t *testing.T) {
	if got := encode.MustString(sample()); !strings.HasPrefix(got, `name = "alice"`) || strings.HasSuffix(got, "\n") {
		t.Errorf("got %q", got)
	}
}

func TestEncodeYAML(t *testing.T) {
	root := ir.New()
	root.AddValue("name", "x")
	root.AddValue("tag", "a")
	root.AddValue("tag", "b")
	srv := root.AddValue("server", "main")
	srv.AddValue("host", "localhost")
	root.Add("empty")

	buf := bytes.NewBuffer(nil)
	if err := encode.EncodeYAML(root, buf); err != nil {
		t.Fatal(err)
	}
	var got any
	if err := yaml.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("%v\n%s", err, buf)
	}
	want := map[string]any{
		"name": "x",
		"tag":  []any{"a", "b"},
		"server": map[string]any{
			ir.ValueKey: "main",
			"host":      "localhost",
		},
		"empty": nil,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("yaml (-want +got):\n%s\n%s", diff, buf)
	}
	out := buf.String()
	if strings.Index(out, "name") > strings.Index(out, "tag") || strings.Index(out, "tag") > strings.Index(out, "server") {
		t.Errorf("key order lost:\n%s", out)
	}
}
