package prop

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/signadot/prop-format/encode"
	"github.com/signadot/prop-format/ir"
	"github.com/signadot/prop-format/parse"
)

func writeFiles(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func keys(node *ir.Node) []string {
	res := []string{}
	for k := range node.All() {
		res = append(res, k)
	}
	return res
}

func mustParse(t *testing.T, s string) *ir.Node {
	t.Helper()
	node, err := parse.Parse([]byte(s))
	if err != nil {
		t.Fatal(err)
	}
	return node
}

func TestIncludeSplice(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.prop": "a = 1\ninclude { file = f.prop }\nb = 2\n",
		"f.prop":    "c = 3\nd = 4\n",
	})
	node, err := LoadWithIncludes(filepath.Join(dir, "main.prop"), "include")
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, "a = 1 c = 3 d = 4 b = 2")
	if !node.Equal(want) {
		t.Errorf("got\n%s", encode.MustString(node))
	}
}

func TestIncludeMergeChildren(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.prop": "a = 1\ninclude { file = f.prop merge_children = true }\nb = 2\n",
		"f.prop":    "a = 99\ne = 5\n",
	})
	node, err := LoadWithIncludes(filepath.Join(dir, "main.prop"), "include")
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, "a = 1 b = 2 e = 5")
	if !node.Equal(want) {
		t.Errorf("got\n%s", encode.MustString(node))
	}
}

func TestIncludeSeveralDirectives(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.prop": `
inc { file = one.prop }
x = 0
inc { file = two.prop merge_children = true }
inc { file = three.prop }
`,
		"one.prop":   "a = 1 b = 1",
		"two.prop":   "a = 2 x = 2 y = 2",
		"three.prop": "z = 3",
	})
	node, err := LoadWithIncludes(filepath.Join(dir, "main.prop"), "inc")
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, "a = 1 b = 1 x = 0 z = 3 y = 2")
	if !node.Equal(want) {
		t.Errorf("got\n%s", encode.MustString(node))
	}
}

func TestIncludeNestedAndRelative(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.prop": `
section {
	name = top
	include { file = sub/inner.prop }
}
`,
		"sub/inner.prop": "inner = yes\ninclude { file = leaf.prop }\n",
		"sub/leaf.prop":  "leaf { depth = 2 }",
	})
	loader := NewLoader("include")
	node, err := loader.Load(filepath.Join(dir, "main.prop"))
	if err != nil {
		t.Fatal(err)
	}
	want := mustParse(t, "section { name = top inner = yes leaf { depth = 2 } }")
	if !node.Equal(want) {
		t.Errorf("got\n%s", encode.MustString(node))
	}
	files := loader.Files()
	wantFiles := []string{
		filepath.Join(dir, "main.prop"),
		filepath.Join(dir, "sub/inner.prop"),
		filepath.Join(dir, "sub/leaf.prop"),
	}
	if !slices.Equal(files, wantFiles) {
		t.Errorf("files %v, want %v", files, wantFiles)
	}
}

func TestIncludeXML(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.prop": "include { file = model.xml }\nafter = 1\n",
		"model.xml": `<model name="m"><body>b1</body></model>`,
	})
	node, err := LoadWithIncludes(filepath.Join(dir, "main.prop"), "include")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(keys(node), []string{"model", "after"}) {
		t.Fatalf("keys %v", keys(node))
	}
	name, err := ir.Get[string](node.Get("model"), "name")
	if err != nil || name != "m" {
		t.Errorf("name %q %v", name, err)
	}
}

func TestIncludeAbsolutePath(t *testing.T) {
	other := writeFiles(t, map[string]string{"abs.prop": "abs = 1"})
	dir := writeFiles(t, map[string]string{
		"main.prop": "include { file = \"" + filepath.ToSlash(filepath.Join(other, "abs.prop")) + "\" }",
	})
	node, err := LoadWithIncludes(filepath.Join(dir, "main.prop"), "include")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(keys(node), []string{"abs"}) {
		t.Errorf("keys %v", keys(node))
	}
}

func TestIncludeCycle(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"self.prop": "a = 1\ninclude { file = self.prop }\n",
		"ping.prop": "include { file = pong.prop }",
		"pong.prop": "include { file = ping.prop }",
	})
	for _, name := range []string{"self.prop", "ping.prop"} {
		loader := NewLoader("include")
		_, err := loader.Load(filepath.Join(dir, name))
		if !errors.Is(err, ErrIncludeLimit) {
			t.Errorf("%s: got %v", name, err)
		}
		if n := len(loader.Files()); n != DefaultMaxIncludeLevel {
			t.Errorf("%s: read %d files, want %d", name, n, DefaultMaxIncludeLevel)
		}
	}
}

func TestIncludeMaxLevel(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"a.prop": "include { file = b.prop }",
		"b.prop": "include { file = c.prop }",
		"c.prop": "c = 1",
	})
	if _, err := LoadWithIncludes(filepath.Join(dir, "a.prop"), "include", MaxIncludeLevel(3)); err != nil {
		t.Errorf("level 3: %v", err)
	}
	_, err := LoadWithIncludes(filepath.Join(dir, "a.prop"), "include", MaxIncludeLevel(2))
	if !errors.Is(err, ErrIncludeLimit) {
		t.Errorf("level 2: got %v", err)
	}
}

func TestIncludeErrors(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"nofile.prop":   "include { merge_children = true }",
		"missing.prop":  "include { file = nowhere.prop }",
		"badopt.prop":   "include { file = ok.prop merge_children = maybe }",
		"ok.prop":       "ok = 1",
		"broken.prop":   "include { file = syntax.prop }",
		"syntax.prop":   "a { b = 1",
		"badxml.prop":   "include { file = bad.xml }",
		"bad.xml":       "<a><b></a>",
		"deep.prop":     "x { y { include { file = missing.prop } } }",
		"disabled.prop": "include { file = nowhere.prop }",
	})
	tests := []struct {
		file string
		e    error
	}{
		{"nofile.prop", ir.ErrMissingField},
		{"missing.prop", fs.ErrNotExist},
		{"badopt.prop", ir.ErrConvert},
		{"broken.prop", parse.ErrUnterminated},
		{"badxml.prop", nil},
		{"deep.prop", fs.ErrNotExist},
	}
	for _, tt := range tests {
		node, err := LoadWithIncludes(filepath.Join(dir, tt.file), "include")
		if err == nil {
			t.Errorf("%s: expected error", tt.file)
			continue
		}
		if node != nil {
			t.Errorf("%s: partial result returned", tt.file)
		}
		if tt.e != nil && !errors.Is(err, tt.e) {
			t.Errorf("%s: got %v, want %v", tt.file, err, tt.e)
		}
	}

	_, err := LoadWithIncludes(filepath.Join(dir, "broken.prop"), "include")
	var se *parse.SyntaxError
	if !errors.As(err, &se) || !strings.HasSuffix(se.File, "syntax.prop") {
		t.Errorf("syntax error does not name the included file: %v", err)
	}

	node, err := LoadWithIncludes(filepath.Join(dir, "disabled.prop"), "")
	if err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(keys(node), []string{"include"}) {
		t.Errorf("keys %v", keys(node))
	}
}

func TestIncludeFilesAfterError(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"main.prop": "a = 1 include { file = sub/later.prop }",
	})
	loader := NewLoader("include")
	if _, err := loader.Load(filepath.Join(dir, "main.prop")); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("got %v", err)
	}
	want := []string{filepath.Join(dir, "main.prop"), filepath.Join(dir, "sub", "later.prop")}
	if files := loader.Files(); !slices.Equal(files, want) {
		t.Errorf("files %v, want %v", files, want)
	}
}
