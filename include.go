package prop

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/signadot/prop-format/debug"
	"github.com/signadot/prop-format/ir"
	"github.com/signadot/prop-format/parse"
)

const DefaultMaxIncludeLevel = 100

var ErrIncludeLimit = errors.New("exceeded maximum include level")

// Loader loads files and resolves include directives. A Loader is not safe
// for concurrent use.
type Loader struct {
	directive string
	maxLevel  int
	parseOpts []parse.ParseOption

	files []string
}

type LoadOption func(*Loader)

// MaxIncludeLevel sets how deeply includes may nest; n <= 0 means
// DefaultMaxIncludeLevel.
func MaxIncludeLevel(n int) LoadOption {
	return func(l *Loader) { l.maxLevel = n }
}

func ParseOptions(opts ...parse.ParseOption) LoadOption {
	return func(l *Loader) { l.parseOpts = append(l.parseOpts, opts...) }
}

// NewLoader returns a Loader treating children keyed by directive as
// includes. An empty directive disables include resolution.
func NewLoader(directive string, opts ...LoadOption) *Loader {
	l := &Loader{directive: directive}
	for _, opt := range opts {
		opt(l)
	}
	if l.maxLevel <= 0 {
		l.maxLevel = DefaultMaxIncludeLevel
	}
	return l
}

// LoadWithIncludes loads path and resolves its includes recursively.
func LoadWithIncludes(path, directive string, opts ...LoadOption) (*ir.Node, error) {
	return NewLoader(directive, opts...).Load(path)
}

func (l *Loader) Load(path string) (*ir.Node, error) {
	l.files = l.files[:0]
	return l.load(path, 0)
}

// Files returns the files the last Load read or tried to read, in order. After
// a failed Load the last entry may be a file that could not be read.
func (l *Loader) Files() []string {
	return slices.Clone(l.files)
}

func (l *Loader) load(path string, level int) (*ir.Node, error) {
	if level >= l.maxLevel {
		return nil, fmt.Errorf("%w (%d) at %s, check for loops in includes", ErrIncludeLimit, l.maxLevel, path)
	}
	l.files = append(l.files, path)
	node, err := LoadFile(path, l.parseOpts...)
	if err != nil {
		return nil, err
	}
	if l.directive == "" {
		return node, nil
	}
	if err := l.resolve(node, path, level); err != nil {
		return nil, err
	}
	return node, nil
}

// resolve replaces the directives among the children of node, in order, and
// then descends into the children node had before.
func (l *Loader) resolve(node *ir.Node, path string, level int) error {
	var directives, own []*ir.Node
	for _, c := range node.Children {
		if c.Key == l.directive {
			directives = append(directives, c.Node)
			continue
		}
		own = append(own, c.Node)
	}
	for _, d := range directives {
		if err := l.include(node, d, path, level); err != nil {
			return err
		}
	}
	for _, child := range own {
		if err := l.resolve(child, path, level); err != nil {
			return err
		}
	}
	return nil
}

func (l *Loader) include(parent, directive *ir.Node, path string, level int) error {
	file, err := ir.Get[string](directive, "file")
	if err != nil {
		return fmt.Errorf("%s in %s: %w", l.directive, path, err)
	}
	merge, err := ir.GetOr(directive, "merge_children", false)
	if err != nil {
		return fmt.Errorf("%s %s in %s: %w", l.directive, file, path, err)
	}
	incPath := file
	if !filepath.IsAbs(file) {
		incPath = filepath.Join(filepath.Dir(path), file)
	}
	if debug.Include() {
		debug.Logf("%s: including %s (level %d, merge_children=%v)\n", path, incPath, level+1, merge)
	}
	included, err := l.load(incPath, level+1)
	if err != nil {
		return err
	}
	i := slices.IndexFunc(parent.Children, func(c ir.Child) bool { return c.Node == directive })
	parent.Erase(i)
	if merge {
		Merge(parent, included, false)
		return nil
	}
	parent.InsertChildren(i, included.Children...)
	return nil
}
