package prop

import (
	"golang.org/x/sync/errgroup"

	"github.com/signadot/prop-format/debug"
	"github.com/signadot/prop-format/ir"
)

// Merge folds the children of src into dst, one level deep. A key missing
// from dst is appended; a key already present (first match) is replaced in
// place, value and subtree, when overwrite is set and left alone otherwise.
// dst never shares nodes with src afterwards.
func Merge(dst, src *ir.Node, overwrite bool) {
	for _, c := range src.Children {
		i := dst.Find(c.Key)
		switch {
		case i == -1:
			if debug.Merge() {
				debug.Logf("merge: add %s\n", c.Key)
			}
			dst.AddChild(c.Key, c.Node.Clone())
		case overwrite:
			if debug.Merge() {
				debug.Logf("merge: replace %s\n", c.Key)
			}
			dst.Children[i].Node = c.Node.Clone()
		}
	}
}

// MaxConcurrentLoads is how many files MergeFiles reads at once. Each file is
// read by its own Loader; the merge itself runs afterwards, in path order.
const MaxConcurrentLoads = 8

// MergeFiles loads each path, resolving includes keyed by directive, and
// merges them in order into a single tree. Up to MaxConcurrentLoads files are
// loaded at once; the result does not depend on which finishes first.
func MergeFiles(paths []string, directive string, overwrite bool, opts ...LoadOption) (*ir.Node, error) {
	nodes := make([]*ir.Node, len(paths))
	var g errgroup.Group
	g.SetLimit(MaxConcurrentLoads)
	for i, path := range paths {
		g.Go(func() error {
			node, err := NewLoader(directive, opts...).Load(path)
			if err != nil {
				return err
			}
			nodes[i] = node
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	res := ir.New()
	for _, node := range nodes {
		Merge(res, node, overwrite)
	}
	return res, nil
}
