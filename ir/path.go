package ir

import (
	"fmt"
	"strings"
)

// Lookup descends from y along a dot separated path of keys, taking the first
// matching child at each step. It returns nil if some step has no match.
func (y *Node) Lookup(path string) (*Node, error) {
	if path == "" {
		return y, nil
	}
	cur := y
	for _, key := range strings.Split(path, ".") {
		if key == "" {
			return nil, fmt.Errorf("%w: empty key in %q", ErrBadPath, path)
		}
		cur = cur.Get(key)
		if cur == nil {
			return nil, nil
		}
	}
	return cur, nil
}
