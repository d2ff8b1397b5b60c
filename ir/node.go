package ir

import (
	"iter"
	"slices"
)

type Node struct {
	Children []Child

	value    string
	hasValue bool
}

type Child struct {
	Key  string
	Node *Node
}

func New() *Node {
	return &Node{}
}

func FromValue(v string) *Node {
	return &Node{value: v, hasValue: true}
}

// Value returns the scalar value of y, or ErrMissingValue if none was set.
// An empty string is a value.
func (y *Node) Value() (string, error) {
	if !y.hasValue {
		return "", ErrMissingValue
	}
	return y.value, nil
}

func (y *Node) ValueOr(def string) string {
	if !y.hasValue {
		return def
	}
	return y.value
}

func (y *Node) SetValue(v string) *Node {
	y.value = v
	y.hasValue = true
	return y
}

func (y *Node) ClearValue() {
	y.value = ""
	y.hasValue = false
}

func (y *Node) HasValue() bool    { return y.hasValue }
func (y *Node) HasChildren() bool { return len(y.Children) != 0 }
func (y *Node) Len() int          { return len(y.Children) }

// Add appends an empty child under key and returns it.
func (y *Node) Add(key string) *Node {
	return y.AddChild(key, &Node{})
}

// AddChild appends child under key; keys are not required to be unique.
func (y *Node) AddChild(key string, child *Node) *Node {
	y.Children = append(y.Children, Child{Key: key, Node: child})
	return child
}

func (y *Node) AddValue(key, v string) *Node {
	return y.AddChild(key, FromValue(v))
}

// Find returns the index of the first child with key, or -1.
func (y *Node) Find(key string) int {
	for i := range y.Children {
		if y.Children[i].Key == key {
			return i
		}
	}
	return -1
}

// Get returns the first child with key, or nil.
func (y *Node) Get(key string) *Node {
	i := y.Find(key)
	if i == -1 {
		return nil
	}
	return y.Children[i].Node
}

// All iterates over the children in order, duplicates included.
func (y *Node) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for _, c := range y.Children {
			if !yield(c.Key, c.Node) {
				return
			}
		}
	}
}

func (y *Node) Erase(i int) {
	y.Children = slices.Delete(y.Children, i, i+1)
}

// InsertChildren inserts cs at position i, shifting later children right.
func (y *Node) InsertChildren(i int, cs ...Child) {
	y.Children = slices.Insert(y.Children, i, cs...)
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

func (y *Node) CloneTo(dst *Node) *Node {
	dst.value = y.value
	dst.hasValue = y.hasValue
	dst.Children = nil
	if len(y.Children) != 0 {
		dst.Children = make([]Child, len(y.Children))
	}
	for i, c := range y.Children {
		dst.Children[i] = Child{Key: c.Key, Node: c.Node.Clone()}
	}
	return dst
}

// Equal reports whether y and o have the same value (presence included) and
// the same ordered children.
func (y *Node) Equal(o *Node) bool {
	if y == nil || o == nil {
		return y == o
	}
	if y.hasValue != o.hasValue || y.value != o.value {
		return false
	}
	if len(y.Children) != len(o.Children) {
		return false
	}
	for i := range y.Children {
		yc, oc := &y.Children[i], &o.Children[i]
		if yc.Key != oc.Key {
			return false
		}
		if !yc.Node.Equal(oc.Node) {
			return false
		}
	}
	return true
}
