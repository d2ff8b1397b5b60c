package ir

import (
	"encoding/json"
)

type jsonNode struct {
	Value    *string     `json:"value,omitempty"`
	Children []jsonChild `json:"children,omitempty"`
}

type jsonChild struct {
	Key  string `json:"key"`
	Node *Node  `json:"node"`
}

// MarshalJSON encodes y losslessly: value presence, duplicate keys and order
// all survive.
func (y *Node) MarshalJSON() ([]byte, error) {
	jn := jsonNode{}
	if y.hasValue {
		v := y.value
		jn.Value = &v
	}
	for _, c := range y.Children {
		jn.Children = append(jn.Children, jsonChild{Key: c.Key, Node: c.Node})
	}
	return json.Marshal(&jn)
}

func (y *Node) UnmarshalJSON(d []byte) error {
	jn := jsonNode{}
	if err := json.Unmarshal(d, &jn); err != nil {
		return err
	}
	*y = Node{}
	if jn.Value != nil {
		y.SetValue(*jn.Value)
	}
	for _, jc := range jn.Children {
		child := jc.Node
		if child == nil {
			child = &Node{}
		}
		y.AddChild(jc.Key, child)
	}
	return nil
}
