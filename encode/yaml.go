package encode

import (
	"io"

	"github.com/goccy/go-yaml"

	"github.com/signadot/prop-format/ir"
)

// EncodeYAML writes node as a YAML mapping. Key order is kept; repeated keys
// become a sequence at the position of their first occurrence, and a value
// held next to children is written under ir.ValueKey.
func EncodeYAML(node *ir.Node, w io.Writer) error {
	d, err := yaml.Marshal(toYAML(node))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func toYAML(node *ir.Node) any {
	if !node.HasChildren() {
		v, err := node.Value()
		if err != nil {
			return nil
		}
		return v
	}
	res := yaml.MapSlice{}
	if v, err := node.Value(); err == nil {
		res = append(res, yaml.MapItem{Key: ir.ValueKey, Value: v})
	}
	counts := map[string]int{}
	for _, c := range node.Children {
		counts[c.Key]++
	}
	at := map[string]int{}
	for _, c := range node.Children {
		v := toYAML(c.Node)
		if counts[c.Key] == 1 {
			res = append(res, yaml.MapItem{Key: c.Key, Value: v})
			continue
		}
		i, seen := at[c.Key]
		if !seen {
			at[c.Key] = len(res)
			res = append(res, yaml.MapItem{Key: c.Key, Value: []any{v}})
			continue
		}
		res[i].Value = append(res[i].Value.([]any), v)
	}
	return res
}
