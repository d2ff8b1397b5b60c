package ir

// ValueKey holds the value of a node which also has children in the result
// of ToAny.
const ValueKey = "_value"

// ToAny converts y to plain Go values: a node without children becomes its
// value (or nil), a node with children becomes a map[string]any. Repeated
// keys are collected into a []any in order. The conversion is lossy; use
// MarshalJSON for a faithful rendering.
func ToAny(y *Node) any {
	if !y.HasChildren() {
		if !y.hasValue {
			return nil
		}
		return y.value
	}
	res := make(map[string]any, len(y.Children)+1)
	if y.hasValue {
		res[ValueKey] = y.value
	}
	counts := make(map[string]int, len(y.Children))
	for _, c := range y.Children {
		counts[c.Key]++
	}
	for _, c := range y.Children {
		v := ToAny(c.Node)
		if counts[c.Key] == 1 {
			res[c.Key] = v
			continue
		}
		list, _ := res[c.Key].([]any)
		res[c.Key] = append(list, v)
	}
	return res
}
