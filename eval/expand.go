package eval

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/signadot/prop-format/ir"
)

// Expand replaces $[...] expressions in every value of node, in place. All
// expressions see the tree as it was before expansion.
func Expand(node *ir.Node) error {
	env := EnvOf(node)
	return expandNode(node, node, env)
}

func expandNode(doc, node *ir.Node, env Env) error {
	if v, err := node.Value(); err == nil {
		xv, err := expandString(v, doc, env)
		if err != nil {
			return err
		}
		node.SetValue(xv)
	}
	for _, c := range node.Children {
		if err := expandNode(doc, c.Node, env); err != nil {
			return err
		}
	}
	return nil
}

// ExpandString expands $[...] expressions in v against node.
//
// Within an expression a backslash escapes the next character, so \] does
// not close it. An expression with no closing bracket is left as literal
// text.
func ExpandString(v string, node *ir.Node) (string, error) {
	return expandString(v, node, EnvOf(node))
}

func expandString(v string, doc *ir.Node, env Env) (string, error) {
	start := strings.Index(v, "$[")
	if start == -1 {
		return v, nil
	}
	var out strings.Builder
	for start != -1 {
		out.WriteString(v[:start])
		src, n, ok := scanExpr(v[start+2:])
		if !ok {
			out.WriteString(v[start:])
			return out.String(), nil
		}
		res, err := run(strings.TrimSpace(src), doc, env)
		if err != nil {
			return "", err
		}
		s, err := toString(res)
		if err != nil {
			return "", err
		}
		out.WriteString(s)
		v = v[start+2+n:]
		start = strings.Index(v, "$[")
	}
	out.WriteString(v)
	return out.String(), nil
}

// scanExpr reads up to the first unescaped ']' and returns the unescaped
// expression and the number of bytes consumed, closing bracket included.
func scanExpr(v string) (string, int, bool) {
	var buf []byte
	for i := 0; i < len(v); i++ {
		switch v[i] {
		case '\\':
			if i+1 < len(v) {
				i++
				buf = append(buf, v[i])
			}
		case ']':
			return string(buf), i + 1, true
		default:
			buf = append(buf, v[i])
		}
	}
	return "", 0, false
}

func toString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		return x, nil
	case bool:
		return strconv.FormatBool(x), nil
	case int:
		return strconv.Itoa(x), nil
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), nil
	default:
		d, err := json.Marshal(x)
		if err != nil {
			return "", err
		}
		return string(d), nil
	}
}
