package eval

import (
	"os"

	"github.com/expr-lang/expr"

	"github.com/signadot/prop-format/ir"
)

func exprOpts(doc *ir.Node) []expr.Option {
	return []expr.Option{
		expr.Function("get", func(params ...any) (any, error) {
			res, err := doc.Lookup(params[0].(string))
			if err != nil || res == nil {
				return nil, err
			}
			return ir.ToAny(res), nil
		},
			new(func(string) any)),
		expr.Function("has", func(params ...any) (any, error) {
			res, err := doc.Lookup(params[0].(string))
			if err != nil {
				return nil, err
			}
			return res != nil, nil
		},
			new(func(string) bool)),
		expr.Function("getenv", func(params ...any) (any, error) {
			return os.Getenv(params[0].(string)), nil
		},
			new(func(string) string)),
	}
}
