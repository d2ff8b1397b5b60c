// Package eval evaluates expr-lang expressions against property trees.
//
// The environment of an expression is the plain Go view of the tree given by
// ir.ToAny: top-level keys are variables, nested blocks are maps and repeated
// keys are lists.
//
//	server.host == "localhost" && len(tag) > 1
//
// Names which are absent from the tree evaluate to nil. get(path) and
// has(path) look up dotted paths and getenv(name) reads the environment.
package eval

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"

	"github.com/signadot/prop-format/debug"
	"github.com/signadot/prop-format/ir"
)

var ErrNotBool = errors.New("expression did not give a bool")

type Env = map[string]any

// EnvOf returns the expression environment for node. A root which is only a
// value is available under ir.ValueKey.
func EnvOf(node *ir.Node) Env {
	switch x := ir.ToAny(node).(type) {
	case map[string]any:
		return x
	case nil:
		return Env{}
	default:
		return Env{ir.ValueKey: x}
	}
}

func Eval(src string, node *ir.Node) (any, error) {
	return run(src, node, EnvOf(node))
}

// Check evaluates src as a condition on node.
func Check(src string, node *ir.Node) (bool, error) {
	prg, err := expr.Compile(src, append(exprOpts(node), expr.AsBool())...)
	if err != nil {
		return false, fmt.Errorf("could not compile %q: %w", src, err)
	}
	res, err := expr.Run(prg, EnvOf(node))
	if err != nil {
		return false, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	b, ok := res.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %q gave %T", ErrNotBool, src, res)
	}
	if debug.Eval() {
		debug.Logf("check %q gave %v\n", src, b)
	}
	return b, nil
}

func run(src string, node *ir.Node, env Env) (any, error) {
	prg, err := expr.Compile(src, exprOpts(node)...)
	if err != nil {
		return nil, fmt.Errorf("could not compile %q: %w", src, err)
	}
	res, err := expr.Run(prg, env)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q gave %#v\n", src, res)
	}
	return res, nil
}
