package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/prop-format/eval"
	"github.com/signadot/prop-format/ir"
)

func check(cfg *CheckConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Check.Parse(cc, args)
	if err != nil {
		cfg.Check.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: check requires an expression", cli.ErrUsage)
	}
	src := args[0]
	failed := 0
	err = cfg.loadArgs(cc, args[1:], func(path string, node *ir.Node) error {
		if cfg.Print {
			v, err := eval.Eval(src, node)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cc.Out, "%s: %v\n", path, v)
			return err
		}
		ok, err := eval.Check(src, node)
		if err != nil {
			return err
		}
		if !ok {
			failed++
			fmt.Fprintf(cc.Out, "%s: failed: %s\n", path, src)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if failed != 0 {
		return cli.ExitCodeErr(1)
	}
	return nil
}
