package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/prop-format/ir"
)

func get(cfg *GetConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Get.Parse(cc, args)
	if err != nil {
		cfg.Get.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: get requires one argument, a dotted path", cli.ErrUsage)
	}
	path := args[0]
	missing := false
	err = cfg.loadArgs(cc, args[1:], func(file string, node *ir.Node) error {
		res, err := node.Lookup(path)
		if err != nil {
			return fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if res == nil {
			theLog.Warn("not found", "path", path, "file", file)
			missing = true
			return nil
		}
		return writeResult(cfg.MainConfig, cc, res)
	})
	if err != nil {
		return err
	}
	if missing {
		return cli.ExitCodeErr(1)
	}
	return nil
}

// writeResult prints the value of a leaf on its own line and encodes a node
// with children.
func writeResult(cfg *MainConfig, cc *cli.Context, res *ir.Node) error {
	if !res.HasChildren() {
		_, err := fmt.Fprintln(cc.Out, res.ValueOr(""))
		return err
	}
	return cfg.output(cc.Out, res)
}
