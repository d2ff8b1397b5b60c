package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"

	prop "github.com/signadot/prop-format"
	"github.com/signadot/prop-format/ir"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		cfg.Patch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) == 0 || len(args) > 2 {
		return fmt.Errorf("%w: patch requires a JSON patch file and at most one file to which to apply it", cli.ErrUsage)
	}
	d, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("%w: %w", cli.ErrUsage, err)
	}
	return cfg.loadArgs(cc, args[1:], func(path string, node *ir.Node) error {
		res, err := prop.PatchJSON(node, d)
		if err != nil {
			return fmt.Errorf("error patching %s: %w", path, err)
		}
		if err := cfg.output(cc.Out, res); err != nil {
			return fmt.Errorf("error encoding result: %w", err)
		}
		return nil
	})
}
