package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	"github.com/signadot/prop-format/eval"
	"github.com/signadot/prop-format/ir"
)

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	return cfg.loadArgs(cc, args, func(path string, node *ir.Node) error {
		if cfg.Expand {
			if err := eval.Expand(node); err != nil {
				return fmt.Errorf("error expanding %s: %w", path, err)
			}
		}
		if err := cfg.output(cc.Out, node); err != nil {
			return fmt.Errorf("error encoding %s: %w", path, err)
		}
		return nil
	})
}
