package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	prop "github.com/signadot/prop-format"
)

func merge(cfg *MergeConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Merge.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: merge requires at least one file", cli.ErrUsage)
	}
	res, err := prop.MergeFiles(args, cfg.directive(), cfg.Force, cfg.loadOpts()...)
	if err != nil {
		return err
	}
	if err := cfg.output(cc.Out, res); err != nil {
		return fmt.Errorf("error encoding result: %w", err)
	}
	return nil
}
