package main

import (
	"fmt"

	"github.com/scott-cotton/cli"

	prop "github.com/signadot/prop-format"
)

func save(cfg *SaveConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Save.Parse(cc, args)
	if err != nil {
		cfg.Save.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: save requires a source and a destination", cli.ErrUsage)
	}
	node, err := cfg.loadArg(cc, args[0])
	if err != nil {
		return err
	}
	if err := prop.Save(node, args[1], !cfg.wire()); err != nil {
		return err
	}
	theLog.Info("saved", "file", args[1], "entries", node.Len())
	return nil
}
