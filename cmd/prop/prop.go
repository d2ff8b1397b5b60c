package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/scott-cotton/cli"

	"github.com/signadot/prop-format/ir"
	"github.com/signadot/prop-format/parse"
)

func propMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	cfg.Settings, err = loadSettings()
	if err != nil {
		return err
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

// loadArg loads a file argument with includes resolved. "-" reads prop text
// from standard input, without includes.
func (cfg *MainConfig) loadArg(cc *cli.Context, path string) (*ir.Node, error) {
	if path != "-" {
		return cfg.loader().Load(path)
	}
	d, err := io.ReadAll(cc.In)
	if err != nil {
		return nil, fmt.Errorf("error reading stdin: %w", err)
	}
	return parse.Parse(d, parse.Filename("<stdin>"))
}

// loadArgs is loadArg for each of paths, or for stdin when there are none.
func (cfg *MainConfig) loadArgs(cc *cli.Context, paths []string, f func(path string, node *ir.Node) error) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	for _, path := range paths {
		node, err := cfg.loadArg(cc, path)
		if err != nil {
			return err
		}
		if err := f(path, node); err != nil {
			return err
		}
	}
	return nil
}
