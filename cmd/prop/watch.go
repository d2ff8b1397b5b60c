package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/gops/agent"
	"github.com/scott-cotton/cli"

	"github.com/signadot/prop-format/ir"
	"github.com/signadot/prop-format/reload"
)

func watch(cfg *WatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Watch.Parse(cc, args)
	if err != nil {
		cfg.Watch.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 1 {
		return fmt.Errorf("%w: watch requires one file", cli.ErrUsage)
	}
	debounce, err := time.ParseDuration(cfg.Debounce)
	if err != nil {
		return fmt.Errorf("%w: -debounce: %w", cli.ErrUsage, err)
	}
	if cfg.Gops {
		if err := agent.Listen(agent.Options{}); err != nil {
			theLog.Warn("gops agent failed", "error", err)
		} else {
			defer agent.Close()
		}
	}

	h, err := reload.NewHolder(args[0], cfg.directive(),
		reload.Debounce(debounce),
		reload.Logger(theLog),
		reload.LoadOptions(cfg.loadOpts()...))
	if err != nil {
		return err
	}
	if err := cfg.output(cc.Out, h.Get()); err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	updates := make(chan *ir.Node, 1)
	h.Subscribe(updates)
	if err := h.Watch(ctx); err != nil {
		return err
	}
	defer h.Close()
	for {
		select {
		case <-ctx.Done():
			return nil
		case node := <-updates:
			fmt.Fprintf(cc.Out, "; %s\n", time.Now().Format(time.RFC3339))
			if err := cfg.output(cc.Out, node); err != nil {
				return err
			}
		}
	}
}
