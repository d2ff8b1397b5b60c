package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/scott-cotton/cli"

	prop "github.com/signadot/prop-format"
	"github.com/signadot/prop-format/encode"
	"github.com/signadot/prop-format/format"
	"github.com/signadot/prop-format/ir"
)

type MainConfig struct {
	Color      bool   `cli:"name=color desc='encode with color'"`
	WireOut    bool   `cli:"name=wire desc='output in compact format'"`
	Include    string `cli:"name=include desc='include directive key, empty to disable'"`
	MaxInclude int    `cli:"name=maxInclude desc='maximum include nesting'"`

	OutFormat *format.Format

	Out      string
	CloseOut func() error

	Settings *settings

	Main *cli.Command
}

func (cfg *MainConfig) fmtFunc(fp **format.Format) cli.FuncOpt {
	return cli.FuncOpt(func(_ *cli.Context, v string) (any, error) {
		f, err := format.ParseFormat(v)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", cli.ErrUsage, err)
		}
		if !f.CanWrite() {
			return nil, fmt.Errorf("%w: cannot output %s", cli.ErrUsage, f)
		}
		*fp = &f
		return f, nil
	})
}

// isSet reports whether the main option name was given on the command line.
func (cfg *MainConfig) isSet(name string) bool {
	for _, opt := range cfg.Main.Opts {
		if opt.Name != name {
			continue
		}
		return opt.Value != nil
	}
	return false
}

func (cfg *MainConfig) directive() string {
	if cfg.isSet("include") {
		return cfg.Include
	}
	return cfg.Settings.Include
}

func (cfg *MainConfig) loadOpts() []prop.LoadOption {
	n := cfg.Settings.MaxIncludeLevel
	if cfg.isSet("maxInclude") {
		n = cfg.MaxInclude
	}
	return []prop.LoadOption{prop.MaxIncludeLevel(n)}
}

func (cfg *MainConfig) loader() *prop.Loader {
	return prop.NewLoader(cfg.directive(), cfg.loadOpts()...)
}

func (cfg *MainConfig) wire() bool {
	if cfg.isSet("wire") {
		return cfg.WireOut
	}
	return cfg.Settings.Compact
}

func (cfg *MainConfig) colored(w io.Writer) bool {
	if cfg.isSet("color") {
		return cfg.Color
	}
	if cfg.Settings.Color != nil {
		return *cfg.Settings.Color
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.wire()),
	}
	if cfg.colored(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// output writes node to w in the -O format, prop text by default. JSON output
// is the form prop patch operates on.
func (cfg *MainConfig) output(w io.Writer, node *ir.Node) error {
	f := format.PropFormat
	if cfg.OutFormat != nil {
		f = *cfg.OutFormat
	}
	return writeNode(w, node, f, cfg.encOpts(w)...)
}

func writeNode(w io.Writer, node *ir.Node, f format.Format, opts ...encode.EncodeOption) error {
	switch f {
	case format.PropFormat:
		return encode.Encode(node, w, opts...)
	case format.YAMLFormat:
		return encode.EncodeYAML(node, w)
	case format.JSONFormat:
		d, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return err
		}
		_, err = w.Write(append(d, '\n'))
		return err
	default:
		return fmt.Errorf("%w: cannot output %s", format.ErrBadFormat, f)
	}
}

type ViewConfig struct {
	*MainConfig

	Expand bool `cli:"name=expand desc='expand $[expr] in values'"`
	View   *cli.Command
}

type GetConfig struct {
	*MainConfig

	Get *cli.Command
}

type MergeConfig struct {
	*MainConfig

	Force bool `cli:"name=f aliases=force desc='later files overwrite earlier keys'"`
	Merge *cli.Command
}

type DiffConfig struct {
	*MainConfig

	Context int `cli:"name=U desc='lines of context, negative for all'"`
	Diff    *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}

type CheckConfig struct {
	*MainConfig

	Print bool `cli:"name=p aliases=print desc='print the value of the expression'"`
	Check *cli.Command
}

type SaveConfig struct {
	*MainConfig

	Save *cli.Command
}

type WatchConfig struct {
	*MainConfig

	Gops     bool   `cli:"name=gops desc='start a gops agent'"`
	Debounce string `cli:"name=debounce desc='quiet time before reloading'"`
	Watch    *cli.Command
}
