package prop

import (
	"fmt"
	"os"

	"github.com/signadot/prop-format/debug"
	"github.com/signadot/prop-format/format"
	"github.com/signadot/prop-format/ir"
	"github.com/signadot/prop-format/parse"
	"github.com/signadot/prop-format/xmlprop"
)

// LoadFile reads path as XML or prop text depending on its extension.
func LoadFile(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	if format.FromPath(path) == format.XMLFormat {
		return LoadXML(path)
	}
	return LoadProp(path, opts...)
}

func LoadProp(path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readFile(path)
	if err != nil {
		return nil, err
	}
	opts = append([]parse.ParseOption{parse.Filename(path)}, opts...)
	return parse.Parse(d, opts...)
}

func LoadXML(path string) (*ir.Node, error) {
	d, err := readFile(path)
	if err != nil {
		return nil, err
	}
	node, err := xmlprop.Parse(d)
	if err != nil {
		return nil, fmt.Errorf("could not decode %s: %w", path, err)
	}
	return node, nil
}

func readFile(path string) ([]byte, error) {
	if debug.Load() {
		debug.Logf("loading %s\n", path)
	}
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", path, err)
	}
	return d, nil
}
