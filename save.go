package prop

import (
	"fmt"

	"github.com/google/renameio/v2"

	"github.com/signadot/prop-format/encode"
	"github.com/signadot/prop-format/ir"
)

// Save writes node to path as prop text, readable or compact. The file is
// replaced atomically: readers see either the old or the new content.
func Save(node *ir.Node, path string, readable bool) error {
	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("could not create %q: %w", path, err)
	}
	defer pf.Cleanup()

	if err := encode.Encode(node, pf, encode.EncodeWire(!readable)); err != nil {
		return fmt.Errorf("could not encode %q: %w", path, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("could not write %q: %w", path, err)
	}
	return nil
}
