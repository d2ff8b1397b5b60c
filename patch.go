package prop

import (
	"encoding/json"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/signadot/prop-format/ir"
)

// PatchJSON applies an RFC 6902 JSON patch to the JSON form of node (see
// ir.Node.MarshalJSON) and returns the patched tree. node is not modified.
//
//	[{"op": "replace", "path": "/children/0/node/value", "value": "2"}]
func PatchJSON(node *ir.Node, patch []byte) (*ir.Node, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, fmt.Errorf("could not decode patch: %w", err)
	}
	d, err := json.Marshal(node)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("could not apply patch: %w", err)
	}
	res := ir.New()
	if err := json.Unmarshal(out, res); err != nil {
		return nil, fmt.Errorf("patch produced an invalid tree: %w", err)
	}
	return res, nil
}
