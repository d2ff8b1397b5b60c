// Package encode writes property trees as prop text.
//
// # Usage
//
//	root := ir.New()
//	root.AddValue("name", "alice")
//	root.Add("server").AddValue("port", "8080")
//
//	// readable: one entry per line, tab indented
//	err := encode.Encode(root, os.Stdout)
//
//	// compact: a single line
//	err = encode.Encode(root, os.Stdout, encode.EncodeWire(true))
//
// Readable output of the tree above:
//
//	name = "alice"
//	server
//	{
//		port = "8080"
//	}
//
// Values are always quoted so that any string reads back unchanged.
//
// # Related Packages
//
//   - github.com/signadot/prop-format/ir - property tree
//   - github.com/signadot/prop-format/parse - parse text to a tree
package encode
