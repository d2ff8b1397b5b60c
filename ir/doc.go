// Package ir provides the property tree shared by every prop-format package.
//
// # Overview
//
// A property tree is a recursive structure of nodes. Each node has an
// optional string value and an ordered list of (key, child) pairs:
//
//   - A value that was never set is distinct from the empty string.
//   - Keys need not be unique; duplicates keep their insertion order.
//   - A node may hold a value and children at the same time.
//   - A node with neither is valid and distinct from a missing node.
//
// Lookups by key (Find, Get, Lookup) return the first match.
//
// Values are opaque strings. Typed access is layered on top with the generic
// helpers Get, GetOr and ValueAs:
//
//	port, err := ir.GetOr(server, "port", 8080)
//	file, err := ir.Get[string](directive, "file")
//
// # Ownership
//
// Trees never share structure. Clone makes a deep copy, and packages that
// combine trees (merge, include resolution) copy or move content rather than
// aliasing nodes of another tree.
//
// # Related Packages
//
//   - github.com/signadot/prop-format/parse - text to tree
//   - github.com/signadot/prop-format/xmlprop - XML to tree
//   - github.com/signadot/prop-format/encode - tree to text
package ir
