// Package prop loads, combines and saves property trees.
//
// Files are read in prop text or, for an "xml" extension, XML (LoadFile).
// LoadWithIncludes additionally resolves include directives: children with a
// caller chosen key whose "file" field names another file, loaded relative to
// the including file. The included top-level entries either replace the
// directive in place or, with "merge_children = true", are merged into the
// directive's siblings without overwriting them:
//
//	include { file = common.prop }
//	include { file = defaults.prop merge_children = true }
//
// Includes nest up to DefaultMaxIncludeLevel levels, which also stops include
// cycles.
package prop
