// Package token splits prop text into delimiter bounded tokens.
//
// A Stream skips whitespace and yields one of:
//
//   - a delimiter: a single byte from the delimiter set "={};"
//   - a word: a run of bytes up to whitespace or a delimiter
//   - a quoted string: "..." with Go escape sequences, returned unquoted
//   - EOF
//
// Streams support one token of lookahead (Peek) and discarding the rest of
// the current line (RestOfLine), which is how the parser implements comments.
package token
