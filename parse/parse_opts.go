package parse

// DefaultMaxDepth bounds block nesting so that adversarial input cannot
// exhaust the stack of the parser or of later tree walks.
const DefaultMaxDepth = 1000

type parseOpts struct {
	filename string
	maxDepth int
}

type ParseOption func(*parseOpts)

// Filename names the input in error messages.
func Filename(name string) ParseOption {
	return func(o *parseOpts) { o.filename = name }
}

// MaxDepth sets the deepest allowed block nesting; n <= 0 means DefaultMaxDepth.
func MaxDepth(n int) ParseOption {
	return func(o *parseOpts) { o.maxDepth = n }
}
