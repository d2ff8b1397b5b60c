package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/signadot/prop-format/encode"
	"github.com/signadot/prop-format/ir"
)

type Prop struct{ *ir.Node }

func (y Prop) String() string {
	x := y.Node
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(x, buf, encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", x)
	}
	return buf.String()
}

// Logf writes to stderr, rendering *ir.Node arguments in compact prop text.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = Prop{x}.String()
		}
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
