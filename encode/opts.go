package encode

type EncodeOption func(*EncState)

// EncodeWire selects compact output: no indentation and single spaces in
// place of line breaks.
func EncodeWire(v bool) EncodeOption {
	return func(es *EncState) { es.wire = v }
}

// EncodeIndent sets the per-level indentation of readable output.
func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
