package dump

type Option func(*dumpState)

// Indent sets the indentation width. Widths below 2 clamp to 2 so that
// sequence dashes stay aligned.
func Indent(n int) Option {
	return func(ds *dumpState) {
		if n < 2 {
			n = 2
		}
		ds.indent = n
	}
}

// WithColors colorizes the output.
func WithColors(c *Colors) Option {
	return func(ds *dumpState) { ds.color = c.Color }
}
