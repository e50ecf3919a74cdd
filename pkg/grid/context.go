package grid

// RowContext is what a row hands to its columns. It is returned from
// Row.Render and passed explicitly to Col and Layout.
type RowContext struct {
	Gutter [2]int
	// Wrap is nil when the row did not set it.
	Wrap *bool
	// NativeGap is set when the row spaces columns with gaps, in which case
	// columns add no padding of their own.
	NativeGap bool
}

// Wraps reports whether lines may wrap. Wrapping is on unless explicitly
// disabled.
func (c RowContext) Wraps() bool {
	return c.Wrap == nil || *c.Wrap
}
