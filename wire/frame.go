package wire

// BeginFrame reserves a 4-byte little-endian length placeholder and returns its offset.
// Pair with EndFrame once the framed body has been written. This implements the two-pass
// serialize-then-backpatch strategy Design Notes §9 calls for: the encoder never seeks a
// file descriptor, it patches the in-memory buffer by offset once the true length is known.
func (w *Writer) BeginFrame() int {
	offset := w.Pos()
	w.Uint32(0)

	return offset
}

// EndFrame computes the body length written since offset+4 and patches it into the
// reserved placeholder.
func (w *Writer) EndFrame(offset int) {
	bodyLen := w.Pos() - (offset + 4)
	w.engine.PutUint32(w.buf.B[offset:offset+4], uint32(bodyLen)) //nolint:gosec
}

// WithFrame writes a length-prefixed block: it reserves the placeholder, invokes body, then
// back-patches the length. body may itself open nested frames.
func (w *Writer) WithFrame(body func()) {
	offset := w.BeginFrame()
	body()
	w.EndFrame(offset)
}
