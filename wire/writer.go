package wire

import (
	"math"

	"github.com/creationengine/cegse/endian"
	"github.com/creationengine/cegse/internal/pool"
)

// Writer appends scalar and variable-length values to a pooled, growable byte buffer. It is
// the encode-side counterpart to Cursor: the encoder always serializes into an in-memory
// buffer first and back-patches length fields by offset afterward (Frame), rather than
// seeking a file descriptor (Design Notes §9).
type Writer struct {
	buf    *pool.ByteBuffer
	engine endian.EndianEngine
}

// NewWriter wraps an existing pooled buffer. The caller owns the buffer's lifecycle
// (pool.GetBlobBuffer / pool.PutBlobBuffer).
func NewWriter(buf *pool.ByteBuffer, engine endian.EndianEngine) *Writer {
	return &Writer{buf: buf, engine: engine}
}

// Buffer returns the underlying pooled buffer.
func (w *Writer) Buffer() *pool.ByteBuffer { return w.buf }

// Pos returns the current write position, i.e. the buffer's length.
func (w *Writer) Pos() int { return w.buf.Len() }

func (w *Writer) grow(n int) {
	w.buf.Grow(n)
}

// Uint8 appends a single byte.
func (w *Writer) Uint8(v uint8) {
	w.grow(1)
	w.buf.MustWrite([]byte{v})
}

// Uint16 appends a little-endian uint16.
func (w *Writer) Uint16(v uint16) {
	w.grow(2)
	w.buf.B = w.engine.AppendUint16(w.buf.B, v)
}

// Uint32 appends a little-endian uint32.
func (w *Writer) Uint32(v uint32) {
	w.grow(4)
	w.buf.B = w.engine.AppendUint32(w.buf.B, v)
}

// Uint64 appends a little-endian uint64.
func (w *Writer) Uint64(v uint64) {
	w.grow(8)
	w.buf.B = w.engine.AppendUint64(w.buf.B, v)
}

// Int32 appends a little-endian signed int32.
func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v)) //nolint:gosec
}

// Float32 appends a native-IEEE-754 little-endian float32.
func (w *Writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

// BE24 appends a 24-bit big-endian value, used exclusively for RefIds (spec §6). Only the
// low 24 bits of v are written.
func (w *Writer) BE24(v uint32) {
	w.grow(3)
	w.buf.MustWrite([]byte{byte(v >> 16), byte(v >> 8), byte(v)})
}

// Bytes appends raw bytes verbatim.
func (w *Writer) Bytes(b []byte) {
	w.grow(len(b))
	w.buf.MustWrite(b)
}

// String appends a 16-bit-length-prefixed UTF-8 string with no terminator. Callers that
// need to cap string length should validate before calling String; this method truncates
// silently if len(s) exceeds math.MaxUint16, matching the producer's fixed 16-bit field.
func (w *Writer) String(s string) {
	n := len(s)
	if n > math.MaxUint16 {
		n = math.MaxUint16
		s = s[:n]
	}

	w.Uint16(uint16(n)) //nolint:gosec
	w.Bytes([]byte(s))
}

// VSVAL appends the VSVAL encoding of v (see EncodeVSVAL).
func (w *Writer) VSVAL(v uint32) {
	width := VSVALLen(v)
	w.grow(width)
	w.buf.B = EncodeVSVAL(w.buf.B, v)
}
