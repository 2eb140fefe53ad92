// Package wire implements the scalar codec primitives the save-file container format is
// built from: fixed-width little-endian integers and a native-layout float32, the 24-bit
// big-endian RefId encoding, the 1-3 byte VSVAL variable-length integer, length-prefixed
// strings, and the back-patched framed block.
//
// All multi-byte integers and floats are little-endian except RefId, which is big-endian
// (spec §6). Reads go through a Cursor, which tracks how many bytes remain and reports
// exactly how far a read overran the buffer — useful for callers that grow their buffer
// and retry (spec §4.1).
package wire

import (
	"math"

	"github.com/creationengine/cegse/endian"
	"github.com/creationengine/cegse/errs"
)

// Cursor reads fixed-width and variable-length values from a byte slice, advancing its
// position on every successful read. It never panics on short input: every read method
// returns errs.ErrUnexpectedEnd instead. A failed fixed-width read leaves the position
// unchanged; String and DecodeVSVAL may already have advanced past their prefix.
type Cursor struct {
	data   []byte
	pos    int
	engine endian.EndianEngine
}

// NewCursor creates a cursor over data using engine for multi-byte scalar decoding.
func NewCursor(data []byte, engine endian.EndianEngine) *Cursor {
	return &Cursor{data: data, pos: 0, engine: engine}
}

// Pos returns the current read position.
func (c *Cursor) Pos() int { return c.pos }

// SeekTo moves the cursor to an absolute position. The savefile decoder does not seek; it
// checks each recorded section offset against Pos instead.
func (c *Cursor) SeekTo(pos int) { c.pos = pos }

// Len returns the total length of the underlying data.
func (c *Cursor) Len() int { return len(c.data) }

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int { return len(c.data) - c.pos }

// Overrun returns how many bytes past the end a read of n bytes would consume, or 0 if it
// would fit. This supports buffer-growth retry logic (spec §4.1).
func (c *Cursor) Overrun(n int) int {
	need := c.pos + n - len(c.data)
	if need < 0 {
		return 0
	}

	return need
}

// Bytes reads n raw bytes and advances the cursor. The returned slice aliases the
// underlying buffer; callers that need to retain it across further decoding must copy it.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if c.Overrun(n) > 0 {
		return nil, errs.ErrUnexpectedEnd
	}

	b := c.data[c.pos : c.pos+n]
	c.pos += n

	return b, nil
}

// SubCursor reads n bytes and wraps them in a new Cursor sharing this cursor's endian
// engine, advancing this cursor past them. Used to bound a nested codec (a global-data
// entry's body, the header block) to exactly the bytes it owns.
func (c *Cursor) SubCursor(n int) (*Cursor, error) {
	b, err := c.Bytes(n)
	if err != nil {
		return nil, err
	}

	return NewCursor(b, c.engine), nil
}

// CopyBytes reads n bytes into a freshly allocated slice the caller owns.
func (c *Cursor) CopyBytes(n int) ([]byte, error) {
	b, err := c.Bytes(n)
	if err != nil {
		return nil, err
	}

	out := make([]byte, n)
	copy(out, b)

	return out, nil
}

// Uint8 reads one byte.
func (c *Cursor) Uint8() (uint8, error) {
	b, err := c.Bytes(1)
	if err != nil {
		return 0, err
	}

	return b[0], nil
}

// Uint16 reads a little-endian uint16.
func (c *Cursor) Uint16() (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint16(b), nil
}

// Uint32 reads a little-endian uint32.
func (c *Cursor) Uint32() (uint32, error) {
	b, err := c.Bytes(4)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint32(b), nil
}

// Uint64 reads a little-endian uint64.
func (c *Cursor) Uint64() (uint64, error) {
	b, err := c.Bytes(8)
	if err != nil {
		return 0, err
	}

	return c.engine.Uint64(b), nil
}

// Int32 reads a little-endian signed int32.
func (c *Cursor) Int32() (int32, error) {
	v, err := c.Uint32()
	if err != nil {
		return 0, err
	}

	return int32(v), nil //nolint:gosec
}

// Float32 reads a native-IEEE-754 little-endian float32 (spec §4.1).
func (c *Cursor) Float32() (float32, error) {
	v, err := c.Uint32()
	if err != nil {
		return 0, err
	}

	return math.Float32frombits(v), nil
}

// BE24 reads a 24-bit big-endian value, used exclusively for RefIds (spec §6).
func (c *Cursor) BE24() (uint32, error) {
	b, err := c.Bytes(3)
	if err != nil {
		return 0, err
	}

	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

// String reads a 16-bit-length-prefixed UTF-8 string with no terminator (spec §4.1). The
// codec does not assume or enforce any particular character encoding.
func (c *Cursor) String() (string, error) {
	n, err := c.Uint16()
	if err != nil {
		return "", err
	}

	b, err := c.Bytes(int(n))
	if err != nil {
		return "", err
	}

	return string(b), nil
}
