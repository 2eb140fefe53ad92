package section

import (
	"github.com/creationengine/cegse/errs"
	"github.com/creationengine/cegse/wire"
)

// ChangeFormHeader is the self-describing record header preceding every change-form's
// opaque payload (spec §4.6). The top 2 bits of Type select the width of Length1/Length2;
// the remaining 6 bits are the form's type code, which this codec never interprets.
type ChangeFormHeader struct {
	FormID   uint32 // 24-bit RefId
	Flags    uint32
	Type     uint8
	Version  uint8
	Length1  uint32
	Length2  uint32
}

// LengthWidth returns the byte width (1, 2, or 4) that Length1/Length2 are encoded at,
// selected by the top 2 bits of Type. A selector of 3 is malformed (spec §4.6).
func (h ChangeFormHeader) LengthWidth() (int, error) {
	switch h.Type >> 6 {
	case 0:
		return 1, nil
	case 1:
		return 2, nil
	case 2:
		return 4, nil
	default:
		return 0, errs.ErrInvalidChangeFormWidth
	}
}

// Compressed reports whether the payload is itself compressed: a non-zero Length2 gives
// the uncompressed size (spec §4.6); the payload bytes remain opaque to this codec either
// way.
func (h ChangeFormHeader) Compressed() bool {
	return h.Length2 != 0
}

// Decode reads the fixed header fields. It does not read the payload; the caller reads
// Length1 bytes separately once the width-dependent lengths are known.
func (h *ChangeFormHeader) Decode(c *wire.Cursor) error {
	var err error

	if h.FormID, err = c.BE24(); err != nil {
		return err
	}

	if h.Flags, err = c.Uint32(); err != nil {
		return err
	}

	if h.Type, err = c.Uint8(); err != nil {
		return err
	}

	if h.Version, err = c.Uint8(); err != nil {
		return err
	}

	width, err := h.LengthWidth()
	if err != nil {
		return err
	}

	h.Length1, err = readWidth(c, width)
	if err != nil {
		return err
	}

	h.Length2, err = readWidth(c, width)

	return err
}

// Encode appends the fixed header fields. Length1/Length2 are written at the width Type
// selects; the caller is responsible for choosing a Type whose selector bits fit both
// lengths.
func (h *ChangeFormHeader) Encode(w *wire.Writer) error {
	width, err := h.LengthWidth()
	if err != nil {
		return err
	}

	w.BE24(h.FormID)
	w.Uint32(h.Flags)
	w.Uint8(h.Type)
	w.Uint8(h.Version)
	writeWidth(w, width, h.Length1)
	writeWidth(w, width, h.Length2)

	return nil
}

func readWidth(c *wire.Cursor, width int) (uint32, error) {
	switch width {
	case 1:
		v, err := c.Uint8()
		return uint32(v), err
	case 2:
		v, err := c.Uint16()
		return uint32(v), err
	default:
		return c.Uint32()
	}
}

func writeWidth(w *wire.Writer, width int, v uint32) {
	switch width {
	case 1:
		w.Uint8(uint8(v)) //nolint:gosec
	case 2:
		w.Uint16(uint16(v)) //nolint:gosec
	default:
		w.Uint32(v)
	}
}
