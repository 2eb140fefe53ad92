package wire

import (
	"github.com/creationengine/cegse/errs"
	"github.com/creationengine/cegse/internal/dlog"
)

// VSVALMax is the largest value a VSVAL can represent: 2^22 - 1 (spec §4.1). The producer
// wraps silently when a count exceeds this; the codec preserves that behavior rather than
// rejecting it, so round-trips of producer-written files stay bit-exact.
const VSVALMax = 1<<22 - 1

// DecodeVSVAL reads a 1-3 byte variable-length integer. The low 2 bits of the first byte
// select the encoded width (0 -> 1 byte, 1 -> 2 bytes, 2 -> 3 bytes); selector 3 (the
// four-byte form) is malformed and rejected with errs.ErrInvalidVSVALWidth.
func (c *Cursor) DecodeVSVAL() (uint32, error) {
	b0, err := c.Uint8()
	if err != nil {
		return 0, err
	}

	switch b0 & 0x03 {
	case 0:
		return uint32(b0) >> 2, nil
	case 1:
		b1, err := c.Uint8()
		if err != nil {
			return 0, err
		}

		return (uint32(b0) | uint32(b1)<<8) >> 2, nil
	case 2:
		b1, err := c.Uint8()
		if err != nil {
			return 0, err
		}

		b2, err := c.Uint8()
		if err != nil {
			return 0, err
		}

		return (uint32(b0) | uint32(b1)<<8 | uint32(b2)<<16) >> 2, nil
	default:
		return 0, errs.ErrInvalidVSVALWidth
	}
}

// vsvalWidth returns the number of bytes required to encode v, saturating at 3 bytes. A v
// that overflows VSVALMax is truncated to its low 22 bits by the caller before encoding,
// matching the original producer's silent wraparound (spec §4.1, §8).
func vsvalWidth(v uint32) int {
	switch {
	case v <= 0x3F: // 6 bits fit in a 1-byte value (2 bits reserved for the selector)
		return 1
	case v <= 0x3FFF: // 14 bits
		return 2
	default:
		return 3
	}
}

// EncodeVSVAL appends the VSVAL encoding of v to dst and returns the extended slice. v is
// masked to its low 22 bits first, reproducing the producer's wraparound-on-overflow
// behavior rather than erroring.
func EncodeVSVAL(dst []byte, v uint32) []byte {
	if v > VSVALMax {
		dlog.Debug("VSVAL overflow, wrapping", "value", v, "max", VSVALMax)
	}

	v &= VSVALMax

	width := vsvalWidth(v)
	shifted := v<<2 | uint32(width-1)

	switch width {
	case 1:
		return append(dst, byte(shifted))
	case 2:
		return append(dst, byte(shifted), byte(shifted>>8))
	default:
		return append(dst, byte(shifted), byte(shifted>>8), byte(shifted>>16))
	}
}

// VSVALLen reports how many bytes EncodeVSVAL(nil, v) would produce, without allocating.
func VSVALLen(v uint32) int {
	return vsvalWidth(v & VSVALMax)
}

// DecodeVSVALBytes is a convenience wrapper for decoding a VSVAL from a raw slice without
// constructing a Cursor. The codec's own decoders read VSVALs through Cursor.DecodeVSVAL
// instead. It returns errs.ErrUnexpectedEnd if data is too short for the width encoded in
// its first byte.
func DecodeVSVALBytes(data []byte) (value uint32, consumed int, err error) {
	if len(data) < 1 {
		return 0, 0, errs.ErrUnexpectedEnd
	}

	selector := data[0] & 0x03
	if selector == 3 {
		return 0, 0, errs.ErrInvalidVSVALWidth
	}

	width := int(selector) + 1
	if len(data) < width {
		return 0, 0, errs.ErrUnexpectedEnd
	}

	var raw uint32
	for i := width - 1; i >= 0; i-- {
		raw = raw<<8 | uint32(data[i])
	}

	return raw >> 2, width, nil
}
