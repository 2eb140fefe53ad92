package section

import (
	"github.com/creationengine/cegse/errs"
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/wire"
)

// Header is the framed block immediately following the signature (spec §4.4).
type Header struct {
	FileVersion        uint32
	SaveNumber         uint32
	PlayerName         string
	Level              uint32
	PlayerLocationName string
	GameTime           string
	RaceID             string
	Sex                uint16
	CurrentXP          float32
	TargetXP           float32
	FileTime           uint64
	SnapshotWidth      uint32
	SnapshotHeight     uint32

	// Compressor is only meaningful (and only present on the wire) when
	// SupportsCompression(FileVersion) is true; otherwise it is always CompressorNone.
	Compressor format.CompressorType
}

// Decode reads the header body from c. c must already be positioned at the start of the
// framed block's body (i.e. past the 4-byte length prefix); callers typically obtain this
// by reading the frame length themselves and bounding a sub-cursor to it.
func (h *Header) Decode(c *wire.Cursor) error {
	var err error

	if h.FileVersion, err = c.Uint32(); err != nil {
		return err
	}

	if h.SaveNumber, err = c.Uint32(); err != nil {
		return err
	}

	if h.PlayerName, err = c.String(); err != nil {
		return err
	}

	if h.Level, err = c.Uint32(); err != nil {
		return err
	}

	if h.PlayerLocationName, err = c.String(); err != nil {
		return err
	}

	if h.GameTime, err = c.String(); err != nil {
		return err
	}

	if h.RaceID, err = c.String(); err != nil {
		return err
	}

	if h.Sex, err = c.Uint16(); err != nil {
		return err
	}

	if h.CurrentXP, err = c.Float32(); err != nil {
		return err
	}

	if h.TargetXP, err = c.Float32(); err != nil {
		return err
	}

	if h.FileTime, err = c.Uint64(); err != nil {
		return err
	}

	if h.SnapshotWidth, err = c.Uint32(); err != nil {
		return err
	}

	if h.SnapshotHeight, err = c.Uint32(); err != nil {
		return err
	}

	if SupportsCompression(h.FileVersion) {
		compressor, err := c.Uint16()
		if err != nil {
			return err
		}

		h.Compressor = format.CompressorType(compressor)
		if !h.Compressor.Valid() {
			return errs.ErrInvalidCompressor
		}
	} else {
		h.Compressor = format.CompressorNone
	}

	return nil
}

// Encode appends the header body to w. Callers wrap this in wire.Writer.WithFrame to
// produce the length-prefixed block the signature is followed by.
func (h *Header) Encode(w *wire.Writer) {
	w.Uint32(h.FileVersion)
	w.Uint32(h.SaveNumber)
	w.String(h.PlayerName)
	w.Uint32(h.Level)
	w.String(h.PlayerLocationName)
	w.String(h.GameTime)
	w.String(h.RaceID)
	w.Uint16(h.Sex)
	w.Float32(h.CurrentXP)
	w.Float32(h.TargetXP)
	w.Uint64(h.FileTime)
	w.Uint32(h.SnapshotWidth)
	w.Uint32(h.SnapshotHeight)

	if SupportsCompression(h.FileVersion) {
		w.Uint16(uint16(h.Compressor))
	}
}
