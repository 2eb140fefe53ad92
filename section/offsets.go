package section

import (
	"github.com/creationengine/cegse/endian"
	"github.com/creationengine/cegse/errs"
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/wire"
)

// OffsetsContentSize is the number of meaningful bytes in the offsets table; the remaining
// OffsetsPaddingSize bytes are zero padding the producer reserves but never uses (spec §4.4).
const (
	OffsetsContentSize = 40
	OffsetsPaddingSize = 60
	OffsetsTableSize   = OffsetsContentSize + OffsetsPaddingSize
)

// OffsetsTable locates the body's major sections, in the wire order spec §4.4 specifies.
// The encoder writes this twice: once as a placeholder right after the plugin block, once
// for real after every section has been serialized (spec §4.7).
type OffsetsTable struct {
	OffFormIDsCount uint32
	OffUnknownTable uint32
	OffGlobals1     uint32
	OffGlobals2     uint32
	OffChangeForms  uint32
	OffGlobals3     uint32

	NumGlobals1     uint32
	NumGlobals2     uint32
	NumGlobals3     uint32
	NumChangeForms  uint32
}

// Decode reads the table and reverses the producer's layout quirks (spec §4.4):
// GAME-S records NumGlobals3 one less than the true count, and GAME-S file_version 12
// records every offset 8 bytes greater than the true value.
func (t *OffsetsTable) Decode(c *wire.Cursor, game format.GameTag, fileVersion uint32) error {
	var err error

	if t.OffFormIDsCount, err = c.Uint32(); err != nil {
		return err
	}

	if t.OffUnknownTable, err = c.Uint32(); err != nil {
		return err
	}

	if t.OffGlobals1, err = c.Uint32(); err != nil {
		return err
	}

	if t.OffGlobals2, err = c.Uint32(); err != nil {
		return err
	}

	if t.OffChangeForms, err = c.Uint32(); err != nil {
		return err
	}

	if t.OffGlobals3, err = c.Uint32(); err != nil {
		return err
	}

	if t.NumGlobals1, err = c.Uint32(); err != nil {
		return err
	}

	if t.NumGlobals2, err = c.Uint32(); err != nil {
		return err
	}

	if t.NumGlobals3, err = c.Uint32(); err != nil {
		return err
	}

	if t.NumChangeForms, err = c.Uint32(); err != nil {
		return err
	}

	if _, err = c.Bytes(OffsetsPaddingSize); err != nil {
		return err
	}

	if game == format.GameS {
		t.NumGlobals3++
	}

	if game == format.GameS && fileVersion == 12 {
		t.OffFormIDsCount += 8
		t.OffUnknownTable += 8
		t.OffGlobals1 += 8
		t.OffGlobals2 += 8
		t.OffChangeForms += 8
		t.OffGlobals3 += 8
	}

	return nil
}

// Encode writes the table, applying the same layout quirks in reverse. w must already be
// positioned where the table belongs -- the caller is responsible for the placeholder /
// final-pass back-patch dance spec §4.4 describes (the table has no length prefix of its
// own to frame, it is a fixed-size region addressed by absolute offset).
func (t *OffsetsTable) Encode(w *wire.Writer, game format.GameTag, fileVersion uint32) {
	offFormIDsCount, offUnknownTable := t.OffFormIDsCount, t.OffUnknownTable
	offGlobals1, offGlobals2 := t.OffGlobals1, t.OffGlobals2
	offChangeForms, offGlobals3 := t.OffChangeForms, t.OffGlobals3
	numGlobals3 := t.NumGlobals3

	if game == format.GameS && fileVersion == 12 {
		offFormIDsCount -= 8
		offUnknownTable -= 8
		offGlobals1 -= 8
		offGlobals2 -= 8
		offChangeForms -= 8
		offGlobals3 -= 8
	}

	if game == format.GameS {
		numGlobals3--
	}

	w.Uint32(offFormIDsCount)
	w.Uint32(offUnknownTable)
	w.Uint32(offGlobals1)
	w.Uint32(offGlobals2)
	w.Uint32(offChangeForms)
	w.Uint32(offGlobals3)
	w.Uint32(t.NumGlobals1)
	w.Uint32(t.NumGlobals2)
	w.Uint32(numGlobals3)
	w.Uint32(t.NumChangeForms)
	w.Bytes(make([]byte, OffsetsPaddingSize))
}

// PatchAt overwrites the offsets table in an already-serialized buffer at byte offset
// tableOffset, using the same encoding Encode produces. This is how the top-level codec
// implements "write a placeholder, then seek back and overwrite with real offsets" purely
// in terms of in-memory buffer slicing (Design Notes §9), without a real file seek.
func (t *OffsetsTable) PatchAt(buf []byte, tableOffset int, game format.GameTag, fileVersion uint32) error {
	if tableOffset < 0 || tableOffset+OffsetsTableSize > len(buf) {
		return errs.ErrUnexpectedEnd
	}

	region := buf[tableOffset : tableOffset+OffsetsTableSize]

	offFormIDsCount, offUnknownTable := t.OffFormIDsCount, t.OffUnknownTable
	offGlobals1, offGlobals2 := t.OffGlobals1, t.OffGlobals2
	offChangeForms, offGlobals3 := t.OffChangeForms, t.OffGlobals3
	numGlobals3 := t.NumGlobals3

	if game == format.GameS && fileVersion == 12 {
		offFormIDsCount -= 8
		offUnknownTable -= 8
		offGlobals1 -= 8
		offGlobals2 -= 8
		offChangeForms -= 8
		offGlobals3 -= 8
	}

	if game == format.GameS {
		numGlobals3--
	}

	engine := endian.GetLittleEndianEngine()
	engine.PutUint32(region[0:4], offFormIDsCount)
	engine.PutUint32(region[4:8], offUnknownTable)
	engine.PutUint32(region[8:12], offGlobals1)
	engine.PutUint32(region[12:16], offGlobals2)
	engine.PutUint32(region[16:20], offChangeForms)
	engine.PutUint32(region[20:24], offGlobals3)
	engine.PutUint32(region[24:28], t.NumGlobals1)
	engine.PutUint32(region[28:32], t.NumGlobals2)
	engine.PutUint32(region[32:36], numGlobals3)
	engine.PutUint32(region[36:40], t.NumChangeForms)
	clear(region[40:OffsetsTableSize])

	return nil
}
