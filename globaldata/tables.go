package globaldata

import (
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/wire"
)

// Table1Types, Table2Types, and Table3Types return the ordered type tag list the encoder
// writes for the given game (spec §4.5's table). The decoder does not consult these lists —
// it dispatches purely on each entry's own type field, the same as the reference decoder's
// switch statement — they exist only so the encoder reproduces the producer's exact type
// set and ascending order for a given variant.
//
// Global-data type 104 is conditional in the original producer and is treated per
// DESIGN.md's Open Question resolution: opaque-if-present, never emitted by this codec, so
// it is deliberately absent from both lists below.
func Table1Types(game format.GameTag) []uint32 {
	types := []uint32{0, 1, 2, 3, 4, 5, 6, 7, 8}
	if game == format.GameF {
		types = append(types, 9, 10, 11)
	}

	return types
}

func Table2Types(game format.GameTag) []uint32 {
	common := []uint32{100, 101, 102, 103, 105, 106, 109, 110, 111, 113, 114}

	switch game {
	case format.GameS:
		return insertSorted(common, 107, 108, 112)
	default:
		return append(append([]uint32{}, common...), 115, 116, 117)
	}
}

func Table3Types(game format.GameTag) []uint32 {
	if game == format.GameF {
		return []uint32{1000, 1001, 1002, 1003, 1004, 1005, 1006, 1007}
	}

	// GAME-S writes 5 table-3 entries (the offsets table then records num_globals3-1,
	// see section.OffsetsTable); this codec's own reading of the producer omits the last
	// of the six 1000..1005 slots to reach that count. Not independently confirmed against
	// a GAME-S sample containing all six — see DESIGN.md.
	return []uint32{1000, 1001, 1002, 1003, 1004}
}

func insertSorted(base []uint32, extra ...uint32) []uint32 {
	out := append([]uint32{}, base...)
	out = append(out, extra...)

	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}

	return out
}

// DecodeN reads exactly count entries from c into dst. The caller supplies count from the
// offsets table (NumGlobals1/2/3); each entry dispatches on its own type regardless of which
// table it came from.
func DecodeN(c *wire.Cursor, game format.GameTag, count uint32, dst *Tables) error {
	for i := uint32(0); i < count; i++ {
		if err := DecodeEntry(c, game, dst); err != nil {
			return err
		}
	}

	return nil
}

// EncodeTable1, EncodeTable2, and EncodeTable3 write every entry for the game's type list in
// order and return how many entries were written, for the caller to record in the offsets
// table (section.OffsetsTable.NumGlobals1/2/3).
func EncodeTable1(w *wire.Writer, game format.GameTag, src *Tables) int {
	return encodeTypes(w, Table1Types(game), game, src)
}

func EncodeTable2(w *wire.Writer, game format.GameTag, src *Tables) int {
	return encodeTypes(w, Table2Types(game), game, src)
}

func EncodeTable3(w *wire.Writer, game format.GameTag, src *Tables) int {
	return encodeTypes(w, Table3Types(game), game, src)
}

func encodeTypes(w *wire.Writer, types []uint32, game format.GameTag, src *Tables) int {
	n := 0

	for _, t := range types {
		if !src.hasType(t) {
			continue
		}

		EncodeEntry(w, t, game, src)
		n++
	}

	return n
}

// hasType reports whether src holds data for t, structured or opaque. The encoder skips
// types src never populated (e.g. an optional type-104 slot left empty) rather than writing
// an empty placeholder entry.
func (t *Tables) hasType(entryType uint32) bool {
	return t.seenType(entryType)
}
