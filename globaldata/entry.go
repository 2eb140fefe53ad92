package globaldata

import (
	"fmt"

	"github.com/creationengine/cegse/errs"
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/wire"
)

// DecodeEntry reads one (type, length, body) triple and dispatches it: a structured type
// populates the matching field of dst, anything else is stored opaquely under its type. A
// repeated type — structured or opaque — is malformed (spec §4.5), mirroring the reference
// decoder's "non-nil slot" duplicate check.
func DecodeEntry(c *wire.Cursor, game format.GameTag, dst *Tables) error {
	entryType, err := c.Uint32()
	if err != nil {
		return err
	}

	length, err := c.Uint32()
	if err != nil {
		return err
	}

	body, err := c.SubCursor(int(length))
	if err != nil {
		return err
	}

	if dst.seenType(entryType) {
		return fmt.Errorf("type %d: %w", entryType, errs.ErrDuplicateGlobalDataType)
	}

	switch entryType {
	case TypeMiscStats:
		dst.MiscStats, err = decodeMiscStats(body)
		dst.HasMiscStats = true
	case TypePlayerLocation:
		dst.PlayerLocation, err = decodePlayerLocation(body, game)
		dst.HasPlayerLocation = true
	case TypeGlobalVars:
		dst.GlobalVars, err = decodeGlobalVars(body)
		dst.HasGlobalVars = true
	case TypeWeather:
		dst.Weather, err = decodeWeather(body)
		dst.HasWeather = true
	case TypeFavourites:
		dst.Favourites, dst.Hotkeys, err = decodeFavourites(body)
		dst.HasFavourites = true
	default:
		var raw []byte
		raw, err = body.CopyBytes(body.Remaining())
		dst.Opaque[entryType] = raw
	}

	if err != nil {
		return err
	}

	if body.Remaining() != 0 {
		return fmt.Errorf("type %d consumed %d of %d declared bytes: %w",
			entryType, int(length)-body.Remaining(), length, errs.ErrGlobalDataLengthMismatch)
	}

	return nil
}

// seenType reports whether entryType has already been decoded into dst, structured or
// opaque.
func (t *Tables) seenType(entryType uint32) bool {
	switch entryType {
	case TypeMiscStats:
		return t.HasMiscStats
	case TypePlayerLocation:
		return t.HasPlayerLocation
	case TypeGlobalVars:
		return t.HasGlobalVars
	case TypeWeather:
		return t.HasWeather
	case TypeFavourites:
		return t.HasFavourites
	default:
		_, ok := t.Opaque[entryType]
		return ok
	}
}

// EncodeEntry writes one (type, length, body) triple for entryType, reading from whichever
// field of src corresponds to it. The entry is always written; an opaque type missing from
// src.Opaque gets an empty body. Skipping types src does not hold is left to encodeTypes.
func EncodeEntry(w *wire.Writer, entryType uint32, game format.GameTag, src *Tables) {
	w.Uint32(entryType)

	offset := w.BeginFrame()

	switch entryType {
	case TypeMiscStats:
		encodeMiscStats(w, src.MiscStats)
	case TypePlayerLocation:
		encodePlayerLocation(w, src.PlayerLocation, game)
	case TypeGlobalVars:
		encodeGlobalVars(w, src.GlobalVars)
	case TypeWeather:
		encodeWeather(w, src.Weather)
	case TypeFavourites:
		encodeFavourites(w, src.Favourites, src.Hotkeys)
	default:
		w.Bytes(src.Opaque[entryType])
	}

	w.EndFrame(offset)
}
