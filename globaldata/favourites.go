package globaldata

import (
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/wire"
)

// decodeFavourites reads global-data type 109: a VSVAL-prefixed sequence of favourite
// RefIds immediately followed by a second VSVAL-prefixed sequence of hotkey RefIds.
func decodeFavourites(c *wire.Cursor) (favourites, hotkeys []format.RefId, err error) {
	favourites, err = decodeRefIdSeq(c)
	if err != nil {
		return nil, nil, err
	}

	hotkeys, err = decodeRefIdSeq(c)
	if err != nil {
		return nil, nil, err
	}

	return favourites, hotkeys, nil
}

func decodeRefIdSeq(c *wire.Cursor) ([]format.RefId, error) {
	count, err := c.DecodeVSVAL()
	if err != nil {
		return nil, err
	}

	ids := make([]format.RefId, count)

	for i := range ids {
		v, err := c.BE24()
		if err != nil {
			return nil, err
		}

		ids[i] = format.RefId(v)
	}

	return ids, nil
}

func encodeFavourites(w *wire.Writer, favourites, hotkeys []format.RefId) {
	encodeRefIdSeq(w, favourites)
	encodeRefIdSeq(w, hotkeys)
}

func encodeRefIdSeq(w *wire.Writer, ids []format.RefId) {
	w.VSVAL(uint32(len(ids))) //nolint:gosec

	for _, id := range ids {
		w.BE24(uint32(id))
	}
}
