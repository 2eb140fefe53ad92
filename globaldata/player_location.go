package globaldata

import (
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/wire"
)

// PlayerLocation is global-data type 1: the player's current cell/world coordinates. The
// trailing Unknown byte exists only for GAME-S (spec §3, §4.5); callers must tell
// Decode/Encode whether to read/write it.
type PlayerLocation struct {
	NextObjectID uint32
	WorldSpace1  format.RefId
	CoordX       int32
	CoordY       int32
	WorldSpace2  format.RefId
	PosX         float32
	PosY         float32
	PosZ         float32
	Unknown      uint8 // GAME-S only
}

func decodePlayerLocation(c *wire.Cursor, game format.GameTag) (PlayerLocation, error) {
	var p PlayerLocation
	var err error

	if p.NextObjectID, err = c.Uint32(); err != nil {
		return p, err
	}

	refID, err := c.BE24()
	if err != nil {
		return p, err
	}
	p.WorldSpace1 = format.RefId(refID)

	if p.CoordX, err = c.Int32(); err != nil {
		return p, err
	}

	if p.CoordY, err = c.Int32(); err != nil {
		return p, err
	}

	refID, err = c.BE24()
	if err != nil {
		return p, err
	}
	p.WorldSpace2 = format.RefId(refID)

	if p.PosX, err = c.Float32(); err != nil {
		return p, err
	}

	if p.PosY, err = c.Float32(); err != nil {
		return p, err
	}

	if p.PosZ, err = c.Float32(); err != nil {
		return p, err
	}

	if game == format.GameS {
		if p.Unknown, err = c.Uint8(); err != nil {
			return p, err
		}
	}

	return p, nil
}

func encodePlayerLocation(w *wire.Writer, p PlayerLocation, game format.GameTag) {
	w.Uint32(p.NextObjectID)
	w.BE24(uint32(p.WorldSpace1))
	w.Int32(p.CoordX)
	w.Int32(p.CoordY)
	w.BE24(uint32(p.WorldSpace2))
	w.Float32(p.PosX)
	w.Float32(p.PosY)
	w.Float32(p.PosZ)

	if game == format.GameS {
		w.Uint8(p.Unknown)
	}
}
