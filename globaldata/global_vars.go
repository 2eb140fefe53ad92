package globaldata

import (
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/wire"
)

// GlobalVar is one entry of global-data type 3: a reference id paired with its current
// float value.
type GlobalVar struct {
	FormID format.RefId
	Value  float32
}

func decodeGlobalVars(c *wire.Cursor) ([]GlobalVar, error) {
	count, err := c.DecodeVSVAL()
	if err != nil {
		return nil, err
	}

	vars := make([]GlobalVar, count)

	for i := range vars {
		refID, err := c.BE24()
		if err != nil {
			return nil, err
		}
		vars[i].FormID = format.RefId(refID)

		if vars[i].Value, err = c.Float32(); err != nil {
			return nil, err
		}
	}

	return vars, nil
}

func encodeGlobalVars(w *wire.Writer, vars []GlobalVar) {
	w.VSVAL(uint32(len(vars))) //nolint:gosec

	for _, v := range vars {
		w.BE24(uint32(v.FormID))
		w.Float32(v.Value)
	}
}
