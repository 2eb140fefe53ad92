package globaldata

import "github.com/creationengine/cegse/wire"

// MiscStat is one row of the miscellaneous-statistics table (global-data type 0): a named
// counter, a small category tag, and a signed value (spec §4.5).
type MiscStat struct {
	Name     string
	Category uint8
	Value    int32
}

// decodeMiscStats reads the u32-prefixed sequence of MiscStat rows. Unlike most counted
// sequences in this format the count here is a plain u32, not a VSVAL (confirmed against
// the reference decoder's get_le32 call).
func decodeMiscStats(c *wire.Cursor) ([]MiscStat, error) {
	count, err := c.Uint32()
	if err != nil {
		return nil, err
	}

	stats := make([]MiscStat, count)

	for i := range stats {
		if stats[i].Name, err = c.String(); err != nil {
			return nil, err
		}

		if stats[i].Category, err = c.Uint8(); err != nil {
			return nil, err
		}

		v, err := c.Int32()
		if err != nil {
			return nil, err
		}

		stats[i].Value = v
	}

	return stats, nil
}

func encodeMiscStats(w *wire.Writer, stats []MiscStat) {
	w.Uint32(uint32(len(stats))) //nolint:gosec

	for _, s := range stats {
		w.String(s.Name)
		w.Uint8(s.Category)
		w.Int32(s.Value)
	}
}
