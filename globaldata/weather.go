package globaldata

import (
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/wire"
)

// Weather is global-data type 6: the active/previous weather reference ids, a handful of
// timing and percentage floats, two fixed arrays of unknown words, and a trailing opaque
// region whose length is whatever remains of the framed entry after the fixed fields (spec
// §4.5). The codec never interprets Data4; it exists purely to round-trip.
type Weather struct {
	Climate      format.RefId
	WeatherID    format.RefId
	PrevWeather  format.RefId
	UnkWeather1  format.RefId
	UnkWeather2  format.RefId
	RegnWeather  format.RefId
	CurrentTime  float32
	BeginTime    float32
	WeatherPct   float32
	Data1        [6]uint32
	Data2        float32
	Data3        uint32
	Flags        uint8
	Data4        []byte
}

func decodeWeather(c *wire.Cursor) (Weather, error) {
	var w Weather
	var err error

	refIDs := []*format.RefId{
		&w.Climate, &w.WeatherID, &w.PrevWeather,
		&w.UnkWeather1, &w.UnkWeather2, &w.RegnWeather,
	}
	for _, dst := range refIDs {
		v, err := c.BE24()
		if err != nil {
			return w, err
		}
		*dst = format.RefId(v)
	}

	if w.CurrentTime, err = c.Float32(); err != nil {
		return w, err
	}

	if w.BeginTime, err = c.Float32(); err != nil {
		return w, err
	}

	if w.WeatherPct, err = c.Float32(); err != nil {
		return w, err
	}

	for i := range w.Data1 {
		if w.Data1[i], err = c.Uint32(); err != nil {
			return w, err
		}
	}

	if w.Data2, err = c.Float32(); err != nil {
		return w, err
	}

	if w.Data3, err = c.Uint32(); err != nil {
		return w, err
	}

	if w.Flags, err = c.Uint8(); err != nil {
		return w, err
	}

	// Whatever is left of the entry's framed body belongs to Data4 verbatim.
	if w.Data4, err = c.CopyBytes(c.Remaining()); err != nil {
		return w, err
	}

	return w, nil
}

func encodeWeather(wr *wire.Writer, w Weather) {
	wr.BE24(uint32(w.Climate))
	wr.BE24(uint32(w.WeatherID))
	wr.BE24(uint32(w.PrevWeather))
	wr.BE24(uint32(w.UnkWeather1))
	wr.BE24(uint32(w.UnkWeather2))
	wr.BE24(uint32(w.RegnWeather))
	wr.Float32(w.CurrentTime)
	wr.Float32(w.BeginTime)
	wr.Float32(w.WeatherPct)

	for _, v := range w.Data1 {
		wr.Uint32(v)
	}

	wr.Float32(w.Data2)
	wr.Uint32(w.Data3)
	wr.Uint8(w.Flags)
	wr.Bytes(w.Data4)
}
