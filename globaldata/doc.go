// Package globaldata implements the three global-data tables embedded in a save file's
// body (spec §4.5). Every entry on the wire is a self-describing (type, length, body)
// triple; five numeric types carry a structured payload this package decodes into a typed
// value, everything else is stored verbatim as an opaque chunk keyed by its type so it can
// be written back unchanged.
//
// The type-to-codec dispatch mirrors the reference decoder's switch statement rather than a
// precomputed per-variant type list: each entry is read independently, its type value alone
// decides whether a structured decoder runs or the body is copied opaquely. This keeps the
// decoder tolerant of whatever subset of types a given file actually contains, which is the
// same tolerance the producer itself has on read (see DESIGN.md for the GAME-S/GAME-F type
// ranges used only by the encoder, which must reproduce a specific type and ordering).
package globaldata

import "github.com/creationengine/cegse/format"

// Tables accumulates every global-data entry decoded across all three tables. Opaque keys
// distinguish tables implicitly (0-11 table 1, 100-117 table 2, 1000-1007 table 3), so one
// map and one set of structured-presence flags cover the whole document.
type Tables struct {
	MiscStats         []MiscStat
	HasMiscStats      bool
	PlayerLocation    PlayerLocation
	HasPlayerLocation bool
	GlobalVars        []GlobalVar
	HasGlobalVars     bool
	Weather           Weather
	HasWeather        bool
	Favourites        []format.RefId
	Hotkeys           []format.RefId
	HasFavourites     bool

	// Opaque holds every entry whose type is not one of the five structured types,
	// keyed by type. Exactly one slot per type is ever filled; a repeat is malformed.
	Opaque map[uint32][]byte
}

// NewTables returns an empty Tables ready for decoding.
func NewTables() *Tables {
	return &Tables{Opaque: make(map[uint32][]byte)}
}

// Structured global-data type tags (spec §4.5).
const (
	TypeMiscStats      uint32 = 0
	TypePlayerLocation uint32 = 1
	TypeGlobalVars     uint32 = 3
	TypeWeather        uint32 = 6
	TypeFavourites     uint32 = 109
)

func isStructured(t uint32) bool {
	switch t {
	case TypeMiscStats, TypePlayerLocation, TypeGlobalVars, TypeWeather, TypeFavourites:
		return true
	default:
		return false
	}
}
