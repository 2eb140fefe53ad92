// Package savefile implements the top-level document model and the encoder/decoder state
// machine that drives every lower-level package (section, globaldata, compress, wire) over
// a save file's full byte layout (spec §3, §4.7).
package savefile

import (
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/globaldata"
	"github.com/creationengine/cegse/section"
)

// Document is the root in-memory representation of a save file: every field the decoder
// populates and the encoder consumes to reproduce the file byte-for-byte (spec §3). The
// zero value is a valid, empty document a caller can populate by hand and encode.
type Document struct {
	Game        format.GameTag
	FileVersion uint32
	FormVersion uint8
	Compressor  format.CompressorType

	SaveNumber uint32
	Level      uint32
	Sex        uint16
	CurrentXP  float32
	TargetXP   float32
	FileTime   uint64

	PlayerName         string
	PlayerLocationName string
	GameTime           string
	RaceID             string

	Snapshot section.Snapshot

	// GameVersion is only present for GAME-F.
	GameVersion string

	Plugins      []string
	LightPlugins []string

	// Globals holds the five structured global-data types plus every opaque entry this
	// file contained, across all three tables (see globaldata.Tables).
	Globals *globaldata.Tables

	ChangeForms []ChangeForm

	FormIDs     []uint32
	WorldSpaces []uint32

	TrailingRegion []byte
}

// ChangeForm pairs a change-form's self-describing header with its opaque payload bytes
// (spec §4.6). The codec never interprets Data; it only round-trips it.
type ChangeForm struct {
	Header section.ChangeFormHeader
	Data   []byte
}

// NewDocument returns an empty document with its Globals table initialized, ready for the
// caller to populate field by field before encoding.
func NewDocument() *Document {
	return &Document{Globals: globaldata.NewTables()}
}
