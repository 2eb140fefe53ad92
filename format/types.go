// Package format defines the small, wire-visible enumerations shared across the codec:
// which game produced a save file and which compressor (if any) was used for its body.
package format

// GameTag identifies which Creation Engine title produced a save file. The two games
// share a container layout but differ in signature, a handful of header fields, and the
// global-data table shapes (see section and globaldata packages).
type GameTag uint8

const (
	// GameUnknown is the zero value; never written to a file.
	GameUnknown GameTag = 0
	// GameS is the signature-"TESV_SAVEGAME" title.
	GameS GameTag = 1
	// GameF is the signature-"FO4_SAVEGAME" title.
	GameF GameTag = 2
)

func (g GameTag) String() string {
	switch g {
	case GameS:
		return "GAME-S"
	case GameF:
		return "GAME-F"
	default:
		return "Unknown"
	}
}

// CompressorType identifies the body compression algorithm, as recorded in the header's
// optional compressor field (section.Header.Compressor). The wire values are fixed by the
// original producer and must not be renumbered.
type CompressorType uint16

const (
	CompressorNone CompressorType = 0
	CompressorZlib CompressorType = 1
	CompressorLZ4  CompressorType = 2
)

func (c CompressorType) String() string {
	switch c {
	case CompressorNone:
		return "None"
	case CompressorZlib:
		return "Zlib"
	case CompressorLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the three values the original producer can emit.
func (c CompressorType) Valid() bool {
	switch c {
	case CompressorNone, CompressorZlib, CompressorLZ4:
		return true
	default:
		return false
	}
}

// RefId is a 24-bit reference identifier (spec §6): the top 2 of its 24 bits carry a type
// tag, the remaining 22 bits a payload. The codec treats the 24-bit value as opaque data —
// it never reinterprets the payload — but exposes the type tag since the producer's own
// change-form semantics (not implemented here) branch on it.
type RefId uint32

const (
	// RefIdIndex is a RefId whose payload indexes into the save's form_ids array.
	RefIdIndex uint8 = 0
	// RefIdRegular is a RefId whose payload is a regular form identifier.
	RefIdRegular uint8 = 1
	// RefIdCreated is a RefId created at runtime; conventionally paired with plugin index 0xFF.
	RefIdCreated uint8 = 2
	// RefIdReserved is unused by the original producer.
	RefIdReserved uint8 = 3
)

// Type returns the RefId's 2-bit type tag.
func (r RefId) Type() uint8 {
	return uint8(r>>22) & 0x03 //nolint:gosec
}

// Payload returns the RefId's 22-bit payload.
func (r RefId) Payload() uint32 {
	return uint32(r) & 0x3FFFFF
}
