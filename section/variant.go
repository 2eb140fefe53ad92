package section

import "github.com/creationengine/cegse/format"

// SupportsCompression reports whether fileVersion enables body compression and the header's
// compressor field (spec §3: "≥12 enables body compression").
func SupportsCompression(fileVersion uint32) bool {
	return fileVersion >= 12
}

// SnapshotBytesPerPixel reports the screenshot's pixel width: 4 (RGBA) from fileVersion 11
// onward, 3 (RGB) before that (spec §3).
func SnapshotBytesPerPixel(fileVersion uint32) int {
	if fileVersion >= 11 {
		return 4
	}

	return 3
}

// SupportsLightPlugins reports whether this game/fileVersion/formVersion combination writes
// a light-plugins list after the regular plugin list (spec §3): for GAME-S, fileVersion ≥ 12
// and formVersion ≥ 78; for GAME-F, fileVersion ≥ 12 unconditionally.
func SupportsLightPlugins(game format.GameTag, fileVersion uint32, formVersion uint8) bool {
	if fileVersion < 12 {
		return false
	}

	if game == format.GameF {
		return true
	}

	return formVersion >= 78
}

// HasPluginLengthQuirk reports whether the plugin block is subject to the producer's +2/-2
// over-reported-length bug (spec §4.4): GAME-S fileVersion ≥ 12, or GAME-F unconditionally.
func HasPluginLengthQuirk(game format.GameTag, fileVersion uint32) bool {
	if game == format.GameF {
		return true
	}

	return fileVersion >= 12
}
