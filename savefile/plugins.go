package savefile

import (
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/section"
	"github.com/creationengine/cegse/wire"
)

// decodePlugins reads the plugin block: a framed length (read and discarded -- the
// reference decoder never uses it, see original_source/src/savefile.c's
// "(void) get_le32_or_zero(stream)"), the 8-bit plugin count and strings, and, when this
// variant supports it, a 16-bit light-plugin count and strings.
//
// The frame's declared length is not trustworthy as a bound: GAME-S ≥12 and GAME-F
// over-report it by 2 bytes (section.HasPluginLengthQuirk), and nothing downstream skips to
// the declared end -- the next section begins immediately after the real content. Parsing
// directly off the main cursor, the way the reference decoder does, sidesteps the quirk
// entirely on the read side.
func decodePlugins(c *wire.Cursor, doc *Document, game format.GameTag) error {
	if _, err := c.Uint32(); err != nil {
		return err
	}

	count, err := c.Uint8()
	if err != nil {
		return err
	}

	doc.Plugins = make([]string, count)
	for i := range doc.Plugins {
		if doc.Plugins[i], err = c.String(); err != nil {
			return err
		}
	}

	if !section.SupportsLightPlugins(game, doc.FileVersion, doc.FormVersion) {
		return nil
	}

	lightCount, err := c.Uint16()
	if err != nil {
		return err
	}

	doc.LightPlugins = make([]string, lightCount)
	for i := range doc.LightPlugins {
		if doc.LightPlugins[i], err = c.String(); err != nil {
			return err
		}
	}

	return nil
}

// encodePlugins writes the plugin block. When the +2/-2 quirk applies (spec §4.4), it
// writes two extra filler bytes before closing the frame -- so the recorded length includes
// them -- then truncates the buffer back by those same two bytes so the next section begins
// at the true end of the content, exactly reproducing the producer's bug.
func encodePlugins(w *wire.Writer, doc *Document, game format.GameTag) {
	offset := w.BeginFrame()

	w.Uint8(uint8(len(doc.Plugins))) //nolint:gosec
	for _, p := range doc.Plugins {
		w.String(p)
	}

	if section.SupportsLightPlugins(game, doc.FileVersion, doc.FormVersion) {
		w.Uint16(uint16(len(doc.LightPlugins))) //nolint:gosec
		for _, p := range doc.LightPlugins {
			w.String(p)
		}
	}

	if section.HasPluginLengthQuirk(game, doc.FileVersion) {
		w.Bytes([]byte{0, 0})
		w.EndFrame(offset)
		w.Buffer().SetLength(w.Pos() - 2)

		return
	}

	w.EndFrame(offset)
}
