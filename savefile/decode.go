package savefile

import (
	"fmt"

	"github.com/creationengine/cegse/compress"
	"github.com/creationengine/cegse/endian"
	"github.com/creationengine/cegse/errs"
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/globaldata"
	"github.com/creationengine/cegse/internal/dlog"
	"github.com/creationengine/cegse/section"
	"github.com/creationengine/cegse/wire"
)

// Decoder decodes a save file's raw bytes into a Document, driving the state machine
// spec §4.7 describes: SIGNATURE -> HEADER -> SNAPSHOT -> (DECOMPRESS?) -> FORM_VERSION ->
// PLUGINS -> OFFSETS -> GLOBALS1 -> GLOBALS2 -> CHANGE_FORMS -> GLOBALS3 -> FORM_IDS ->
// WORLD_SPACES -> TRAILING -> DONE. Any step failing aborts the whole decode.
type Decoder struct{}

// NewDecoder returns a Decoder. It holds no state; a single value may decode any number of
// files.
func NewDecoder() *Decoder { return &Decoder{} }

// Decode parses data into a fully populated Document, or returns the first error
// encountered (errs sentinel-wrapped per spec §7).
func (Decoder) Decode(data []byte) (*Document, error) {
	engine := endian.GetLittleEndianEngine()

	game, sigLen, err := section.DetectGame(data)
	if err != nil {
		return nil, err
	}

	c := wire.NewCursor(data, engine)
	if _, err := c.Bytes(sigLen); err != nil {
		return nil, err
	}

	var hdr section.Header
	if err := decodeFramed(c, hdr.Decode); err != nil {
		return nil, err
	}

	if hdr.FileVersion > 15 {
		return nil, errs.ErrUnsupportedFileVersion
	}

	doc := NewDocument()
	doc.Game = game
	doc.FileVersion = hdr.FileVersion
	doc.SaveNumber = hdr.SaveNumber
	doc.PlayerName = hdr.PlayerName
	doc.Level = hdr.Level
	doc.PlayerLocationName = hdr.PlayerLocationName
	doc.GameTime = hdr.GameTime
	doc.RaceID = hdr.RaceID
	doc.Sex = hdr.Sex
	doc.CurrentXP = hdr.CurrentXP
	doc.TargetXP = hdr.TargetXP
	doc.FileTime = hdr.FileTime
	doc.Compressor = hdr.Compressor

	doc.Snapshot = section.Snapshot{
		Width:         hdr.SnapshotWidth,
		Height:        hdr.SnapshotHeight,
		BytesPerPixel: section.SnapshotBytesPerPixel(hdr.FileVersion),
	}
	if err := doc.Snapshot.Decode(c); err != nil {
		return nil, err
	}

	body, err := decodeBody(c, engine, hdr.FileVersion, hdr.Compressor)
	if err != nil {
		return nil, err
	}

	if err := decodeSaveData(body, doc, game); err != nil {
		dlog.Debug("decode aborted", "game", game, "file_version", hdr.FileVersion, "error", err)
		return nil, err
	}

	return doc, nil
}

// decodeFramed reads a 4-byte length, bounds a sub-cursor to it, and runs decode against
// that sub-cursor -- the generic shape of every length-prefixed block except the offsets
// table (fixed size, no prefix) and the plugin block (length is unreliable, see plugins.go).
func decodeFramed(c *wire.Cursor, decode func(*wire.Cursor) error) error {
	length, err := c.Uint32()
	if err != nil {
		return err
	}

	body, err := c.SubCursor(int(length))
	if err != nil {
		return err
	}

	return decode(body)
}

// decodeBody returns a cursor over the save-data body, decompressing it first if this file
// version supports compression (spec §4.7).
func decodeBody(c *wire.Cursor, engine endian.EndianEngine, fileVersion uint32, compressor format.CompressorType) (*wire.Cursor, error) {
	if !section.SupportsCompression(fileVersion) {
		return c, nil
	}

	uncompressedSize, err := c.Uint32()
	if err != nil {
		return nil, err
	}

	compressedSize, err := c.Uint32()
	if err != nil {
		return nil, err
	}

	compressedBytes, err := c.Bytes(int(compressedSize))
	if err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(compressor)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, uncompressedSize)
	n, err := codec.Decompress(dst, compressedBytes)
	if err != nil {
		return nil, fmt.Errorf("decompressing body: %w", err)
	}

	if n != len(dst) {
		dlog.Debug("body decompression size mismatch", "got", n, "want", len(dst))
		return nil, fmt.Errorf("body decompressed to %d of %d expected bytes: %w", n, len(dst), errs.ErrDecompression)
	}

	return wire.NewCursor(dst, engine), nil
}

func decodeSaveData(c *wire.Cursor, doc *Document, game format.GameTag) error {
	formVersion, err := c.Uint8()
	if err != nil {
		return err
	}
	doc.FormVersion = formVersion

	if game == format.GameF {
		if doc.GameVersion, err = c.String(); err != nil {
			return err
		}
	}

	if err := decodePlugins(c, doc, game); err != nil {
		return err
	}

	var offsets section.OffsetsTable
	if err := offsets.Decode(c, game, doc.FileVersion); err != nil {
		return err
	}

	if err := checkOffset(c, offsets.OffGlobals1, "off_globals1"); err != nil {
		return err
	}
	if err := globaldata.DecodeN(c, game, offsets.NumGlobals1, doc.Globals); err != nil {
		return err
	}

	if err := checkOffset(c, offsets.OffGlobals2, "off_globals2"); err != nil {
		return err
	}
	if err := globaldata.DecodeN(c, game, offsets.NumGlobals2, doc.Globals); err != nil {
		return err
	}

	if err := checkOffset(c, offsets.OffChangeForms, "off_change_forms"); err != nil {
		return err
	}
	doc.ChangeForms = make([]ChangeForm, offsets.NumChangeForms)
	for i := range doc.ChangeForms {
		if doc.ChangeForms[i], err = decodeChangeForm(c); err != nil {
			return err
		}
	}

	if err := checkOffset(c, offsets.OffGlobals3, "off_globals3"); err != nil {
		return err
	}
	if err := globaldata.DecodeN(c, game, offsets.NumGlobals3, doc.Globals); err != nil {
		return err
	}

	if err := checkOffset(c, offsets.OffFormIDsCount, "off_form_ids_count"); err != nil {
		return err
	}
	if doc.FormIDs, err = decodeUint32Array(c); err != nil {
		return err
	}

	if doc.WorldSpaces, err = decodeUint32Array(c); err != nil {
		return err
	}

	if err := checkOffset(c, offsets.OffUnknownTable, "off_unknown_table"); err != nil {
		return err
	}
	length, err := c.Uint32()
	if err != nil {
		return err
	}

	if doc.TrailingRegion, err = c.CopyBytes(int(length)); err != nil {
		return err
	}

	return nil
}

func checkOffset(c *wire.Cursor, want uint32, name string) error {
	if uint32(c.Pos()) != want { //nolint:gosec
		dlog.Debug("offset mismatch", "field", name, "at", c.Pos(), "want", want)
		return fmt.Errorf("%s: stream at %d, table says %d: %w", name, c.Pos(), want, errs.ErrOffsetMismatch)
	}

	return nil
}

func decodeUint32Array(c *wire.Cursor) ([]uint32, error) {
	count, err := c.Uint32()
	if err != nil {
		return nil, err
	}

	out := make([]uint32, count)
	for i := range out {
		if out[i], err = c.Uint32(); err != nil {
			return nil, err
		}
	}

	return out, nil
}
