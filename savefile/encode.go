package savefile

import (
	"fmt"

	"github.com/creationengine/cegse/compress"
	"github.com/creationengine/cegse/endian"
	"github.com/creationengine/cegse/format"
	"github.com/creationengine/cegse/globaldata"
	"github.com/creationengine/cegse/internal/pool"
	"github.com/creationengine/cegse/section"
	"github.com/creationengine/cegse/wire"
)

// Encoder serializes a Document back into a save file's exact byte layout (spec §4.7):
// write the signature, the framed header, the snapshot pixels, then the body (optionally
// compressed), finishing with a back-patch of the offsets table placeholder once every
// section's true position is known.
type Encoder struct{}

// NewEncoder returns an Encoder. It holds no state; a single value may encode any number of
// documents.
func NewEncoder() *Encoder { return &Encoder{} }

// Encode serializes doc and returns the resulting file bytes.
func (Encoder) Encode(doc *Document) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()

	buf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(buf)

	w := wire.NewWriter(buf, engine)

	sig, err := section.Signature(doc.Game)
	if err != nil {
		return nil, err
	}
	w.Bytes([]byte(sig))

	hdr := section.Header{
		FileVersion:        doc.FileVersion,
		SaveNumber:         doc.SaveNumber,
		PlayerName:         doc.PlayerName,
		Level:              doc.Level,
		PlayerLocationName: doc.PlayerLocationName,
		GameTime:           doc.GameTime,
		RaceID:             doc.RaceID,
		Sex:                doc.Sex,
		CurrentXP:          doc.CurrentXP,
		TargetXP:           doc.TargetXP,
		FileTime:           doc.FileTime,
		SnapshotWidth:      doc.Snapshot.Width,
		SnapshotHeight:     doc.Snapshot.Height,
		Compressor:         doc.Compressor,
	}
	w.WithFrame(func() { hdr.Encode(w) })

	doc.Snapshot.Encode(w)

	// The producer writes the body to a real, already-positioned output stream when no
	// compression applies (so recorded offsets are absolute file positions), but to a fresh
	// in-memory stream starting at 0 when it compresses (so recorded offsets are relative to
	// the decompressed body) -- see decode.go's decodeBody for the mirrored read-side split.
	if section.SupportsCompression(doc.FileVersion) {
		return encodeCompressedBody(w, doc)
	}

	return encodeDirectBody(w, doc)
}

func encodeDirectBody(w *wire.Writer, doc *Document) ([]byte, error) {
	tableOffset, table, err := encodeSaveData(w, doc)
	if err != nil {
		return nil, err
	}

	if err := table.PatchAt(w.Buffer().B, tableOffset, doc.Game, doc.FileVersion); err != nil {
		return nil, err
	}

	return finish(w), nil
}

func encodeCompressedBody(w *wire.Writer, doc *Document) ([]byte, error) {
	engine := endian.GetLittleEndianEngine()

	bodyBuf := pool.GetBlobBuffer()
	defer pool.PutBlobBuffer(bodyBuf)

	bodyWriter := wire.NewWriter(bodyBuf, engine)

	tableOffset, table, err := encodeSaveData(bodyWriter, doc)
	if err != nil {
		return nil, err
	}

	if err := table.PatchAt(bodyWriter.Buffer().B, tableOffset, doc.Game, doc.FileVersion); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(doc.Compressor)
	if err != nil {
		return nil, err
	}

	uncompressed := bodyBuf.Bytes()
	compressed := make([]byte, codec.CompressBound(len(uncompressed)))

	n, err := codec.Compress(compressed, uncompressed)
	if err != nil {
		return nil, fmt.Errorf("compressing body: %w", err)
	}
	compressed = compressed[:n]

	w.Uint32(uint32(len(uncompressed))) //nolint:gosec
	w.Uint32(uint32(n))                 //nolint:gosec
	w.Bytes(compressed)

	return finish(w), nil
}

func finish(w *wire.Writer) []byte {
	out := make([]byte, len(w.Buffer().Bytes()))
	copy(out, w.Buffer().Bytes())

	return out
}

// encodeSaveData writes the save-data body -- everything from form_version through the
// trailing region -- into w, recording each section's real position. It returns the byte
// offset of the offsets table placeholder (relative to w) and the table the caller must
// patch in once every offset is known.
func encodeSaveData(w *wire.Writer, doc *Document) (int, section.OffsetsTable, error) {
	var table section.OffsetsTable

	w.Uint8(doc.FormVersion)

	if doc.Game == format.GameF {
		w.String(doc.GameVersion)
	}

	encodePlugins(w, doc, doc.Game)

	tableOffset := w.Pos()

	var placeholder section.OffsetsTable
	placeholder.Encode(w, doc.Game, doc.FileVersion)

	table.OffGlobals1 = uint32(w.Pos()) //nolint:gosec
	numGlobals1 := globaldata.EncodeTable1(w, doc.Game, doc.Globals)
	table.NumGlobals1 = uint32(numGlobals1) //nolint:gosec

	table.OffGlobals2 = uint32(w.Pos()) //nolint:gosec
	numGlobals2 := globaldata.EncodeTable2(w, doc.Game, doc.Globals)
	table.NumGlobals2 = uint32(numGlobals2) //nolint:gosec

	table.OffChangeForms = uint32(w.Pos()) //nolint:gosec
	for _, cf := range doc.ChangeForms {
		if err := encodeChangeForm(w, cf); err != nil {
			return 0, table, err
		}
	}
	table.NumChangeForms = uint32(len(doc.ChangeForms)) //nolint:gosec

	table.OffGlobals3 = uint32(w.Pos()) //nolint:gosec
	numGlobals3 := globaldata.EncodeTable3(w, doc.Game, doc.Globals)
	table.NumGlobals3 = uint32(numGlobals3) //nolint:gosec

	table.OffFormIDsCount = uint32(w.Pos()) //nolint:gosec
	encodeUint32Array(w, doc.FormIDs)
	encodeUint32Array(w, doc.WorldSpaces)

	table.OffUnknownTable = uint32(w.Pos()) //nolint:gosec
	w.Uint32(uint32(len(doc.TrailingRegion))) //nolint:gosec
	w.Bytes(doc.TrailingRegion)

	return tableOffset, table, nil
}

func encodeUint32Array(w *wire.Writer, values []uint32) {
	w.Uint32(uint32(len(values))) //nolint:gosec
	for _, v := range values {
		w.Uint32(v)
	}
}
