package section

import "github.com/creationengine/cegse/wire"

// Snapshot is the screenshot pixel block written right after the header (spec §3). Its
// pixel width comes from SnapshotBytesPerPixel(fileVersion); the codec treats the pixel
// bytes as opaque, it never decodes image content.
type Snapshot struct {
	Width         uint32
	Height        uint32
	BytesPerPixel int
	Pixels        []byte
}

// Decode reads width*height*bpp raw pixel bytes. Width, Height, and BytesPerPixel must
// already be set (from the header's snapshot_width/snapshot_height and the file-version
// derived pixel width) before calling Decode.
func (s *Snapshot) Decode(c *wire.Cursor) error {
	n := int(s.Width) * int(s.Height) * s.BytesPerPixel

	pixels, err := c.CopyBytes(n)
	if err != nil {
		return err
	}

	s.Pixels = pixels

	return nil
}

// Encode appends the raw pixel bytes.
func (s *Snapshot) Encode(w *wire.Writer) {
	w.Bytes(s.Pixels)
}
