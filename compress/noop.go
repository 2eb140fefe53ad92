package compress

import "github.com/creationengine/cegse/errs"

// NoOpCompressor implements the (dst, src) Codec contract by copying bytes verbatim. The
// top-level codec never invokes it for CompressorNone (spec §4.3: "NONE is a sentinel
// meaning 'no compression used'"); it exists so tests can exercise the Codec interface
// uniformly across all three compressor tags.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a no-op compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// CompressBound returns srcLen: copying never changes size.
func (c NoOpCompressor) CompressBound(srcLen int) int {
	return srcLen
}

// Compress copies src into dst and returns len(src).
func (c NoOpCompressor) Compress(dst, src []byte) (int, error) {
	if len(dst) < len(src) {
		return 0, errs.ErrOutOfMemory
	}

	return copy(dst, src), nil
}

// Decompress copies src into dst. len(src) must equal len(dst).
func (c NoOpCompressor) Decompress(dst, src []byte) (int, error) {
	if len(src) != len(dst) {
		return 0, errs.ErrDecompression
	}

	return copy(dst, src), nil
}
