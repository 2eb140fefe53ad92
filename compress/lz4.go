package compress

import (
	"fmt"
	"sync"

	"github.com/pierrec/lz4/v4"

	"github.com/creationengine/cegse/errs"
)

// lz4CompressorPool pools lz4.Compressor instances; the type carries a hash-table state
// that benefits from reuse across calls.
var lz4CompressorPool = sync.Pool{
	New: func() any {
		return &lz4.Compressor{}
	},
}

// LZ4Compressor wraps pierrec/lz4's "safe" block codec, which detects malformed input
// rather than trusting the source length (spec §4.3).
type LZ4Compressor struct{}

var _ Codec = (*LZ4Compressor)(nil)

// NewLZ4Compressor creates an LZ4 compressor.
func NewLZ4Compressor() LZ4Compressor {
	return LZ4Compressor{}
}

// CompressBound returns the worst-case LZ4 block size for srcLen input bytes.
func (c LZ4Compressor) CompressBound(srcLen int) int {
	return lz4.CompressBlockBound(srcLen)
}

// Compress writes the LZ4 block encoding of src into dst.
func (c LZ4Compressor) Compress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	lc, _ := lz4CompressorPool.Get().(*lz4.Compressor)
	defer lz4CompressorPool.Put(lc)

	n, err := lc.CompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrDecompression, err)
	}

	return n, nil
}

// Decompress inflates the LZ4 block in src into dst. dst must be exactly the recorded
// uncompressed size (spec §4.3); a short or long result is an error.
func (c LZ4Compressor) Decompress(dst, src []byte) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	n, err := lz4.UncompressBlock(src, dst)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrDecompression, err)
	}

	if n != len(dst) {
		return 0, fmt.Errorf("%w: lz4 produced %d bytes, want %d", errs.ErrDecompression, n, len(dst))
	}

	return n, nil
}
