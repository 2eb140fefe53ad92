package compress

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zlib"

	"github.com/creationengine/cegse/errs"
)

// zlibBufferPool pools the intermediate bytes.Buffer Compress writes through; zlib.Writer
// has no direct "compress into this exact dst slice" entry point the way lz4 does.
var zlibBufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

// ZlibCompressor wraps klauspost/compress's zlib implementation, the teacher's own
// dependency's sibling package, filling the optional zlib slot spec §4.3 allows alongside
// LZ4.
type ZlibCompressor struct{}

var _ Codec = (*ZlibCompressor)(nil)

// NewZlibCompressor creates a zlib compressor.
func NewZlibCompressor() ZlibCompressor {
	return ZlibCompressor{}
}

// CompressBound returns zlib's documented worst-case expansion: srcLen plus ~0.1% plus a
// small fixed overhead for header and checksum.
func (c ZlibCompressor) CompressBound(srcLen int) int {
	return srcLen + srcLen/1000 + 64
}

// Compress writes the zlib encoding of src into dst.
func (c ZlibCompressor) Compress(dst, src []byte) (int, error) {
	if len(src) == 0 {
		return 0, nil
	}

	buf, _ := zlibBufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	defer zlibBufferPool.Put(buf)

	w := zlib.NewWriter(buf)
	if _, err := w.Write(src); err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrDecompression, err)
	}

	if err := w.Close(); err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrDecompression, err)
	}

	if buf.Len() > len(dst) {
		return 0, fmt.Errorf("%w: zlib output %d bytes exceeds dst capacity %d",
			errs.ErrOutOfMemory, buf.Len(), len(dst))
	}

	return copy(dst, buf.Bytes()), nil
}

// Decompress inflates the zlib stream in src into dst. dst must be exactly the recorded
// uncompressed size (spec §4.3).
func (c ZlibCompressor) Decompress(dst, src []byte) (int, error) {
	if len(dst) == 0 {
		return 0, nil
	}

	r, err := zlib.NewReader(bytes.NewReader(src))
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrDecompression, err)
	}
	defer r.Close()

	n, err := io.ReadFull(r, dst)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", errs.ErrDecompression, err)
	}

	// The stream must end exactly at len(dst); any further output is an error.
	var extra [1]byte
	if _, err := io.ReadFull(r, extra[:]); err != io.EOF {
		return 0, fmt.Errorf("%w: zlib stream does not end after %d bytes", errs.ErrDecompression, len(dst))
	}

	return n, nil
}
