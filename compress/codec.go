// Package compress implements the body-compression facade spec §4.3 describes: two named
// compressors (LZ4 and zlib) that operate over non-overlapping (src, dst) byte regions
// rather than allocating a fresh result slice. A "none" compressor exists for completeness
// and tests, but the top-level codec never calls it -- CompressorNone means the body was
// written uncompressed.
package compress

import (
	"fmt"

	"github.com/creationengine/cegse/format"
)

// Compressor compresses a source region into a caller-provided destination region.
type Compressor interface {
	// CompressBound returns a destination size guaranteed to fit the compressed output of
	// srcLen input bytes. Callers size dst with this before calling Compress.
	CompressBound(srcLen int) int

	// Compress writes the compressed form of src into dst and returns the number of bytes
	// written. dst must be at least CompressBound(len(src)) bytes; any extra capacity is
	// left untouched.
	Compress(dst, src []byte) (int, error)
}

// Decompressor decompresses a source region into a caller-provided destination region.
//
// Unlike Compress, Decompress must produce exactly len(dst) bytes: the caller always knows
// the uncompressed size up front (it is recorded alongside the compressed size in the body
// preamble, spec §4.7) and sizes dst accordingly. Producing fewer or more bytes is an
// error, never a partial success.
type Decompressor interface {
	Decompress(dst, src []byte) (int, error)
}

// Codec combines both compression and decompression for one algorithm.
type Codec interface {
	Compressor
	Decompressor
}

// CreateCodec constructs a fresh Codec for the given compressor tag. target names the
// caller's context for error messages (e.g. "body").
func CreateCodec(compressorType format.CompressorType, target string) (Codec, error) {
	switch compressorType {
	case format.CompressorNone:
		return NewNoOpCompressor(), nil
	case format.CompressorZlib:
		return NewZlibCompressor(), nil
	case format.CompressorLZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compressor: %s", target, compressorType)
	}
}

var builtinCodecs = map[format.CompressorType]Codec{
	format.CompressorNone: NewNoOpCompressor(),
	format.CompressorZlib: NewZlibCompressor(),
	format.CompressorLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a shared built-in Codec for the given compressor tag. The returned
// value is safe for concurrent use; every method call is independent, no shared mutable
// state survives across calls.
func GetCodec(compressorType format.CompressorType) (Codec, error) {
	if codec, ok := builtinCodecs[compressorType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compressor: %s", compressorType)
}
