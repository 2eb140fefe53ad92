// Package compress implements the two named body compressors the container format
// supports -- LZ4 and zlib -- behind a shared Codec interface.
//
// # Architecture
//
// Two interfaces, split because compression and decompression have different size
// contracts:
//
//	type Compressor interface {
//	    CompressBound(srcLen int) int
//	    Compress(dst, src []byte) (int, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(dst, src []byte) (int, error)
//	}
//
// Compress only bounds its output; Decompress must hit an exact size, because the
// container format always records the uncompressed size alongside the compressed size
// (spec §4.7) and the caller sizes dst from that field before calling Decompress.
//
// # Algorithms
//
//   - NONE (format.CompressorNone): never invoked by the top-level codec; present so
//     tests can exercise the Codec interface uniformly across all three tags.
//   - ZLIB (format.CompressorZlib): github.com/klauspost/compress/zlib.
//   - LZ4 (format.CompressorLZ4): github.com/pierrec/lz4/v4, block mode ("safe", detects
//     malformed input rather than trusting the declared size).
//
// # Usage
//
//	codec, err := compress.GetCodec(format.CompressorLZ4)
//	dst := make([]byte, codec.CompressBound(len(src)))
//	n, err := codec.Compress(dst, src)
//	compressed := dst[:n]
//	...
//	out := make([]byte, uncompressedSize)
//	n, err = codec.Decompress(out, compressed)
package compress
