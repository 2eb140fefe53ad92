// Package errs defines the sentinel errors returned by this codec.
//
// Every error the codec can return is one of a fixed set of sentinel values, classified
// into the kinds spec §7 enumerates, grouped below: unexpected end (ErrUnexpectedEnd),
// malformed (ErrMalformed and its finer-grained causes), unsupported
// (ErrUnsupportedSignature, ErrUnsupportedFileVersion), out of memory (ErrOutOfMemory), and
// I/O (ErrIO). Call sites wrap a sentinel with additional context via
// fmt.Errorf("...: %w", errs.ErrX) so callers can still errors.Is against the sentinel.
package errs

import "errors"

// Stream-level errors (ErrUnexpectedEnd kind).
var (
	ErrUnexpectedEnd = errors.New("unexpected end of stream")
)

// Structural validation errors (ErrMalformed kind).
var (
	ErrMalformed               = errors.New("malformed save file")
	ErrInvalidHeaderSize       = errors.New("invalid header size")
	ErrInvalidHeaderFlags      = errors.New("invalid header flags")
	ErrInvalidCompressor       = errors.New("invalid compressor tag")
	ErrInvalidVSVALWidth       = errors.New("invalid VSVAL width")
	ErrInvalidChangeFormWidth  = errors.New("invalid change-form length-width selector")
	ErrDuplicateGlobalDataType = errors.New("duplicate global-data type")
	ErrGlobalDataLengthMismatch = errors.New("global-data entry length mismatch")
	ErrOffsetMismatch          = errors.New("offsets table disagrees with stream position")
	ErrDecompression           = errors.New("decompression failed")
	ErrDuplicateUnknownGlobal  = errors.New("duplicate unknown global-data slot")
)

// Support errors (unsupported kind).
var (
	ErrUnsupportedSignature   = errors.New("unsupported file signature")
	ErrUnsupportedFileVersion = errors.New("unsupported file version")
)

// Resource errors (ErrOutOfMemory kind).
var (
	ErrOutOfMemory = errors.New("out of memory")
)

// I/O errors (ErrIO kind).
var (
	ErrIO = errors.New("i/o error")
)
