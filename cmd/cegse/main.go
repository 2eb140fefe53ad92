// Command cegse reads a Creation Engine save file and writes it back out unchanged,
// exercising a full decode/encode round trip (mirrors original_source/src/main.c).
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/creationengine/cegse"
	"github.com/creationengine/cegse/errs"
)

const outputName = "written_savefile"

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s path/to/savefile\n", os.Args[0])
		os.Exit(1)
	}

	doc, err := cegse.Read(os.Args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, diagnose(err))
		os.Exit(1)
	}

	defer cegse.Destroy(doc)

	if err := cegse.Write(outputName, doc); err != nil {
		fmt.Fprintln(os.Stderr, diagnose(err))
		os.Exit(1)
	}
}

// diagnose translates an error into the one-line, kind-specific message spec §7 requires
// the CLI layer to produce, never conflating the distinct error kinds.
func diagnose(err error) string {
	switch {
	case errors.Is(err, errs.ErrUnexpectedEnd):
		return fmt.Sprintf("fail: unexpected end of file: %v", err)
	case errors.Is(err, errs.ErrUnsupportedSignature), errors.Is(err, errs.ErrUnsupportedFileVersion):
		return fmt.Sprintf("fail: unsupported save file: %v", err)
	case isMalformed(err):
		return fmt.Sprintf("fail: malformed save file: %v", err)
	case errors.Is(err, errs.ErrOutOfMemory):
		return fmt.Sprintf("fail: out of memory: %v", err)
	case errors.Is(err, errs.ErrIO):
		return fmt.Sprintf("fail: i/o error: %v", err)
	default:
		return fmt.Sprintf("fail: %v", err)
	}
}

func isMalformed(err error) bool {
	malformedKinds := []error{
		errs.ErrMalformed,
		errs.ErrInvalidHeaderSize,
		errs.ErrInvalidHeaderFlags,
		errs.ErrInvalidCompressor,
		errs.ErrInvalidVSVALWidth,
		errs.ErrInvalidChangeFormWidth,
		errs.ErrDuplicateGlobalDataType,
		errs.ErrGlobalDataLengthMismatch,
		errs.ErrOffsetMismatch,
		errs.ErrDecompression,
		errs.ErrDuplicateUnknownGlobal,
	}

	for _, kind := range malformedKinds {
		if errors.Is(err, kind) {
			return true
		}
	}

	return false
}
