package section

import (
	"github.com/creationengine/cegse/errs"
	"github.com/creationengine/cegse/format"
)

// Signatures, in the ASCII bytes the producer writes at offset 0.
const (
	SignatureGameS = "TESV_SAVEGAME"
	SignatureGameF = "FO4_SAVEGAME"
)

// DetectGame reads the leading bytes of data and reports which game produced it, along
// with how many signature bytes were consumed. It never returns GameUnknown without an
// error.
func DetectGame(data []byte) (format.GameTag, int, error) {
	if hasPrefix(data, SignatureGameS) {
		return format.GameS, len(SignatureGameS), nil
	}

	if hasPrefix(data, SignatureGameF) {
		return format.GameF, len(SignatureGameF), nil
	}

	return format.GameUnknown, 0, errs.ErrUnsupportedSignature
}

func hasPrefix(data []byte, sig string) bool {
	if len(data) < len(sig) {
		return false
	}

	return string(data[:len(sig)]) == sig
}

// Signature returns the ASCII signature bytes for a game tag.
func Signature(game format.GameTag) (string, error) {
	switch game {
	case format.GameS:
		return SignatureGameS, nil
	case format.GameF:
		return SignatureGameF, nil
	default:
		return "", errs.ErrUnsupportedSignature
	}
}
