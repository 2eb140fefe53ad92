package dlog

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDebug_DoesNotPanic(t *testing.T) {
	Debug("decoding header", "file_version", 12)
	Debug("offsets mismatch", "want", 100, "got", 104)
}

func TestGet_ReturnsSameLoggerAcrossCalls(t *testing.T) {
	require.Same(t, get(), get())
}
