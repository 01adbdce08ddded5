package testutils

import (
	"path/filepath"
	"runtime"

	"github.com/containerd/nerdctl/mod/tigron/test"

	"github.com/mycophonic/agar/pkg/agar"
)

func projectRoot() string {
	_, thisFile, _, _ := runtime.Caller(0) //nolint:dogsled // runtime.Caller returns 4 values, only file is needed

	return filepath.Dir(filepath.Dir(filepath.Dir(thisFile)))
}

// BinaryPath returns the absolute path to the mpadec binary.
func BinaryPath() string {
	return filepath.Join(projectRoot(), "bin", "mpadec")
}

// Setup creates a test case configured to run the mpadec binary.
func Setup() *test.Case {
	return agar.Setup(BinaryPath())
}

// SilentFrame returns one MPEG-1 Layer III frame (128 kbit/s, 44.1 kHz, mono)
// whose side information codes no spectral data.
func SilentFrame() []byte {
	frame := make([]byte, 417)
	frame[0], frame[1], frame[2], frame[3] = 0xFF, 0xFB, 0x90, 0xC4

	return frame
}
