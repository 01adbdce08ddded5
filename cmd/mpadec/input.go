package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mycophonic/mpadec/detect"
	"github.com/mycophonic/mpadec/internal/framesync"
)

var (
	errUnsupportedFormat = errors.New("unsupported audio format")
	errInvalidArgCount   = errors.New("expected exactly one argument: file path")
)

// readInput loads the single file argument and checks that it holds MPEG audio.
// Files of another known format are rejected; unrecognized leading bytes are
// accepted when a verified frame follows them.
func readInput(cmd *cli.Command) ([]byte, error) {
	if cmd.NArg() != 1 {
		return nil, fmt.Errorf("%w: got %d", errInvalidArgCount, cmd.NArg())
	}

	path := cmd.Args().First()

	src, err := os.ReadFile(path) //nolint:gosec // CLI tool reads user-specified audio files
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	switch codec := detect.Bytes(src); codec {
	case detect.MPEG:
		return src, nil
	case detect.Unknown:
		offset, ok := firstFrame(src)
		if !ok {
			return nil, fmt.Errorf("%s: %w", path, errUnsupportedFormat)
		}

		slog.Warn("skipping unrecognized leading bytes", "file", path, "bytes", offset)

		return src, nil
	default:
		return nil, fmt.Errorf("%s (%s): %w", path, codec, errUnsupportedFormat)
	}
}

// firstFrame returns the offset of the first audio frame in src.
func firstFrame(src []byte) (int, bool) {
	for offset := 0; offset < len(src); {
		res := framesync.Locate(src, offset, nil)

		switch res.Kind {
		case framesync.KindFrame:
			return res.Offset, true
		case framesync.KindTag:
			offset = res.End()
		case framesync.KindNone:
			return 0, false
		}
	}

	return 0, false
}
