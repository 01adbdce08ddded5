// Package detect sniffs the container or codec of an input from its first bytes.
package detect

import (
	"errors"
	"fmt"
	"io"

	"github.com/mycophonic/mpadec/header"
)

// Codec represents a recognized input format.
type Codec uint8

const (
	// Unknown indicates the format was not recognized.
	Unknown Codec = iota
	// MPEG is MPEG audio, Layer I to III, possibly behind an ID3v2 tag.
	MPEG
	// FLAC is the Free Lossless Audio Codec.
	FLAC
	// Ogg is an Ogg container (Vorbis, Opus).
	Ogg
	// MP4 is an ISO base media file (M4A, AAC, ALAC).
	MP4
	// WAV is a RIFF WAVE file.
	WAV
)

// String returns the human-readable name of the codec.
func (c Codec) String() string {
	switch c {
	case MPEG:
		return "MPEG audio"
	case FLAC:
		return "FLAC"
	case Ogg:
		return "Ogg"
	case MP4:
		return "MP4"
	case WAV:
		return "WAV"
	case Unknown:
	}

	return "unknown"
}

// headerSize is the number of bytes inspected. MP4 needs "ftyp" at offset 4,
// WAV needs "WAVE" at offset 8.
const headerSize = 12

// Identify reads the first bytes of reader and returns the detected format.
// The reader position is reset to the start before returning. Inputs shorter
// than headerSize are inspected as far as they go.
func Identify(reader io.ReadSeeker) (Codec, error) {
	var buf [headerSize]byte

	n, err := io.ReadFull(reader, buf[:])
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return Unknown, fmt.Errorf("reading header: %w", err)
	}

	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return Unknown, fmt.Errorf("seeking to start: %w", err)
	}

	return Bytes(buf[:n]), nil
}

// Bytes returns the format detected from the start of an input.
func Bytes(data []byte) Codec {
	has := func(offset int, magic string) bool {
		return len(data) >= offset+len(magic) && string(data[offset:offset+len(magic)]) == magic
	}

	switch {
	case has(0, "ID3"):
		return MPEG
	case has(0, "fLaC"):
		return FLAC
	case has(0, "OggS"):
		return Ogg
	case has(4, "ftyp"):
		return MP4
	case has(0, "RIFF") && has(8, "WAVE"):
		return WAV
	}

	// A bare frame header must parse, not just carry the sync bits.
	if _, err := header.ParseBytes(data); err == nil {
		return MPEG
	}

	return Unknown
}
