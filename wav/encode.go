// Package wav wraps decoded PCM in a RIFF WAVE container.
package wav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/mycophonic/mpadec"
)

// WAV format tags.
const (
	formatPCM        = 1
	formatIEEEFloat  = 3
	formatExtensible = 0xFFFE
)

// Sub-format GUIDs for WAVEFORMATEXTENSIBLE.
//
//nolint:gochecknoglobals
var (
	guidPCM = [16]byte{
		0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
		0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71,
	}
	guidIEEEFloat = [16]byte{
		0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10, 0x00,
		0x80, 0x00, 0x00, 0xaa, 0x00, 0x38, 0x9b, 0x71,
	}
)

var (
	// ErrInvalidBitDepth is returned for depths a WAV file cannot carry here.
	ErrInvalidBitDepth = errors.New("wav: invalid bit depth")
	// ErrInvalidChannels is returned for a zero channel count.
	ErrInvalidChannels = errors.New("wav: invalid channel count")
)

// Encode writes PCM samples as a WAV file. Float formats must be 32-bit.
func Encode(w io.Writer, pcm []byte, format mpadec.PCMFormat) error {
	switch {
	case format.Float && format.BitDepth != mpadec.Depth32:
		return fmt.Errorf("%w: %d-bit float (must be 32)", ErrInvalidBitDepth, format.BitDepth)
	case format.BitDepth != mpadec.Depth16 && format.BitDepth != mpadec.Depth24 && format.BitDepth != mpadec.Depth32:
		return fmt.Errorf("%w: %d (must be 16, 24, or 32)", ErrInvalidBitDepth, format.BitDepth)
	case format.Channels == 0:
		return ErrInvalidChannels
	}

	f := fmtChunk{
		channels:      uint16(format.Channels),
		sampleRate:    uint32(format.SampleRate),
		bitsPerSample: uint16(format.BitDepth),
		float:         format.Float,
	}

	var (
		header [68]byte
		n      int
	)

	// Use WAVEFORMATEXTENSIBLE for >2 channels or integer samples wider than 16 bits.
	if f.channels > 2 || (!f.float && f.bitsPerSample > 16) {
		n = f.putExtensible(header[:], uint32(len(pcm)))
	} else {
		n = f.putSimple(header[:], uint32(len(pcm)))
	}

	if _, err := w.Write(header[:n]); err != nil {
		return fmt.Errorf("writing WAV header: %w", err)
	}

	if _, err := w.Write(pcm); err != nil {
		return fmt.Errorf("writing PCM data: %w", err)
	}

	return nil
}

type fmtChunk struct {
	channels      uint16
	sampleRate    uint32
	bitsPerSample uint16
	float         bool
}

func (f fmtChunk) blockAlign() uint16 {
	return f.channels * f.bitsPerSample / 8
}

// putWaveFormatEx fills the 16 bytes common to both fmt chunk layouts.
func (f fmtChunk) putWaveFormatEx(b []byte, tag uint16) {
	binary.LittleEndian.PutUint16(b[0:2], tag)
	binary.LittleEndian.PutUint16(b[2:4], f.channels)
	binary.LittleEndian.PutUint32(b[4:8], f.sampleRate)
	binary.LittleEndian.PutUint32(b[8:12], f.sampleRate*uint32(f.blockAlign()))
	binary.LittleEndian.PutUint16(b[12:14], f.blockAlign())
	binary.LittleEndian.PutUint16(b[14:16], f.bitsPerSample)
}

func (f fmtChunk) putSimple(b []byte, dataSize uint32) int {
	tag := uint16(formatPCM)
	if f.float {
		tag = formatIEEEFloat
	}

	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], dataSize+36)
	copy(b[8:12], "WAVE")
	copy(b[12:16], "fmt ")
	binary.LittleEndian.PutUint32(b[16:20], 16)
	f.putWaveFormatEx(b[20:36], tag)
	copy(b[36:40], "data")
	binary.LittleEndian.PutUint32(b[40:44], dataSize)

	return 44
}

func (f fmtChunk) putExtensible(b []byte, dataSize uint32) int {
	guid := guidPCM
	if f.float {
		guid = guidIEEEFloat
	}

	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], dataSize+60)
	copy(b[8:12], "WAVE")
	copy(b[12:16], "fmt ")
	binary.LittleEndian.PutUint32(b[16:20], 40)
	f.putWaveFormatEx(b[20:36], formatExtensible)
	binary.LittleEndian.PutUint16(b[36:38], 22) // cbSize: extra bytes after WAVEFORMATEX
	binary.LittleEndian.PutUint16(b[38:40], f.bitsPerSample)
	binary.LittleEndian.PutUint32(b[40:44], channelMask(f.channels))
	copy(b[44:60], guid[:])
	copy(b[60:64], "data")
	binary.LittleEndian.PutUint32(b[64:68], dataSize)

	return 68
}

// channelMask returns standard channel mask for common configurations.
func channelMask(channels uint16) uint32 {
	switch channels {
	case 1:
		return 0x4 // FC
	case 2:
		return 0x3 // FL | FR
	default:
		return 0 // Unspecified
	}
}
