// Package header parses the 32-bit MPEG audio frame header (ISO/IEC 11172-3
// and the ISO/IEC 13818-3 low sampling frequency extension, plus MPEG 2.5).
package header

import (
	"encoding/binary"
	"fmt"
)

// Size is the length in bytes of a frame header.
const Size = 4

// CRCSize is the length of the optional CRC word following the header.
const CRCSize = 2

// Version is the MPEG audio version.
type Version uint8

// Versions, in the order of their 2-bit header code.
const (
	MPEG25 Version = iota
	versionReserved
	MPEG2
	MPEG1
)

// String returns the conventional name of the version.
func (v Version) String() string {
	switch v {
	case MPEG1:
		return "MPEG-1"
	case MPEG2:
		return "MPEG-2"
	case MPEG25:
		return "MPEG-2.5"
	case versionReserved:
	}

	return "reserved"
}

// Layer is the MPEG audio layer number (1, 2 or 3).
type Layer uint8

// Layers.
const (
	Layer1 Layer = 1
	Layer2 Layer = 2
	Layer3 Layer = 3
)

// Mode is the channel mode.
type Mode uint8

// Channel modes, in the order of their 2-bit header code.
const (
	Stereo Mode = iota
	JointStereo
	DualChannel
	Mono
)

// String returns the conventional name of the mode.
func (m Mode) String() string {
	switch m {
	case Stereo:
		return "stereo"
	case JointStereo:
		return "joint stereo"
	case DualChannel:
		return "dual channel"
	case Mono:
		return "mono"
	}

	return "unknown"
}

// Header is a parsed frame header. Only Parse constructs valid values.
type Header struct {
	Version         Version
	Layer           Layer
	Protected       bool // a 16-bit CRC follows the header
	BitrateIndex    uint8
	SampleRateIndex uint8
	Padding         bool
	Private         bool
	Mode            Mode
	ModeExtension   uint8
	Copyright       bool
	Original        bool
	Emphasis        uint8
}

// Parse decodes a big-endian header word.
func Parse(word uint32) (Header, error) {
	if word>>21 != 0x7FF {
		return Header{}, ErrNoSync
	}

	hdr := Header{
		Version:         Version(word >> 19 & 3),
		Protected:       word>>16&1 == 0,
		BitrateIndex:    uint8(word >> 12 & 0xF),
		SampleRateIndex: uint8(word >> 10 & 3),
		Padding:         word>>9&1 == 1,
		Private:         word>>8&1 == 1,
		Mode:            Mode(word >> 6 & 3),
		ModeExtension:   uint8(word >> 4 & 3),
		Copyright:       word>>3&1 == 1,
		Original:        word>>2&1 == 1,
		Emphasis:        uint8(word & 3),
	}

	if hdr.Version == versionReserved {
		return Header{}, ErrReservedVersion
	}

	layerBits := word >> 17 & 3
	if layerBits == 0 {
		return Header{}, ErrReservedLayer
	}

	hdr.Layer = Layer(4 - layerBits)

	if hdr.Layer != Layer3 && !layer12Enabled {
		return Header{}, ErrLayerDisabled
	}

	if hdr.BitrateIndex == bitrateIndexReserved {
		return Header{}, ErrReservedBitrate
	}

	if hdr.SampleRateIndex == sampleRateIndexReserved {
		return Header{}, ErrReservedSampleRate
	}

	return hdr, nil
}

// ParseBytes decodes the header at the start of buf.
func ParseBytes(buf []byte) (Header, error) {
	if len(buf) < Size {
		return Header{}, ErrShortBuffer
	}

	return Parse(binary.BigEndian.Uint32(buf))
}

// LSF reports whether the frame uses the low sampling frequency extension (MPEG-2 and 2.5).
func (h Header) LSF() bool {
	return h.Version != MPEG1
}

// Channels returns the number of audio channels (1 or 2).
func (h Header) Channels() int {
	if h.Mode == Mono {
		return 1
	}

	return 2
}

// Bitrate returns the bitrate in kbit/s, 0 for free format and for a header
// that was never parsed.
func (h Header) Bitrate() int {
	if h.Layer < Layer1 || h.Layer > Layer3 {
		return 0
	}

	return int(bitrates[h.lsfIndex()][h.Layer-1][h.BitrateIndex])
}

// FreeFormat reports whether the frame uses a bitrate not listed in the tables.
func (h Header) FreeFormat() bool {
	return h.BitrateIndex == 0
}

// SampleRate returns the sampling frequency in Hz.
func (h Header) SampleRate() int {
	return int(sampleRates[h.Version][h.SampleRateIndex])
}

// SamplesPerChannel returns the number of PCM samples per channel a frame decodes to.
func (h Header) SamplesPerChannel() int {
	switch h.Layer {
	case Layer1:
		return 384
	case Layer3:
		if h.LSF() {
			return 576
		}
	case Layer2:
	}

	return 1152
}

// Granules returns the number of Layer III granules in the frame.
func (h Header) Granules() int {
	if h.LSF() {
		return 1
	}

	return 2
}

// FrameLength returns the frame length in bytes including the header and padding.
// It returns 0 for free format frames, whose length is only known from the stream.
func (h Header) FrameLength() int {
	return h.lengthFor(h.Bitrate())
}

// FreeFormatBitrate derives the bitrate in kbit/s of a free format frame from its
// measured length in bytes.
func (h Header) FreeFormatBitrate(length int) int {
	pad := 0
	if h.Padding {
		pad = 1
	}

	sr := h.SampleRate()

	switch {
	case h.Layer == Layer1:
		return (length/4 - pad) * sr / 12 / 1000
	case h.Layer == Layer3 && h.LSF():
		return (length - pad) * sr / 72 / 1000
	default:
		return (length - pad) * sr / 144 / 1000
	}
}

func (h Header) lengthFor(kbps int) int {
	if kbps == 0 {
		return 0
	}

	pad := 0
	if h.Padding {
		pad = 1
	}

	br := kbps * 1000
	sr := h.SampleRate()

	switch {
	case h.Layer == Layer1:
		return (12*br/sr + pad) * 4
	case h.Layer == Layer3 && h.LSF():
		return 72*br/sr + pad
	default:
		return 144*br/sr + pad
	}
}

// SideInfoLength returns the length in bytes of the Layer III side information.
func (h Header) SideInfoLength() int {
	mono := h.Mode == Mono

	switch {
	case h.LSF() && mono:
		return 9
	case h.LSF():
		return 17
	case mono:
		return 17
	default:
		return 32
	}
}

// DataOffset returns the byte offset of the first byte after the header and CRC.
func (h Header) DataOffset() int {
	if h.Protected {
		return Size + CRCSize
	}

	return Size
}

// MSStereo reports whether Layer III mid/side stereo is active.
func (h Header) MSStereo() bool {
	return h.Mode == JointStereo && h.ModeExtension&2 != 0
}

// IntensityStereo reports whether Layer III intensity stereo is active.
func (h Header) IntensityStereo() bool {
	return h.Mode == JointStereo && h.ModeExtension&1 != 0
}

// Bound returns the first subband coded in intensity stereo for Layer I and II
// joint stereo, or 32 when every subband is coded independently.
func (h Header) Bound() int {
	if h.Mode == JointStereo {
		return int(h.ModeExtension+1) * 4
	}

	return 32
}

// Compatible reports whether other can follow h in the same stream: version,
// layer and sampling frequency must agree.
func (h Header) Compatible(other Header) bool {
	return h.Version == other.Version &&
		h.Layer == other.Layer &&
		h.SampleRateIndex == other.SampleRateIndex
}

// String returns a short human-readable description.
func (h Header) String() string {
	br := "free"
	if !h.FreeFormat() {
		br = fmt.Sprintf("%d kbit/s", h.Bitrate())
	}

	return fmt.Sprintf("%s layer %d, %s, %d Hz, %s", h.Version, h.Layer, br, h.SampleRate(), h.Mode)
}

func (h Header) lsfIndex() int {
	if h.LSF() {
		return 1
	}

	return 0
}
