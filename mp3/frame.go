package mp3

import (
	"github.com/mycophonic/mpadec"
	"github.com/mycophonic/mpadec/header"
)

// Kind tells audio frames from other data found in the stream.
type Kind uint8

const (
	// Audio is an MPEG audio frame.
	Audio Kind = iota
	// Other is an ID3 tag or other recognized non-audio data.
	Other
)

// String returns the name of the kind.
func (k Kind) String() string {
	if k == Audio {
		return "audio"
	}

	return "other"
}

// Frame describes one frame or tag. Its samples and source are borrowed: the
// samples from the decoder's buffer, the source from the input.
type Frame struct {
	kind      Kind
	hdr       header.Header
	offset    int
	length    int
	count     int
	samples   []mpadec.Sample
	source    []byte
	truncated bool
	partial   bool
}

// Kind returns whether the frame holds audio.
func (f *Frame) Kind() Kind {
	return f.kind
}

// Header returns the parsed frame header. It is the zero Header for Other frames.
func (f *Frame) Header() header.Header {
	return f.hdr
}

// Offset returns the position of the frame start in the input, after any
// garbage that preceded it.
func (f *Frame) Offset() int {
	return f.offset
}

// ByteLength returns the length of the frame in the input, including header,
// CRC, side information and padding. A truncated frame reports the bytes left.
func (f *Frame) ByteLength() int {
	return f.length
}

// SampleCount returns the number of samples per channel the frame decodes to.
// It is 0 for Other, truncated and free format frames, and is set for peeked
// frames even though Samples is empty.
func (f *Frame) SampleCount() int {
	return f.count
}

// Channels returns 1 or 2 for audio frames.
func (f *Frame) Channels() int {
	if f.kind != Audio {
		return 0
	}

	return f.hdr.Channels()
}

// SampleRate returns the sampling frequency in Hz.
func (f *Frame) SampleRate() int {
	if f.kind != Audio {
		return 0
	}

	return f.hdr.SampleRate()
}

// Bitrate returns the bitrate in kbit/s. For free format frames it is derived
// from the frame length.
func (f *Frame) Bitrate() int {
	switch {
	case f.kind != Audio:
		return 0
	case f.hdr.FreeFormat():
		return f.hdr.FreeFormatBitrate(f.length)
	default:
		return f.hdr.Bitrate()
	}
}

// Layer returns the MPEG audio layer, 0 for Other frames.
func (f *Frame) Layer() int {
	return int(f.hdr.Layer)
}

// Samples returns the decoded interleaved samples, Channels() * SampleCount()
// of them. It is empty for peeked frames. The slice is only valid until the
// next call on the decoder that produced it.
func (f *Frame) Samples() []mpadec.Sample {
	return f.samples
}

// Source returns the input bytes of the frame with preceding garbage stripped.
func (f *Frame) Source() []byte {
	return f.source
}

// Truncated reports whether the input ended before the declared frame length.
func (f *Frame) Truncated() bool {
	return f.truncated
}

// Partial reports whether some of the audio could not be decoded and silence
// was substituted: bit reservoir underflow after a seek or at stream start,
// damaged side information or exhausted main data.
func (f *Frame) Partial() bool {
	return f.partial
}
