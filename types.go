// Package mpadec holds the types shared by the MPEG audio decoding packages:
// the output sample type, PCM format descriptions and frame size limits.
package mpadec

import "fmt"

// MaxSamplesPerFrame is the largest number of interleaved samples a single frame
// can produce (1152 samples for each of 2 channels).
const MaxSamplesPerFrame = 0x900

// MaxChannels is the largest channel count of an MPEG audio frame.
const MaxChannels = 2

// BitDepth represents the bit depth of PCM audio samples.
type BitDepth uint

// Standard PCM bit depths.
const (
	Depth8  BitDepth = 8
	Depth16 BitDepth = 16
	Depth24 BitDepth = 24
	Depth32 BitDepth = 32
)

// BytesPerSample returns the number of bytes needed to store one sample.
func (d BitDepth) BytesPerSample() int {
	switch d {
	case Depth8:
		return 1
	case Depth16:
		return 2
	case Depth24:
		return 3
	case Depth32:
		return 4
	default:
		panic(fmt.Sprintf("mpadec: BytesPerSample called with unsupported bit depth %d", d))
	}
}

// PCMFormat describes the format of raw PCM audio data.
type PCMFormat struct {
	SampleRate int
	BitDepth   BitDepth
	Channels   uint
	// Float is set when samples are IEEE 754 floats rather than signed integers.
	Float bool
}

// SampleFormat returns the PCM format of decoder output at the given rate and channel count.
func SampleFormat(sampleRate int, channels uint) PCMFormat {
	return PCMFormat{
		SampleRate: sampleRate,
		BitDepth:   SampleBitDepth,
		Channels:   channels,
		Float:      SampleIsFloat,
	}
}
