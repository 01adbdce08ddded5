//go:build !with_float

package mpadec

import "encoding/binary"

// Sample is one PCM sample as produced by the decoder.
// Signed 16-bit by default; build with the with_float tag for float32 output.
type Sample = int16

// Output sample encoding.
const (
	SampleBitDepth = Depth16
	SampleIsFloat  = false
)

// AppendSamples appends samples to dst as little-endian PCM bytes.
func AppendSamples(dst []byte, samples []Sample) []byte {
	for _, s := range samples {
		dst = binary.LittleEndian.AppendUint16(dst, uint16(s))
	}

	return dst
}
