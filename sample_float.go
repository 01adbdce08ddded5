//go:build with_float

package mpadec

import (
	"encoding/binary"
	"math"
)

// Sample is one PCM sample as produced by the decoder, in the [-1, 1] range.
type Sample = float32

// Output sample encoding.
const (
	SampleBitDepth = Depth32
	SampleIsFloat  = true
)

// AppendSamples appends samples to dst as little-endian IEEE 754 bytes.
func AppendSamples(dst []byte, samples []Sample) []byte {
	for _, s := range samples {
		dst = binary.LittleEndian.AppendUint32(dst, math.Float32bits(s))
	}

	return dst
}
