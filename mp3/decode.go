// Package mp3 decodes MPEG-1, MPEG-2 and MPEG-2.5 audio (Layer III, and
// Layer I and II unless built with without_mp12) from in-memory buffers.
package mp3

import (
	"errors"
	"fmt"
	"io"

	"github.com/mycophonic/primordium/fault"

	"github.com/mycophonic/mpadec"
)

// Decode reads a whole MPEG audio stream and decodes it to interleaved
// little-endian PCM bytes in the sample format of the build.
func Decode(rs io.ReadSeeker) ([]byte, mpadec.PCMFormat, error) {
	src, err := io.ReadAll(rs)
	if err != nil {
		return nil, mpadec.PCMFormat{}, fmt.Errorf("%w: %w", fault.ErrReadFailure, err)
	}

	return DecodeBytes(src)
}

// DecodeBytes decodes src to interleaved little-endian PCM bytes. The channel
// count and sample rate are those of the first audio frame; later frames with
// another channel count are duplicated or downmixed to match.
func DecodeBytes(src []byte) ([]byte, mpadec.PCMFormat, error) {
	dec := NewDecoder(src)

	var (
		buf    []byte
		format mpadec.PCMFormat
	)

	for {
		frame, err := dec.Next()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, mpadec.PCMFormat{}, fmt.Errorf("decoding mp3: %w", err)
		}

		if frame.Kind() != Audio || frame.SampleCount() == 0 {
			continue
		}

		if format.Channels == 0 {
			format = mpadec.SampleFormat(frame.SampleRate(), uint(frame.Channels()))

			// Pre-allocate assuming constant frame size.
			frames := len(src)/frame.ByteLength() + 1
			buf = make([]byte, 0, frames*frame.SampleCount()*frame.Channels()*format.BitDepth.BytesPerSample())
		}

		buf = AppendPCM(buf, frame, int(format.Channels))
	}

	if format.Channels == 0 {
		return nil, mpadec.PCMFormat{}, ErrNoFrames
	}

	return buf, format, nil
}

// AppendPCM appends the samples of frame to dst as little-endian PCM bytes
// with the given channel count. Mono is duplicated into both channels of a
// stereo output; stereo is averaged into a mono output.
func AppendPCM(dst []byte, frame *Frame, channels int) []byte {
	samples, from := frame.Samples(), frame.Channels()

	if from == channels {
		return mpadec.AppendSamples(dst, samples)
	}

	var pair [2]mpadec.Sample

	if from == 1 {
		for _, s := range samples {
			pair[0], pair[1] = s, s
			dst = mpadec.AppendSamples(dst, pair[:])
		}

		return dst
	}

	for i := 0; i+1 < len(samples); i += 2 {
		pair[0] = samples[i]/2 + samples[i+1]/2
		dst = mpadec.AppendSamples(dst, pair[:1])
	}

	return dst
}
