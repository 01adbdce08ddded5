package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mycophonic/mpadec"
	"github.com/mycophonic/mpadec/mp3"
)

var errNoAudio = errors.New("no audio frames found")

// pcmReader streams the decoded PCM of an input as little-endian bytes, with
// the sample rate and channel count of its first audio frame.
type pcmReader struct {
	dec     *mp3.Decoder
	format  mpadec.PCMFormat
	pending []byte
	buf     []byte

	frames  int
	partial int
}

func newPCMReader(src []byte) (*pcmReader, error) {
	dec := mp3.NewDecoder(src)

	for {
		frame, err := dec.Peek()
		if err != nil {
			return nil, errNoAudio
		}

		if frame.Kind() == mp3.Audio && frame.SampleCount() > 0 {
			reader := &pcmReader{
				dec:    dec,
				format: mpadec.SampleFormat(frame.SampleRate(), uint(frame.Channels())),
			}

			// Decode from the start so that the reservoir is filled in order.
			dec.SetPosition(0)

			return reader, nil
		}

		_ = dec.Skip()
	}
}

// Format returns the output format.
func (r *pcmReader) Format() mpadec.PCMFormat {
	return r.format
}

func (r *pcmReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if err := r.decode(); err != nil {
			return 0, err
		}
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]

	return n, nil
}

func (r *pcmReader) decode() error {
	last := r.dec.Position()

	frame, err := r.dec.Next()
	if err != nil {
		slog.Debug("end of stream", "frames", r.frames, "partial", r.partial)

		return io.EOF
	}

	if skipped := frame.Offset() - last; skipped > 0 {
		slog.Debug("skipped unrecognized bytes", "offset", last, "bytes", skipped)
	}

	switch {
	case frame.Kind() == mp3.Other:
		slog.Debug("skipped tag", "offset", frame.Offset(), "bytes", frame.ByteLength())

		return nil
	case frame.Truncated():
		slog.Warn("truncated frame", "offset", frame.Offset(), "bytes", frame.ByteLength())

		return nil
	case frame.SampleCount() == 0:
		slog.Warn("frame not decodable", "offset", frame.Offset(), "header", frame.Header().String())

		return nil
	case frame.Partial():
		r.partial++

		slog.Debug("frame partially decoded", "offset", frame.Offset())
	}

	if frame.SampleRate() != r.format.SampleRate {
		slog.Warn("sample rate change", "offset", frame.Offset(), "from", r.format.SampleRate, "to", frame.SampleRate())
	}

	r.frames++
	r.buf = mp3.AppendPCM(r.buf[:0], frame, int(r.format.Channels))
	r.pending = r.buf

	return nil
}
