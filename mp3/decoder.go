package mp3

import (
	"io"

	"github.com/mycophonic/mpadec"
)

// Decoder iterates over the frames of an in-memory MPEG audio stream.
//
// The input is never copied or modified. The *Frame returned by Next and Peek
// is owned by the Decoder and overwritten by the next call, samples included.
// A Decoder does not allocate after construction.
type Decoder struct {
	src []byte
	pos int
	raw *RawDecoder

	frame Frame
	pcm   [mpadec.MaxSamplesPerFrame]mpadec.Sample

	// peekLen is the consumed length of the last Peek, valid while peeked is set.
	peeked  bool
	peekLen int
}

// NewDecoder returns a Decoder positioned at the start of src.
func NewDecoder(src []byte) *Decoder {
	return &Decoder{src: src, raw: NewRawDecoder()}
}

// Next decodes the next frame, skipping garbage. It returns io.EOF once the
// input holds no further frame.
func (d *Decoder) Next() (*Frame, error) {
	d.peeked = false

	start := d.pos

	frame, consumed, ok := d.raw.Next(d.src[start:], &d.pcm)
	d.pos += consumed

	if !ok {
		return nil, io.EOF
	}

	d.frame = frame
	d.frame.offset += start

	return &d.frame, nil
}

// Peek describes the next frame without decoding it or advancing. Repeated
// calls return the same frame; Skip advances past it.
func (d *Decoder) Peek() (*Frame, error) {
	frame, consumed, ok := d.raw.Peek(d.src[d.pos:])
	if !ok {
		d.peeked = false

		return nil, io.EOF
	}

	d.frame = frame
	d.frame.offset += d.pos
	d.peeked = true
	d.peekLen = consumed

	return &d.frame, nil
}

// Skip advances past the next frame without decoding it, reusing the result
// of a preceding Peek. Layer III main data of the skipped frame still feeds
// the bit reservoir. It returns io.EOF, after moving to the end of the input,
// when no frame remains.
func (d *Decoder) Skip() error {
	if !d.peeked {
		if _, err := d.Peek(); err != nil {
			d.pos = len(d.src)

			return err
		}
	}

	d.peeked = false
	d.raw.skip(&d.frame)
	d.pos += d.peekLen

	return nil
}

// Position returns the current offset in the input.
func (d *Decoder) Position() int {
	return d.pos
}

// SetPosition moves to pos, clamped to the input. Decoding state is reset,
// so Layer III frames that borrow from before pos decode partially.
func (d *Decoder) SetPosition(pos int) {
	d.pos = min(max(pos, 0), len(d.src))
	d.peeked = false
	d.raw.Reset()
}

// Reset starts over on a new input.
func (d *Decoder) Reset(src []byte) {
	d.src = src
	d.pos = 0
	d.peeked = false
	d.frame = Frame{}
	d.raw.Reset()
}
