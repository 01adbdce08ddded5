package mp3

import (
	"github.com/mycophonic/mpadec"
	"github.com/mycophonic/mpadec/header"
	"github.com/mycophonic/mpadec/internal/framesync"
	"github.com/mycophonic/mpadec/internal/layer3"
	"github.com/mycophonic/mpadec/internal/synth"
)

// frameDecoder decodes the frames of one layer family.
type frameDecoder interface {
	Decode(hdr header.Header, frame []byte, pcm []mpadec.Sample) bool
	Feed(hdr header.Header, frame []byte)
}

// RawDecoder decodes frames from the start of caller-supplied slices into
// caller-owned sample buffers. The caller advances through its input by the
// consumed byte counts. Decoder wraps it for whole in-memory inputs.
type RawDecoder struct {
	lock framesync.Lock
	bank *synth.Bank
	l3   *layer3.Decoder
	l12  frameDecoder
}

// NewRawDecoder returns a RawDecoder using the default synthesis kernel.
func NewRawDecoder() *RawDecoder {
	bank := synth.NewBank(synth.NewKernel(synth.DefaultName))

	return &RawDecoder{
		bank: bank,
		l3:   layer3.New(bank),
		l12:  newLayer12(bank),
	}
}

// Next locates the next frame in src, skipping garbage, and decodes it into
// pcm. consumed counts the garbage and the frame. ok is false when src holds
// no further frame, in which case consumed is len(src).
func (r *RawDecoder) Next(src []byte, pcm *[mpadec.MaxSamplesPerFrame]mpadec.Sample) (frame Frame, consumed int, ok bool) {
	res, frame := r.locate(src)
	if res.Kind == framesync.KindNone {
		return Frame{}, len(src), false
	}

	if frame.kind != Audio || frame.truncated {
		return frame, res.End(), true
	}

	dec := r.decoderFor(frame.hdr)
	r.lock.Set(frame.hdr)

	if frame.count == 0 {
		dec.Feed(frame.hdr, frame.source)

		return frame, res.End(), true
	}

	out := pcm[:frame.count*frame.hdr.Channels()]
	frame.partial = !dec.Decode(frame.hdr, frame.source, out)
	frame.samples = out

	return frame, res.End(), true
}

// Peek locates the next frame in src without decoding it or changing any
// decoder state. The returned frame has no samples.
func (r *RawDecoder) Peek(src []byte) (frame Frame, consumed int, ok bool) {
	res, frame := r.locate(src)
	if res.Kind == framesync.KindNone {
		return Frame{}, len(src), false
	}

	return frame, res.End(), true
}

// Reset forgets the sync lock, the bit reservoir and all synthesis history,
// as needed before decoding from an unrelated position.
func (r *RawDecoder) Reset() {
	r.lock.Clear()
	r.bank.Reset()
	r.l3.Reset()
}

// skip accounts for a peeked frame that is passed over without decoding.
func (r *RawDecoder) skip(frame *Frame) {
	if frame.kind != Audio || frame.truncated {
		return
	}

	r.lock.Set(frame.hdr)
	r.decoderFor(frame.hdr).Feed(frame.hdr, frame.source)
}

func (r *RawDecoder) locate(src []byte) (framesync.Result, Frame) {
	res := framesync.Locate(src, 0, &r.lock)
	if res.Kind == framesync.KindNone {
		return res, Frame{}
	}

	frame := Frame{
		kind:      Other,
		offset:    res.Offset,
		length:    res.Length,
		source:    src[res.Offset:res.End()],
		truncated: res.Truncated,
	}

	if res.Kind == framesync.KindTag {
		return res, frame
	}

	frame.kind = Audio
	frame.hdr = res.Header

	if !res.Truncated && !res.Header.FreeFormat() {
		frame.count = res.Header.SamplesPerChannel()
	}

	return res, frame
}

func (r *RawDecoder) decoderFor(hdr header.Header) frameDecoder {
	if hdr.Layer == header.Layer3 {
		return r.l3
	}

	return r.l12
}
