// Package layer12 decodes MPEG audio Layer I and Layer II frames into the
// shared polyphase synthesis filterbank.
package layer12

import (
	"github.com/mycophonic/mpadec"
	"github.com/mycophonic/mpadec/header"
	"github.com/mycophonic/mpadec/internal/bitstream"
	"github.com/mycophonic/mpadec/internal/synth"
)

const subbands = 32

// Decoder decodes Layer I and II frames. It never allocates after construction.
type Decoder struct {
	bank *synth.Bank
	r    bitstream.Reader

	// class is the Layer II quantization class per channel and subband (0 for
	// none); Layer I stores its bit count here instead.
	class  [mpadec.MaxChannels][subbands]uint8
	scfsi  [mpadec.MaxChannels][subbands]uint8
	scale  [mpadec.MaxChannels][subbands][3]float32
	sample [mpadec.MaxChannels][3][subbands]float32
}

// New returns a Decoder synthesizing through bank.
func New(bank *synth.Bank) *Decoder {
	return &Decoder{bank: bank}
}

// Decode decodes frame, which starts at its header and spans its full length,
// into pcm as interleaved samples. It returns false when the frame data was
// damaged or ran short and silence was substituted for the missing part.
func (d *Decoder) Decode(hdr header.Header, frame []byte, pcm []mpadec.Sample) bool {
	start := min(hdr.DataOffset(), len(frame))
	d.r.Reset(frame[start:])

	if hdr.Layer == header.Layer1 {
		return d.decodeLayer1(hdr, pcm)
	}

	return d.decodeLayer2(hdr, pcm)
}

// Feed does nothing: Layer I and II frames carry no state for later frames
// beyond the filterbank history.
func (*Decoder) Feed(header.Header, []byte) {}

// synthesize runs the first slots rows of d.sample through the filterbank,
// writing 32*slots samples per channel from pcm[0].
func (d *Decoder) synthesize(nch, slots int, pcm []mpadec.Sample) {
	for s := range slots {
		for ch := range nch {
			d.bank.Synthesize(ch, &d.sample[ch][s], pcm[s*subbands*nch+ch:], nch)
		}
	}
}
