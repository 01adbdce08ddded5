// Package layer3 decodes MPEG audio Layer III frames: side information, scale
// factors, Huffman coded spectra with the bit reservoir, and the hybrid
// reconstruction down to the polyphase filterbank.
package layer3

import (
	"github.com/mycophonic/mpadec"
	"github.com/mycophonic/mpadec/header"
	"github.com/mycophonic/mpadec/internal/bitstream"
	"github.com/mycophonic/mpadec/internal/synth"
)

// Decoder holds the Layer III state carried from frame to frame. It never
// allocates after construction.
type Decoder struct {
	bank *synth.Bank

	res     reservoir
	si      sideInfo
	sf      [2][mpadec.MaxChannels]scalefactors
	xr      [mpadec.MaxChannels][granuleLines]float32
	tmp     [granuleLines]float32
	overlap [mpadec.MaxChannels][subbands][subbandLines]float32
	stereo  stereoState
	slot    [subbands]float32

	side bitstream.Reader
	main bitstream.Reader
}

// New returns a Decoder synthesizing through bank.
func New(bank *synth.Bank) *Decoder {
	return &Decoder{bank: bank}
}

// Reset drops the reservoir and the overlap state.
func (d *Decoder) Reset() {
	d.res.reset()
	d.overlap = [mpadec.MaxChannels][subbands][subbandLines]float32{}
}

// Decode decodes frame, which starts at its header and spans its full length,
// into pcm as interleaved samples. pcm must hold hdr.SamplesPerChannel() samples
// per channel. The result is false when part of the frame could not be decoded
// and silence was substituted: reservoir underflow, damaged side information
// or exhausted Huffman data.
func (d *Decoder) Decode(hdr header.Header, frame []byte, pcm []mpadec.Sample) bool {
	bt := bandsFor(hdr)
	nch := hdr.Channels()
	start := hdr.DataOffset()
	mainStart := start + hdr.SideInfoLength()

	if len(frame) < mainStart {
		d.silence(hdr, pcm)

		return false
	}

	d.side.Reset(frame[start:mainStart])
	d.si.read(&d.side, hdr, bt)

	data := frame[mainStart:]
	buf, ok := d.res.assemble(d.si.mainDataBegin, data)
	d.res.commit(data)

	if !ok {
		d.silence(hdr, pcm)

		return false
	}

	d.main.Reset(buf)
	d.stereo.lsf = hdr.LSF()

	complete := true

	for gr := range hdr.Granules() {
		for ch := range nch {
			if !d.readGranule(hdr, gr, ch, bt) {
				complete = false
			}
		}

		if hdr.Mode == header.JointStereo && (hdr.MSStereo() || hdr.IntensityStereo()) {
			d.stereo.process(&d.xr[0], &d.xr[1], &d.si.gr[gr][1], &d.sf[gr][1], bt,
				hdr.MSStereo(), hdr.IntensityStereo())
		}

		for ch := range nch {
			g := &d.si.gr[gr][ch]
			antialias(&d.xr[ch], g, bt)
			hybrid(&d.xr[ch], g, bt, &d.overlap[ch])
			d.synthesize(ch, nch, pcm[gr*granuleLines*nch:])
		}
	}

	return complete
}

// Feed commits the main data of a frame that is skipped rather than decoded,
// so that following frames can still borrow from it.
func (d *Decoder) Feed(hdr header.Header, frame []byte) {
	if mainStart := hdr.DataOffset() + hdr.SideInfoLength(); len(frame) > mainStart {
		d.res.commit(frame[mainStart:])
	}
}

// readGranule decodes scale factors and spectrum of one granule and channel
// into d.xr[ch], requantized and reordered.
func (d *Decoder) readGranule(hdr header.Header, gr, ch int, bt *bandTable) bool {
	g := &d.si.gr[gr][ch]
	sf := &d.sf[gr][ch]
	xr := &d.xr[ch]
	end := d.main.Position() + g.part23Length

	defer d.main.SetPosition(end)

	if g.malformed {
		*xr = [granuleLines]float32{}

		return false
	}

	if hdr.LSF() {
		g.preflag = sf.readLSF(&d.main, g, ch == 1 && hdr.IntensityStereo())
	} else {
		sf.readMPEG1(&d.main, g, &d.si.scfsi[ch], gr, &d.sf[0][ch])
	}

	nonzero, complete := readSpectrum(&d.main, g, end, xr)
	requantize(xr, g, sf, bt, nonzero)
	reorder(xr, &d.tmp, g, bt)

	return complete && end <= d.main.Len()
}

func (d *Decoder) synthesize(ch, nch int, pcm []mpadec.Sample) {
	xr := &d.xr[ch]

	for ss := range subbandLines {
		for sb := range subbands {
			d.slot[sb] = xr[sb*subbandLines+ss]
		}

		d.bank.Synthesize(ch, &d.slot, pcm[ss*subbands*nch+ch:], nch)
	}
}

// silence runs zeroed granules through the reconstruction so the overlap
// tails and filterbank history drain into the output.
func (d *Decoder) silence(hdr header.Header, pcm []mpadec.Sample) {
	nch := hdr.Channels()

	for gr := range hdr.Granules() {
		for ch := range nch {
			d.xr[ch] = [granuleLines]float32{}
			hybrid(&d.xr[ch], &granuleInfo{}, bandsFor(hdr), &d.overlap[ch])
			d.synthesize(ch, nch, pcm[gr*granuleLines*nch:])
		}
	}
}
