package layer12

import (
	"github.com/mycophonic/mpadec"
	"github.com/mycophonic/mpadec/header"
)

const layer1Slots = 12

func (d *Decoder) decodeLayer1(hdr header.Header, pcm []mpadec.Sample) bool {
	nch := hdr.Channels()
	bound := min(hdr.Bound(), subbands)
	ok := true

	if nch == 1 {
		bound = subbands
	}

	// Allocation: bits per sample, 0 for none. Code 15 is forbidden.
	for sb := range subbands {
		for ch := range nch {
			if sb >= bound && ch > 0 {
				d.class[ch][sb] = d.class[0][sb]

				continue
			}

			code := d.r.Read(4)
			if code == 15 {
				ok = false
				code = 0
			}

			d.class[ch][sb] = 0
			if code != 0 {
				d.class[ch][sb] = uint8(code + 1)
			}
		}
	}

	for sb := range subbands {
		for ch := range nch {
			if d.class[ch][sb] != 0 {
				d.scale[ch][sb][0] = scaleFactors[d.r.Read(6)]
			}
		}
	}

	for slot := range layer1Slots {
		for sb := range subbands {
			if sb >= bound {
				var v float32
				if bits := d.class[0][sb]; bits != 0 {
					v = dequantize(d.r.Read(uint(bits)), 1<<bits-1)
				}

				for ch := range nch {
					d.sample[ch][0][sb] = v * d.scale[ch][sb][0]
				}

				continue
			}

			for ch := range nch {
				d.sample[ch][0][sb] = 0
				if bits := d.class[ch][sb]; bits != 0 {
					d.sample[ch][0][sb] = dequantize(d.r.Read(uint(bits)), 1<<bits-1) * d.scale[ch][sb][0]
				}
			}
		}

		if d.r.Overrun() {
			ok = false
			d.sample = [mpadec.MaxChannels][3][subbands]float32{}
		}

		d.synthesize(nch, 1, pcm[slot*subbands*nch:])
	}

	return ok
}
