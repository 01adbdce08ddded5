package layer12

import (
	"github.com/mycophonic/mpadec"
	"github.com/mycophonic/mpadec/header"
)

const (
	layer2Parts    = 3
	layer2Granules = 4
)

// allocTable returns the subbandAlloc row and sblimit for a Layer II frame.
func allocTable(hdr header.Header) (int, int) {
	entry := uint8(allocTableL)

	if !hdr.LSF() {
		stereo := 0
		if hdr.Channels() == 2 {
			stereo = 1
		}

		idx := max(int(hdr.BitrateIndex)-1, 0)
		entry = allocTables[bitrateClass[stereo][idx]][hdr.SampleRateIndex]
	}

	return int(entry >> 6), int(entry & 63)
}

func (d *Decoder) decodeLayer2(hdr header.Header, pcm []mpadec.Sample) bool {
	nch := hdr.Channels()
	row, sblimit := allocTable(hdr)
	bound := min(hdr.Bound(), sblimit)

	if nch == 1 {
		bound = sblimit
	}

	for sb := range sblimit {
		alloc := subbandAlloc[row][sb]
		nbal := uint(alloc >> 4)
		classes := &classRows[alloc&15]

		for ch := range nch {
			if sb >= bound && ch > 0 {
				d.class[ch][sb] = d.class[0][sb]

				continue
			}

			d.class[ch][sb] = classes[d.r.Read(nbal)]
		}
	}

	for sb := range sblimit {
		for ch := range nch {
			if d.class[ch][sb] != 0 {
				d.scfsi[ch][sb] = uint8(d.r.Read(2))
			}
		}
	}

	for sb := range sblimit {
		for ch := range nch {
			if d.class[ch][sb] != 0 {
				d.readScaleFactors(ch, sb)
			}
		}
	}

	ok := !d.r.Overrun()

	for part := range layer2Parts {
		for gr := range layer2Granules {
			for sb := range subbands {
				if sb >= sblimit {
					for ch := range nch {
						d.sample[ch][0][sb], d.sample[ch][1][sb], d.sample[ch][2][sb] = 0, 0, 0
					}

					continue
				}

				d.readTriple(sb, part, nch, sb >= bound)
			}

			if d.r.Overrun() {
				ok = false
				d.sample = [mpadec.MaxChannels][3][subbands]float32{}
			}

			d.synthesize(nch, 3, pcm[(part*layer2Granules+gr)*3*subbands*nch:])
		}
	}

	return ok
}

func (d *Decoder) readScaleFactors(ch, sb int) {
	sf := &d.scale[ch][sb]

	switch d.scfsi[ch][sb] {
	case 0:
		sf[0] = scaleFactors[d.r.Read(6)]
		sf[1] = scaleFactors[d.r.Read(6)]
		sf[2] = scaleFactors[d.r.Read(6)]
	case 1:
		sf[0] = scaleFactors[d.r.Read(6)]
		sf[1] = sf[0]
		sf[2] = scaleFactors[d.r.Read(6)]
	case 2:
		sf[0] = scaleFactors[d.r.Read(6)]
		sf[1] = sf[0]
		sf[2] = sf[0]
	default:
		sf[0] = scaleFactors[d.r.Read(6)]
		sf[1] = scaleFactors[d.r.Read(6)]
		sf[2] = sf[1]
	}
}

// readTriple reads the three consecutive samples of subband sb for every
// channel. Above the joint stereo bound both channels share one set of codes.
func (d *Decoder) readTriple(sb, part, nch int, shared bool) {
	var codes [3]uint32

	for ch := range nch {
		class := d.class[ch][sb]
		if class == 0 {
			d.sample[ch][0][sb], d.sample[ch][1][sb], d.sample[ch][2][sb] = 0, 0, 0

			continue
		}

		q := &quantizers[class-1]

		if !shared || ch == 0 {
			if q.grouped {
				v := d.r.Read(q.bits)
				levels := uint32(q.levels)
				codes[0] = v % levels
				v /= levels
				codes[1] = v % levels
				codes[2] = v / levels % levels
			} else {
				codes[0] = d.r.Read(q.bits)
				codes[1] = d.r.Read(q.bits)
				codes[2] = d.r.Read(q.bits)
			}
		}

		scale := d.scale[ch][sb][part]
		for i, c := range codes {
			d.sample[ch][i][sb] = dequantize(c, q.levels) * scale
		}
	}
}
