package layer3

import "github.com/mycophonic/mpadec/internal/bitstream"

// scalefactors of one granule and channel. Long band 21 and short band 12
// carry no transmitted scale factor and stay zero.
type scalefactors struct {
	long  [longBands]uint8
	short [shortBands][3]uint8
	// Illegal intensity stereo positions per band; any position at or
	// above the limit disables intensity coding for the band.
	isLimitLong  [longBands]uint8
	isLimitShort [shortBands]uint8
	// intensityScale selects the MPEG-2 intensity step (right channel only).
	intensityScale int
}

// readMPEG1 reads the scale factors of granule gr. prev holds granule 0 of
// the same channel and is used for bands flagged in scfsi.
func (sf *scalefactors) readMPEG1(r *bitstream.Reader, g *granuleInfo, scfsi *[4]bool, gr int, prev *scalefactors) {
	slen1, slen2 := slenMPEG1[g.scalefacCompress][0], slenMPEG1[g.scalefacCompress][1]

	for i := range sf.isLimitLong {
		sf.isLimitLong[i] = 7
	}

	for i := range sf.isLimitShort {
		sf.isLimitShort[i] = 7
	}

	sf.long = [longBands]uint8{}
	sf.short = [shortBands][3]uint8{}

	if g.shortBlocks() {
		first := 0

		if g.mixed {
			for sfb := range 8 {
				sf.long[sfb] = uint8(r.Read(slen1))
			}

			first = 3
		}

		for sfb := first; sfb < 12; sfb++ {
			n := slen2
			if sfb < 6 {
				n = slen1
			}

			for w := range 3 {
				sf.short[sfb][w] = uint8(r.Read(n))
			}
		}

		return
	}

	groups := [5]int{0, 6, 11, 16, 21}

	for group := range 4 {
		n := slen1
		if group >= 2 {
			n = slen2
		}

		for sfb := groups[group]; sfb < groups[group+1]; sfb++ {
			if gr == 1 && scfsi[group] {
				sf.long[sfb] = prev.long[sfb]
			} else {
				sf.long[sfb] = uint8(r.Read(n))
			}
		}
	}
}

// readLSF reads MPEG-2 and MPEG-2.5 scale factors. It returns the preflag
// implied by scalefac_compress.
func (sf *scalefactors) readLSF(r *bitstream.Reader, g *granuleInfo, intensityRight bool) bool {
	var (
		slen    [4]uint
		row     int
		preflag bool
	)

	sfc := g.scalefacCompress
	sf.intensityScale = 0

	if intensityRight {
		sf.intensityScale = sfc & 1
		isc := sfc >> 1

		switch {
		case isc < 180:
			slen = [4]uint{uint(isc / 36), uint(isc % 36 / 6), uint(isc % 36 % 6), 0}
			row = 3
		case isc < 244:
			s := isc - 180
			slen = [4]uint{uint(s % 64 >> 4), uint(s % 16 >> 2), uint(s % 4), 0}
			row = 4
		default:
			s := isc - 244
			slen = [4]uint{uint(s / 3), uint(s % 3), 0, 0}
			row = 5
		}
	} else {
		switch {
		case sfc < 400:
			slen = [4]uint{uint(sfc >> 4 / 5), uint(sfc >> 4 % 5), uint(sfc % 16 >> 2), uint(sfc % 4)}
			row = 0
		case sfc < 500:
			s := sfc - 400
			slen = [4]uint{uint(s >> 2 / 5), uint(s >> 2 % 5), uint(s % 4), 0}
			row = 1
		default:
			s := sfc - 500
			slen = [4]uint{uint(s / 3), uint(s % 3), 0, 0}
			row = 2
			preflag = true
		}
	}

	layout := 0
	if g.shortBlocks() {
		layout = 1
		if g.mixed {
			layout = 2
		}
	}

	sf.long = [longBands]uint8{}
	sf.short = [shortBands][3]uint8{}
	sf.isLimitLong = [longBands]uint8{}
	sf.isLimitShort = [shortBands]uint8{}

	// Scale factors are read as one sequence and laid out per block type.
	idx := 0

	for group, count := range lsfBandCounts[layout][row] {
		n := slen[group]
		limit := uint8(1<<n - 1)

		for range count {
			v := uint8(r.Read(n))
			sf.place(layout, idx, v, limit)
			idx++
		}
	}

	return preflag
}

func (sf *scalefactors) place(layout, idx int, v, limit uint8) {
	switch {
	case layout == 0:
		if idx < longBands-1 {
			sf.long[idx] = v
			sf.isLimitLong[idx] = limit
		}
	case layout == 2 && idx < 6:
		sf.long[idx] = v
		sf.isLimitLong[idx] = limit
	default:
		if layout == 2 {
			idx += 3*3 - 6
		}

		sfb, w := idx/3, idx%3
		if sfb < shortBands-1 {
			sf.short[sfb][w] = v
			sf.isLimitShort[sfb] = limit
		}
	}
}
