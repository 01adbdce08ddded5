package layer3

import "math"

// requantize turns the quantized lines of xr below nonzero into spectral values.
func requantize(xr *[granuleLines]float32, g *granuleInfo, sf *scalefactors, bt *bandTable, nonzero int) {
	mult := 0.5
	if g.scalefacScale {
		mult = 1
	}

	gain := 0.25 * float64(g.globalGain-210)

	longEnd := granuleLines

	if g.shortBlocks() {
		longEnd = 0
		if g.mixed {
			longEnd = 3 * bt.short[3]
		}
	}

	for sfb := 0; sfb < longBands && bt.long[sfb] < min(longEnd, nonzero); sfb++ {
		exp := gain - mult*float64(sf.long[sfb])
		if g.preflag {
			exp -= mult * pretab[sfb]
		}

		scaleLines(xr[bt.long[sfb]:min(bt.long[sfb+1], longEnd)], float32(math.Exp2(exp)))
	}

	if !g.shortBlocks() {
		return
	}

	first := 0
	if g.mixed {
		first = 3
	}

	for sfb := first; sfb < shortBands && 3*bt.short[sfb] < nonzero; sfb++ {
		width := bt.short[sfb+1] - bt.short[sfb]
		base := 3 * bt.short[sfb]

		for w := range 3 {
			exp := gain - 2*float64(g.subblockGain[w]) - mult*float64(sf.short[sfb][w])
			start := base + w*width
			scaleLines(xr[start:start+width], float32(math.Exp2(exp)))
		}
	}
}

func scaleLines(lines []float32, factor float32) {
	for i, q := range lines {
		switch {
		case q > 0:
			lines[i] = pow43[min(int(q), len(pow43)-1)] * factor
		case q < 0:
			lines[i] = -pow43[min(int(-q), len(pow43)-1)] * factor
		}
	}
}

// reorder rearranges short block lines from band, window, frequency order into
// band, frequency, window order, so that each subband holds its three windows
// interleaved.
func reorder(xr, tmp *[granuleLines]float32, g *granuleInfo, bt *bandTable) {
	if !g.shortBlocks() {
		return
	}

	first := 0
	if g.mixed {
		first = 3
	}

	for sfb := first; sfb < shortBands; sfb++ {
		width := bt.short[sfb+1] - bt.short[sfb]
		base := 3 * bt.short[sfb]

		for w := range 3 {
			for j := range width {
				tmp[base+3*j+w] = xr[base+w*width+j]
			}
		}
	}

	start := 3 * bt.short[first]
	copy(xr[start:], tmp[start:])
}
