package layer3

import "math"

const invSqrt2 = math.Sqrt2 / 2

// stereoState carries what joint stereo processing needs for one granule.
type stereoState struct {
	lsf bool
	// intensity marks the lines reconstructed from intensity positions;
	// mid/side does not apply to them.
	intensity [granuleLines]bool
}

// process applies intensity and mid/side stereo to the reordered spectra.
// g and sf describe the right channel, whose positions drive intensity coding.
func (s *stereoState) process(left, right *[granuleLines]float32, g *granuleInfo, sf *scalefactors,
	bt *bandTable, ms, intensity bool,
) {
	s.intensity = [granuleLines]bool{}

	if intensity {
		s.applyIntensity(left, right, g, sf, bt)
	}

	if !ms {
		return
	}

	for i := range granuleLines {
		if s.intensity[i] {
			continue
		}

		m, side := left[i], right[i]
		left[i] = (m + side) * invSqrt2
		right[i] = (m - side) * invSqrt2
	}
}

func (s *stereoState) applyIntensity(left, right *[granuleLines]float32, g *granuleInfo, sf *scalefactors,
	bt *bandTable,
) {
	last := -1

	for i := granuleLines - 1; i >= 0; i-- {
		if right[i] != 0 {
			last = i

			break
		}
	}

	longEnd := granuleLines

	if g.shortBlocks() {
		longEnd = 0
		if g.mixed {
			longEnd = 3 * bt.short[3]
		}
	}

	for sfb := range longBands {
		start, end := bt.long[sfb], bt.long[sfb+1]
		if end > longEnd {
			break
		}

		if start <= last {
			continue
		}

		band := min(sfb, longBands-2)
		s.intensityLines(left, right, start, end, 1, sf.long[band], sf.isLimitLong[band], sf.intensityScale)
	}

	if !g.shortBlocks() {
		return
	}

	first := 0
	if g.mixed {
		first = 3
	}

	for w := range 3 {
		top := first - 1

		for sfb := shortBands - 1; sfb >= first && top < first; sfb-- {
			width := bt.short[sfb+1] - bt.short[sfb]
			base := 3*bt.short[sfb] + w

			for j := range width {
				if right[base+3*j] != 0 {
					top = sfb

					break
				}
			}
		}

		for sfb := top + 1; sfb < shortBands; sfb++ {
			width := bt.short[sfb+1] - bt.short[sfb]
			start := 3*bt.short[sfb] + w
			band := min(sfb, shortBands-2)

			s.intensityLines(left, right, start, start+3*width, 3,
				sf.short[band][w], sf.isLimitShort[band], sf.intensityScale)
		}
	}
}

// intensityLines reconstructs lines start, start+step, ... below end from the
// left channel at intensity position pos.
func (s *stereoState) intensityLines(left, right *[granuleLines]float32, start, end, step int,
	pos, limit uint8, scale int,
) {
	if pos >= limit {
		return
	}

	var kl, kr float32

	switch {
	case !s.lsf:
		kl, kr = isRatioLeft[pos], isRatioRight[pos]
	case pos&1 == 1:
		kl, kr = lsfIntensity[scale][pos], 1
	default:
		kl, kr = 1, lsfIntensity[scale][pos]
	}

	for i := start; i < end; i += step {
		x := left[i]
		left[i] = x * kl
		right[i] = x * kr
		s.intensity[i] = true
	}
}
