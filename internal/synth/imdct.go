package synth

import "math"

// Block types of a Layer III granule.
const (
	BlockNormal = 0
	BlockStart  = 1
	BlockShort  = 2
	BlockStop   = 3
)

//nolint:gochecknoglobals
var (
	imdctWindow [4][36]float32
	cos36       [18][36]float32
	cos12       [6][12]float32
)

func init() {
	sin := func(step, x float64) float32 {
		return float32(math.Sin(math.Pi / step * (x + 0.5)))
	}

	for i := range 36 {
		imdctWindow[BlockNormal][i] = sin(36, float64(i))
	}

	for i := range 18 {
		imdctWindow[BlockStart][i] = sin(36, float64(i))
	}

	for i := 18; i < 24; i++ {
		imdctWindow[BlockStart][i] = 1
	}

	for i := 24; i < 30; i++ {
		imdctWindow[BlockStart][i] = sin(12, float64(i-18))
	}

	for i := range 12 {
		imdctWindow[BlockShort][i] = sin(12, float64(i))
	}

	for i := 6; i < 12; i++ {
		imdctWindow[BlockStop][i] = sin(12, float64(i-6))
	}

	for i := 12; i < 18; i++ {
		imdctWindow[BlockStop][i] = 1
	}

	for i := 18; i < 36; i++ {
		imdctWindow[BlockStop][i] = sin(36, float64(i))
	}

	for m := range 18 {
		for p := range 36 {
			cos36[m][p] = float32(math.Cos(math.Pi / 72 * float64(2*p+1+18) * float64(2*m+1)))
		}
	}

	for m := range 6 {
		for p := range 12 {
			cos12[m][p] = float32(math.Cos(math.Pi / 24 * float64(2*p+1+6) * float64(2*m+1)))
		}
	}
}

// Hybrid runs the windowed IMDCT of one subband in place and overlap-adds it
// with the tail of the previous granule, which it then replaces.
//
// For short blocks the 18 lines hold three interleaved windows of 6 lines,
// line 3m+w belonging to window w.
func Hybrid(lines *[18]float32, blockType int, overlap *[18]float32) {
	var raw [36]float32

	if blockType == BlockShort {
		win := &imdctWindow[BlockShort]

		for w := range 3 {
			for p := range 12 {
				var sum float32
				for m := range 6 {
					sum += lines[w+3*m] * cos12[m][p]
				}

				raw[6*w+p+6] += sum * win[p]
			}
		}
	} else {
		win := &imdctWindow[blockType&3]

		for p := range 36 {
			var sum float32
			for m := range 18 {
				sum += lines[m] * cos36[m][p]
			}

			raw[p] = sum * win[p]
		}
	}

	for i := range 18 {
		lines[i] = raw[i] + overlap[i]
		overlap[i] = raw[i+18]
	}
}
