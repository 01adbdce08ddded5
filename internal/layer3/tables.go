package layer3

import (
	"math"

	"github.com/mycophonic/mpadec/header"
)

const (
	granuleLines = 576
	subbands     = 32
	subbandLines = 18
	longBands    = 22
	shortBands   = 13
)

// bandTable holds the scale factor band boundaries, in lines, for one sample rate.
type bandTable struct {
	long  [longBands + 1]int
	short [shortBands + 1]int
}

// bands is indexed [version][sample rate index] with version 0 for MPEG-1,
// 1 for MPEG-2 and 2 for MPEG-2.5.
//
//nolint:gochecknoglobals
var bands = [3][3]bandTable{
	{
		{
			long:  [23]int{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 52, 62, 74, 90, 110, 134, 162, 196, 238, 288, 342, 418, 576},
			short: [14]int{0, 4, 8, 12, 16, 22, 30, 40, 52, 66, 84, 106, 136, 192},
		},
		{
			long:  [23]int{0, 4, 8, 12, 16, 20, 24, 30, 36, 42, 50, 60, 72, 88, 106, 128, 156, 190, 230, 276, 330, 384, 576},
			short: [14]int{0, 4, 8, 12, 16, 22, 28, 38, 50, 64, 80, 100, 126, 192},
		},
		{
			long:  [23]int{0, 4, 8, 12, 16, 20, 24, 30, 36, 44, 54, 66, 82, 102, 126, 156, 194, 240, 296, 364, 448, 550, 576},
			short: [14]int{0, 4, 8, 12, 16, 22, 30, 42, 58, 78, 104, 138, 180, 192},
		},
	},
	{
		{
			long:  [23]int{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
			short: [14]int{0, 4, 8, 12, 18, 24, 32, 42, 56, 74, 100, 132, 174, 192},
		},
		{
			long:  [23]int{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 114, 136, 162, 194, 232, 278, 332, 394, 464, 540, 576},
			short: [14]int{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 136, 180, 192},
		},
		{
			long:  [23]int{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
			short: [14]int{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 134, 174, 192},
		},
	},
	{
		{
			long:  [23]int{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
			short: [14]int{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 134, 174, 192},
		},
		{
			long:  [23]int{0, 6, 12, 18, 24, 30, 36, 44, 54, 66, 80, 96, 116, 140, 168, 200, 238, 284, 336, 396, 464, 522, 576},
			short: [14]int{0, 4, 8, 12, 18, 26, 36, 48, 62, 80, 104, 134, 174, 192},
		},
		{
			long:  [23]int{0, 12, 24, 36, 48, 60, 72, 88, 108, 132, 160, 192, 232, 280, 336, 400, 476, 566, 568, 570, 572, 574, 576},
			short: [14]int{0, 8, 16, 24, 36, 52, 72, 96, 124, 160, 162, 164, 166, 192},
		},
	},
}

// mixedSubbands returns the number of subbands a mixed block codes as long
// blocks: the lines below the fourth short band, 2 subbands except at 8 kHz.
func (bt *bandTable) mixedSubbands() int {
	return 3 * bt.short[3] / subbandLines
}

func bandsFor(hdr header.Header) *bandTable {
	v := 0

	switch hdr.Version {
	case header.MPEG2:
		v = 1
	case header.MPEG25:
		v = 2
	case header.MPEG1:
	}

	return &bands[v][hdr.SampleRateIndex]
}

// slenMPEG1 maps scalefac_compress to the bit widths of the two band groups.
//
//nolint:gochecknoglobals
var slenMPEG1 = [16][2]uint{
	{0, 0}, {0, 1}, {0, 2}, {0, 3}, {3, 0}, {1, 1}, {1, 2}, {1, 3},
	{2, 1}, {2, 2}, {2, 3}, {3, 1}, {3, 2}, {3, 3}, {4, 2}, {4, 3},
}

// lsfBandCounts is the number of scale factors in each of the four slen groups
// for the MPEG-2 extension, indexed [long, short, mixed][row].
//
//nolint:gochecknoglobals
var lsfBandCounts = [3][6][4]int{
	{{6, 5, 5, 5}, {6, 5, 7, 3}, {11, 10, 0, 0}, {7, 7, 7, 0}, {6, 6, 6, 3}, {8, 8, 5, 0}},
	{{9, 9, 9, 9}, {9, 9, 12, 6}, {18, 18, 0, 0}, {12, 12, 12, 0}, {12, 9, 9, 6}, {15, 12, 9, 0}},
	{{6, 9, 9, 9}, {6, 9, 12, 6}, {15, 18, 0, 0}, {6, 15, 12, 0}, {6, 12, 9, 6}, {6, 18, 9, 0}},
}

//nolint:gochecknoglobals
var pretab = [longBands]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 1, 1, 2, 2, 3, 3, 3, 2, 0}

// Antialias butterfly coefficients.
//
//nolint:gochecknoglobals
var (
	aliasCS [8]float32
	aliasCA [8]float32
)

// pow43 holds |x|^(4/3) for every quantized magnitude a Huffman table can produce.
//
//nolint:gochecknoglobals
var pow43 [8207]float32

// Intensity stereo ratios: MPEG-1 by is_pos, MPEG-2 by intensity_scale and is_pos.
//
//nolint:gochecknoglobals
var (
	isRatioLeft  [7]float32
	isRatioRight [7]float32
	lsfIntensity [2][32]float32
)

func init() {
	ci := [8]float64{-0.6, -0.535, -0.33, -0.185, -0.095, -0.041, -0.0142, -0.0037}
	for i, c := range ci {
		sq := math.Sqrt(1 + c*c)
		aliasCS[i] = float32(1 / sq)
		aliasCA[i] = float32(c / sq)
	}

	for i := range pow43 {
		pow43[i] = float32(math.Pow(float64(i), 4.0/3.0))
	}

	for pos := range 7 {
		if pos == 6 {
			isRatioLeft[pos], isRatioRight[pos] = 1, 0

			continue
		}

		ratio := math.Tan(float64(pos) * math.Pi / 12)
		isRatioLeft[pos] = float32(ratio / (1 + ratio))
		isRatioRight[pos] = float32(1 / (1 + ratio))
	}

	for scale := range 2 {
		step := 0.25 * float64(scale+1)
		for pos := range 32 {
			lsfIntensity[scale][pos] = float32(math.Exp2(-step * float64((pos+1)/2)))
		}
	}
}
