package layer12

import "math"

// quantizer describes one Layer II quantization class.
type quantizer struct {
	levels  int
	grouped bool
	bits    uint
}

// quantizers is ISO/IEC 11172-3 table 3-B.4, indexed by class - 1.
//
//nolint:gochecknoglobals
var quantizers = [17]quantizer{
	{3, true, 5},
	{5, true, 7},
	{7, false, 3},
	{9, true, 10},
	{15, false, 4},
	{31, false, 5},
	{63, false, 6},
	{127, false, 7},
	{255, false, 8},
	{511, false, 9},
	{1023, false, 10},
	{2047, false, 11},
	{4095, false, 12},
	{8191, false, 13},
	{16383, false, 14},
	{32767, false, 15},
	{65535, false, 16},
}

// Allocation table selection for MPEG-1 Layer II: the bitrate per channel
// picks a class, and class and sample rate pick one of tables 3-B.2a to d.
// Each entry packs the table row in the upper bits and sblimit in the lower 6.
const (
	allocTableA = 1<<6 | 27
	allocTableB = 1<<6 | 30
	allocTableC = 0<<6 | 8
	allocTableD = 0<<6 | 12
	allocTableL = 2<<6 | 30 // ISO/IEC 13818-3 table B.1
)

// bitrateClass is indexed [stereo][bitrate index - 1].
//
//nolint:gochecknoglobals
var bitrateClass = [2][14]uint8{
	{0, 0, 1, 1, 1, 2, 2, 2, 2, 2, 2, 2, 2, 2},
	{0, 0, 0, 0, 0, 0, 1, 1, 1, 2, 2, 2, 2, 2},
}

// allocTables is indexed [bitrate class][sample rate index].
//
//nolint:gochecknoglobals
var allocTables = [3][3]uint8{
	{allocTableC, allocTableC, allocTableD},
	{allocTableA, allocTableA, allocTableA},
	{allocTableB, allocTableA, allocTableB},
}

// subbandAlloc is indexed [table row][subband]; each entry packs nbal in the
// upper nibble and the class row of classRows in the lower nibble.
//
//nolint:gochecknoglobals
var subbandAlloc = [3][30]uint8{
	{
		0x44, 0x44,
		0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34,
	},
	{
		0x43, 0x43, 0x43,
		0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42, 0x42,
		0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31, 0x31,
		0x20, 0x20, 0x20, 0x20, 0x20, 0x20, 0x20,
	},
	{
		0x45, 0x45, 0x45, 0x45,
		0x34, 0x34, 0x34, 0x34, 0x34, 0x34, 0x34,
		0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24,
		0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24, 0x24,
	},
}

// classRows maps an allocation value to a quantization class, 0 meaning
// nothing allocated.
//
//nolint:gochecknoglobals
var classRows = [6][16]uint8{
	{0, 1, 2, 17},
	{0, 1, 2, 3, 4, 5, 6, 17},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 17},
	{0, 1, 3, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17},
	{0, 1, 2, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16},
	{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
}

// scaleFactors is table 3-B.1: 2 * 2^(-i/3), with index 63 silent.
//
//nolint:gochecknoglobals
var scaleFactors [64]float32

func init() {
	for i := range 63 {
		scaleFactors[i] = float32(2 * math.Exp2(-float64(i)/3))
	}
}

// dequantize maps a code v of a quantizer with the given number of levels to
// (2v + 1 - levels) / levels.
func dequantize(v uint32, levels int) float32 {
	return float32(2*int(v)+1-levels) / float32(levels)
}
