package synth

import "math"

//nolint:gochecknoglobals
var matrixCos [64][32]float32

func init() {
	for i := range 64 {
		for k := range 32 {
			matrixCos[i][k] = float32(math.Cos(float64((16+i)*(2*k+1)) * (math.Pi / 64.0)))
		}
	}
}

// Portable computes the matrixing as a direct 64x32 product.
type Portable struct{}

// Name implements Kernel.
func (*Portable) Name() string {
	return NamePortable
}

// Matrix implements Kernel.
func (*Portable) Matrix(in *[32]float32, v *[64]float32) {
	for i := range 64 {
		var sum float32

		row := &matrixCos[i]
		for k := range 32 {
			sum += row[k] * in[k]
		}

		v[i] = sum
	}
}
