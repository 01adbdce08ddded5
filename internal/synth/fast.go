package synth

import "math"

// leeCoef holds 1 / (2 cos((i + 0.5) pi / n)) at index n/2 + i, for n = 2..32.
//
//nolint:gochecknoglobals
var leeCoef [32]float32

func init() {
	for half := 1; half <= 16; half <<= 1 {
		n := 2 * half
		for i := range half {
			leeCoef[half+i] = float32(1 / (2 * math.Cos((float64(i)+0.5)*math.Pi/float64(n))))
		}
	}
}

// Fast computes the matrixing from a 32-point DCT-II factorised after
// B. G. Lee, "A new algorithm to compute the discrete cosine transform" (1984).
type Fast struct {
	x, tmp [32]float32
}

// Name implements Kernel.
func (*Fast) Name() string {
	return NameFast
}

// Matrix implements Kernel.
func (f *Fast) Matrix(in *[32]float32, v *[64]float32) {
	f.x = *in
	dct(f.x[:], f.tmp[:])

	x := &f.x

	for i := range 16 {
		v[i] = x[16+i]
	}

	v[16] = 0

	for i := 17; i < 48; i++ {
		v[i] = -x[48-i]
	}

	v[48] = -x[0]

	for i := 49; i < 64; i++ {
		v[i] = -x[i-48]
	}
}

// dct replaces vec with its unscaled DCT-II, X[k] = sum of vec[j] cos(pi/n (j+0.5) k).
// len(vec) must be a power of two and tmp at least as long.
func dct(vec, tmp []float32) {
	n := len(vec)
	if n == 1 {
		return
	}

	half := n / 2

	for i := range half {
		a, b := vec[i], vec[n-1-i]
		tmp[i] = a + b
		tmp[half+i] = (a - b) * leeCoef[half+i]
	}

	dct(tmp[:half], vec[:half])
	dct(tmp[half:n], vec[half:n])

	for i := range half - 1 {
		vec[2*i] = tmp[i]
		vec[2*i+1] = tmp[half+i] + tmp[half+i+1]
	}

	vec[n-2] = tmp[half-1]
	vec[n-1] = tmp[n-1]
}
