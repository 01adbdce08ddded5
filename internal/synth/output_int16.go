//go:build !with_float

package synth

import "github.com/mycophonic/mpadec"

// ToSample converts a full-scale float sample to 16-bit PCM, rounded to the
// nearest step and clamped to +-32767.
func ToSample(x float32) mpadec.Sample {
	v := min(max(x, -1), 1) * 32767
	if v < 0 {
		return mpadec.Sample(v - 0.5)
	}

	return mpadec.Sample(v + 0.5)
}
