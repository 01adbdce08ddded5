//go:build with_float

package synth

import "github.com/mycophonic/mpadec"

// ToSample clamps a full-scale float sample to [-1, 1].
func ToSample(x float32) mpadec.Sample {
	return min(max(x, -1), 1)
}
