// Package synth holds the transforms shared by every layer: the hybrid IMDCT
// with overlap-add and the 32-band polyphase synthesis filterbank.
package synth

// Kernel computes the 32 to 64 point matrixing step of the polyphase filterbank,
// V[i] = sum over k of cos((16+i)(2k+1)pi/64) * S[k].
//
// Implementations may keep scratch space and are not safe for concurrent use.
type Kernel interface {
	Name() string
	Matrix(in *[32]float32, v *[64]float32)
}

// Kernel names accepted by NewKernel.
const (
	NamePortable = "portable"
	NameFast     = "fast"
)

// NewKernel returns the named kernel, or the build's default for an unknown name.
func NewKernel(name string) Kernel {
	switch name {
	case NamePortable:
		return &Portable{}
	case NameFast:
		return &Fast{}
	default:
		return NewKernel(DefaultName)
	}
}
