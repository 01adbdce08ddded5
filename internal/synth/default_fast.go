//go:build !portable_kernels

package synth

// DefaultName is the kernel used when none is requested.
const DefaultName = NameFast
