package synth

import "github.com/mycophonic/mpadec"

// Filterbank is the per-channel state of the polyphase synthesis filterbank.
type Filterbank struct {
	v [1024]float32
}

// Reset clears the history.
func (f *Filterbank) Reset() {
	f.v = [1024]float32{}
}

// Transform runs one time slot: 32 subband samples in, 32 PCM samples out,
// full scale being 1.0.
func (f *Filterbank) Transform(k Kernel, in, out *[32]float32) {
	copy(f.v[64:], f.v[:1024-64])
	k.Matrix(in, (*[64]float32)(f.v[:64]))

	var u [512]float32

	for i := 0; i < 512; i += 64 {
		copy(u[i:i+32], f.v[i<<1:i<<1+32])
		copy(u[i+32:i+64], f.v[i<<1+96:i<<1+128])
	}

	for i := range 32 {
		var sum float32
		for j := i; j < 512; j += 32 {
			sum += u[j] * window[j]
		}

		out[i] = sum
	}
}

// Synthesize runs one time slot and writes the converted samples to
// out[0], out[stride], ... out[31*stride].
func (f *Filterbank) Synthesize(k Kernel, in *[32]float32, out []mpadec.Sample, stride int) {
	var pcm [32]float32

	f.Transform(k, in, &pcm)

	_ = out[31*stride]

	for i, s := range pcm {
		out[i*stride] = ToSample(s)
	}
}

// Bank is the synthesis state of a stream: one filterbank per channel and the
// kernel they share.
type Bank struct {
	kernel Kernel
	fb     [mpadec.MaxChannels]Filterbank
}

// NewBank returns a Bank using kernel k.
func NewBank(k Kernel) *Bank {
	return &Bank{kernel: k}
}

// Kernel returns the matrixing kernel in use.
func (b *Bank) Kernel() Kernel {
	return b.kernel
}

// Reset clears the history of every channel.
func (b *Bank) Reset() {
	for i := range b.fb {
		b.fb[i].Reset()
	}
}

// Synthesize runs one time slot of channel ch. See Filterbank.Synthesize.
func (b *Bank) Synthesize(ch int, in *[32]float32, out []mpadec.Sample, stride int) {
	b.fb[ch].Synthesize(b.kernel, in, out, stride)
}
