package layer3

import (
	"bytes"
	"testing"

	"github.com/icza/bitio"
)

// bits builds a test bitstream MSB first.
type bits struct {
	t   *testing.T
	buf bytes.Buffer
	w   *bitio.Writer
	n   int
}

func newBits(t *testing.T) *bits {
	t.Helper()

	b := &bits{t: t}
	b.w = bitio.NewWriter(&b.buf)

	return b
}

func (b *bits) put(value uint64, width uint8) *bits {
	b.t.Helper()

	if width == 0 {
		return b
	}

	if err := b.w.WriteBits(value, width); err != nil {
		b.t.Fatalf("WriteBits: %v", err)
	}

	b.n += int(width)

	return b
}

// code writes a string of '0' and '1' characters.
func (b *bits) code(s string) *bits {
	b.t.Helper()

	for _, c := range s {
		b.put(uint64(c-'0'), 1)
	}

	return b
}

// bytes flushes and returns the stream padded with zero bits to size bytes.
func (b *bits) bytes(size int) []byte {
	b.t.Helper()

	if err := b.w.Close(); err != nil {
		b.t.Fatalf("Close: %v", err)
	}

	out := b.buf.Bytes()
	if len(out) > size {
		b.t.Fatalf("stream of %d bytes exceeds %d", len(out), size)
	}

	return append(out, make([]byte, size-len(out))...)
}
