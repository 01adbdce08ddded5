// Package bitstream provides bounded MSB-first bit reading over a byte slice.
package bitstream

const windowBits = 40

// Reader reads bits from a byte slice, most significant bit first.
//
// Reads past the end of the slice never index outside of it: the missing bits
// read as zero and the sticky overrun flag is raised. A Reader is a plain value
// and is meant to be embedded in decoder state.
type Reader struct {
	buf     []byte
	pos     int // bit position
	end     int // bit length of buf
	overrun bool
}

// New returns a Reader positioned at the first bit of buf.
func New(buf []byte) Reader {
	return Reader{buf: buf, end: len(buf) * 8}
}

// Reset re-targets the reader to buf and clears its position and overrun flag.
func (r *Reader) Reset(buf []byte) {
	r.buf = buf
	r.pos = 0
	r.end = len(buf) * 8
	r.overrun = false
}

// Peek returns the next n bits (0 <= n <= 32) right-aligned, without advancing.
func (r *Reader) Peek(n uint) uint32 {
	if n == 0 {
		return 0
	}

	byteIdx := r.pos >> 3

	var window uint64

	for i := range windowBits / 8 {
		window <<= 8

		if idx := byteIdx + i; idx >= 0 && idx < len(r.buf) {
			window |= uint64(r.buf[idx])
		}
	}

	shift := windowBits - uint(r.pos&7) - n

	return uint32((window >> shift) & (1<<n - 1))
}

// Read returns the next n bits (0 <= n <= 32) right-aligned and advances.
func (r *Reader) Read(n uint) uint32 {
	v := r.Peek(n)
	r.advance(int(n))

	return v
}

// ReadBit returns the next bit.
func (r *Reader) ReadBit() uint32 {
	if r.pos >= r.end {
		r.advance(1)

		return 0
	}

	v := uint32(r.buf[r.pos>>3]>>(7-uint(r.pos&7))) & 1
	r.pos++

	return v
}

// ReadFlag returns the next bit as a boolean.
func (r *Reader) ReadFlag() bool {
	return r.ReadBit() == 1
}

// Skip advances by n bits.
func (r *Reader) Skip(n int) {
	r.advance(n)
}

// Align advances to the next byte boundary.
func (r *Reader) Align() {
	if rem := r.pos & 7; rem != 0 {
		r.advance(8 - rem)
	}
}

// Position returns the current bit offset.
func (r *Reader) Position() int {
	return r.pos
}

// SetPosition moves to an absolute bit offset, clamped to [0, Len()].
func (r *Reader) SetPosition(bit int) {
	r.pos = min(max(bit, 0), r.end)
}

// ByteOffset returns the index of the byte holding the current bit.
func (r *Reader) ByteOffset() int {
	return r.pos >> 3
}

// Len returns the number of bits in the underlying slice.
func (r *Reader) Len() int {
	return r.end
}

// Remaining returns the number of unread bits.
func (r *Reader) Remaining() int {
	return max(r.end-r.pos, 0)
}

// Overrun reports whether any read went past the end of the slice.
func (r *Reader) Overrun() bool {
	return r.overrun
}

func (r *Reader) advance(n int) {
	r.pos += n
	if r.pos > r.end {
		r.overrun = true
		r.pos = r.end
	}
}
