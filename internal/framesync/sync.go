// Package framesync locates MPEG audio frames and ID3 tags in a byte buffer.
package framesync

import (
	"encoding/binary"

	"github.com/mycophonic/mpadec/header"
)

// maxFreeFormatLength bounds the search for the next header of a free format frame.
// It covers Layer II at 640 kbit/s and 32 kHz with room to spare.
const maxFreeFormatLength = 4096

// Kind classifies a Result.
type Kind uint8

// Result kinds.
const (
	// KindNone means the buffer holds no further frame or tag.
	KindNone Kind = iota
	// KindFrame is an MPEG audio frame.
	KindFrame
	// KindTag is an ID3v2 tag or an ID3v1 trailer.
	KindTag
)

// Result describes what Locate found.
type Result struct {
	Kind Kind
	// Skipped is the number of unrecognized bytes before Offset.
	Skipped int
	// Offset is the absolute position of the frame or tag.
	Offset int
	// Length is the byte length of the frame or tag, clamped to the buffer.
	Length int
	// Header is set for KindFrame.
	Header header.Header
	// Truncated is set when the declared frame length runs past the buffer.
	Truncated bool
}

// End returns the offset just past the located frame or tag.
func (r Result) End() int {
	return r.Offset + r.Length
}

// Lock remembers the parameters of the last accepted frame. A compatible
// candidate at the scan offset is accepted without next-frame verification;
// one found after skipped bytes is verified like any other.
type Lock struct {
	hdr  header.Header
	held bool
}

// Set locks onto hdr.
func (l *Lock) Set(hdr header.Header) {
	l.hdr = hdr
	l.held = true
}

// Clear releases the lock.
func (l *Lock) Clear() {
	*l = Lock{}
}

// Held reports whether the lock is set.
func (l *Lock) Held() bool {
	return l.held
}

// Locate scans buf from offset for the next frame or tag.
func Locate(buf []byte, offset int, lock *Lock) Result {
	offset = min(max(offset, 0), len(buf))

	for pos := offset; pos < len(buf); pos++ {
		rest := buf[pos:]

		if n := id3v2Length(rest); n > 0 {
			return Result{Kind: KindTag, Skipped: pos - offset, Offset: pos, Length: min(n, len(rest))}
		}

		if isID3v1(rest) {
			return Result{Kind: KindTag, Skipped: pos - offset, Offset: pos, Length: id3v1Size}
		}

		if len(rest) < header.Size || rest[0] != 0xFF || rest[1]&0xE0 != 0xE0 {
			continue
		}

		hdr, err := header.Parse(binary.BigEndian.Uint32(rest))
		if err != nil {
			continue
		}

		length := hdr.FrameLength()
		if hdr.FreeFormat() {
			length = freeFormatLength(rest, hdr)
			if length == 0 {
				continue
			}
		}

		res := Result{Kind: KindFrame, Skipped: pos - offset, Offset: pos, Length: length, Header: hdr}

		if length > len(rest) {
			res.Length = len(rest)
			res.Truncated = true

			return res
		}

		// The lock only vouches for a header right where the previous frame ended.
		if pos == offset && lock != nil && lock.held && lock.hdr.Compatible(hdr) {
			return res
		}

		if verifyNext(rest[length:], hdr) {
			return res
		}
	}

	return Result{Kind: KindNone, Skipped: len(buf) - offset, Offset: len(buf)}
}

// verifyNext checks that what follows a candidate frame is a compatible header,
// a tag, or too short to tell.
func verifyNext(next []byte, hdr header.Header) bool {
	if len(next) < header.Size {
		return true
	}

	if isTag(next) {
		return true
	}

	other, err := header.Parse(binary.BigEndian.Uint32(next))
	if err != nil {
		return false
	}

	return hdr.Compatible(other)
}

// freeFormatLength returns the distance from buf[0] to the next free format header
// sharing version, layer and sample rate, or 0 if there is none in range.
func freeFormatLength(buf []byte, hdr header.Header) int {
	limit := min(len(buf)-header.Size, maxFreeFormatLength)

	for i := hdr.DataOffset() + 1; i <= limit; i++ {
		if buf[i] != 0xFF || buf[i+1]&0xE0 != 0xE0 {
			continue
		}

		other, err := header.Parse(binary.BigEndian.Uint32(buf[i:]))
		if err != nil || !other.FreeFormat() || !hdr.Compatible(other) {
			continue
		}

		return i
	}

	return 0
}
