package mp3_test

import (
	"bytes"
	"testing"

	"github.com/bogem/id3v2/v2"
	"github.com/icza/bitio"
)

// MPEG-1 Layer III, 128 kbit/s, 44.1 kHz, mono: 417 byte frames, 17 bytes of
// side information, 1152 samples.
const (
	monoWord   = 0xFFFB90C4
	monoLength = 417
	monoCount  = 1152
)

// layer3Frame builds a mono frame. A tone frame codes the pair (1, 1) at unit
// gain in the first two lines of both granules; its main data is five zero
// bits per granule, so tone and silent frames only differ in side information.
func layer3Frame(t testing.TB, begin uint64, tone bool) []byte {
	t.Helper()

	var buf bytes.Buffer

	w := bitio.NewWriter(&buf)
	put := func(v uint64, n uint8) {
		if err := w.WriteBits(v, n); err != nil {
			t.Fatalf("WriteBits: %v", err)
		}
	}

	put(monoWord, 32)
	put(begin, 9)
	put(0, 5+4)

	for range 2 {
		if tone {
			put(5, 12)
			put(1, 9)
			put(210, 8)
		} else {
			put(0, 12+9+8)
		}

		put(0, 4+1)

		if tone {
			put(1, 5)
		} else {
			put(0, 5)
		}

		put(0, 5+5+4+3+3)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	return append(buf.Bytes(), make([]byte, monoLength-buf.Len())...)
}

// stream concatenates n frames, the first with main_data_begin 0 and the
// following ones borrowing begin bytes.
func stream(t testing.TB, n int, begin uint64, tone bool) []byte {
	t.Helper()

	var out []byte

	for i := range n {
		b := begin
		if i == 0 {
			b = 0
		}

		out = append(out, layer3Frame(t, b, tone)...)
	}

	return out
}

func id3Tag(t testing.TB) []byte {
	t.Helper()

	tag := id3v2.NewEmptyTag()
	tag.SetTitle("tone")
	tag.SetArtist("mpadec")

	var buf bytes.Buffer
	if _, err := tag.WriteTo(&buf); err != nil {
		t.Fatalf("writing tag: %v", err)
	}

	return buf.Bytes()
}

func concat(parts ...[]byte) []byte {
	var out []byte
	for _, p := range parts {
		out = append(out, p...)
	}

	return out
}
