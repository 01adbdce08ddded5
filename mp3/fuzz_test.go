package mp3_test

import (
	"testing"

	"github.com/mycophonic/mpadec/mp3"
)

// drain decodes src to the end and checks the iterator invariants.
func drain(t *testing.T, src []byte) {
	t.Helper()

	dec := mp3.NewDecoder(src)
	last := 0

	// Every call consumes at least one byte, so len(src)+1 calls suffice.
	for range len(src) + 1 {
		frame, err := dec.Next()
		if err != nil {
			if dec.Position() != len(src) {
				t.Fatalf("EOF at position %d of %d", dec.Position(), len(src))
			}

			return
		}

		if frame.Offset() < last || frame.Offset()+frame.ByteLength() > len(src) || frame.ByteLength() <= 0 {
			t.Fatalf("frame at %d+%d outside [%d, %d]", frame.Offset(), frame.ByteLength(), last, len(src))
		}

		if len(frame.Samples()) != frame.SampleCount()*frame.Channels() {
			t.Fatalf("%d samples for count %d and %d channels", len(frame.Samples()), frame.SampleCount(), frame.Channels())
		}

		last = dec.Position()
	}

	t.Fatal("iteration did not terminate")
}

// mutate derives a damaged copy of src from seed with a xorshift generator.
func mutate(src []byte, seed uint32) []byte {
	out := append([]byte(nil), src...)

	for range 1 + seed%64 {
		seed ^= seed << 13
		seed ^= seed >> 17
		seed ^= seed << 5

		idx := int(seed % uint32(len(out)))

		switch seed >> 29 {
		case 0:
			out[idx] = 0xFF
		case 1:
			out = out[:idx]
		default:
			out[idx] ^= byte(seed >> 8)
		}

		if len(out) == 0 {
			return out
		}
	}

	return out
}

func TestMalformedCorpus(t *testing.T) {
	t.Parallel()

	base := concat(id3Tag(t), stream(t, 4, 40, true))

	// Headers with every reserved field, and each layer and version.
	headers := [][]byte{
		{0xFF, 0xEB, 0x90, 0x64}, // reserved version
		{0xFF, 0xF9, 0x90, 0x64}, // reserved layer
		{0xFF, 0xFB, 0xF0, 0x64}, // reserved bitrate
		{0xFF, 0xFB, 0x9C, 0x64}, // reserved sample rate
		{0xFF, 0xFB, 0x00, 0x64}, // free format without a successor
		{0xFF, 0xFD, 0xA4, 0xC0}, // Layer II
		{0xFF, 0xFF, 0x12, 0x00}, // Layer I, padded
		{0xFF, 0xE3, 0x18, 0xC0}, // MPEG-2.5
		{0xFF, 0xF3, 0x80, 0x00}, // MPEG-2
		{'I', 'D', '3', 4, 0, 0, 0x7F, 0x7F, 0x7F, 0x7F}, // oversized tag
	}

	for _, h := range headers {
		drain(t, h)
		drain(t, concat(h, make([]byte, 600), h, make([]byte, 600)))
		drain(t, concat(h, base))
	}

	for seed := range uint32(500) {
		drain(t, mutate(base, seed*2654435761+1))
	}
}

func FuzzDecoder(f *testing.F) {
	f.Add([]byte{})
	f.Add([]byte{0xFF, 0xFB, 0x90, 0x64})
	f.Add(make([]byte, 1024))

	f.Add(stream(f, 3, 20, true))
	f.Add(concat(id3Tag(f), stream(f, 2, 0, false)))

	f.Fuzz(func(t *testing.T, src []byte) {
		drain(t, src)
	})
}
