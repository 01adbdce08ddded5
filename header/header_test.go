package header_test

import (
	"errors"
	"testing"

	"github.com/mycophonic/mpadec/header"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		word       uint32
		layer12    bool
		version    header.Version
		layer      header.Layer
		bitrate    int
		sampleRate int
		channels   int
		length     int
		samples    int
		sideInfo   int
	}{
		{
			name: "mpeg1 layer3 128k joint stereo", word: 0xFFFB9064,
			version: header.MPEG1, layer: header.Layer3, bitrate: 128, sampleRate: 44100,
			channels: 2, length: 417, samples: 1152, sideInfo: 32,
		},
		{
			name: "mpeg1 layer2 192k mono", word: 0xFFFDA4C0, layer12: true,
			version: header.MPEG1, layer: header.Layer2, bitrate: 192, sampleRate: 48000,
			channels: 1, length: 576, samples: 1152, sideInfo: 17,
		},
		{
			name: "mpeg1 layer1 384k padded", word: 0xFFFFC200, layer12: true,
			version: header.MPEG1, layer: header.Layer1, bitrate: 384, sampleRate: 44100,
			channels: 2, length: 420, samples: 384, sideInfo: 32,
		},
		{
			name: "mpeg2 layer3 64k stereo", word: 0xFFF38000,
			version: header.MPEG2, layer: header.Layer3, bitrate: 64, sampleRate: 22050,
			channels: 2, length: 208, samples: 576, sideInfo: 17,
		},
		{
			name: "mpeg2.5 layer3 8k mono", word: 0xFFE318C0,
			version: header.MPEG25, layer: header.Layer3, bitrate: 8, sampleRate: 8000,
			channels: 1, length: 72, samples: 576, sideInfo: 9,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			hdr, err := header.Parse(tc.word)
			if tc.layer12 && !header.Layer12Enabled() {
				if !errors.Is(err, header.ErrLayerDisabled) {
					t.Fatalf("expected ErrLayerDisabled, got %v", err)
				}

				return
			}

			if err != nil {
				t.Fatalf("Parse(%#x): %v", tc.word, err)
			}

			if hdr.Version != tc.version || hdr.Layer != tc.layer {
				t.Errorf("version/layer = %v/%d, want %v/%d", hdr.Version, hdr.Layer, tc.version, tc.layer)
			}

			if got := hdr.Bitrate(); got != tc.bitrate {
				t.Errorf("Bitrate() = %d, want %d", got, tc.bitrate)
			}

			if got := hdr.SampleRate(); got != tc.sampleRate {
				t.Errorf("SampleRate() = %d, want %d", got, tc.sampleRate)
			}

			if got := hdr.Channels(); got != tc.channels {
				t.Errorf("Channels() = %d, want %d", got, tc.channels)
			}

			if got := hdr.FrameLength(); got != tc.length {
				t.Errorf("FrameLength() = %d, want %d", got, tc.length)
			}

			if got := hdr.SamplesPerChannel(); got != tc.samples {
				t.Errorf("SamplesPerChannel() = %d, want %d", got, tc.samples)
			}

			if got := hdr.SideInfoLength(); got != tc.sideInfo {
				t.Errorf("SideInfoLength() = %d, want %d", got, tc.sideInfo)
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		word uint32
		want error
	}{
		{"no sync", 0x7FFB9064, header.ErrNoSync},
		{"zero word", 0, header.ErrNoSync},
		{"reserved version", 0xFFEB9064, header.ErrReservedVersion},
		{"reserved layer", 0xFFF99064, header.ErrReservedLayer},
		{"reserved bitrate", 0xFFFBF064, header.ErrReservedBitrate},
		{"reserved sample rate", 0xFFFB9C64, header.ErrReservedSampleRate},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := header.Parse(tc.word); !errors.Is(err, tc.want) {
				t.Fatalf("Parse(%#x) error = %v, want %v", tc.word, err, tc.want)
			}
		})
	}
}

func TestParseBytesShort(t *testing.T) {
	t.Parallel()

	if _, err := header.ParseBytes([]byte{0xFF, 0xFB, 0x90}); !errors.Is(err, header.ErrShortBuffer) {
		t.Fatalf("error = %v, want ErrShortBuffer", err)
	}
}

func TestStereoFlags(t *testing.T) {
	t.Parallel()

	hdr, err := header.ParseBytes([]byte{0xFF, 0xFB, 0x90, 0x74})
	if err != nil {
		t.Fatal(err)
	}

	if !hdr.MSStereo() || !hdr.IntensityStereo() {
		t.Fatalf("mode extension 3 should enable both: %+v", hdr)
	}

	if hdr.Bound() != 16 {
		t.Fatalf("Bound() = %d, want 16", hdr.Bound())
	}

	if hdr.Protected {
		t.Fatal("protection bit set means no CRC")
	}

	if hdr.DataOffset() != header.Size {
		t.Fatalf("DataOffset() = %d", hdr.DataOffset())
	}
}

func TestZeroHeader(t *testing.T) {
	t.Parallel()

	var hdr header.Header

	if got := hdr.Bitrate(); got != 0 {
		t.Fatalf("Bitrate() = %d, want 0", got)
	}

	if got := hdr.FrameLength(); got != 0 {
		t.Fatalf("FrameLength() = %d, want 0", got)
	}

	if hdr.String() == "" {
		t.Fatal("String() is empty")
	}
}

func TestEmphasisReservedTolerated(t *testing.T) {
	t.Parallel()

	hdr, err := header.Parse(0xFFFB9066)
	if err != nil {
		t.Fatalf("reserved emphasis rejected: %v", err)
	}

	if hdr.Emphasis != 2 {
		t.Fatalf("Emphasis = %d", hdr.Emphasis)
	}
}

func TestFreeFormat(t *testing.T) {
	t.Parallel()

	hdr, err := header.Parse(0xFFFB0064)
	if err != nil {
		t.Fatal(err)
	}

	if !hdr.FreeFormat() || hdr.FrameLength() != 0 || hdr.Bitrate() != 0 {
		t.Fatalf("free format header misreported: %v", hdr)
	}

	// 417 bytes at 44.1 kHz is 128 kbit/s.
	if got := hdr.FreeFormatBitrate(417); got != 127 && got != 128 {
		t.Fatalf("FreeFormatBitrate(417) = %d", got)
	}

	if hdr.String() == "" {
		t.Fatal("empty String()")
	}
}

func TestCompatible(t *testing.T) {
	t.Parallel()

	a, _ := header.Parse(0xFFFB9064)
	b, _ := header.Parse(0xFFFBA044) // different bitrate and mode
	c, _ := header.Parse(0xFFFB9464) // 48 kHz

	if !a.Compatible(b) {
		t.Error("bitrate and mode changes must stay compatible")
	}

	if a.Compatible(c) {
		t.Error("sample rate change must not be compatible")
	}
}
