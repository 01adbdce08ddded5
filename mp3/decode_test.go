package mp3_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	gomp3 "github.com/hajimehoshi/go-mp3"
	"github.com/mycophonic/primordium/fault"

	"github.com/mycophonic/mpadec"
	"github.com/mycophonic/mpadec/mp3"
)

type failingReader struct{}

var errBrokenMedia = errors.New("broken media")

func (failingReader) Read([]byte) (int, error) {
	return 0, errBrokenMedia
}

func (failingReader) Seek(int64, int) (int64, error) {
	return 0, nil
}

func TestDecodeBytes(t *testing.T) {
	t.Parallel()

	src := concat(id3Tag(t), stream(t, 4, 25, true))

	pcm, format, err := mp3.DecodeBytes(src)
	if err != nil {
		t.Fatal(err)
	}

	if format.SampleRate != 44100 || format.Channels != 1 || format.BitDepth != mpadec.SampleBitDepth {
		t.Fatalf("format %+v", format)
	}

	if want := 4 * monoCount * mpadec.SampleBitDepth.BytesPerSample(); len(pcm) != want {
		t.Fatalf("%d bytes, want %d", len(pcm), want)
	}
}

func TestDecodeNoFrames(t *testing.T) {
	t.Parallel()

	for _, src := range [][]byte{nil, make([]byte, 4096), id3Tag(t)} {
		if _, _, err := mp3.DecodeBytes(src); !errors.Is(err, mp3.ErrNoFrames) {
			t.Fatalf("got %v, want ErrNoFrames", err)
		}
	}
}

func TestDecodeReadFailure(t *testing.T) {
	t.Parallel()

	_, _, err := mp3.Decode(failingReader{})
	if !errors.Is(err, fault.ErrReadFailure) || !errors.Is(err, errBrokenMedia) {
		t.Fatalf("got %v", err)
	}
}

func TestDecodeMatchesReference(t *testing.T) {
	t.Parallel()

	if mpadec.SampleIsFloat {
		t.Skip("reference decoder produces 16-bit samples")
	}

	src := stream(t, 8, 30, true)

	got, _, err := mp3.Decode(bytes.NewReader(src))
	if err != nil {
		t.Fatal(err)
	}

	ref, err := gomp3.NewDecoder(bytes.NewReader(src))
	if err != nil {
		t.Fatalf("reference decoder: %v", err)
	}

	want, err := io.ReadAll(ref)
	if err != nil {
		t.Fatalf("reference decode: %v", err)
	}

	// The reference always writes stereo; compare its left channel.
	if len(want) != 2*len(got) {
		t.Fatalf("reference has %d bytes for %d mono bytes", len(want), len(got))
	}

	var (
		maxDiff int
		energy  int64
	)

	for i := 0; i < len(got); i += 2 {
		g := int(int16(binary.LittleEndian.Uint16(got[i:])))
		w := int(int16(binary.LittleEndian.Uint16(want[2*i:])))
		maxDiff = max(maxDiff, abs(g-w))
		energy += int64(w * w)
	}

	if energy == 0 {
		t.Fatal("reference output is silent")
	}

	// The reference truncates toward zero where this decoder rounds.
	if maxDiff > 3 {
		t.Fatalf("samples differ from the reference by up to %d", maxDiff)
	}
}

// referenceExample returns a file shipped in the go-mp3 module's example directory.
func referenceExample(t *testing.T, name string) []byte {
	t.Helper()

	out, err := exec.Command("go", "list", "-m", "-f", "{{.Dir}}", "github.com/hajimehoshi/go-mp3").Output()
	if err != nil {
		t.Skipf("locating go-mp3 module: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(strings.TrimSpace(string(out)), "example", name))
	if err != nil {
		t.Skipf("reading %s: %v", name, err)
	}

	return data
}

func TestDecodeMatchesReferenceStreams(t *testing.T) {
	t.Parallel()

	if mpadec.SampleIsFloat {
		t.Skip("reference decoder produces 16-bit samples")
	}

	if testing.Short() {
		t.Skip("decodes several minutes of audio")
	}

	cases := []struct {
		file     string
		channels uint
		rate     int
	}{
		// MPEG-1 stereo with short and mixed blocks.
		{"classic.mp3", 2, 44100},
		// MPEG-2 mono.
		{"mpeg2.mp3", 1, 22050},
	}

	for _, tc := range cases {
		t.Run(tc.file, func(t *testing.T) {
			t.Parallel()

			src := referenceExample(t, tc.file)

			got, format, err := mp3.DecodeBytes(src)
			if err != nil {
				t.Fatal(err)
			}

			if format.Channels != tc.channels || format.SampleRate != tc.rate {
				t.Fatalf("format %+v", format)
			}

			ref, err := gomp3.NewDecoder(bytes.NewReader(src))
			if err != nil {
				t.Fatalf("reference decoder: %v", err)
			}

			want, err := io.ReadAll(ref)
			if err != nil {
				t.Fatalf("reference decode: %v", err)
			}

			// The reference always writes stereo; a mono stream is compared on its left channel.
			stride := 2
			if tc.channels == 1 {
				stride = 4
			}

			frames := min(len(got)/(2*int(tc.channels)), len(want)/4)
			if diff := abs(len(got)/(2*int(tc.channels)) - len(want)/4); diff > 1152 {
				t.Fatalf("lengths differ by %d samples per channel", diff)
			}

			var signal, noise float64

			for i := range frames * int(tc.channels) {
				g := float64(int16(binary.LittleEndian.Uint16(got[2*i:])))
				w := float64(int16(binary.LittleEndian.Uint16(want[i*stride:])))
				signal += w * w
				noise += (g - w) * (g - w)
			}

			if signal == 0 {
				t.Fatal("reference output is silent")
			}

			snr := 10 * math.Log10(signal/max(noise, 1))
			t.Logf("%s: %.1f dB against go-mp3", tc.file, snr)

			if snr < 70 {
				t.Fatalf("signal to noise ratio %.1f dB against go-mp3", snr)
			}
		})
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}

	return x
}

func TestAppendPCMConvertsChannels(t *testing.T) {
	t.Parallel()

	dec := mp3.NewDecoder(stream(t, 2, 0, true))

	if _, err := dec.Next(); err != nil {
		t.Fatal(err)
	}

	frame, err := dec.Next()
	if err != nil {
		t.Fatal(err)
	}

	width := mpadec.SampleBitDepth.BytesPerSample()

	mono := mp3.AppendPCM(nil, frame, 1)
	if !bytes.Equal(mono, mpadec.AppendSamples(nil, frame.Samples())) {
		t.Fatal("same channel count is not a plain copy")
	}

	stereo := mp3.AppendPCM([]byte{0xAA}, frame, 2)
	if len(stereo) != 1+2*len(mono) || stereo[0] != 0xAA {
		t.Fatalf("stereo output is %d bytes", len(stereo))
	}

	for i := range frame.SampleCount() {
		left := stereo[1+2*i*width : 1+(2*i+1)*width]
		right := stereo[1+(2*i+1)*width : 1+(2*i+2)*width]

		if !bytes.Equal(left, right) || !bytes.Equal(left, mono[i*width:(i+1)*width]) {
			t.Fatalf("sample %d not duplicated", i)
		}
	}
}
