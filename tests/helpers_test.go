package tests_test

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"os"
	"os/exec"
	"testing"

	"github.com/mycophonic/mpadec"
	"github.com/mycophonic/mpadec/mp3"
)

func requireFFmpeg(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath("ffmpeg"); err != nil {
		t.Skip("ffmpeg not found in PATH")
	}
}

// rawFormat returns the ffmpeg raw sample format for a bit depth.
func rawFormat(bitDepth int, float bool) string {
	switch {
	case float:
		return "f32le"
	case bitDepth == 24:
		return "s24le"
	case bitDepth == 32:
		return "s32le"
	default:
		return "s16le"
	}
}

// decoderRawFormat is the ffmpeg raw format matching this build's decoder output.
func decoderRawFormat() string {
	return rawFormat(int(mpadec.SampleBitDepth), mpadec.SampleIsFloat)
}

// generateWhiteNoise creates reproducible signed integer PCM.
func generateWhiteNoise(sampleRate, bitDepth, channels, durationSec int) []byte {
	numSamples := sampleRate * durationSec * channels
	bytesPerSample := bitDepth / 8

	buf := make([]byte, numSamples*bytesPerSample)

	// Use a simple PRNG for reproducibility.
	seed := uint64(0x12345678)

	for i := range numSamples {
		// xorshift64
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17

		offset := i * bytesPerSample

		switch bitDepth {
		case 16:
			// Scale to 16-bit range, leave some headroom.
			val := int16((seed % 60000) - 30000)
			binary.LittleEndian.PutUint16(buf[offset:], uint16(val))
		case 24:
			val := int32((seed % 14000000) - 7000000)
			buf[offset] = byte(val)
			buf[offset+1] = byte(val >> 8)
			buf[offset+2] = byte(val >> 16)
		default:
		}
	}

	return buf
}

// generateFloatNoise creates reproducible float32 PCM in [-0.9, 0.9].
func generateFloatNoise(sampleRate, channels, durationSec int) []byte {
	numSamples := sampleRate * durationSec * channels
	buf := make([]byte, numSamples*4)
	seed := uint64(0x9E3779B9)

	for i := range numSamples {
		seed ^= seed << 13
		seed ^= seed >> 7
		seed ^= seed << 17

		val := float32(seed%1800)/1000 - 0.9
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(val))
	}

	return buf
}

// generateChirp creates a 16-bit sweep, which survives perceptual coding far
// better than white noise and so gives a tighter decoder comparison.
func generateChirp(sampleRate, channels, durationSec int) []byte {
	frames := sampleRate * durationSec
	buf := make([]byte, frames*channels*2)

	for i := range frames {
		t := float64(i) / float64(sampleRate)
		freq := 200 + 4000*t/float64(durationSec)

		for ch := range channels {
			phase := 2 * math.Pi * freq * t * float64(ch+1)
			val := int16(12000 * math.Sin(phase))
			binary.LittleEndian.PutUint16(buf[(i*channels+ch)*2:], uint16(val))
		}
	}

	return buf
}

// ffmpegEncode encodes raw 16-bit PCM with the given encoder arguments.
func ffmpegEncode(srcPath, dstPath string, sampleRate, channels int, args []string) error {
	full := []string{
		"-y",
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", sampleRate),
		"-ac", fmt.Sprintf("%d", channels),
		"-i", srcPath,
	}
	full = append(full, args...)
	full = append(full, dstPath)

	output, err := exec.Command("ffmpeg", full...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg: %w\n%s", err, output)
	}

	return nil
}

// ffmpegDecode decodes an audio file to raw PCM using ffmpeg.
func ffmpegDecode(srcPath, sampleFmt string, channels int) ([]byte, error) {
	cmd := exec.Command("ffmpeg",
		"-i", srcPath,
		"-f", sampleFmt,
		"-ac", fmt.Sprintf("%d", channels),
		"-acodec", "pcm_"+sampleFmt,
		"-",
	)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg decode: %w\n%s", err, stderr.String())
	}

	return stdout.Bytes(), nil
}

func decodeFile(path string) ([]byte, mpadec.PCMFormat, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, mpadec.PCMFormat{}, err
	}
	defer f.Close()

	return mp3.Decode(f)
}

// sampleAt returns sample i of raw PCM in the decoder output format, scaled to 16 bits.
func sampleAt(pcm []byte, i int, float bool) int {
	if float {
		v := math.Float32frombits(binary.LittleEndian.Uint32(pcm[i*4:]))

		return int(math.Round(float64(v) * 32767))
	}

	return int(int16(binary.LittleEndian.Uint16(pcm[i*2:])))
}

type lossyStats struct {
	samples    int
	largeDiffs int
	maxDiff    int
}

// compareLossy counts per-sample differences above tolerance between two
// decodings of the same stream. Different decoders round their synthesis
// filterbanks differently, so small deviations are expected.
func compareLossy(expected, actual []byte, float bool, tolerance int) lossyStats {
	width := 2
	if float {
		width = 4
	}

	stats := lossyStats{samples: min(len(expected), len(actual)) / width}

	for i := range stats.samples {
		diff := sampleAt(expected, i, float) - sampleAt(actual, i, float)
		if diff < 0 {
			diff = -diff
		}

		if diff > tolerance {
			stats.largeDiffs++
		}

		stats.maxDiff = max(stats.maxDiff, diff)
	}

	return stats
}
