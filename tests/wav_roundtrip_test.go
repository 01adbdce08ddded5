package tests_test

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/mycophonic/mpadec"
	"github.com/mycophonic/mpadec/wav"
)

// TestWAVRoundTrip validates WAV encoding by round-tripping through ffmpeg:
// generate PCM -> wav.Encode -> ffmpeg decode WAV -> compare against original PCM.
// This ensures our WAV headers (simple, extensible and float) are correct.
func TestWAVRoundTrip(t *testing.T) {
	t.Parallel()

	requireFFmpeg(t)

	configs := []struct {
		name       string
		sampleRate int
		bitDepth   int
		channels   int
		float      bool
	}{
		// Simple WAVEFORMAT, the decoder's default output.
		{"16bit_44100_mono", 44100, 16, 1, false},
		{"16bit_44100_stereo", 44100, 16, 2, false},
		{"16bit_48000_stereo", 48000, 16, 2, false},
		{"16bit_22050_stereo", 22050, 16, 2, false},
		{"16bit_8000_mono", 8000, 16, 1, false},

		// WAVEFORMATEXTENSIBLE (>16-bit).
		{"24bit_44100_stereo", 44100, 24, 2, false},

		// IEEE float, as produced by with_float builds.
		{"float_44100_stereo", 44100, 32, 2, true},
		{"float_24000_mono", 24000, 32, 1, true},
	}

	for _, cfg := range configs {
		t.Run(cfg.name, func(t *testing.T) {
			t.Parallel()

			var pcm []byte
			if cfg.float {
				pcm = generateFloatNoise(cfg.sampleRate, cfg.channels, 1)
			} else {
				pcm = generateWhiteNoise(cfg.sampleRate, cfg.bitDepth, cfg.channels, 1)
			}

			format := mpadec.PCMFormat{
				SampleRate: cfg.sampleRate,
				BitDepth:   mpadec.BitDepth(cfg.bitDepth),
				Channels:   uint(cfg.channels),
				Float:      cfg.float,
			}

			var wavBuf bytes.Buffer
			if err := wav.Encode(&wavBuf, pcm, format); err != nil {
				t.Fatalf("wav.Encode: %v", err)
			}

			wavPath := filepath.Join(t.TempDir(), "test.wav")
			if err := os.WriteFile(wavPath, wavBuf.Bytes(), 0o600); err != nil {
				t.Fatalf("writing WAV: %v", err)
			}

			decoded, err := ffmpegDecodeWAV(wavPath, rawFormat(cfg.bitDepth, cfg.float), cfg.channels)
			if err != nil {
				t.Fatalf("ffmpeg decode: %v", err)
			}

			if len(decoded) != len(pcm) {
				t.Fatalf("length mismatch: original=%d, decoded=%d", len(pcm), len(decoded))
			}

			if !bytes.Equal(decoded, pcm) {
				for i := range pcm {
					if decoded[i] != pcm[i] {
						t.Fatalf("byte mismatch at offset %d: original=0x%02X, decoded=0x%02X", i, pcm[i], decoded[i])
					}
				}
			}
		})
	}
}

// ffmpegDecodeWAV decodes a WAV file to raw PCM using ffmpeg.
func ffmpegDecodeWAV(wavPath, sampleFmt string, channels int) ([]byte, error) {
	cmd := exec.Command("ffmpeg",
		"-i", wavPath,
		"-f", sampleFmt,
		"-ac", fmt.Sprintf("%d", channels),
		"-acodec", "pcm_"+sampleFmt,
		"-",
	)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg: %w\n%s", err, stderr.String())
	}

	return stdout.Bytes(), nil
}
