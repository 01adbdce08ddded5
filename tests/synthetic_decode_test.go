package tests_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mycophonic/mpadec/header"
)

// Codec configurations to test.
type codecConfig struct {
	name       string
	sampleRate int
	channels   int
	layer12    bool
	ffmpegArgs []string
}

// Layer III through libmp3lame. -write_xing 0 omits the info frame, so that
// ffmpeg applies no gapless trimming and both decoders start at the same sample.
var layer3Configs = []codecConfig{
	// MPEG-1, all sample rates.
	{name: "mpeg1_32000_stereo_cbr320", sampleRate: 32000, channels: 2, ffmpegArgs: lame("-b:a", "320k")},
	{name: "mpeg1_44100_stereo_cbr320", sampleRate: 44100, channels: 2, ffmpegArgs: lame("-b:a", "320k")},
	{name: "mpeg1_48000_stereo_cbr320", sampleRate: 48000, channels: 2, ffmpegArgs: lame("-b:a", "320k")},
	{name: "mpeg1_44100_stereo_cbr128", sampleRate: 44100, channels: 2, ffmpegArgs: lame("-b:a", "128k")},
	{name: "mpeg1_44100_joint_vbr2", sampleRate: 44100, channels: 2, ffmpegArgs: lame("-q:a", "2", "-joint_stereo", "1")},
	{name: "mpeg1_44100_mono_cbr64", sampleRate: 44100, channels: 1, ffmpegArgs: lame("-b:a", "64k")},

	// MPEG-2 low sampling frequencies.
	{name: "mpeg2_16000_stereo_cbr64", sampleRate: 16000, channels: 2, ffmpegArgs: lame("-b:a", "64k")},
	{name: "mpeg2_22050_stereo_cbr160", sampleRate: 22050, channels: 2, ffmpegArgs: lame("-b:a", "160k")},
	{name: "mpeg2_24000_mono_cbr32", sampleRate: 24000, channels: 1, ffmpegArgs: lame("-b:a", "32k")},

	// MPEG-2.5.
	{name: "mpeg25_8000_mono_cbr16", sampleRate: 8000, channels: 1, ffmpegArgs: lame("-b:a", "16k")},
	{name: "mpeg25_11025_stereo_cbr32", sampleRate: 11025, channels: 2, ffmpegArgs: lame("-b:a", "32k")},
}

// Layer II through ffmpeg's native mp2 encoder.
var layer2Configs = []codecConfig{
	{name: "layer2_44100_stereo_192", sampleRate: 44100, channels: 2, layer12: true, ffmpegArgs: mp2("192k")},
	{name: "layer2_48000_mono_64", sampleRate: 48000, channels: 1, layer12: true, ffmpegArgs: mp2("64k")},
	{name: "layer2_32000_stereo_128", sampleRate: 32000, channels: 2, layer12: true, ffmpegArgs: mp2("128k")},
	{name: "layer2_24000_stereo_96", sampleRate: 24000, channels: 2, layer12: true, ffmpegArgs: mp2("96k")},
}

func lame(args ...string) []string {
	return append([]string{"-c:a", "libmp3lame", "-write_xing", "0", "-id3v2_version", "0"}, args...)
}

func mp2(bitrate string) []string {
	return []string{"-c:a", "mp2", "-b:a", bitrate, "-f", "mp2"}
}

func TestLayer3Decode(t *testing.T) {
	t.Parallel()

	for _, cfg := range layer3Configs {
		t.Run(cfg.name, func(t *testing.T) {
			t.Parallel()
			runSyntheticTest(t, cfg)
		})
	}
}

func TestLayer2Decode(t *testing.T) {
	t.Parallel()

	if !header.Layer12Enabled() {
		t.Skip("built without Layer I/II support")
	}

	for _, cfg := range layer2Configs {
		t.Run(cfg.name, func(t *testing.T) {
			t.Parallel()
			runSyntheticTest(t, cfg)
		})
	}
}

func runSyntheticTest(t *testing.T, cfg codecConfig) {
	t.Helper()

	requireFFmpeg(t)

	tmpDir := t.TempDir()

	srcPath := filepath.Join(tmpDir, "source.raw")
	if err := os.WriteFile(srcPath, generateChirp(cfg.sampleRate, cfg.channels, 2), 0o600); err != nil {
		t.Fatalf("write source: %v", err)
	}

	encPath := filepath.Join(tmpDir, "encoded.mp3")
	if err := ffmpegEncode(srcPath, encPath, cfg.sampleRate, cfg.channels, cfg.ffmpegArgs); err != nil {
		if strings.Contains(err.Error(), "Unknown encoder") ||
			strings.Contains(err.Error(), "Encoder not found") {
			t.Skipf("encoder not available: %v", err)
		}

		t.Fatalf("ffmpeg encode: %v", err)
	}

	sampleFmt := decoderRawFormat()

	ffmpegPCM, err := ffmpegDecode(encPath, sampleFmt, cfg.channels)
	if err != nil {
		t.Fatalf("ffmpeg decode: %v", err)
	}

	pcm, format, err := decodeFile(encPath)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	if format.SampleRate != cfg.sampleRate {
		t.Errorf("sample rate: got %d, want %d", format.SampleRate, cfg.sampleRate)
	}

	if int(format.Channels) != cfg.channels {
		t.Errorf("channels: got %d, want %d", format.Channels, cfg.channels)
	}

	// ffmpeg may drop or pad up to one frame at either end.
	maxLengthDiff := 1152 * cfg.channels * format.BitDepth.BytesPerSample()

	lengthDiff := len(pcm) - len(ffmpegPCM)
	if lengthDiff < 0 {
		lengthDiff = -lengthDiff
	}

	if lengthDiff > maxLengthDiff {
		t.Fatalf("length mismatch: ffmpeg=%d, mpadec=%d (diff=%d exceeds tolerance %d)",
			len(ffmpegPCM), len(pcm), lengthDiff, maxLengthDiff)
	}

	const tolerance = 2

	stats := compareLossy(ffmpegPCM, pcm, format.Float, tolerance)

	// Allow up to 1% of samples to have larger differences (codec edge cases).
	if stats.largeDiffs > stats.samples/100 {
		t.Errorf("lossy PCM mismatch: %d of %d samples differ by more than ±%d, max diff=%d",
			stats.largeDiffs, stats.samples, tolerance, stats.maxDiff)
	}

	t.Logf("max diff=%d, large diffs=%d", stats.maxDiff, stats.largeDiffs)
}
