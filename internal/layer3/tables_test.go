package layer3

import (
	"testing"

	"github.com/mycophonic/mpadec/header"
)

// Scale factor band widths per sample rate (ISO/IEC 11172-3 table B.8,
// ISO/IEC 13818-3 table B.2 and the MPEG-2.5 extension).
func TestBandWidths(t *testing.T) {
	t.Parallel()

	lsfLong := []int{6, 6, 6, 6, 6, 6, 8, 10, 12, 14, 16, 20, 24, 28, 32, 38, 46, 52, 60, 68, 58, 54}
	short16k := []int{4, 4, 4, 6, 8, 10, 12, 14, 18, 24, 30, 40, 18}

	cases := []struct {
		name    string
		version header.Version
		index   uint8
		long    []int
		short   []int
	}{
		{
			"44100", header.MPEG1, 0,
			[]int{4, 4, 4, 4, 4, 4, 6, 6, 8, 8, 10, 12, 16, 20, 24, 28, 34, 42, 50, 54, 76, 158},
			[]int{4, 4, 4, 4, 6, 8, 10, 12, 14, 18, 22, 30, 56},
		},
		{
			"48000", header.MPEG1, 1,
			[]int{4, 4, 4, 4, 4, 4, 6, 6, 6, 8, 10, 12, 16, 18, 22, 28, 34, 40, 46, 54, 54, 192},
			[]int{4, 4, 4, 4, 6, 6, 10, 12, 14, 16, 20, 26, 66},
		},
		{
			"32000", header.MPEG1, 2,
			[]int{4, 4, 4, 4, 4, 4, 6, 6, 8, 10, 12, 16, 20, 24, 30, 38, 46, 56, 68, 84, 102, 26},
			[]int{4, 4, 4, 4, 6, 8, 12, 16, 20, 26, 34, 42, 12},
		},
		{"22050", header.MPEG2, 0, lsfLong, []int{4, 4, 4, 6, 6, 8, 10, 14, 18, 26, 32, 42, 18}},
		{
			"24000", header.MPEG2, 1,
			[]int{6, 6, 6, 6, 6, 6, 8, 10, 12, 14, 16, 18, 22, 26, 32, 38, 46, 54, 62, 70, 76, 36},
			[]int{4, 4, 4, 6, 8, 10, 12, 14, 18, 24, 32, 44, 12},
		},
		{"16000", header.MPEG2, 2, lsfLong, short16k},
		{"11025", header.MPEG25, 0, lsfLong, short16k},
		{"12000", header.MPEG25, 1, lsfLong, short16k},
		{
			"8000", header.MPEG25, 2,
			[]int{12, 12, 12, 12, 12, 12, 16, 20, 24, 28, 32, 40, 48, 56, 64, 76, 90, 2, 2, 2, 2, 2},
			[]int{8, 8, 8, 12, 16, 20, 24, 28, 36, 2, 2, 2, 26},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			bt := bandsFor(header.Header{Version: tc.version, Layer: header.Layer3, SampleRateIndex: tc.index})

			for sfb, want := range tc.long {
				if got := bt.long[sfb+1] - bt.long[sfb]; got != want {
					t.Fatalf("long band %d is %d lines wide, want %d (%v)", sfb, got, want, bt.long)
				}
			}

			for sfb, want := range tc.short {
				if got := bt.short[sfb+1] - bt.short[sfb]; got != want {
					t.Fatalf("short band %d is %d lines wide, want %d (%v)", sfb, got, want, bt.short)
				}
			}

			if bt.long[0] != 0 || bt.short[0] != 0 {
				t.Fatal("tables must start at line 0")
			}
		})
	}
}

func TestMixedSubbands(t *testing.T) {
	t.Parallel()

	for v := range bands {
		for sr := range bands[v] {
			want := 2
			if v == 2 && sr == 2 {
				want = 4
			}

			if got := bands[v][sr].mixedSubbands(); got != want {
				t.Errorf("bands[%d][%d]: %d long subbands in mixed blocks, want %d", v, sr, got, want)
			}
		}
	}
}
