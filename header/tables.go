package header

const (
	bitrateIndexReserved    = 15
	sampleRateIndexReserved = 3
)

// bitrates in kbit/s, indexed [lsf][layer-1][bitrate index].
//
//nolint:gochecknoglobals
var bitrates = [2][3][15]uint16{
	{
		{0, 32, 64, 96, 128, 160, 192, 224, 256, 288, 320, 352, 384, 416, 448},
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320, 384},
		{0, 32, 40, 48, 56, 64, 80, 96, 112, 128, 160, 192, 224, 256, 320},
	},
	{
		{0, 32, 48, 56, 64, 80, 96, 112, 128, 144, 160, 176, 192, 224, 256},
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
		{0, 8, 16, 24, 32, 40, 48, 56, 64, 80, 96, 112, 128, 144, 160},
	},
}

// sampleRates in Hz, indexed [version][sample rate index].
//
//nolint:gochecknoglobals
var sampleRates = [4][3]uint32{
	MPEG25:          {11025, 12000, 8000},
	versionReserved: {},
	MPEG2:           {22050, 24000, 16000},
	MPEG1:           {44100, 48000, 32000},
}
