//go:build without_mp12

package mp3

import (
	"github.com/mycophonic/mpadec"
	"github.com/mycophonic/mpadec/header"
	"github.com/mycophonic/mpadec/internal/synth"
)

// layer12Disabled stands in for the Layer I and II decoder. header.Parse
// rejects those layers in this build, so it is never reached.
type layer12Disabled struct{}

func (layer12Disabled) Decode(_ header.Header, _ []byte, pcm []mpadec.Sample) bool {
	clear(pcm)

	return false
}

func (layer12Disabled) Feed(header.Header, []byte) {}

func newLayer12(*synth.Bank) frameDecoder {
	return layer12Disabled{}
}
