//go:build !without_mp12

package mp3

import (
	"github.com/mycophonic/mpadec/internal/layer12"
	"github.com/mycophonic/mpadec/internal/synth"
)

func newLayer12(bank *synth.Bank) frameDecoder {
	return layer12.New(bank)
}
