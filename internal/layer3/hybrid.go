package layer3

import "github.com/mycophonic/mpadec/internal/synth"

// antialias applies the butterflies across subband boundaries. Pure short
// blocks are left alone; mixed blocks only get the boundaries between their
// long subbands.
func antialias(xr *[granuleLines]float32, g *granuleInfo, bt *bandTable) {
	if g.pureShort() {
		return
	}

	limit := subbands
	if g.shortBlocks() {
		limit = bt.mixedSubbands()
	}

	for sb := 1; sb < limit; sb++ {
		for i := range 8 {
			lo := subbandLines*sb - 1 - i
			hi := subbandLines*sb + i
			a, b := xr[lo], xr[hi]
			xr[lo] = a*aliasCS[i] - b*aliasCA[i]
			xr[hi] = b*aliasCS[i] + a*aliasCA[i]
		}
	}
}

// hybrid runs the IMDCT of every subband with overlap-add, then inverts the
// odd samples of odd subbands so the polyphase filterbank sees baseband input.
func hybrid(xr *[granuleLines]float32, g *granuleInfo, bt *bandTable, overlap *[subbands][subbandLines]float32) {
	blockType := synth.BlockNormal
	if g.windowSwitching {
		blockType = g.blockType
	}

	long := 0
	if g.shortBlocks() && g.mixed {
		long = bt.mixedSubbands()
	}

	for sb := range subbands {
		kind := blockType
		if sb < long {
			kind = synth.BlockNormal
		}

		synth.Hybrid((*[subbandLines]float32)(xr[sb*subbandLines:]), kind, &overlap[sb])
	}

	for sb := 1; sb < subbands; sb += 2 {
		for i := 1; i < subbandLines; i += 2 {
			xr[sb*subbandLines+i] = -xr[sb*subbandLines+i]
		}
	}
}
