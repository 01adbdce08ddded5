package layer3

import (
	"github.com/mycophonic/mpadec/header"
	"github.com/mycophonic/mpadec/internal/bitstream"
)

const maxBigValues = 288

// granuleInfo is the side information of one granule of one channel.
type granuleInfo struct {
	part23Length     int
	bigValues        int
	globalGain       int
	scalefacCompress int
	windowSwitching  bool
	blockType        int
	mixed            bool
	tableSelect      [3]int
	subblockGain     [3]int
	region1Start     int
	region2Start     int
	preflag          bool
	scalefacScale    bool
	count1Table      int
	// malformed marks a granule whose side information cannot be decoded.
	malformed bool
}

func (g *granuleInfo) shortBlocks() bool {
	return g.windowSwitching && g.blockType == 2
}

func (g *granuleInfo) pureShort() bool {
	return g.shortBlocks() && !g.mixed
}

// sideInfo is the Layer III side information of a frame, indexed [granule][channel].
type sideInfo struct {
	mainDataBegin int
	scfsi         [2][4]bool
	gr            [2][2]granuleInfo
}

func (si *sideInfo) read(r *bitstream.Reader, hdr header.Header, bt *bandTable) {
	nch := hdr.Channels()
	lsf := hdr.LSF()

	*si = sideInfo{}

	if lsf {
		si.mainDataBegin = int(r.Read(8))
		r.Skip(nch) // private bits
	} else {
		si.mainDataBegin = int(r.Read(9))

		if nch == 1 {
			r.Skip(5)
		} else {
			r.Skip(3)
		}

		for ch := range nch {
			for band := range 4 {
				si.scfsi[ch][band] = r.ReadFlag()
			}
		}
	}

	compressBits := uint(4)
	if lsf {
		compressBits = 9
	}

	for gr := range hdr.Granules() {
		for ch := range nch {
			g := &si.gr[gr][ch]
			g.part23Length = int(r.Read(12))
			g.bigValues = min(int(r.Read(9)), maxBigValues)
			g.globalGain = int(r.Read(8))
			g.scalefacCompress = int(r.Read(compressBits))
			g.windowSwitching = r.ReadFlag()

			if g.windowSwitching {
				g.blockType = int(r.Read(2))
				g.mixed = r.ReadFlag()

				for i := range 2 {
					g.tableSelect[i] = int(r.Read(5))
				}

				for w := range 3 {
					g.subblockGain[w] = int(r.Read(3))
				}

				// Block type 0 cannot be signalled with window switching.
				g.malformed = g.blockType == 0

				if g.shortBlocks() {
					g.region1Start = 3 * bt.short[3]
				} else {
					g.region1Start = bt.long[8]
				}

				g.region2Start = granuleLines
			} else {
				for i := range 3 {
					g.tableSelect[i] = int(r.Read(5))
				}

				region0 := int(r.Read(4))
				region1 := int(r.Read(3))

				g.region1Start = bt.long[min(region0+1, longBands)]
				g.region2Start = bt.long[min(region0+region1+2, longBands)]
			}

			if !lsf {
				g.preflag = r.ReadFlag()
			}

			g.scalefacScale = r.ReadFlag()
			g.count1Table = int(r.Read(1))
		}
	}
}
