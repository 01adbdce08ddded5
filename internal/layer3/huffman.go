package layer3

import "github.com/mycophonic/mpadec/internal/bitstream"

// maxCodeLength bounds a tree walk; no code word is longer.
const maxCodeLength = 32

// decodePair reads one Huffman code word of a big-values table, including
// linbits and sign bits. ok is false for an invalid code.
func decodePair(r *bitstream.Reader, table int) (x, y int, ok bool) {
	t := &huffTables[table]
	if len(t.tree) == 0 {
		return 0, 0, true
	}

	x, y, ok = walk(r, t.tree)
	if !ok {
		return 0, 0, false
	}

	if t.linbits != 0 && x == 15 {
		x += int(r.Read(uint(t.linbits)))
	}

	if x != 0 && r.ReadFlag() {
		x = -x
	}

	if t.linbits != 0 && y == 15 {
		y += int(r.Read(uint(t.linbits)))
	}

	if y != 0 && r.ReadFlag() {
		y = -y
	}

	return x, y, true
}

// decodeQuad reads one count1 code word and its sign bits.
func decodeQuad(r *bitstream.Reader, table int, out *[4]int) bool {
	_, code, ok := walk(r, huffTables[32+table].tree)
	if !ok {
		return false
	}

	for i := range 4 {
		v := code >> (3 - i) & 1
		if v != 0 && r.ReadFlag() {
			v = -v
		}

		out[i] = v
	}

	return true
}

func walk(r *bitstream.Reader, tree []uint16) (x, y int, ok bool) {
	point := 0

	for range maxCodeLength {
		node := tree[point]
		if node&0xFF00 == 0 {
			return int(node >> 4 & 0xF), int(node & 0xF), true
		}

		point = branch(tree, point, r.ReadFlag())
		if point >= len(tree) {
			return 0, 0, false
		}
	}

	return 0, 0, false
}

// branch returns the node reached from point on a 0 (false) or 1 (true) bit.
// Offsets of 250 and above chain through intermediate nodes.
func branch(tree []uint16, point int, one bool) int {
	shift := 8
	if one {
		shift = 0
	}

	for point < len(tree) {
		offset := int(tree[point] >> shift & 0xFF)
		point += offset

		if offset < 250 {
			break
		}
	}

	return point
}

// readSpectrum Huffman-decodes the quantized lines of one granule and channel
// into xr, stopping at end (an absolute bit position in r). It returns the
// number of lines that may be non-zero and whether the data was complete.
func readSpectrum(r *bitstream.Reader, g *granuleInfo, end int, xr *[granuleLines]float32) (int, bool) {
	complete := true
	pos := 0

	for ; pos < g.bigValues*2; pos += 2 {
		table := g.tableSelect[2]

		switch {
		case pos < g.region1Start:
			table = g.tableSelect[0]
		case pos < g.region2Start:
			table = g.tableSelect[1]
		}

		x, y, ok := decodePair(r, table)
		if !ok || r.Position() > end {
			complete = false

			break
		}

		xr[pos] = float32(x)
		xr[pos+1] = float32(y)
	}

	if complete {
		var quad [4]int

		for pos+4 <= granuleLines && r.Position() < end {
			if !decodeQuad(r, g.count1Table, &quad) {
				complete = false

				break
			}

			// A quad straddling the end of part 3 belongs to stuffing.
			if r.Position() > end {
				break
			}

			for i, v := range quad {
				xr[pos+i] = float32(v)
			}

			pos += 4
		}
	}

	if r.Overrun() {
		complete = false
	}

	for i := pos; i < granuleLines; i++ {
		xr[i] = 0
	}

	return pos, complete
}
