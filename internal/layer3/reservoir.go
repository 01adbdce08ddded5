package layer3

const (
	// maxHistory is the furthest main_data_begin can reach back.
	maxHistory = 511
	// maxFrameData bounds the main data of one frame.
	maxFrameData = 2048
)

// reservoir keeps the tail of previous frames' main data so a frame can
// borrow from it (the bit reservoir).
type reservoir struct {
	history [maxHistory]byte
	size    int
	buf     [maxHistory + maxFrameData]byte
}

func (r *reservoir) reset() {
	r.size = 0
}

// assemble returns the main data of a frame: the last begin bytes of history
// followed by data. ok is false when history holds fewer than begin bytes.
func (r *reservoir) assemble(begin int, data []byte) ([]byte, bool) {
	data = data[:min(len(data), maxFrameData)]

	if begin > r.size {
		return nil, false
	}

	n := copy(r.buf[:], r.history[r.size-begin:r.size])
	n += copy(r.buf[n:], data)

	return r.buf[:n], true
}

// commit appends data to history, keeping the last maxHistory bytes.
func (r *reservoir) commit(data []byte) {
	if len(data) >= maxHistory {
		r.size = copy(r.history[:], data[len(data)-maxHistory:])

		return
	}

	keep := min(r.size, maxHistory-len(data))
	copy(r.history[:keep], r.history[r.size-keep:r.size])
	r.size = keep + copy(r.history[keep:], data)
}
