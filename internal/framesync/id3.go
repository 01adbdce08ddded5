package framesync

const (
	id3v2HeaderSize = 10
	id3v2FooterFlag = 0x10
	id3v1Size       = 128
)

// id3v2Length returns the total length of an ID3v2 tag starting at buf[0],
// or 0 if buf does not start with a well-formed tag header.
func id3v2Length(buf []byte) int {
	if len(buf) < id3v2HeaderSize {
		return 0
	}

	if buf[0] != 'I' || buf[1] != 'D' || buf[2] != '3' || buf[3] == 0xFF || buf[4] == 0xFF {
		return 0
	}

	size := 0

	for _, b := range buf[6:10] {
		if b >= 0x80 {
			return 0
		}

		size = size<<7 | int(b)
	}

	size += id3v2HeaderSize
	if buf[5]&id3v2FooterFlag != 0 {
		size += id3v2HeaderSize
	}

	return size
}

// isID3v1 reports whether buf is exactly an ID3v1 trailer.
func isID3v1(buf []byte) bool {
	return len(buf) == id3v1Size && buf[0] == 'T' && buf[1] == 'A' && buf[2] == 'G'
}

// isTag reports whether a tag starts at buf[0].
func isTag(buf []byte) bool {
	return id3v2Length(buf) > 0 || isID3v1(buf)
}
