package header

import "errors"

var (
	// ErrNoSync is returned when the word does not start with the 11-bit frame sync.
	ErrNoSync = errors.New("header: no frame sync")
	// ErrReservedVersion is returned for the reserved version code.
	ErrReservedVersion = errors.New("header: reserved version")
	// ErrReservedLayer is returned for the reserved layer code.
	ErrReservedLayer = errors.New("header: reserved layer")
	// ErrReservedBitrate is returned for bitrate index 15.
	ErrReservedBitrate = errors.New("header: reserved bitrate index")
	// ErrReservedSampleRate is returned for sample rate index 3.
	ErrReservedSampleRate = errors.New("header: reserved sample rate index")
	// ErrLayerDisabled is returned for Layer I and II when built without their support.
	ErrLayerDisabled = errors.New("header: layer support not compiled in")
	// ErrShortBuffer is returned when fewer than four bytes are available.
	ErrShortBuffer = errors.New("header: buffer too short")
)
