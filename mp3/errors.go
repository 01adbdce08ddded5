package mp3

import "errors"

// ErrNoFrames is returned by Decode when the input holds no decodable audio frame.
var ErrNoFrames = errors.New("mp3: no audio frames found")
