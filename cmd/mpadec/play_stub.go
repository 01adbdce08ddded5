//go:build !with_oto

package main

import (
	"context"
	"errors"
)

var errPlaybackNotSupported = errors.New("playback not supported (build with -tags=with_oto)")

func play(context.Context, []byte) error {
	return errPlaybackNotSupported
}
