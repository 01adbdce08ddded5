//go:build with_oto

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/hajimehoshi/oto/v2"

	"github.com/mycophonic/mpadec"
)

func play(ctx context.Context, src []byte) error {
	reader, err := newPCMReader(src)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	format := reader.Format()

	sampleFormat := oto.FormatSignedInt16LE
	if mpadec.SampleIsFloat {
		sampleFormat = oto.FormatFloat32LE
	}

	otoCtx, ready, err := oto.NewContext(format.SampleRate, int(format.Channels), sampleFormat)
	if err != nil {
		return fmt.Errorf("opening audio output: %w", err)
	}

	<-ready

	player := otoCtx.NewPlayer(reader)
	defer player.Close()

	player.Play()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for player.IsPlaying() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}

	return nil
}
