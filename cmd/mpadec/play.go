package main

import (
	"context"

	"github.com/urfave/cli/v3"
)

func playCommand() *cli.Command {
	return &cli.Command{
		Name:      "play",
		Usage:     "Play MPEG audio on the default output device (requires the with_oto build tag)",
		ArgsUsage: "<file>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			src, err := readInput(cmd)
			if err != nil {
				return err
			}

			return play(ctx, src)
		},
	}
}
