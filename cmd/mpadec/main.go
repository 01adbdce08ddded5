// Package main provides the mpadec CLI for decoding MPEG audio to WAV or raw PCM.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mycophonic/primordium/app"

	"github.com/mycophonic/mpadec/version"
)

func main() {
	ctx := context.Background()
	app.New(ctx, version.Name())

	appl := &cli.Command{
		Name:    version.Name(),
		Usage:   "MPEG audio decoding cli",
		Version: version.Long(),
		Commands: []*cli.Command{
			decodeCommand(),
			framesCommand(),
			playCommand(),
		},
	}

	if err := appl.Run(ctx, os.Args); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)

		os.Exit(1)
	}
}
