package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/mycophonic/mpadec/wav"
)

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "Decode MPEG audio to WAV (or raw PCM with --raw)",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "output file path (- for stdout)",
			},
			&cli.BoolFlag{
				Name:    "info",
				Aliases: []string{"i"},
				Usage:   "print format info and exit without decoding",
			},
			&cli.BoolFlag{
				Name:  "raw",
				Usage: "output raw PCM instead of WAV",
			},
		},
		Action: runDecode,
	}
}

func runDecode(_ context.Context, cmd *cli.Command) error {
	src, err := readInput(cmd)
	if err != nil {
		return err
	}

	reader, err := newPCMReader(src)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	format := reader.Format()

	if cmd.Bool("info") {
		_, _ = fmt.Fprintf(os.Stderr, "sample rate: %d Hz\n", format.SampleRate)
		_, _ = fmt.Fprintf(os.Stderr, "bit depth:   %d\n", format.BitDepth)
		_, _ = fmt.Fprintf(os.Stderr, "float:       %t\n", format.Float)
		_, _ = fmt.Fprintf(os.Stderr, "channels:    %d\n", format.Channels)

		return nil
	}

	out, closeOut, err := openOutput(cmd.String("output"))
	if err != nil {
		return err
	}
	defer closeOut()

	if cmd.Bool("raw") {
		if _, err := io.Copy(out, reader); err != nil {
			return fmt.Errorf("writing PCM: %w", err)
		}

		return nil
	}

	// The RIFF header carries the data size, so decode fully first.
	pcm, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("decoding: %w", err)
	}

	if err := wav.Encode(out, pcm, format); err != nil {
		return fmt.Errorf("writing WAV: %w", err)
	}

	return nil
}

func openOutput(output string) (io.Writer, func(), error) {
	if output == "-" {
		return os.Stdout, func() {}, nil
	}

	file, err := os.Create(output) //nolint:gosec // CLI tool creates user-specified output files
	if err != nil {
		return nil, nil, fmt.Errorf("creating output file: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}
