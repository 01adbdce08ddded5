package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"

	"github.com/mycophonic/mpadec/mp3"
)

func framesCommand() *cli.Command {
	return &cli.Command{
		Name:      "frames",
		Usage:     "List the frames and tags of MPEG audio without decoding",
		ArgsUsage: "<file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "summary",
				Aliases: []string{"s"},
				Usage:   "print totals only",
			},
		},
		Action: runFrames,
	}
}

func runFrames(_ context.Context, cmd *cli.Command) error {
	src, err := readInput(cmd)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	summary := cmd.Bool("summary")

	if !summary {
		_, _ = fmt.Fprintln(tw, "OFFSET\tKIND\tLENGTH\tSAMPLES\tFORMAT")
	}

	var audio, other, samples, rate int

	dec := mp3.NewDecoder(src)

	for {
		frame, err := dec.Peek()
		if err != nil {
			break
		}

		if frame.Kind() == mp3.Audio {
			audio++
			samples += frame.SampleCount()
			rate = frame.SampleRate()
		} else {
			other++
		}

		if !summary {
			description := ""
			if frame.Kind() == mp3.Audio {
				description = frame.Header().String()
			}

			if frame.Truncated() {
				description += " (truncated)"
			}

			_, _ = fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%s\n",
				frame.Offset(), frame.Kind(), frame.ByteLength(), frame.SampleCount(), description)
		}

		if err := dec.Skip(); err != nil {
			break
		}
	}

	_, _ = fmt.Fprintf(tw, "%d audio frames, %d other, %d samples per channel", audio, other, samples)

	if rate > 0 {
		_, _ = fmt.Fprintf(tw, " (%.3fs)", float64(samples)/float64(rate))
	}

	_, _ = fmt.Fprintln(tw)

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("writing frame list: %w", err)
	}

	return nil
}
