package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	gpufft "github.com/cwbudde/algo-gpufft"
)

func runCmd() *cli.Command {
	var (
		inputPath  string
		seed       int64
		notInPlace bool
		format     string
		magnitude  bool
		trace      bool
	)

	return &cli.Command{
		Name:  "run",
		Usage: "Transform 16 samples and print the spectrum",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "input",
				Aliases:     []string{"i"},
				Usage:       `JSON sample file {"samples":[[re,im],...]} ("-" for stdin); random when empty`,
				Destination: &inputPath,
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "seed for random samples",
				Value:       1,
				Destination: &seed,
			},
			&cli.BoolFlag{
				Name:        "not-in-place",
				Usage:       "write the spectrum to a separate output buffer",
				Destination: &notInPlace,
			},
			&cli.StringFlag{
				Name:        "format",
				Aliases:     []string{"f"},
				Usage:       "output format (json, table)",
				Value:       "json",
				Destination: &format,
			},
			&cli.BoolFlag{
				Name:        "magnitude",
				Aliases:     []string{"m"},
				Usage:       "include bin magnitudes",
				Destination: &magnitude,
			},
			&cli.BoolFlag{
				Name:        "trace",
				Usage:       "include the launch geometry",
				Destination: &trace,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			samples, err := loadSamples(inputPath, seed)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			rt, err := openRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			placement := gpufft.PlacementInPlace
			if notInPlace {
				placement = gpufft.PlacementNotInPlace
			}
			s, err := newSession(rt, placement)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			defer func() { _ = s.close() }()

			spectrum, err := s.transform(samples)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v (status %s)", err, gpufft.StatusOf(err)), 1)
			}

			res := runResult{
				Plan:      s.plan.ID(),
				Placement: placement.String(),
				Input:     toPairs(samples),
				Spectrum:  toPairs(spectrum),
			}
			if magnitude {
				res.Magnitude = gpufft.Magnitude(spectrum)
			}
			if trace {
				res.Trace = newTraceJSON(s.trace)
			}

			w := cmd.Root().Writer
			switch format {
			case "json":
				return writeResult(w, res)
			case "table":
				writeTable(w, res)
				return nil
			default:
				return cli.Exit(fmt.Sprintf("error: unknown format %q", format), 1)
			}
		},
	}
}

func loadSamples(path string, seed int64) ([]complex64, error) {
	switch path {
	case "":
		return randomSamples(seed), nil
	case "-":
		return readSamples(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return readSamples(f)
}

func writeTable(w io.Writer, res runResult) {
	_, _ = fmt.Fprintf(w, "plan %s (%s)\n", res.Plan, res.Placement)
	if res.Magnitude != nil {
		_, _ = fmt.Fprintf(w, "%4s  %12s  %12s  %12s\n", "bin", "re", "im", "|X|")
	} else {
		_, _ = fmt.Fprintf(w, "%4s  %12s  %12s\n", "bin", "re", "im")
	}
	for k, v := range res.Spectrum {
		if res.Magnitude != nil {
			_, _ = fmt.Fprintf(w, "%4d  %12.6f  %12.6f  %12.6f\n", k, v[0], v[1], res.Magnitude[k])
		} else {
			_, _ = fmt.Fprintf(w, "%4d  %12.6f  %12.6f\n", k, v[0], v[1])
		}
	}
	if t := res.Trace; t != nil {
		_, _ = fmt.Fprintf(w, "grid=%v block=%v shared=%dB twiddles=%dB in-place=%t\n",
			t.Grid, t.Block, t.SharedBytes, t.TwiddleBytes, t.InPlace)
	}
}
