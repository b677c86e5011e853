package main

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/urfave/cli/v3"

	gpufft "github.com/cwbudde/algo-gpufft"
)

func benchCmd() *cli.Command {
	var (
		warmup int64
		iters  int64
	)

	return &cli.Command{
		Name:  "bench",
		Usage: "Time repeated launches",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:        "warmup",
				Usage:       "warmup iterations",
				Value:       10,
				Destination: &warmup,
			},
			&cli.Int64Flag{
				Name:        "iters",
				Usage:       "benchmark iterations",
				Value:       1000,
				Destination: &iters,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyBenchConfig(cmd, fileConfig.Bench, &warmup, &iters)
			if iters <= 0 || warmup < 0 {
				return cli.Exit("error: --iters must be positive and --warmup not negative", 1)
			}

			rt, err := openRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			w := cmd.Root().Writer
			_, _ = fmt.Fprintf(w, "device=%s iters=%d warmup=%d GOMAXPROCS=%d\n",
				rt.Device().Info().Name, iters, warmup, runtime.GOMAXPROCS(0))
			_, _ = fmt.Fprintf(w, "%14s  %12s\n", "placement", "ns/op")

			for _, p := range []gpufft.Placement{gpufft.PlacementInPlace, gpufft.PlacementNotInPlace} {
				ns, err := benchPlacement(ctx, rt, p, int(warmup), int(iters))
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				_, _ = fmt.Fprintf(w, "%14s  %12.1f\n", p, ns)
			}
			return nil
		},
	}
}

// refreshEvery bounds consecutive in-place launches on the same data. Each
// launch scales the samples by up to 16, so float32 stays finite for 8.
const refreshEvery = 8

// benchPlacement returns the mean wall time of one Execute call.
func benchPlacement(ctx context.Context, rt *gpufft.Runtime, p gpufft.Placement, warmup, iters int) (float64, error) {
	s, err := newSession(rt, p)
	if err != nil {
		return 0, err
	}
	defer func() { _ = s.close() }()

	if _, err := benchSession(ctx, s, warmup); err != nil {
		return 0, err
	}
	elapsed, err := benchSession(ctx, s, iters)
	if err != nil {
		return 0, err
	}
	return float64(elapsed.Nanoseconds()) / float64(iters), nil
}

// benchSession runs iters launches and returns the time spent in Execute.
// Input is re-uploaded outside the timed sections every refreshEvery
// launches.
func benchSession(ctx context.Context, s *session, iters int) (time.Duration, error) {
	samples := randomSamples(1)

	var elapsed time.Duration
	for done := 0; done < iters; {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		if err := s.upload(samples); err != nil {
			return 0, err
		}

		n := min(refreshEvery, iters-done)
		start := time.Now()
		for range n {
			if err := s.execute(); err != nil {
				return 0, err
			}
		}
		elapsed += time.Since(start)
		done += n
	}
	return elapsed, nil
}
