package main

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/urfave/cli/v3"

	gpufft "github.com/cwbudde/algo-gpufft"
	"github.com/cwbudde/algo-gpufft/internal/reference"
)

func verifyCmd() *cli.Command {
	var (
		trials    int64
		tolerance float64
		seed      int64
	)

	return &cli.Command{
		Name:  "verify",
		Usage: "Compare random transforms against a float64 direct DFT",
		Flags: []cli.Flag{
			&cli.Int64Flag{
				Name:        "trials",
				Aliases:     []string{"n"},
				Usage:       "number of random inputs",
				Value:       100,
				Destination: &trials,
			},
			&cli.Float64Flag{
				Name:        "tolerance",
				Usage:       "maximum allowed absolute error",
				Value:       1e-4,
				Destination: &tolerance,
			},
			&cli.Int64Flag{
				Name:        "seed",
				Usage:       "rng seed",
				Value:       1,
				Destination: &seed,
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			applyVerifyConfig(cmd, fileConfig.Verify, &trials, &tolerance, &seed)
			if trials <= 0 {
				return cli.Exit("error: --trials must be positive", 1)
			}

			rt, err := openRuntime()
			if err != nil {
				return err
			}
			defer func() { _ = rt.Close() }()

			worst, err := verifyTrials(rt, int(trials), seed)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			w := cmd.Root().Writer
			_, _ = fmt.Fprintf(w, "trials=%d max_abs_error=%.3g tolerance=%.3g\n", trials, worst, tolerance)
			if worst > tolerance {
				return cli.Exit("FAIL", 1)
			}
			_, _ = fmt.Fprintln(w, "OK")
			return nil
		},
	}
}

// verifyTrials runs trials random inputs, alternating placement, and returns
// the largest absolute error seen.
func verifyTrials(rt *gpufft.Runtime, trials int, seed int64) (float64, error) {
	sessions := make(map[gpufft.Placement]*session, 2)
	defer func() {
		for _, s := range sessions {
			_ = s.close()
		}
	}()
	for _, p := range []gpufft.Placement{gpufft.PlacementInPlace, gpufft.PlacementNotInPlace} {
		s, err := newSession(rt, p)
		if err != nil {
			return 0, err
		}
		sessions[p] = s
	}

	rng := rand.New(rand.NewSource(seed))
	samples := make([]complex64, gpufft.FFTLength)

	var worst float64
	for trial := range trials {
		for i := range samples {
			samples[i] = complex(rng.Float32()*2-1, rng.Float32()*2-1)
		}
		placement := gpufft.PlacementInPlace
		if trial%2 == 1 {
			placement = gpufft.PlacementNotInPlace
		}
		got, err := sessions[placement].transform(samples)
		if err != nil {
			return 0, fmt.Errorf("trial %d: %w", trial, err)
		}
		worst = max(worst, reference.MaxAbsError(got, reference.NaiveDFT128(widen(samples))))
	}
	return worst, nil
}

func widen(v []complex64) []complex128 {
	out := make([]complex128, len(v))
	for i, x := range v {
		out[i] = complex128(x)
	}
	return out
}
