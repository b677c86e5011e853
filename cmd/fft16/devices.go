package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/cwbudde/algo-gpufft/device"
)

func devicesCmd() *cli.Command {
	return &cli.Command{
		Name:    "devices",
		Aliases: []string{"ls"},
		Usage:   "List the registered backend and its devices",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			w := cmd.Root().Writer

			info, ok := device.CurrentBackendInfo()
			if !ok {
				return cli.Exit("error: no backend registered", 1)
			}
			_, _ = fmt.Fprintf(w, "backend: %s %s (%s)\n", info.Name, info.Version, info.Description)

			devs, err := device.Devices()
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			for i, d := range devs {
				_, _ = fmt.Fprintf(w, "  [%d] %-10s vendor=%s driver=%s memory=%dMB max-lanes=%d cpu=%s\n",
					i, d.Name, d.Vendor, d.Driver, d.MemoryMB, d.MaxBlockLanes, d.ComputeCap)
			}
			return nil
		},
	}
}
