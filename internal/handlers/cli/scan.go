package cli

import (
	"context"

	"github.com/gabapcia/tracewatch/internal/tracescan"

	"github.com/urfave/cli/v3"
)

// scanCommand returns the command that fetches block traces from the node and
// reports the transfers sent by the watched address.
//
// Usage example:
//
//	tracewatch scan --block 19000000 --to latest --address 0x47ce...2936
func scanCommand(svc tracescan.Service, defaultAddress string) *cli.Command {
	return &cli.Command{
		Name:        "scan",
		Description: "Trace blocks with the node call tracer and list every transfer sent by the watched address.",
		Usage:       "Scans a block or an inclusive block range. Blocks accept a number, a hex number or \"latest\".",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "block",
				Usage:    "Block to scan, or first block of the range",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "to",
				Usage: "Last block of the range (defaults to --block)",
			},
			&cli.StringFlag{
				Name:      "address",
				Usage:     "Watched address",
				Value:     defaultAddress,
				Validator: validateAddress,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			from, err := parseBlockRef(c.String("block"))
			if err != nil {
				return err
			}

			to := from
			if c.IsSet("to") {
				if to, err = parseBlockRef(c.String("to")); err != nil {
					return err
				}
			}

			resolver := &blockResolver{latest: svc.LatestBlockNumber}

			fromBlock, err := resolver.resolve(ctx, from)
			if err != nil {
				return err
			}

			toBlock, err := resolver.resolve(ctx, to)
			if err != nil {
				return err
			}

			_, err = svc.ScanBlocks(ctx, tracescan.ScanRequest{
				WatchedAddress: c.String("address"),
				FromBlock:      fromBlock,
				ToBlock:        toBlock,
			})
			return err
		},
	}
}
