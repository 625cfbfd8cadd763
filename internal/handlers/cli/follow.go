package cli

import (
	"context"
	"time"

	"github.com/gabapcia/tracewatch/internal/tracescan"

	"github.com/urfave/cli/v3"
)

// defaultPollInterval is roughly one mainnet slot.
const defaultPollInterval = 12 * time.Second

// followCommand returns the command that keeps scanning new blocks until the
// process is interrupted.
//
// Usage example:
//
//	tracewatch follow --from latest --interval 12s
func followCommand(svc tracescan.Service, defaultAddress string) *cli.Command {
	return &cli.Command{
		Name:        "follow",
		Description: "Poll the node for new blocks and report every transfer sent by the watched address as blocks arrive.",
		Usage:       "Runs until interrupted. --from accepts a number, a hex number or \"latest\".",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "from",
				Usage: "First block to scan",
				Value: "latest",
			},
			&cli.DurationFlag{
				Name:  "interval",
				Usage: "How often to poll for the latest block",
				Value: defaultPollInterval,
			},
			&cli.StringFlag{
				Name:      "address",
				Usage:     "Watched address",
				Value:     defaultAddress,
				Validator: validateAddress,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			from, err := parseBlockRef(c.String("from"))
			if err != nil {
				return err
			}

			return svc.Follow(ctx, tracescan.FollowRequest{
				WatchedAddress: c.String("address"),
				FromBlock:      from.number,
				FromLatest:     from.latest,
				PollInterval:   c.Duration("interval"),
			})
		},
	}
}
