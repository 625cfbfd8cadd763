package tracescan

import (
	"context"
	"time"

	"github.com/gabapcia/tracewatch/internal/pkg/logger"
	"github.com/gabapcia/tracewatch/internal/pkg/validator"
)

// FollowRequest configures a Follow run.
type FollowRequest struct {
	WatchedAddress string        `validate:"required,eth_addr"`
	FromBlock      uint64        // first block to scan, ignored when FromLatest is set
	FromLatest     bool          // start at the chain head observed when Follow starts
	PollInterval   time.Duration `validate:"gt=0"`
}

// Follow scans blocks as the chain grows. It polls the source for the latest
// block number every PollInterval and scans every block it has not seen yet,
// in chunks no larger than the configured block range limit.
//
// Follow returns nil once ctx is canceled. Any fetch or notification error
// stops it and is returned.
func (s *service) Follow(ctx context.Context, req FollowRequest) error {
	if err := validator.Validate(req); err != nil {
		return err
	}

	next := req.FromBlock
	if req.FromLatest {
		latest, err := s.LatestBlockNumber(ctx)
		if err != nil {
			return stopped(ctx, err)
		}
		next = latest
	}

	ctx = logger.Derive(ctx, "watched.address", req.WatchedAddress)
	logger.Info(ctx, "following chain head", "block.from", next, "poll.interval", req.PollInterval.String())

	ticker := time.NewTicker(req.PollInterval)
	defer ticker.Stop()

	for {
		latest, err := s.LatestBlockNumber(ctx)
		if err != nil {
			return stopped(ctx, err)
		}

		for next <= latest {
			to := latest
			if latest-next >= s.maxBlockRange {
				to = next + s.maxBlockRange - 1
			}

			if _, err := s.ScanBlocks(ctx, ScanRequest{
				WatchedAddress: req.WatchedAddress,
				FromBlock:      next,
				ToBlock:        to,
			}); err != nil {
				return stopped(ctx, err)
			}

			next = to + 1
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// stopped hides errors caused by the caller canceling ctx.
func stopped(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return nil
	}
	return err
}
