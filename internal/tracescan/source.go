package tracescan

import (
	"context"
	"errors"

	"github.com/gabapcia/tracewatch/internal/transfertrace"
)

// ErrFetchFailed wraps any error returned by a TraceSource. It aborts the
// whole scan request since a block without traces cannot be reported.
var ErrFetchFailed = errors.New("failed to fetch block traces")

// TraceSource provides the execution traces of a block.
type TraceSource interface {
	// TraceBlock returns one trace per transaction of the block, in block
	// order. Per-transaction problems are reported on the trace itself
	// (DecodeErr); an error means the block could not be traced at all.
	TraceBlock(ctx context.Context, blockNumber uint64) ([]transfertrace.TransactionTrace, error)

	// LatestBlockNumber returns the number of the most recent block.
	LatestBlockNumber(ctx context.Context) (uint64, error)
}
