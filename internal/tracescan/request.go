package tracescan

import (
	"errors"
	"fmt"

	"github.com/gabapcia/tracewatch/internal/pkg/validator"
)

// ErrRangeTooLarge is returned when a request spans more blocks than the
// service is configured to scan at once.
var ErrRangeTooLarge = errors.New("block range too large")

// ScanRequest selects the blocks to scan and the address to look for.
type ScanRequest struct {
	WatchedAddress string `validate:"required,eth_addr"`
	FromBlock      uint64
	ToBlock        uint64 `validate:"gtefield=FromBlock"` // inclusive
}

// blockCount returns the number of blocks in the inclusive range.
func (r ScanRequest) blockCount() uint64 {
	return r.ToBlock - r.FromBlock + 1
}

func (r ScanRequest) validate(maxBlockRange uint64) error {
	if err := validator.Validate(r); err != nil {
		return err
	}

	// Compared on the span to stay clear of overflow for the full uint64 range.
	if r.ToBlock-r.FromBlock >= maxBlockRange {
		return fmt.Errorf("%w: blocks %d to %d exceed the limit of %d", ErrRangeTooLarge, r.FromBlock, r.ToBlock, maxBlockRange)
	}

	return nil
}
