package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gabapcia/tracewatch/internal/pkg/types"
)

// LatestBlockNumber implements tracescan.TraceSource using eth_blockNumber.
func (c *client) LatestBlockNumber(ctx context.Context) (uint64, error) {
	data, err := c.conn.Fetch(ctx, "eth_blockNumber")
	if err != nil {
		return 0, fmt.Errorf("fetch latest block number: %w", err)
	}

	var blockNumber types.Hex
	if err := json.Unmarshal(data, &blockNumber); err != nil {
		return 0, fmt.Errorf("decode latest block number: %w", err)
	}

	return blockNumber.Uint64()
}
