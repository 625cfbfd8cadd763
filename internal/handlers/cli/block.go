package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/tracewatch/internal/pkg/types"
	"github.com/gabapcia/tracewatch/internal/pkg/validator"
)

// ErrInvalidBlock is returned for a block flag that is neither "latest" nor a number.
var ErrInvalidBlock = errors.New("invalid block: expected a number, a 0x-prefixed hex number or \"latest\"")

const latestBlock = "latest"

// blockRef is a parsed block flag.
type blockRef struct {
	latest bool
	number uint64
}

// parseBlockRef accepts "latest", a decimal number or a 0x-prefixed hex number.
func parseBlockRef(s string) (blockRef, error) {
	s = strings.TrimSpace(s)

	if strings.EqualFold(s, latestBlock) {
		return blockRef{latest: true}, nil
	}

	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		n, err := types.Hex(s).Uint64()
		if err != nil {
			return blockRef{}, fmt.Errorf("%w: %q: %w", ErrInvalidBlock, s, err)
		}
		return blockRef{number: n}, nil
	}

	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return blockRef{}, fmt.Errorf("%w: %q", ErrInvalidBlock, s)
	}
	return blockRef{number: n}, nil
}

// blockResolver resolves "latest" at most once per command run.
type blockResolver struct {
	latest func(ctx context.Context) (uint64, error)
	cached *uint64
}

func (r *blockResolver) resolve(ctx context.Context, ref blockRef) (uint64, error) {
	if !ref.latest {
		return ref.number, nil
	}

	if r.cached == nil {
		n, err := r.latest(ctx)
		if err != nil {
			return 0, err
		}
		r.cached = &n
	}
	return *r.cached, nil
}

// validateAddress is used as the --address flag validator.
func validateAddress(address string) error {
	return validator.Var(address, "required,eth_addr")
}
