package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strings"
)

var (
	// ErrEmptyHex is returned when a hex string carries no digits.
	ErrEmptyHex = errors.New("empty hexadecimal value")

	// ErrInvalidHex is returned when a hex string contains characters outside [0-9a-fA-F].
	ErrInvalidHex = errors.New("invalid hexadecimal value")

	// ErrHexOverflow is returned when a hex value does not fit the requested integer width.
	ErrHexOverflow = errors.New("hexadecimal value overflows uint64")
)

// Hex represents an unsigned hexadecimal-encoded number as a string (e.g., "0x1a").
//
// Values coming from a node may be arbitrarily wide (balances and transfer values are
// 256-bit), so decoding goes through math/big instead of a fixed-width integer.
type Hex string

// digits strips the optional "0x"/"0X" prefix and returns the remaining digits.
func (h Hex) digits() string {
	s := string(h)
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		return s[2:]
	}
	return s
}

// Big decodes the value as an unsigned integer.
//
// The "0x" prefix is optional. Signs, whitespace and empty digit strings are rejected.
func (h Hex) Big() (*big.Int, error) {
	d := h.digits()
	if d == "" {
		return nil, fmt.Errorf("%w: %q", ErrEmptyHex, string(h))
	}

	// SetString accepts a leading sign, which is never valid for an amount.
	if d[0] == '-' || d[0] == '+' {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, string(h))
	}

	v, ok := new(big.Int).SetString(d, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidHex, string(h))
	}

	return v, nil
}

// Uint64 decodes the value as a uint64, failing when it does not fit.
func (h Hex) Uint64() (uint64, error) {
	v, err := h.Big()
	if err != nil {
		return 0, err
	}

	if !v.IsUint64() {
		return 0, fmt.Errorf("%w: %q", ErrHexOverflow, string(h))
	}

	return v.Uint64(), nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses a JSON-encoded hexadecimal string.
// Unlike Big, the wire format requires the "0x" prefix.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("hex string must start with 0x")
	}

	if _, err := Hex(s).Big(); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}
