// Package transfertrace extracts value transfers originated by a watched
// address from call-tracer style transaction traces.
//
// The package is pure: it performs no I/O and keeps no state between calls.
// Problems found in the input are returned as data (diagnostics and per-trace
// failures) so the caller decides how to surface them.
package transfertrace

import "strings"

// UnknownAddress is substituted for a sender or recipient missing from a frame.
const UnknownAddress = "unknown"

// CallFrame is one node of a call tree.
//
// Optional fields are pointers: nil means the key was absent from the source
// data. A CallFrame is never modified after it has been built.
type CallFrame struct {
	From     *string      // Sender address
	To       *string      // Recipient address
	Value    *string      // Hex-encoded amount in base units
	Children []*CallFrame // Nested internal calls, in execution order
}

// Sender returns the lower-cased sender address, or UnknownAddress when absent.
func (f *CallFrame) Sender() string {
	return normalizeAddress(f.From)
}

// Recipient returns the lower-cased recipient address, or UnknownAddress when absent.
func (f *CallFrame) Recipient() string {
	return normalizeAddress(f.To)
}

// TransactionTrace is the call tree of one top-level transaction.
type TransactionTrace struct {
	TransactionID string     // Transaction hash; empty when the source did not provide one
	Root          *CallFrame // Outermost call
	Payload       []byte     // Raw upstream payload, kept for diagnostics
	DecodeErr     error      // Set by the source when Payload could not be shaped into a frame tree
}

func normalizeAddress(addr *string) string {
	if addr == nil {
		return UnknownAddress
	}
	return strings.ToLower(*addr)
}
