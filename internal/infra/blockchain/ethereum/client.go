// Package ethereum implements tracescan.TraceSource for Ethereum-compatible
// nodes exposing the debug namespace over JSON-RPC.
package ethereum

import (
	"github.com/gabapcia/tracewatch/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/tracewatch/internal/tracescan"
)

// callTracer is the built-in geth tracer that reports the nested call tree.
const callTracer = "callTracer"

// client talks to an Ethereum node via a JSON-RPC connection.
type client struct {
	conn         jsonrpc.Client // Underlying JSON-RPC connection to the node
	traceTimeout string         // Tracer timeout forwarded to the node
}

// Ensure client implements the tracescan.TraceSource interface at compile time.
var _ tracescan.TraceSource = (*client)(nil)

type config struct {
	traceTimeout string
}

// Option customizes the Ethereum client.
type Option func(*config)

// WithTraceTimeout sets the tracer timeout sent to the node, in Go duration
// syntax (e.g. "10s", "1m").
//
// Default: "10s".
func WithTraceTimeout(d string) Option {
	return func(c *config) {
		c.traceTimeout = d
	}
}

// NewClient creates a new Ethereum client on top of the given JSON-RPC connection.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	cfg := config{
		traceTimeout: "10s",
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:         conn,
		traceTimeout: cfg.traceTimeout,
	}
}
