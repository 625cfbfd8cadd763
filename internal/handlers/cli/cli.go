package cli

import (
	"context"
	"encoding/json"
	"os"

	"github.com/gabapcia/tracewatch/internal/tracescan"
	"github.com/gabapcia/tracewatch/internal/transfertrace"

	"github.com/urfave/cli/v3"
)

// TraceDecoder turns a saved debug_traceBlockByNumber result into traces.
type TraceDecoder func(raw json.RawMessage) ([]transfertrace.TransactionTrace, error)

// Run initializes and executes the tracewatch CLI application with os.Args.
//
// Commands:
//
//   - `scan`: Scans one block, or a range, fetched from the node.
//   - `inspect`: Scans a block trace saved to a file (or read from stdin).
//   - `follow`: Scans new blocks as they are produced, until interrupted.
//
// defaultAddress is used when --address is not given.
func Run(ctx context.Context, svc tracescan.Service, decode TraceDecoder, defaultAddress string) error {
	return newApp(svc, decode, defaultAddress).Run(ctx, os.Args)
}

func newApp(svc tracescan.Service, decode TraceDecoder, defaultAddress string) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "tracewatch",
		Description:           "Finds the ether sent by a watched address in Ethereum block execution traces, including internal calls.",
		Usage:                 "tracewatch [command] [flags]",
		Commands: []*cli.Command{
			scanCommand(svc, defaultAddress),
			inspectCommand(svc, decode, defaultAddress),
			followCommand(svc, defaultAddress),
		},
	}
}
