package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/gabapcia/tracewatch/internal/tracescan"

	"github.com/urfave/cli/v3"
)

// stdinPath makes inspect read the trace from standard input.
const stdinPath = "-"

// inspectCommand returns the command that scans a debug_traceBlockByNumber
// result saved to disk, without contacting a node.
//
// Usage example:
//
//	tracewatch inspect --file block.json --block 19000000
//	curl ... | jq .result | tracewatch inspect --file -
func inspectCommand(svc tracescan.Service, decode TraceDecoder, defaultAddress string) *cli.Command {
	return &cli.Command{
		Name:        "inspect",
		Description: "Scan a saved block trace (the result of debug_traceBlockByNumber with the call tracer) offline.",
		Usage:       "Reads the trace from --file, or from stdin when --file is \"-\".",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Usage:    "Path of the saved trace, or - for stdin",
				Required: true,
			},
			&cli.Uint64Flag{
				Name:  "block",
				Usage: "Block number to report the traces under",
			},
			&cli.StringFlag{
				Name:      "address",
				Usage:     "Watched address",
				Value:     defaultAddress,
				Validator: validateAddress,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			raw, err := readTraceFile(c.String("file"), c.Root().Reader)
			if err != nil {
				return err
			}

			traces, err := decode(raw)
			if err != nil {
				return fmt.Errorf("decode %s: %w", c.String("file"), err)
			}

			_, err = svc.ScanTraces(ctx, c.String("address"), c.Uint64("block"), traces)
			return err
		},
	}
}

func readTraceFile(path string, stdin io.Reader) (json.RawMessage, error) {
	if path == stdinPath {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read trace file: %w", err)
	}
	return data, nil
}
