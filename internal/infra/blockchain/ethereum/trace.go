package ethereum

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/tracewatch/internal/transfertrace"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

var (
	// ErrInvalidTrace is set on a trace whose payload does not have the call tracer shape.
	ErrInvalidTrace = errors.New("invalid trace payload")

	// ErrTracerFailed is set on a trace for which the node reported a tracer error.
	ErrTracerFailed = errors.New("tracer failed")
)

type (
	// TraceResponse is one entry of the debug_traceBlockByNumber result.
	TraceResponse struct {
		TxHash *string         `json:"txHash"`
		Result json.RawMessage `json:"result"`
		Error  string          `json:"error"`
	}

	// CallFrameResponse is a call tracer frame as returned by the node.
	CallFrameResponse struct {
		Type    string               `json:"type"`
		From    *string              `json:"from"`
		To      *string              `json:"to"`
		Value   *string              `json:"value"`
		Gas     string               `json:"gas"`
		GasUsed string               `json:"gasUsed"`
		Input   string               `json:"input"`
		Output  string               `json:"output"`
		Error   string               `json:"error"`
		Calls   []*CallFrameResponse `json:"calls"`
	}
)

// toCallFrame converts the response tree into transfertrace frames without
// recursion. A nil entry in a calls list stays nil so the walker can report it.
func (f *CallFrameResponse) toCallFrame() *transfertrace.CallFrame {
	type pending struct {
		src *CallFrameResponse
		dst *transfertrace.CallFrame
	}

	root := &transfertrace.CallFrame{}
	stack := []pending{{src: f, dst: root}}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		current.dst.From = current.src.From
		current.dst.To = current.src.To
		current.dst.Value = current.src.Value

		if len(current.src.Calls) == 0 {
			continue
		}

		current.dst.Children = make([]*transfertrace.CallFrame, len(current.src.Calls))
		for i, call := range current.src.Calls {
			if call == nil {
				continue
			}

			child := &transfertrace.CallFrame{}
			current.dst.Children[i] = child
			stack = append(stack, pending{src: call, dst: child})
		}
	}

	return root
}

// toTransactionTrace shapes a single result entry. Problems are recorded on the
// returned trace instead of failing the batch.
func toTransactionTrace(raw json.RawMessage) transfertrace.TransactionTrace {
	trace := transfertrace.TransactionTrace{
		Payload: raw,
	}

	var res TraceResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		trace.DecodeErr = fmt.Errorf("%w: %v", ErrInvalidTrace, err)
		return trace
	}

	if res.TxHash != nil {
		trace.TransactionID = *res.TxHash
	}

	if res.Error != "" {
		trace.DecodeErr = fmt.Errorf("%w: %s", ErrTracerFailed, res.Error)
		return trace
	}

	if isNull(res.Result) {
		return trace
	}

	var frame CallFrameResponse
	if err := json.Unmarshal(res.Result, &frame); err != nil {
		trace.DecodeErr = fmt.Errorf("%w: %v", ErrInvalidTrace, err)
		return trace
	}

	trace.Root = frame.toCallFrame()
	return trace
}

// DecodeBlockTraces converts a debug_traceBlockByNumber result into traces,
// keeping block order. A null result means no trace data and yields an empty
// batch. Only a result that is not a JSON array fails as a whole.
func DecodeBlockTraces(raw json.RawMessage) ([]transfertrace.TransactionTrace, error) {
	if isNull(raw) {
		return nil, nil
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("%w: expected an array of traces: %v", ErrInvalidTrace, err)
	}

	traces := make([]transfertrace.TransactionTrace, len(entries))
	for i, entry := range entries {
		traces[i] = toTransactionTrace(entry)
	}

	return traces, nil
}

// TraceBlock implements tracescan.TraceSource using debug_traceBlockByNumber
// with the call tracer.
func (c *client) TraceBlock(ctx context.Context, blockNumber uint64) ([]transfertrace.TransactionTrace, error) {
	data, err := c.conn.Fetch(ctx, "debug_traceBlockByNumber",
		hexutil.EncodeUint64(blockNumber),
		map[string]any{
			"tracer":  callTracer,
			"timeout": c.traceTimeout,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("trace block %d: %w", blockNumber, err)
	}

	return DecodeBlockTraces(data)
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
