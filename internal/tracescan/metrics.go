package tracescan

import (
	"context"

	"github.com/gabapcia/tracewatch/internal/transfertrace"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const instrumentationName = "github.com/gabapcia/tracewatch/internal/tracescan"

// instruments groups the counters recorded for every processed block.
type instruments struct {
	blocks          metric.Int64Counter
	traces          metric.Int64Counter
	transfers       metric.Int64Counter
	failedTraces    metric.Int64Counter
	malformedValues metric.Int64Counter
}

func newInstruments(meter metric.Meter) instruments {
	counter := func(name, description string) metric.Int64Counter {
		c, err := meter.Int64Counter(name, metric.WithDescription(description))
		if err != nil {
			otel.Handle(err)
			return noop.Int64Counter{}
		}
		return c
	}

	return instruments{
		blocks:          counter("tracewatch.blocks.scanned", "Blocks whose traces were processed"),
		traces:          counter("tracewatch.traces.processed", "Transaction traces processed"),
		transfers:       counter("tracewatch.transfers.detected", "Outgoing transfers from the watched address"),
		failedTraces:    counter("tracewatch.traces.failed", "Traces skipped because their structure was invalid"),
		malformedValues: counter("tracewatch.values.malformed", "Frame values that were not valid hexadecimal"),
	}
}

func (i instruments) record(ctx context.Context, watched string, report transfertrace.Report) {
	attrs := metric.WithAttributes(attribute.String("watched.address", watched))

	i.blocks.Add(ctx, 1, attrs)
	i.traces.Add(ctx, int64(len(report.Traces)), attrs)
	i.transfers.Add(ctx, int64(len(report.Transfers)), attrs)
	i.failedTraces.Add(ctx, int64(len(report.Failures())), attrs)
	i.malformedValues.Add(ctx, int64(len(report.Diagnostics())), attrs)
}
