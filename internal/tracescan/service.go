// Package tracescan finds the outgoing value transfers of a watched address
// in block execution traces. It fetches traces from a TraceSource, runs the
// transfertrace collector on them, logs every isolated problem and hands the
// resulting reports to the configured notifiers.
package tracescan

import (
	"context"
	"fmt"
	"strings"

	"github.com/gabapcia/tracewatch/internal/pkg/logger"
	"github.com/gabapcia/tracewatch/internal/transfertrace"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

// Service scans blocks, or traces already in memory, for transfers sent by
// a watched address.
type Service interface {
	// ScanBlocks processes every block of the request range and returns one
	// report per block in ascending block order. Reports are passed to the
	// notifiers only after every block has been fetched.
	ScanBlocks(ctx context.Context, req ScanRequest) ([]BlockReport, error)

	// ScanTraces processes traces obtained elsewhere, e.g. read from a file,
	// as if they belonged to blockNumber.
	ScanTraces(ctx context.Context, watchedAddress string, blockNumber uint64, traces []transfertrace.TransactionTrace) (BlockReport, error)

	// LatestBlockNumber returns the most recent block known to the source.
	LatestBlockNumber(ctx context.Context) (uint64, error)

	// Follow keeps scanning new blocks until ctx is canceled.
	Follow(ctx context.Context, req FollowRequest) error
}

type service struct {
	source    TraceSource
	notifiers []ReportNotifier

	concurrency   int
	maxBlockRange uint64
	collectOpts   []transfertrace.Option

	tracer      trace.Tracer
	instruments instruments
}

var _ Service = (*service)(nil)

func (s *service) LatestBlockNumber(ctx context.Context) (uint64, error) {
	number, err := s.source.LatestBlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrFetchFailed, err)
	}
	return number, nil
}

func (s *service) ScanBlocks(ctx context.Context, req ScanRequest) ([]BlockReport, error) {
	if err := req.validate(s.maxBlockRange); err != nil {
		return nil, err
	}

	ctx, span := s.tracer.Start(ctx, "tracescan.ScanBlocks", trace.WithAttributes(
		attribute.String("watched.address", req.WatchedAddress),
		attribute.Int64("block.from", int64(req.FromBlock)),
		attribute.Int64("block.to", int64(req.ToBlock)),
	))
	defer span.End()

	watched := strings.ToLower(req.WatchedAddress)
	reports := make([]BlockReport, req.blockCount())

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i := range reports {
		blockNumber := req.FromBlock + uint64(i)

		g.Go(func() error {
			traces, err := s.source.TraceBlock(gctx, blockNumber)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrFetchFailed, err)
			}

			reports[i] = s.process(gctx, watched, blockNumber, traces)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		logger.Error(ctx, "block scan aborted",
			"block.from", req.FromBlock,
			"block.to", req.ToBlock,
			"error", err,
		)
		return nil, err
	}

	for _, report := range reports {
		if err := notifyAll(ctx, s.notifiers, report); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return reports, err
		}
	}

	return reports, nil
}

func (s *service) ScanTraces(ctx context.Context, watchedAddress string, blockNumber uint64, traces []transfertrace.TransactionTrace) (BlockReport, error) {
	req := ScanRequest{WatchedAddress: watchedAddress, FromBlock: blockNumber, ToBlock: blockNumber}
	if err := req.validate(s.maxBlockRange); err != nil {
		return BlockReport{}, err
	}

	ctx, span := s.tracer.Start(ctx, "tracescan.ScanTraces", trace.WithAttributes(
		attribute.String("watched.address", watchedAddress),
		attribute.Int64("block.number", int64(blockNumber)),
		attribute.Int("traces.count", len(traces)),
	))
	defer span.End()

	report := s.process(ctx, strings.ToLower(watchedAddress), blockNumber, traces)
	if err := notifyAll(ctx, s.notifiers, report); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return report, err
	}

	return report, nil
}

// process runs the collector over the traces of one block and reports what
// it found through logs and metrics.
func (s *service) process(ctx context.Context, watched string, blockNumber uint64, traces []transfertrace.TransactionTrace) BlockReport {
	report := transfertrace.Collect(traces, watched, s.collectOpts...)

	ctx = logger.Derive(ctx, "block.number", blockNumber)

	for _, diag := range report.Diagnostics() {
		logger.Warn(ctx, "malformed frame value",
			"tx.hash", diag.TransactionID,
			"frame.path", diag.Path.String(),
			"frame.value", diag.Value,
			"error", diag.Err,
		)
	}

	for _, failure := range report.Failures() {
		logger.Error(ctx, "trace skipped",
			"trace.index", failure.Index,
			"tx.hash", failure.TransactionID,
			"trace.payload", string(failure.Payload),
			"error", failure.Err,
		)
	}

	for _, transfer := range report.Transfers {
		logger.Info(ctx, "outgoing transfer detected",
			"tx.hash", transfer.TransactionID,
			"transfer.from", transfer.From,
			"transfer.to", transfer.To,
			"transfer.value_eth", transfer.EtherString(),
		)
	}

	logger.Debug(ctx, "block processed",
		"traces.count", len(report.Traces),
		"transfers.count", len(report.Transfers),
	)

	s.instruments.record(ctx, watched, report)

	return BlockReport{
		BlockNumber:    blockNumber,
		WatchedAddress: watched,
		Report:         report,
	}
}

type config struct {
	concurrency          int
	maxBlockRange        uint64
	notifiers            []ReportNotifier
	malformedValuePolicy transfertrace.MalformedValuePolicy
}

// Option customizes the service returned by New.
type Option func(*config)

// WithConcurrency sets how many blocks are fetched at the same time.
// Values below 1 are ignored.
//
// Default: 4.
func WithConcurrency(n int) Option {
	return func(c *config) {
		if n >= 1 {
			c.concurrency = n
		}
	}
}

// WithMaxBlockRange caps the number of blocks a single ScanBlocks call may span.
//
// Default: 1000.
func WithMaxBlockRange(n uint64) Option {
	return func(c *config) {
		if n >= 1 {
			c.maxBlockRange = n
		}
	}
}

// WithNotifiers appends notifiers that receive every produced BlockReport.
func WithNotifiers(notifiers ...ReportNotifier) Option {
	return func(c *config) {
		c.notifiers = append(c.notifiers, notifiers...)
	}
}

// WithMalformedValuePolicy sets how frame values that are not valid
// hexadecimal are handled.
//
// Default: transfertrace.SubstituteZero.
func WithMalformedValuePolicy(p transfertrace.MalformedValuePolicy) Option {
	return func(c *config) {
		c.malformedValuePolicy = p
	}
}

// New creates a Service reading traces from source.
func New(source TraceSource, opts ...Option) *service {
	cfg := config{
		concurrency:          4,
		maxBlockRange:        1000,
		malformedValuePolicy: transfertrace.SubstituteZero,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		source:        source,
		notifiers:     cfg.notifiers,
		concurrency:   cfg.concurrency,
		maxBlockRange: cfg.maxBlockRange,
		collectOpts: []transfertrace.Option{
			transfertrace.WithMalformedValuePolicy(cfg.malformedValuePolicy),
		},
		tracer:      otel.Tracer(instrumentationName),
		instruments: newInstruments(otel.Meter(instrumentationName)),
	}
}
