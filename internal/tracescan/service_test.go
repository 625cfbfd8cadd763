package tracescan

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/gabapcia/tracewatch/internal/pkg/validator"
	"github.com/gabapcia/tracewatch/internal/transfertrace"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const watched = "0x47ce0c6ed5b0ce3d3a51fdb1c52dc66a7c3c2936"

func ptr(s string) *string {
	return &s
}

// transferTrace builds a single-frame trace sending value wei (hex) from -> to.
func transferTrace(txID, from, to, value string) transfertrace.TransactionTrace {
	return transfertrace.TransactionTrace{
		TransactionID: txID,
		Root: &transfertrace.CallFrame{
			From:  ptr(from),
			To:    ptr(to),
			Value: ptr(value),
		},
	}
}

func TestService_ScanBlocks(t *testing.T) {
	t.Run("single block with a transfer", func(t *testing.T) {
		source := NewTraceSourceMock(t)
		notifier := NewReportNotifierMock(t)

		source.EXPECT().TraceBlock(mock.Anything, uint64(100)).
			Return([]transfertrace.TransactionTrace{
				transferTrace("0xaaa", "0x47CE0C6ED5B0CE3D3A51FDB1C52DC66A7C3C2936", "0xBBB", "0xde0b6b3a7640000"),
				transferTrace("0xbbb", "0x1111111111111111111111111111111111111111", "0xccc", "0x1"),
			}, nil).
			Once()

		var notified []BlockReport
		notifier.EXPECT().NotifyReport(mock.Anything, mock.Anything).
			Run(func(_ context.Context, report BlockReport) { notified = append(notified, report) }).
			Return(nil).
			Once()

		svc := New(source, WithNotifiers(notifier))

		reports, err := svc.ScanBlocks(t.Context(), ScanRequest{
			WatchedAddress: watched,
			FromBlock:      100,
			ToBlock:        100,
		})

		require.NoError(t, err)
		require.Len(t, reports, 1)

		report := reports[0]
		assert.Equal(t, uint64(100), report.BlockNumber)
		assert.Equal(t, watched, report.WatchedAddress)
		require.Len(t, report.Report.Transfers, 1)

		transfer := report.Report.Transfers[0]
		assert.Equal(t, "0xaaa", transfer.TransactionID)
		assert.Equal(t, watched, transfer.From)
		assert.Equal(t, "0xbbb", transfer.To)
		assert.Equal(t, "1.0", transfer.EtherString())

		require.Len(t, notified, 1)
		assert.Equal(t, report, notified[0])
	})

	t.Run("reports follow block order regardless of fetch order", func(t *testing.T) {
		source := NewTraceSourceMock(t)
		notifier := NewReportNotifierMock(t)

		for n := uint64(10); n <= 14; n++ {
			source.EXPECT().TraceBlock(mock.Anything, n).
				Return([]transfertrace.TransactionTrace{
					transferTrace("tx", watched, "0xdead", "0x1"),
				}, nil).
				Once()
		}

		var (
			mu       sync.Mutex
			notified []uint64
		)
		notifier.EXPECT().NotifyReport(mock.Anything, mock.Anything).
			Run(func(_ context.Context, report BlockReport) {
				mu.Lock()
				defer mu.Unlock()
				notified = append(notified, report.BlockNumber)
			}).
			Return(nil).
			Times(5)

		svc := New(source, WithNotifiers(notifier), WithConcurrency(3))

		reports, err := svc.ScanBlocks(t.Context(), ScanRequest{
			WatchedAddress: watched,
			FromBlock:      10,
			ToBlock:        14,
		})

		require.NoError(t, err)
		require.Len(t, reports, 5)
		for i, report := range reports {
			assert.Equal(t, uint64(10+i), report.BlockNumber)
			assert.Len(t, report.Report.Transfers, 1)
		}
		assert.Equal(t, []uint64{10, 11, 12, 13, 14}, notified)
	})

	t.Run("empty block yields an empty report", func(t *testing.T) {
		source := NewTraceSourceMock(t)
		source.EXPECT().TraceBlock(mock.Anything, uint64(7)).Return(nil, nil).Once()

		svc := New(source)

		reports, err := svc.ScanBlocks(t.Context(), ScanRequest{WatchedAddress: watched, FromBlock: 7, ToBlock: 7})

		require.NoError(t, err)
		require.Len(t, reports, 1)
		assert.Empty(t, reports[0].Report.Transfers)
		assert.Empty(t, reports[0].Report.Traces)
	})

	t.Run("isolated trace failures do not abort the scan", func(t *testing.T) {
		source := NewTraceSourceMock(t)
		source.EXPECT().TraceBlock(mock.Anything, uint64(1)).
			Return([]transfertrace.TransactionTrace{
				{TransactionID: "0xbad", Payload: []byte(`{"broken":true}`), DecodeErr: errors.New("bad shape")},
				{TransactionID: "0xnoroot"},
				transferTrace("0xok", watched, "0xdead", "0x2"),
			}, nil).
			Once()

		svc := New(source)

		reports, err := svc.ScanBlocks(t.Context(), ScanRequest{WatchedAddress: watched, FromBlock: 1, ToBlock: 1})

		require.NoError(t, err)
		report := reports[0].Report
		require.Len(t, report.Transfers, 1)
		assert.Equal(t, "0xok", report.Transfers[0].TransactionID)

		failures := report.Failures()
		require.Len(t, failures, 2)
		assert.Equal(t, 0, failures[0].Index)
		assert.Equal(t, []byte(`{"broken":true}`), failures[0].Payload)
		assert.ErrorIs(t, failures[1], transfertrace.ErrMissingRoot)
	})

	t.Run("malformed value policy is forwarded to the collector", func(t *testing.T) {
		traces := []transfertrace.TransactionTrace{
			transferTrace("0xmal", watched, "0xdead", "0xzz"),
		}

		source := NewTraceSourceMock(t)
		source.EXPECT().TraceBlock(mock.Anything, uint64(1)).Return(traces, nil).Twice()

		lenient, err := New(source).ScanBlocks(t.Context(), ScanRequest{WatchedAddress: watched, FromBlock: 1, ToBlock: 1})
		require.NoError(t, err)
		require.Len(t, lenient[0].Report.Transfers, 1)
		assert.Equal(t, "0.0", lenient[0].Report.Transfers[0].EtherString())
		assert.Len(t, lenient[0].Report.Diagnostics(), 1)

		strict, err := New(source, WithMalformedValuePolicy(transfertrace.FailTrace)).
			ScanBlocks(t.Context(), ScanRequest{WatchedAddress: watched, FromBlock: 1, ToBlock: 1})
		require.NoError(t, err)
		assert.Empty(t, strict[0].Report.Transfers)
		require.Len(t, strict[0].Report.Failures(), 1)
		assert.ErrorIs(t, strict[0].Report.Failures()[0], transfertrace.ErrMalformedValue)
	})

	t.Run("fetch error aborts the request", func(t *testing.T) {
		fetchErr := errors.New("node unavailable")

		source := NewTraceSourceMock(t)
		notifier := NewReportNotifierMock(t)
		source.EXPECT().TraceBlock(mock.Anything, uint64(5)).Return(nil, fetchErr).Once()

		svc := New(source, WithNotifiers(notifier))

		reports, err := svc.ScanBlocks(t.Context(), ScanRequest{WatchedAddress: watched, FromBlock: 5, ToBlock: 5})

		assert.ErrorIs(t, err, ErrFetchFailed)
		assert.ErrorIs(t, err, fetchErr)
		assert.Nil(t, reports)
		notifier.AssertNotCalled(t, "NotifyReport", mock.Anything, mock.Anything)
	})

	t.Run("notifier errors are joined and every notifier runs", func(t *testing.T) {
		notifyErr := errors.New("sink down")

		source := NewTraceSourceMock(t)
		failing := NewReportNotifierMock(t)
		healthy := NewReportNotifierMock(t)

		source.EXPECT().TraceBlock(mock.Anything, uint64(3)).Return(nil, nil).Once()
		failing.EXPECT().NotifyReport(mock.Anything, mock.Anything).Return(notifyErr).Once()
		healthy.EXPECT().NotifyReport(mock.Anything, mock.Anything).Return(nil).Once()

		svc := New(source, WithNotifiers(failing, healthy))

		reports, err := svc.ScanBlocks(t.Context(), ScanRequest{WatchedAddress: watched, FromBlock: 3, ToBlock: 3})

		assert.ErrorIs(t, err, ErrNotifyFailed)
		assert.ErrorIs(t, err, notifyErr)
		assert.Len(t, reports, 1)
	})

	t.Run("invalid requests are rejected before fetching", func(t *testing.T) {
		source := NewTraceSourceMock(t)
		svc := New(source, WithMaxBlockRange(10))

		_, err := svc.ScanBlocks(t.Context(), ScanRequest{WatchedAddress: "0x123", FromBlock: 1, ToBlock: 1})
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		_, err = svc.ScanBlocks(t.Context(), ScanRequest{WatchedAddress: watched, FromBlock: 2, ToBlock: 1})
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		_, err = svc.ScanBlocks(t.Context(), ScanRequest{WatchedAddress: watched, FromBlock: 0, ToBlock: 10})
		assert.ErrorIs(t, err, ErrRangeTooLarge)

		_, err = svc.ScanBlocks(t.Context(), ScanRequest{WatchedAddress: watched, FromBlock: 0, ToBlock: ^uint64(0)})
		assert.ErrorIs(t, err, ErrRangeTooLarge)

		source.AssertNotCalled(t, "TraceBlock", mock.Anything, mock.Anything)
	})
}

func TestService_ScanTraces(t *testing.T) {
	t.Run("processes in-memory traces and notifies", func(t *testing.T) {
		source := NewTraceSourceMock(t)
		notifier := NewReportNotifierMock(t)
		notifier.EXPECT().NotifyReport(mock.Anything, mock.MatchedBy(func(r BlockReport) bool {
			return r.BlockNumber == 42 && len(r.Report.Transfers) == 2
		})).Return(nil).Once()

		root := &transfertrace.CallFrame{
			From:  ptr(watched),
			To:    ptr("0xaaa"),
			Value: ptr("0x1"),
			Children: []*transfertrace.CallFrame{
				{From: ptr("0xaaa"), To: ptr(watched), Value: ptr("0x5")},
				{From: ptr(watched), To: ptr("0xbbb"), Value: ptr("0x2")},
			},
		}

		svc := New(source, WithNotifiers(notifier))

		report, err := svc.ScanTraces(t.Context(), "0x47CE0C6ED5B0CE3D3A51FDB1C52DC66A7C3C2936", 42,
			[]transfertrace.TransactionTrace{{TransactionID: "0xtx", Root: root}})

		require.NoError(t, err)
		require.Len(t, report.Report.Transfers, 2)
		assert.Equal(t, "0xaaa", report.Report.Transfers[0].To)
		assert.Equal(t, "0xbbb", report.Report.Transfers[1].To)
		assert.Equal(t, watched, report.WatchedAddress)
	})

	t.Run("rejects an invalid address", func(t *testing.T) {
		svc := New(NewTraceSourceMock(t))

		_, err := svc.ScanTraces(t.Context(), "watched", 1, nil)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)
	})
}

func TestService_LatestBlockNumber(t *testing.T) {
	t.Run("returns the source value", func(t *testing.T) {
		source := NewTraceSourceMock(t)
		source.EXPECT().LatestBlockNumber(mock.Anything).Return(uint64(19_000_000), nil).Once()

		n, err := New(source).LatestBlockNumber(t.Context())

		require.NoError(t, err)
		assert.Equal(t, uint64(19_000_000), n)
	})

	t.Run("wraps source errors", func(t *testing.T) {
		sourceErr := errors.New("timeout")

		source := NewTraceSourceMock(t)
		source.EXPECT().LatestBlockNumber(mock.Anything).Return(uint64(0), sourceErr).Once()

		_, err := New(source).LatestBlockNumber(t.Context())

		assert.ErrorIs(t, err, ErrFetchFailed)
		assert.ErrorIs(t, err, sourceErr)
	})
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		svc := New(NewTraceSourceMock(t))

		assert.Equal(t, 4, svc.concurrency)
		assert.Equal(t, uint64(1000), svc.maxBlockRange)
		assert.Empty(t, svc.notifiers)
		assert.Len(t, svc.collectOpts, 1)
		assert.NotNil(t, svc.tracer)
	})

	t.Run("out of range options are ignored", func(t *testing.T) {
		svc := New(NewTraceSourceMock(t), WithConcurrency(0), WithMaxBlockRange(0))

		assert.Equal(t, 4, svc.concurrency)
		assert.Equal(t, uint64(1000), svc.maxBlockRange)
	})
}
