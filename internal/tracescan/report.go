package tracescan

import (
	"context"
	"errors"

	"github.com/gabapcia/tracewatch/internal/transfertrace"
)

// ErrNotifyFailed wraps the errors returned by report notifiers.
var ErrNotifyFailed = errors.New("failed to notify block report")

// BlockReport is the scan outcome for a single block.
type BlockReport struct {
	BlockNumber    uint64
	WatchedAddress string // lower-cased
	Report         transfertrace.Report
}

// ReportNotifier receives every BlockReport produced by a scan.
type ReportNotifier interface {
	NotifyReport(ctx context.Context, report BlockReport) error
}

// notifyAll hands report to every notifier. A failing notifier does not stop
// the others; all errors are returned together.
func notifyAll(ctx context.Context, notifiers []ReportNotifier, report BlockReport) error {
	var errs []error
	for _, n := range notifiers {
		if err := n.NotifyReport(ctx, report); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) == 0 {
		return nil
	}
	return errors.Join(append([]error{ErrNotifyFailed}, errs...)...)
}
