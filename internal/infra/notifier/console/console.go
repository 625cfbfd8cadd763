// Package console renders block reports as human readable tables.
package console

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/gabapcia/tracewatch/internal/tracescan"

	"github.com/olekukonko/tablewriter"
)

var tableHeader = []string{"Transaction", "Funded address", "Value (ETH)"}

// Notifier writes every report it receives to an io.Writer.
type Notifier struct {
	mu  sync.Mutex
	out io.Writer
}

var _ tracescan.ReportNotifier = (*Notifier)(nil)

// New returns a Notifier writing to out.
func New(out io.Writer) *Notifier {
	return &Notifier{out: out}
}

// NotifyReport prints a header line for the block, a table with one row per
// transfer (or a "no transfers" line) and one diagnostic block for each
// malformed value and each skipped trace, followed by its raw payload.
func (n *Notifier) NotifyReport(_ context.Context, report tracescan.BlockReport) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	transfers := report.Report.Transfers

	if _, err := fmt.Fprintf(n.out, "block %d: %d transfer(s) sent by %s\n", report.BlockNumber, len(transfers), report.WatchedAddress); err != nil {
		return err
	}

	if len(transfers) == 0 {
		if _, err := fmt.Fprintln(n.out, "no transfers"); err != nil {
			return err
		}
	} else {
		table := tablewriter.NewWriter(n.out)
		table.SetHeader(tableHeader)
		table.SetAutoFormatHeaders(false)
		table.SetAutoWrapText(false)
		table.SetAlignment(tablewriter.ALIGN_LEFT)

		for _, t := range transfers {
			table.Append([]string{t.TransactionID, t.To, t.EtherString()})
		}
		table.Render()
	}

	for _, diag := range report.Report.Diagnostics() {
		if _, err := fmt.Fprintf(n.out, "warning: %v (counted as 0)\n", diag); err != nil {
			return err
		}
	}

	for _, failure := range report.Report.Failures() {
		if _, err := fmt.Fprintf(n.out, "error: %v\n", failure); err != nil {
			return err
		}
		if len(failure.Payload) > 0 {
			if _, err := fmt.Fprintf(n.out, "payload: %s\n", failure.Payload); err != nil {
				return err
			}
		}
	}

	return nil
}
