package transfertrace

// TraceResult is the outcome of one trace in a batch: either the transfers it
// produced (possibly none) or the error that made it contribute nothing.
type TraceResult struct {
	Index         int
	TransactionID string
	Transfers     []Transfer
	Diagnostics   []*MalformedValueError
	Err           *TraceProcessingError
}

// Failed reports whether the trace was skipped.
func (r TraceResult) Failed() bool {
	return r.Err != nil
}

// Report is the outcome of a whole batch.
type Report struct {
	Transfers []Transfer    // Concatenation of every trace's transfers, in trace order
	Traces    []TraceResult // One entry per input trace, same order as the input
}

// Failures returns the errors of the traces that were skipped, in batch order.
func (r Report) Failures() []*TraceProcessingError {
	var failures []*TraceProcessingError
	for _, t := range r.Traces {
		if t.Err != nil {
			failures = append(failures, t.Err)
		}
	}
	return failures
}

// Diagnostics returns every malformed value reported across the batch.
func (r Report) Diagnostics() []*MalformedValueError {
	var diags []*MalformedValueError
	for _, t := range r.Traces {
		diags = append(diags, t.Diagnostics...)
	}
	return diags
}

// Collect walks every trace of the batch in order and concatenates the
// transfers. A trace that cannot be processed is recorded as a failure and
// contributes no transfers; the remaining traces are processed normally.
//
// An empty or nil batch yields an empty Report.
func Collect(traces []TransactionTrace, watched string, opts ...Option) Report {
	report := Report{
		Traces: make([]TraceResult, 0, len(traces)),
	}

	for i, trace := range traces {
		result := collectTrace(i, trace, watched, opts)
		report.Traces = append(report.Traces, result)
		report.Transfers = append(report.Transfers, result.Transfers...)
	}

	return report
}

func collectTrace(index int, trace TransactionTrace, watched string, opts []Option) TraceResult {
	result := TraceResult{
		Index:         index,
		TransactionID: trace.TransactionID,
	}

	fail := func(err error) TraceResult {
		result.Err = &TraceProcessingError{
			Index:         index,
			TransactionID: trace.TransactionID,
			Payload:       trace.Payload,
			Err:           err,
		}
		return result
	}

	if trace.DecodeErr != nil {
		return fail(trace.DecodeErr)
	}

	walked, err := Walk(trace.Root, trace.TransactionID, watched, opts...)
	if err != nil {
		return fail(err)
	}

	result.Transfers = walked.Transfers
	result.Diagnostics = walked.Diagnostics
	return result
}
