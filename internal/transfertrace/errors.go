package transfertrace

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrMalformedValue marks a frame whose value is not valid hexadecimal.
	ErrMalformedValue = errors.New("malformed frame value")

	// ErrMissingRoot is returned for a trace that carries no root frame.
	ErrMissingRoot = errors.New("trace has no root frame")

	// ErrNilFrame is returned when a children list contains a null entry.
	ErrNilFrame = errors.New("null call frame")
)

// FramePath locates a frame inside its call tree: the sequence of child
// indexes followed from the root. The root itself has an empty path.
type FramePath []int

// String renders the path as a dotted trace address, e.g. "root.0.2".
func (p FramePath) String() string {
	var b strings.Builder
	b.WriteString("root")
	for _, idx := range p {
		b.WriteByte('.')
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}

// MalformedValueError describes a frame whose value could not be parsed.
type MalformedValueError struct {
	TransactionID string
	Path          FramePath
	Value         string
	Err           error
}

func (e *MalformedValueError) Error() string {
	return fmt.Sprintf("%s: tx %q frame %s value %q: %v", ErrMalformedValue, e.TransactionID, e.Path, e.Value, e.Err)
}

// Is reports ErrMalformedValue as part of the chain.
func (e *MalformedValueError) Is(target error) bool {
	return target == ErrMalformedValue
}

func (e *MalformedValueError) Unwrap() error {
	return e.Err
}

// TraceProcessingError describes a trace that contributed no transfers
// because its structure could not be interpreted.
type TraceProcessingError struct {
	Index         int    // Position of the trace in the batch
	TransactionID string // May be empty
	Payload       []byte // Raw offending payload, when the source kept it
	Err           error
}

func (e *TraceProcessingError) Error() string {
	id := e.TransactionID
	if id == "" {
		id = "<none>"
	}
	return fmt.Sprintf("trace %d (tx %s): %v", e.Index, id, e.Err)
}

func (e *TraceProcessingError) Unwrap() error {
	return e.Err
}
