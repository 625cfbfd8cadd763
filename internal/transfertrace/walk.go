package transfertrace

import (
	"math/big"
	"slices"
	"strings"

	"github.com/gabapcia/tracewatch/internal/pkg/types"
)

// WalkResult is the outcome of walking one call tree.
type WalkResult struct {
	Transfers   []Transfer             // Matches in call order (parent first, depth-first)
	Diagnostics []*MalformedValueError // Frames whose value was replaced by zero
}

// walkNode is an arena entry. Paths are rebuilt from the parent links only
// when an error or diagnostic needs them.
type walkNode struct {
	frame  *CallFrame
	parent int // arena index of the parent, -1 for the root
	index  int // position among the parent's children
}

// framePath rebuilds the path of the arena node at idx.
func framePath(arena []walkNode, idx int) FramePath {
	var path FramePath
	for ; arena[idx].parent >= 0; idx = arena[idx].parent {
		path = append(path, arena[idx].index)
	}
	slices.Reverse(path)
	return path
}

// Walk visits every frame of the tree rooted at root and returns one Transfer
// for each frame whose sender equals watched, compared case-insensitively.
// A frame without sender has the UnknownAddress sender, so it only matches
// when watched is UnknownAddress itself.
//
// Frames are visited in pre-order: a frame before its children, children in
// the order they are listed. A match never stops the descent, so the watched
// address may show up at several nesting levels of the same transaction.
//
// Visited frames live in an arena and the pending work is a stack of arena
// indexes, so tree depth does not translate into goroutine stack growth and
// the cost of the walk stays linear in the number of frames.
//
// Walk returns ErrMissingRoot for a nil root and ErrNilFrame (wrapped with the
// frame path) when a children list holds a nil entry. Under the FailTrace
// policy a malformed value is returned as the error; otherwise it is recorded
// in WalkResult.Diagnostics and the frame counts as zero.
func Walk(root *CallFrame, transactionID, watched string, opts ...Option) (WalkResult, error) {
	if root == nil {
		return WalkResult{}, ErrMissingRoot
	}

	var (
		cfg    = newConfig(opts)
		target = strings.ToLower(watched)
		result WalkResult
		arena  = []walkNode{{frame: root, parent: -1}}
		stack  = []int{0}
	)

	for len(stack) > 0 {
		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		current := arena[idx].frame

		wei, err := frameValue(current)
		if err != nil {
			diag := &MalformedValueError{
				TransactionID: transactionID,
				Path:          framePath(arena, idx),
				Value:         *current.Value,
				Err:           err,
			}
			if cfg.malformedValuePolicy == FailTrace {
				return WalkResult{}, diag
			}
			result.Diagnostics = append(result.Diagnostics, diag)
		}

		if current.Sender() == target {
			result.Transfers = append(result.Transfers, newTransfer(transactionID, current, wei))
		}

		// Push in reverse so the first child is popped next.
		for i := len(current.Children) - 1; i >= 0; i-- {
			child := current.Children[i]
			if child == nil {
				return WalkResult{}, &nilFrameError{path: append(framePath(arena, idx), i)}
			}
			arena = append(arena, walkNode{frame: child, parent: idx, index: i})
			stack = append(stack, len(arena)-1)
		}
	}

	return result, nil
}

// frameValue decodes the frame value. An absent value is zero; an invalid one
// is zero plus the decoding error.
func frameValue(frame *CallFrame) (*big.Int, error) {
	if frame.Value == nil {
		return new(big.Int), nil
	}

	wei, err := types.Hex(*frame.Value).Big()
	if err != nil {
		return new(big.Int), err
	}

	return wei, nil
}

type nilFrameError struct {
	path FramePath
}

func (e *nilFrameError) Error() string {
	return ErrNilFrame.Error() + " at " + e.path.String()
}

func (e *nilFrameError) Unwrap() error {
	return ErrNilFrame
}
