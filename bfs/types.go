package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dggs/cell"
)

// Sentinel errors for BFS execution.
var (
	// ErrEngineNil is returned if a nil engine pointer is passed.
	ErrEngineNil = errors.New("bfs: engine is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNotReached is returned by PathTo and Distance for a cell the search
	// never visited.
	ErrNotReached = errors.New("bfs: cell not reached")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is enqueued, before visiting.
	OnEnqueue func(c cell.Index, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(c cell.Index, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many steps.
	// A value of 0 explicitly disables any depth limit; the search then
	// floods every cell of the start's resolution.
	MaxDepth int

	// FilterNeighbor can skip a step by returning false.
	FilterNeighbor func(curr, neighbor cell.Index) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all neighbours allowed)
//   - no-op hooks (OnEnqueue, OnVisit).
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:            context.Background(),
		OnEnqueue:      func(cell.Index, int) {},
		OnVisit:        func(cell.Index, int) error { return nil },
		FilterNeighbor: func(_, _ cell.Index) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(c cell.Index, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(c cell.Index, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)

			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor cell.Index) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// BFSResult holds the outcome of a BFS traversal:
//   - Order: cells visited, in visit sequence.
//   - Depth: textual cell → step count from the start.
//   - Parent: textual cell → its predecessor in the BFS tree.
type BFSResult struct {
	Order  []cell.Index
	Depth  map[string]int
	Parent map[string]cell.Index
}

// PathTo reconstructs the path from the start cell to dest.
// Returns ErrNotReached if dest was not visited.
func (r *BFSResult) PathTo(dest cell.Index) ([]cell.Index, error) {
	if _, ok := r.Depth[dest.String()]; !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotReached, dest)
	}
	// build reversed path
	path := []cell.Index{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur.String()]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
