package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/gridmath"
)

// errFound stops a Distance search once the target is visited.
var errFound = errors.New("bfs: target found")

// queueItem pairs a cell with its BFS depth.
type queueItem struct {
	c     cell.Index
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	e       *gridmath.Engine
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited map[string]bool
	res     *BFSResult
}

// BFS runs breadth-first search over the cell adjacency of e starting from
// start, applying any number of functional Options. Every step stays at the
// start's resolution.
// Returns ErrEngineNil, cell.ErrNullIndex or ErrOptionViolation for invalid
// input, the engine's error for a failed move, or any user-supplied hook
// error.
func BFS(e *gridmath.Engine, start cell.Index, opts ...Option) (*BFSResult, error) {
	if e == nil {
		return nil, ErrEngineNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, err := e.CellCount(start, start.Resolution()); err != nil {
		return nil, err
	}

	w := &walker{
		e:       e,
		opts:    o,
		ctx:     o.Ctx,
		visited: make(map[string]bool),
		res: &BFSResult{
			Depth:  make(map[string]int),
			Parent: make(map[string]cell.Index),
		},
	}

	// Seed queue with start cell (no parent)
	w.enqueue(start, 0, cell.Index{})

	return w.res, w.loop()
}

// Distance returns the number of steps between a and b at their common
// resolution, searching at most maxDepth steps (0: no limit).
func Distance(e *gridmath.Engine, a, b cell.Index, maxDepth int) (int, error) {
	if a.Resolution() != b.Resolution() {
		return 0, fmt.Errorf("bfs: %s and %s differ in resolution", a, b)
	}
	target := b.String()
	res, err := BFS(e, a,
		WithMaxDepth(maxDepth),
		WithOnVisit(func(c cell.Index, _ int) error {
			if c.String() == target {
				return errFound
			}

			return nil
		}),
	)
	if err != nil && !errors.Is(err, errFound) {
		return 0, err
	}
	d, ok := res.Depth[target]
	if !ok {
		return 0, fmt.Errorf("%w: %s within %d steps of %s", ErrNotReached, b, maxDepth, a)
	}

	return d, nil
}

// enqueue marks c visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(c cell.Index, d int, parent cell.Index) {
	key := c.String()
	w.visited[key] = true
	w.res.Depth[key] = d
	if !parent.IsNull() {
		w.res.Parent[key] = parent
	}
	w.opts.OnEnqueue(c, d)
	w.queue = append(w.queue, queueItem{c: c, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		if err := w.visit(item); err != nil {
			return err
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}

	return nil
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.c)
	if err := w.opts.OnVisit(item.c, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %s: %w", item.c, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth and enqueues each unseen
// neighbour in direction order.
func (w *walker) enqueueNeighbors(item queueItem) error {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.e.Neighbours(item.c)
	if err != nil {
		return fmt.Errorf("bfs: neighbours of %s: %w", item.c, err)
	}
	for _, nbr := range neighbors {
		if !w.opts.FilterNeighbor(item.c, nbr) {
			continue
		}
		if !w.visited[nbr.String()] {
			w.enqueue(nbr, nextDepth, item.c)
		}
	}

	return nil
}
