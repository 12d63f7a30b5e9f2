package iterator

import (
	"fmt"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/gridmath"
)

// Option configures a Progressive iterator.
type Option func(*ProgressiveOptions)

// ProgressiveOptions holds the Progressive switches.
type ProgressiveOptions struct {
	// RepeatCentroid emits centroid children too. By default a cell whose
	// path ends in 0 is skipped: it sits on the centre of its parent, which
	// was emitted one resolution earlier.
	RepeatCentroid bool

	// ZeroExtend pads every emitted cell with centroid digits down to the
	// final resolution, so all outputs share one resolution.
	ZeroExtend bool
}

// WithRepeatCentroid emits centroid children at every resolution.
func WithRepeatCentroid() Option {
	return func(o *ProgressiveOptions) { o.RepeatCentroid = true }
}

// WithZeroExtend pads every emitted cell to the final resolution.
func WithZeroExtend() Option {
	return func(o *ProgressiveOptions) { o.ZeroExtend = true }
}

// Progressive enumerates a root's subtree breadth first across
// resolutions: the root, then each deeper resolution in canonical order down
// to res. Without RepeatCentroid every location is emitted exactly once, at
// the coarsest resolution that has a cell centred on it.
type Progressive struct {
	e    *gridmath.Engine
	root cell.Index
	res  int
	opts ProgressiveOptions

	level int
	ex    *Exhaustive
	cur   cell.Index
	done  bool
	err   error
}

// NewProgressive enumerates root's subtree from root's resolution to res.
func NewProgressive(e *gridmath.Engine, root cell.Index, res int, opts ...Option) (*Progressive, error) {
	if _, err := e.CellCount(root, res); err != nil {
		return nil, err
	}
	var o ProgressiveOptions
	for _, opt := range opts {
		if opt == nil {
			return nil, fmt.Errorf("%w: nil option", ErrOptionViolation)
		}
		opt(&o)
	}
	it := &Progressive{e: e, root: root, res: res, opts: o}
	it.Reset()

	return it, it.err
}

// Reset rewinds to the root.
func (it *Progressive) Reset() {
	it.level, it.ex, it.done, it.err = it.root.Resolution(), nil, false, nil
	it.emit(it.root)
}

// Current returns the cell under the cursor.
func (it *Progressive) Current() cell.Index { return it.cur }

// Resolution returns the resolution the current cell was generated at,
// before any zero extension.
func (it *Progressive) Resolution() int { return it.level }

// AtEnd reports whether every resolution has been walked.
func (it *Progressive) AtEnd() bool { return it.done }

// Err returns the failure that ended the walk early.
func (it *Progressive) Err() error { return it.err }

// Advance moves to the next emitted cell, opening the next resolution when
// the current one is exhausted.
func (it *Progressive) Advance() {
	if it.done {
		return
	}
	for {
		if it.ex == nil || it.ex.AtEnd() {
			if it.ex != nil && it.ex.Err() != nil {
				it.fail(it.ex.Err())

				return
			}
			it.level++
			if it.level > it.res {
				it.cur, it.done = cell.Index{}, true

				return
			}
			ex, err := NewExhaustive(it.e, it.root, it.level)
			if err != nil {
				it.fail(err)

				return
			}
			it.ex = ex
		} else {
			it.ex.Advance()
		}
		if it.ex.AtEnd() {
			continue
		}
		c := it.ex.Current()
		if !it.opts.RepeatCentroid && !c.IsBare() && c.Path().Trailing() == digits.Centroid {
			continue
		}
		it.emit(c)

		return
	}
}

func (it *Progressive) emit(c cell.Index) {
	if !it.opts.ZeroExtend {
		it.cur = c

		return
	}
	ext, err := c.SetResolution(it.res)
	if err != nil {
		it.fail(err)

		return
	}
	it.cur = ext
}

func (it *Progressive) fail(err error) {
	it.err, it.done, it.cur = err, true, cell.Index{}
}
