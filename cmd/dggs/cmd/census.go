package cmd

import (
	"context"
	"strconv"
	"sync/atomic"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/iterator"
)

// ErrCensusMismatch is returned when enumeration disagrees with the
// closed-form counts.
var ErrCensusMismatch = errors.New("census: enumerated count differs from the closed form")

type pentagonCensus struct {
	anchor   cell.Anchor
	faces    int
	counted  int64
	expected int64
}

// NewCensusCmd enumerates every pentagon's subtree in parallel and checks
// the totals against CellCount and WorldCount.
func NewCensusCmd() *cobra.Command {
	var (
		res     int
		workers int
	)
	c := &cobra.Command{
		Use:   "census",
		Short: "count the cells of every pentagon subtree at a resolution",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e *gridmath.Engine) error {
				rows, err := census(cmd.Context(), e, res, workers)
				if err != nil {
					return err
				}
				r := newReport("PENTAGON", "FACES", "CELLS", "EXPECTED")
				var total int64
				for _, p := range rows {
					r.add(p.anchor.String(), strconv.Itoa(p.faces),
						strconv.FormatInt(p.counted, 10), strconv.FormatInt(p.expected, 10))
					total += p.counted
				}
				world, err := e.WorldCount(res)
				if err != nil {
					return err
				}
				r.add("total", "", strconv.FormatInt(total, 10), strconv.FormatInt(world, 10))
				if err := r.render(cmd.OutOrStdout()); err != nil {
					return err
				}
				if total != world {
					return errors.Wrapf(ErrCensusMismatch, "resolution %d: %d cells, want %d", res, total, world)
				}

				return nil
			})
		},
	}
	c.Flags().IntVar(&res, "res", 4, "resolution to count at")
	c.Flags().IntVar(&workers, "workers", 4, "pentagons enumerated at once")

	return c
}

// census enumerates all twelve pentagon subtrees at res with at most
// workers running at once. The result is in pentagon order.
func census(ctx context.Context, e *gridmath.Engine, res, workers int) ([]pentagonCensus, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if workers < 1 {
		return nil, errors.Errorf("workers must be positive, got %d", workers)
	}
	pents := cell.Pentagons()
	out := make([]pentagonCensus, len(pents))
	var done int32

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, p := range pents {
		i, p := i, p
		eg.Go(func() error {
			root := cell.Bare(p)
			want, err := e.CellCount(root, res)
			if err != nil {
				return errors.Wrapf(err, "pentagon %s", p)
			}
			it, err := iterator.NewExhaustive(e, root, res)
			if err != nil {
				return errors.Wrapf(err, "pentagon %s", p)
			}
			var n int64
			for ; !it.AtEnd(); it.Advance() {
				if n&0xfff == 0 && ctx.Err() != nil {
					return ctx.Err()
				}
				n++
			}
			if err := it.Err(); err != nil {
				return errors.Wrapf(err, "pentagon %s", p)
			}
			if n != want {
				return errors.Wrapf(ErrCensusMismatch, "pentagon %s: %d cells, want %d", p, n, want)
			}
			out[i] = pentagonCensus{
				anchor:   p,
				faces:    len(e.Tables().OwnedFaces(p)),
				counted:  n,
				expected: want,
			}
			logrus.WithFields(logrus.Fields{
				"pentagon": p.String(),
				"cells":    n,
				"done":     atomic.AddInt32(&done, 1),
			}).Debug("pentagon counted")

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
