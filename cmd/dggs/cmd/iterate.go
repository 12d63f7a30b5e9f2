package cmd

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/iterator"
)

const (
	kindExhaustive  = "exhaustive"
	kindEdge        = "edge"
	kindSpiral      = "spiral"
	kindProgressive = "progressive"
	kindVertex      = "vertex"
)

var iterKinds = []string{kindExhaustive, kindEdge, kindSpiral, kindProgressive, kindVertex}

type iterateOpts struct {
	res            int
	rings          int
	limit          int
	zeroExtend     bool
	repeatCentroid bool
}

// annotated is an extra column read from the iterator for each row.
type annotated struct {
	column string
	value  func() string
}

// NewIterateCmd walks a subtree with one of the iterator kinds.
func NewIterateCmd() *cobra.Command {
	var o iterateOpts
	c := &cobra.Command{
		Use:   "iterate <kind> <cell>",
		Short: "enumerate cells: " + strings.Join(iterKinds, ", "),
		Example: `  dggs iterate exhaustive 2 --res 2
  dggs iterate edge A-0 --res 4
  dggs iterate spiral 1-00 --rings 2`,
		Args:      cobra.ExactArgs(2),
		ValidArgs: iterKinds,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := parseCell(args[1])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("res") {
				o.res = root.Resolution()
			}

			return withEngine(func(e *gridmath.Engine) error {
				it, extra, err := o.build(e, args[0], root)
				if err != nil {
					return err
				}
				header := []string{"#", "CELL"}
				if extra != nil {
					header = append(header, extra.column)
				}
				r := newReport(header...)
				n := 0
				for ; !it.AtEnd(); it.Advance() {
					if o.limit > 0 && n >= o.limit {
						logrus.Debugf("stopping after %d cells", n)
						break
					}
					row := []string{strconv.Itoa(n), it.Current().String()}
					if extra != nil {
						row = append(row, extra.value())
					}
					r.add(row...)
					n++
				}
				if err := it.Err(); err != nil {
					return errors.Wrapf(err, "%s iteration from %s", args[0], root)
				}

				return r.render(cmd.OutOrStdout())
			})
		},
	}
	c.Flags().IntVar(&o.res, "res", 0, "resolution to enumerate at (default: the cell's own)")
	c.Flags().IntVar(&o.rings, "rings", 1, "rings around the centre, for spiral")
	c.Flags().IntVar(&o.limit, "limit", 0, "stop after this many cells (0: no limit)")
	c.Flags().BoolVar(&o.zeroExtend, "zero-extend", false, "progressive: pad every cell to the target resolution")
	c.Flags().BoolVar(&o.repeatCentroid, "repeat-centroid", false, "progressive: emit centroid children at every resolution")

	return c
}

func (o iterateOpts) build(e *gridmath.Engine, kind string, root cell.Index) (iterator.Iterator, *annotated, error) {
	switch kind {
	case kindExhaustive:
		it, err := iterator.NewExhaustive(e, root, o.res)
		if err != nil {
			return nil, nil, err
		}

		return it, nil, nil
	case kindEdge:
		it, err := iterator.NewEdge(e, root, o.res)
		if err != nil {
			return nil, nil, err
		}

		return it, &annotated{"DIRECTION", func() string { return it.Direction().String() }}, nil
	case kindSpiral:
		var (
			it  *iterator.Spiral
			err error
		)
		if o.res > root.Resolution() {
			it, err = iterator.NewSpiralCover(e, root, o.res)
		} else {
			it, err = iterator.NewSpiral(e, root, o.rings)
		}
		if err != nil {
			return nil, nil, err
		}

		return it, &annotated{"RING", func() string { return strconv.Itoa(it.Ring()) }}, nil
	case kindProgressive:
		var opts []iterator.Option
		if o.zeroExtend {
			opts = append(opts, iterator.WithZeroExtend())
		}
		if o.repeatCentroid {
			opts = append(opts, iterator.WithRepeatCentroid())
		}
		it, err := iterator.NewProgressive(e, root, o.res, opts...)
		if err != nil {
			return nil, nil, err
		}

		return it, &annotated{"RES", func() string { return strconv.Itoa(it.Resolution()) }}, nil
	case kindVertex:
		it, err := iterator.NewVertex(e, root)
		if err != nil {
			return nil, nil, err
		}

		return it, &annotated{"DIRECTION", func() string { return it.Direction().String() }}, nil
	default:
		return nil, nil, errors.Errorf("unknown iterator %q, want one of %s", kind, strings.Join(iterKinds, ", "))
	}
}
