package cmd

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dggs/bfs"
	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/digits"
	"github.com/katalvlaran/dggs/gridmath"
)

func parseCell(s string) (cell.Index, error) {
	idx, err := cell.Parse(s)
	if err != nil {
		return cell.Index{}, errors.Wrapf(err, "failed to parse cell %q", s)
	}

	return idx, nil
}

func parseDirection(s string) (digits.Direction, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < int(digits.Dir1) || n > int(digits.Dir6) {
		return digits.Centroid, errors.Errorf("direction %q is not one of 1..6", s)
	}

	return digits.Direction(n), nil
}

func kindOf(idx cell.Index) string {
	if idx.IsPentagon() {
		return "pentagon"
	}

	return "hexagon"
}

func typeOf(idx cell.Index) string {
	if idx.IsVertexChild() {
		return "vertex"
	}

	return "centroid"
}

// withEngine runs fn with a fresh engine and tears the tables down after.
func withEngine(fn func(e *gridmath.Engine) error) error {
	e, teardown, err := newEngine()
	if err != nil {
		return err
	}
	defer teardown()

	return fn(e)
}

// NewInspectCmd describes cells: resolution, class, shape, parent and
// position in the world order.
func NewInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <cell>...",
		Short:   "describe cells",
		Example: "  dggs inspect 1 A-0 3-00201",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e *gridmath.Engine) error {
				r := newReport("CELL", "RES", "CLASS", "SHAPE", "TYPE", "PARENT", "POSITION")
				for _, s := range args {
					idx, err := parseCell(s)
					if err != nil {
						return err
					}
					parent := "-"
					if p, err := e.ZoomOut(idx); err == nil {
						parent = p.String()
					}
					pos, err := e.WorldPosition(idx)
					if err != nil {
						return errors.Wrapf(err, "failed to place %s", idx)
					}
					r.add(idx.String(), strconv.Itoa(idx.Resolution()), idx.Class().String(),
						kindOf(idx), typeOf(idx), parent, strconv.FormatInt(pos, 10))
				}

				return r.render(cmd.OutOrStdout())
			})
		},
	}
}

// NewMoveCmd steps from a cell through a sequence of directions, each taken
// in the frame of the cell reached so far.
func NewMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "move <cell> <direction>...",
		Short:   "step from a cell through directions 1..6",
		Example: "  dggs move 1-02 6 2",
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e *gridmath.Engine) error {
				cur, err := parseCell(args[0])
				if err != nil {
					return err
				}
				r := newReport("STEP", "DIRECTION", "CELL", "ROTATION")
				r.add("0", "-", cur.String(), "0")
				for i, s := range args[1:] {
					d, err := parseDirection(s)
					if err != nil {
						return err
					}
					next, rot, err := e.MoveWithRotation(cur, d)
					if err != nil {
						return errors.Wrapf(err, "step %d from %s", i+1, cur)
					}
					cur = next
					r.add(strconv.Itoa(i+1), d.String(), cur.String(), strconv.Itoa(rot))
				}

				return r.render(cmd.OutOrStdout())
			})
		},
	}
}

// NewNeighboursCmd lists the neighbours of a cell by direction.
func NewNeighboursCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "neighbours <cell>",
		Aliases: []string{"neighbors"},
		Short:   "list the neighbours of a cell",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e *gridmath.Engine) error {
				idx, err := parseCell(args[0])
				if err != nil {
					return err
				}
				r := newReport("DIRECTION", "CELL", "ROTATION")
				for _, d := range digits.Directions() {
					n, rot, ok := e.TryMove(idx, d)
					if !ok {
						r.add(d.String(), "gap", "-")
						continue
					}
					r.add(d.String(), n.String(), strconv.Itoa(rot))
				}

				return r.render(cmd.OutOrStdout())
			})
		},
	}
}

// NewChildrenCmd lists what a cell owns one resolution down.
func NewChildrenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "children <cell>",
		Short: "list the children of a cell",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e *gridmath.Engine) error {
				idx, err := parseCell(args[0])
				if err != nil {
					return err
				}
				kids, err := e.Children(idx)
				if err != nil {
					return err
				}
				r := newReport("DIRECTION", "CELL", "TYPE")
				for _, k := range kids {
					r.add(e.ChildDirection(idx, k).String(), k.String(), typeOf(k))
				}

				return r.render(cmd.OutOrStdout())
			})
		},
	}
}

// NewCoveringCmd lists the coarser cells a cell overlaps.
func NewCoveringCmd() *cobra.Command {
	var all bool
	c := &cobra.Command{
		Use:   "covering <cell>",
		Short: "list the coarser cells a cell overlaps, with slice masks",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e *gridmath.Engine) error {
				idx, err := parseCell(args[0])
				if err != nil {
					return err
				}
				cov, err := e.AllCoveringCells(idx)
				if err != nil {
					return err
				}
				if !all {
					immediate, err := e.CoveringCells(idx)
					if err != nil {
						return err
					}
					cov = cov[:len(immediate)]
				}
				r := newReport("CELL", "RES", "SLICES")
				for _, cv := range cov {
					r.add(cv.Cell.String(), strconv.Itoa(cv.Cell.Resolution()), fmt.Sprintf("%012b", cv.Slices))
				}

				return r.render(cmd.OutOrStdout())
			})
		},
	}
	c.Flags().BoolVar(&all, "all", false, "include every ancestor down to resolution 0")

	return c
}

// NewDistanceCmd counts the steps between two cells of one resolution.
func NewDistanceCmd() *cobra.Command {
	var maxDepth int
	c := &cobra.Command{
		Use:   "distance <cell> <cell>",
		Short: "count the steps between two cells",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e *gridmath.Engine) error {
				a, err := parseCell(args[0])
				if err != nil {
					return err
				}
				b, err := parseCell(args[1])
				if err != nil {
					return err
				}
				d, err := bfs.Distance(e, a, b, maxDepth)
				if err != nil {
					return err
				}
				r := newReport("FROM", "TO", "STEPS")
				r.add(a.String(), b.String(), strconv.Itoa(d))

				return r.render(cmd.OutOrStdout())
			})
		},
	}
	c.Flags().IntVar(&maxDepth, "max-depth", 64, "give up after this many steps (0: no limit)")

	return c
}
