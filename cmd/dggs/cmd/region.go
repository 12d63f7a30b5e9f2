package cmd

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/gridmath"
	"github.com/katalvlaran/dggs/region"
)

// NewRegionCmd groups a set of cells into connected components and,
// with --bridge, joins the first two through the fewest added cells.
func NewRegionCmd() *cobra.Command {
	var (
		bridge  bool
		maxCost int
	)
	c := &cobra.Command{
		Use:     "region <cell>...",
		Short:   "split cells into connected components",
		Example: "  dggs region 1-02 1-03 1-05 --bridge",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withEngine(func(e *gridmath.Engine) error {
				cells := make([]cell.Index, 0, len(args))
				for _, s := range args {
					idx, err := parseCell(s)
					if err != nil {
						return err
					}
					cells = append(cells, idx)
				}
				reg, err := region.New(e, cells)
				if err != nil {
					return err
				}
				if bridge {
					path, cost, err := reg.Bridge(0, 1, maxCost)
					if err != nil {
						return errors.Wrap(err, "failed to bridge components 0 and 1")
					}
					r := newReport("STEP", "CELL", "ADDED")
					for i, c := range path {
						r.add(strconv.Itoa(i), c.String(), strconv.FormatBool(!reg.Contains(c)))
					}
					r.add("cost", strconv.Itoa(cost), "")

					return r.render(cmd.OutOrStdout())
				}

				edge := make(map[string]bool)
				for _, c := range reg.Boundary() {
					edge[c.String()] = true
				}
				r := newReport("COMPONENT", "CELL", "BOUNDARY")
				for i, comp := range reg.ConnectedComponents() {
					for _, c := range comp {
						r.add(strconv.Itoa(i), c.String(), strconv.FormatBool(edge[c.String()]))
					}
				}

				return r.render(cmd.OutOrStdout())
			})
		},
	}
	c.Flags().BoolVar(&bridge, "bridge", false, "join components 0 and 1 instead of listing them")
	c.Flags().IntVar(&maxCost, "max-cost", 0, "give up on bridges adding more cells than this (0: no limit)")

	return c
}
