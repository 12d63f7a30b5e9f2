package cmd

import (
	"strconv"

	"github.com/golang/geo/s1"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/dggs/cell"
	"github.com/katalvlaran/dggs/gridmath"
)

// NewPolarCmd converts between cells and polar positions on an anchor.
// With one or more cells it prints their centres; with --anchor, --angle
// and --radius it locates the cell holding that position at --res.
func NewPolarCmd() *cobra.Command {
	var (
		anchor string
		angle  float64
		radius float64
		res    int
	)
	c := &cobra.Command{
		Use:   "polar [<cell>...]",
		Short: "convert between cells and polar positions",
		Example: `  dggs polar 1-02 A-01
  dggs polar --anchor A --angle 30 --radius 0.2 --res 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if anchor == "" && len(args) == 0 {
				return errors.New("give cells, or --anchor with --angle and --radius")
			}

			return withEngine(func(e *gridmath.Engine) error {
				r := newReport("CELL", "ANCHOR", "ANGLE", "RADIUS")
				if anchor != "" {
					a, err := cell.ParseAnchor(anchor)
					if err != nil {
						return errors.Wrapf(err, "failed to parse anchor %q", anchor)
					}
					pos := gridmath.Polar{Anchor: a, Angle: s1.Angle(angle) * s1.Degree, Radius: radius}
					idx, err := e.PolarToIndex(pos, res)
					if err != nil {
						return err
					}
					r.add(idx.String(), a.String(), formatFloat(angle), formatFloat(radius))
				}
				for _, s := range args {
					idx, err := parseCell(s)
					if err != nil {
						return err
					}
					p, err := e.IndexToPolar(idx)
					if err != nil {
						return err
					}
					r.add(idx.String(), p.Anchor.String(), formatFloat(p.Angle.Degrees()), formatFloat(p.Radius))
				}

				return r.render(cmd.OutOrStdout())
			})
		},
	}
	c.Flags().StringVar(&anchor, "anchor", "", "anchor to locate from (1..12 or A..T)")
	c.Flags().Float64Var(&angle, "angle", 0, "angle in degrees, counter-clockwise")
	c.Flags().Float64Var(&radius, "radius", 0, "distance from the anchor centre")
	c.Flags().IntVar(&res, "res", 2, "resolution to locate at")

	return c
}

func formatFloat(f float64) string { return strconv.FormatFloat(f, 'f', 6, 64) }
