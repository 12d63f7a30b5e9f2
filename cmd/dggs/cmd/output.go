package cmd

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatYAML  = "yaml"
)

// report is a rectangular result: a header and string rows. YAML output
// renders each row as a mapping keyed by the header.
type report struct {
	header []string
	rows   [][]string
}

func newReport(header ...string) *report { return &report{header: header} }

func (r *report) add(cols ...string) { r.rows = append(r.rows, cols) }

// render writes r in the configured output format.
func (r *report) render(out io.Writer) error {
	switch f := viper.GetString(keyOutput); f {
	case formatTable, "":
		table := tablewriter.NewWriter(out)
		table.SetHeader(r.header)
		table.SetAutoWrapText(false)
		table.AppendBulk(r.rows)
		table.Render()

		return nil
	case formatYAML:
		doc := make([]map[string]string, len(r.rows))
		for i, row := range r.rows {
			m := make(map[string]string, len(r.header))
			for j, h := range r.header {
				if j < len(row) {
					m[h] = row[j]
				}
			}
			doc[i] = m
		}
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}

		return enc.Close()
	default:
		return errors.Errorf("unknown output format %q, want %s or %s", f, formatTable, formatYAML)
	}
}
