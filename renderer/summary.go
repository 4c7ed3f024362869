package renderer

import (
	"bytes"
	"fmt"

	"github.com/fundfolio/fundfolio"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the checkpoint report as a markdown table,
// one row per resolved checkpoint.
func SummaryMarkdown(s *fundfolio.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if len(s.Rows) > 0 {
		doc.H1(fmt.Sprintf("Portfolio Summary on %s", s.Rows[0].Date))
	} else {
		doc.H1("Portfolio Summary")
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Checkpoint", "Date", "Invested", "Value", "PnL", "PnL %", "Change", "Change %"},
		Rows:   [][]string{},
	}
	for _, row := range s.Rows {
		table.Rows = append(table.Rows, []string{
			row.Label,
			row.Date.String(),
			row.TotalInvested.Fixed(0),
			row.CurrentValue.Fixed(0),
			row.PnL.Fixed(0),
			row.PnLPercent.String(),
			row.PnLChange.SignedString(),
			row.PnLChangePercent.SignedString(),
		})
	}
	doc.Table(table)

	return doc.String()
}
