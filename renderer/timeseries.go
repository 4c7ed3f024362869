package renderer

import (
	"bytes"
	"fmt"

	"github.com/fundfolio/fundfolio"
	md "github.com/nao1215/markdown"
)

// TimeseriesMarkdown renders a daily profit series as a markdown table.
// The title names the scheme, or the whole portfolio when scheme is empty.
func TimeseriesMarkdown(series fundfolio.PnLSeries, scheme string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if scheme != "" {
		doc.H1(fmt.Sprintf("PnL History for %s", scheme))
	} else {
		doc.H1("Portfolio PnL History")
	}

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Invested", "Value", "PnL", "PnL %"},
		Rows:   [][]string{},
	}
	for _, p := range series {
		table.Rows = append(table.Rows, []string{
			p.Date.String(),
			p.TotalInvested.Fixed(2),
			p.CurrentValue.Fixed(2),
			p.PnL.Fixed(2),
			p.PnLPercent.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
