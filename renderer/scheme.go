package renderer

import (
	"bytes"
	"fmt"

	"github.com/fundfolio/fundfolio"
	md "github.com/nao1215/markdown"
)

// SchemeAbsoluteMarkdown renders the scheme-by-date profit pivot: one row per
// scheme, one PnL and PnL% column pair per date, most recent date first.
func SchemeAbsoluteMarkdown(s *fundfolio.SchemeAbsoluteSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Scheme PnL by Date")

	header := []string{"Scheme"}
	align := []md.TableAlignment{md.AlignLeft}
	for _, on := range s.Dates {
		header = append(header, fmt.Sprintf("PnL %s", on), fmt.Sprintf("PnL%% %s", on))
		align = append(align, md.AlignRight, md.AlignRight)
	}

	table := md.TableSet{Alignment: align, Header: header, Rows: [][]string{}}
	for _, row := range s.Rows {
		cells := []string{row.Scheme}
		for i := range s.Dates {
			cells = append(cells, row.PnL[i].Fixed(0), row.PnLPercent[i].String())
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	return doc.String()
}

// SchemeRelativeMarkdown renders the profit movement pivot: one row per
// checkpoint, one change and change% column pair per scheme.
func SchemeRelativeMarkdown(s *fundfolio.SchemeRelativeSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Scheme PnL Movement")

	header := []string{"Checkpoint"}
	align := []md.TableAlignment{md.AlignLeft}
	for _, scheme := range s.Schemes {
		header = append(header, fmt.Sprintf("Change %s", scheme), fmt.Sprintf("Change%% %s", scheme))
		align = append(align, md.AlignRight, md.AlignRight)
	}

	table := md.TableSet{Alignment: align, Header: header, Rows: [][]string{}}
	for i, label := range s.Labels {
		cells := []string{label}
		for col := range s.Schemes {
			cells = append(cells, s.Change[i][col].SignedString(), s.ChangePercent[i][col].SignedString())
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)

	return doc.String()
}
