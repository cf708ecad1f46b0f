package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fundbench"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the run overview: one row per analyzed fund,
// plus the skipped queries. An empty run renders the no-data message
// instead of an empty table.
func SummaryMarkdown(r *fundbench.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Fund vs Benchmark %s", r.Window))

	if len(r.Summaries) == 0 {
		doc.PlainText(noDataMessage)
	} else {
		table := md.TableSet{Header: summaryHeader}
		for _, s := range r.Summaries {
			table.Rows = append(table.Rows, summaryStrings(s))
		}
		doc.CustomTable(table, tableOptions)
	}

	if len(r.Skips) > 0 {
		doc.H2("Skipped")
		table := md.TableSet{Header: []string{"Query", "Reason"}}
		for _, s := range r.Skips {
			table.Rows = append(table.Rows, []string{s.Query, string(s.Reason)})
		}
		doc.CustomTable(table, tableOptions)
	}

	return doc.String()
}

// DetailMarkdown renders one fund's aligned series, with the literal
// detail column contract.
func DetailMarkdown(d *fundbench.FundDetail) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("%s (%d)", d.Name, d.Code))

	table := md.TableSet{Header: detailHeader}
	for _, row := range d.Rows {
		table.Rows = append(table.Rows, detailStrings(row))
	}
	doc.CustomTable(table, tableOptions)

	return doc.String()
}
