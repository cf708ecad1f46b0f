package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/fundbench"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the most recent NAV points of a fund, newest
// last. A non-positive last renders the whole history.
func HistoryMarkdown(h *fundbench.FundHistory, last int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	title := h.Name
	if h.House != "" {
		title = fmt.Sprintf("%s — %s", h.Name, h.House)
	}
	doc.H1(title)

	skip := 0
	if last > 0 && h.NAV.Len() > last {
		skip = h.NAV.Len() - last
	}
	table := md.TableSet{Header: []string{"date", "nav"}}
	i := 0
	for on, value := range h.NAV.Values() {
		if i >= skip {
			table.Rows = append(table.Rows, []string{on.String(), fmt.Sprintf("%.4f", value)})
		}
		i++
	}
	doc.CustomTable(table, tableOptions)

	return doc.String()
}
