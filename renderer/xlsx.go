package renderer

import (
	"fmt"
	"math"

	"github.com/etnz/fundbench"
	"github.com/xuri/excelize/v2"
)

// Cell fill colors, the original report's color code: tolerance High
// is green, Medium yellow, Low red; Against Market behavior is blue.
const (
	fillGreen  = "C6EFCE"
	fillYellow = "FFEB9C"
	fillRed    = "FFC7CE"
	fillBlue   = "BDD7EE"
)

// WriteWorkbook writes the report as an xlsx workbook: the Summary
// sheet first (color-coded tolerance and behavior cells), then one
// detail sheet per fund. An empty run produces a single No_Data sheet.
func WriteWorkbook(path string, r *fundbench.Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if len(r.Summaries) == 0 {
		if err := f.SetSheetName("Sheet1", "No_Data"); err != nil {
			return err
		}
		f.SetCellValue("No_Data", "A1", "Message")
		f.SetCellValue("No_Data", "A2", noDataMessage)
		return f.SaveAs(path)
	}

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return err
	}
	if err := writeSummary(f, r.Summaries); err != nil {
		return err
	}

	used := map[string]bool{"Summary": true, "No_Data": true}
	for i := range r.Details {
		if err := writeDetail(f, &r.Details[i], used); err != nil {
			return err
		}
	}

	index, err := f.GetSheetIndex("Summary")
	if err != nil {
		return err
	}
	f.SetActiveSheet(index)
	return f.SaveAs(path)
}

func writeSummary(f *excelize.File, summaries []fundbench.FundSummary) error {
	const sheet = "Summary"
	for col, h := range summaryHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
	}

	toleranceFill := map[fundbench.Tolerance]string{
		fundbench.HighTolerance:   fillGreen,
		fundbench.MediumTolerance: fillYellow,
		fundbench.LowTolerance:    fillRed,
	}

	for i, s := range summaries {
		row := i + 2
		values := []any{
			s.Query, s.Name, s.Code, s.House, s.LatestNAV.String(),
			s.DataPoints,
			cellValue(s.Correlation, 3),
			round(s.WithMarketPct, 1),
			round(s.AvgFundReturn, 4),
			round(s.AvgBenchReturn, 4),
			cellValue(s.UpCapture, 1),
			cellValue(s.DownCapture, 1),
			string(s.Behavior),
			string(s.Tolerance),
		}
		for col, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			f.SetCellValue(sheet, cell, v)
		}

		if color, ok := toleranceFill[s.Tolerance]; ok {
			if err := fill(f, sheet, len(values), row, color); err != nil {
				return err
			}
		}
		if s.Behavior == fundbench.AgainstMarket {
			if err := fill(f, sheet, len(values)-1, row, fillBlue); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeDetail(f *excelize.File, d *fundbench.FundDetail, used map[string]bool) error {
	sheet := sanitizeSheetName(fmt.Sprintf("%d_%s", d.Code, d.Name))
	for n := 2; used[sheet]; n++ {
		sheet = sanitizeSheetName(fmt.Sprintf("%d_%d_%s", n, d.Code, d.Name))
	}
	used[sheet] = true

	if _, err := f.NewSheet(sheet); err != nil {
		return err
	}
	for col, h := range detailHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheet, cell, h)
	}
	for i, r := range d.Rows {
		values := []any{
			r.Date.String(), r.FundStart, r.FundEnd, r.FundChangePct,
			r.BenchStart, r.BenchEnd, r.BenchChangePct,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheet, cell, v)
		}
	}
	return nil
}

// fill colors the cell at the given 1-based column/row.
func fill(f *excelize.File, sheet string, col, row int, color string) error {
	style, err := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}

// cellValue converts a metric to a rounded cell value, or nil to leave
// the cell empty when the metric is undefined.
func cellValue(v fundbench.Value, decimals int) any {
	f, ok := v.Float64()
	if !ok {
		return nil
	}
	return round(f, decimals)
}

func round(v float64, decimals int) float64 {
	pow := math.Pow10(decimals)
	return math.Round(v*pow) / pow
}
