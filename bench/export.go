package bench

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Sheet names used by the spreadsheet exports.
const (
	resultsSheet   = "results"
	aggregateSheet = "aggregate"
)

// WriteXLSX exports raw run results to a spreadsheet: per result a row
// pair - reveal counts ("# Vertices evaluated") over cumulative matches
// ("# matches") - prefixed with the algorithm name, seed, and final
// matching size.
func WriteXLSX(path string, results []Result) error {
	if len(results) == 0 {
		return ErrNoResults
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", resultsSheet); err != nil {
		return fmt.Errorf("bench: xlsx: %w", err)
	}
	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("bench: xlsx: %w", err)
	}

	row := 1
	for _, r := range results {
		top := []interface{}{r.Algorithm, r.Seed, r.MatchingSize, "# Vertices evaluated"}
		bottom := []interface{}{"", "", "", "# matches"}
		for _, p := range r.Trend {
			top = append(top, p.Revealed)
			bottom = append(bottom, p.Matched)
		}
		if err = setRow(f, resultsSheet, row, top); err != nil {
			return err
		}
		if err = setRow(f, resultsSheet, row+1, bottom); err != nil {
			return err
		}
		nameCell, _ := excelize.CoordinatesToCellName(1, row)
		if err = f.SetCellStyle(resultsSheet, nameCell, nameCell, headerStyle); err != nil {
			return fmt.Errorf("bench: xlsx: %w", err)
		}
		row += 2
	}

	if err = f.SaveAs(path); err != nil {
		return fmt.Errorf("bench: xlsx: save %s: %w", path, err)
	}

	return nil
}

// WriteAggregateXLSX exports aggregated statistics, one row per
// (case, algorithm) group: size statistics followed by the pointwise
// trend mean and standard deviation columns.
func WriteAggregateXLSX(path string, aggs []Aggregate) error {
	if len(aggs) == 0 {
		return ErrNoResults
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", aggregateSheet); err != nil {
		return fmt.Errorf("bench: xlsx: %w", err)
	}

	trendLen := 0
	for _, a := range aggs {
		if len(a.MeanTrend) > trendLen {
			trendLen = len(a.MeanTrend)
		}
	}

	header := []interface{}{"id", "name", "repeats", "size_left", "size_right", "avg_matching_size", "std_matching_size"}
	for i := 0; i < trendLen; i++ {
		header = append(header, fmt.Sprintf("%d_avg", i))
	}
	for i := 0; i < trendLen; i++ {
		header = append(header, fmt.Sprintf("%d_std", i))
	}
	if err := setRow(f, aggregateSheet, 1, header); err != nil {
		return err
	}

	for i, a := range aggs {
		row := []interface{}{a.CaseID, a.Algorithm, a.Repeats, a.SizeLeft, a.SizeRight, a.MeanSize, a.StdSize}
		for _, v := range a.MeanTrend {
			row = append(row, v)
		}
		for pad := len(a.MeanTrend); pad < trendLen; pad++ {
			row = append(row, "")
		}
		for _, v := range a.StdTrend {
			row = append(row, v)
		}
		if err := setRow(f, aggregateSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("bench: xlsx: save %s: %w", path, err)
	}

	return nil
}

// setRow writes one spreadsheet row starting at column A.
func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return fmt.Errorf("bench: xlsx: %w", err)
	}
	if err = f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("bench: xlsx: row %d: %w", row, err)
	}

	return nil
}
