package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// tableLayout describes how renderTable lays out rows.
type tableLayout struct {
	Headers []string
	Aligns  []columnAlignment
	// Footer is printed under the rows when set.
	Footer []string
	// Merge lists zero-based columns whose repeated values collapse into one
	// cell, such as the cup name over its four courses.
	Merge []int
	// GroupEvery draws a rule after every n rows; zero disables it.
	GroupEvery int
}

func renderTable(layout tableLayout, rows [][]string) string {
	columns := len(layout.Headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(layout.Headers, columns))
	for i, row := range rows {
		if layout.GroupEvery > 0 && i > 0 && i%layout.GroupEvery == 0 {
			tw.AppendSeparator()
		}
		tw.AppendRow(toRow(row, columns))
	}
	if len(layout.Footer) > 0 {
		tw.AppendFooter(toRow(layout.Footer, columns))
	}

	merged := make(map[int]bool, len(layout.Merge))
	for _, col := range layout.Merge {
		merged[col] = true
	}
	configs := make([]table.ColumnConfig, 0, columns)
	for i := range columns {
		align := text.AlignLeft
		if i < len(layout.Aligns) && layout.Aligns[i] == alignRight {
			align = text.AlignRight
		}
		configs = append(configs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignFooter: align,
			AlignHeader: text.AlignLeft,
			AutoMerge:   merged[i],
			VAlign:      text.VAlignMiddle,
		})
	}
	tw.SetColumnConfigs(configs)

	return tw.Render()
}

// toRow pads or truncates cells to exactly columns entries.
func toRow(cells []string, columns int) table.Row {
	row := make(table.Row, columns)
	for i := range row {
		if i < len(cells) {
			row[i] = cells[i]
		} else {
			row[i] = ""
		}
	}
	return row
}
