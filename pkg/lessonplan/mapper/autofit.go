package mapper

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"
)

const (
	// maxColumnWidth is the widest column Excel accepts.
	maxColumnWidth = 255
	columnPadding  = 2
)

// AutoFitColumns sizes every column of the sheet's used range to its widest
// line of text, measured in display cells so Hangul counts double.
// Cells inside merged regions are skipped. When shrink is false a column is
// only ever widened.
func AutoFitColumns(f *excelize.File, sheet string, shrink bool) error {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return err
	}

	minRow, maxRow, minCol, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return nil
	}

	merged, err := mergedCells(f, sheet)
	if err != nil {
		return err
	}

	for col := minCol; col <= maxCol; col++ {
		width := 0
		for rowIdx := minRow; rowIdx <= maxRow; rowIdx++ {
			row := rows[rowIdx]
			if col >= len(row) || row[col] == "" || merged[cellKey{col + 1, rowIdx + 1}] {
				continue
			}
			width = max(width, textWidth(row[col]))
		}
		if width == 0 {
			continue
		}

		target := float64(min(width+columnPadding, maxColumnWidth))
		name := colName(col + 1)
		if !shrink {
			current, err := f.GetColWidth(sheet, name)
			if err != nil {
				return err
			}
			if current >= target {
				continue
			}
		}
		if err := f.SetColWidth(sheet, name, name, target); err != nil {
			return err
		}
	}
	return nil
}

// textWidth returns the display width of the widest line of s.
func textWidth(s string) int {
	w := 0
	for _, line := range strings.Split(s, "\n") {
		w = max(w, runewidth.StringWidth(line))
	}
	return w
}

type cellKey struct{ col, row int }

// mergedCells returns the set of coordinates covered by merged regions.
func mergedCells(f *excelize.File, sheet string) (map[cellKey]bool, error) {
	ranges, err := f.GetMergeCells(sheet)
	if err != nil {
		return nil, err
	}

	set := make(map[cellKey]bool)
	for _, mc := range ranges {
		c1, r1, err := excelize.CellNameToCoordinates(mc.GetStartAxis())
		if err != nil {
			return nil, err
		}
		c2, r2, err := excelize.CellNameToCoordinates(mc.GetEndAxis())
		if err != nil {
			return nil, err
		}
		for c := c1; c <= c2; c++ {
			for r := r1; r <= r2; r++ {
				set[cellKey{c, r}] = true
			}
		}
	}
	return set, nil
}

// findDataBounds finds the bounding box of non-empty cells.
// All bounds are -1 when every cell is empty.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minRow < 0 {
				minRow = rowIdx
			}
			maxRow = rowIdx
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
