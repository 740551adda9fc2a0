package mapper

import (
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
	"github.com/xuri/excelize/v2"
)

// ReadCells returns the non-empty rows of a sheet keyed by column letter.
func ReadCells(f *excelize.File, sheetName string) ([]models.CellRow, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	var result []models.CellRow
	for rowIdx, row := range rows {
		cells := make(map[string]string)
		for colIdx, value := range row {
			if value == "" {
				continue
			}
			cells[colName(colIdx+1)] = value
		}
		if len(cells) > 0 {
			result = append(result, models.CellRow{R: rowIdx + 1, C: cells})
		}
	}

	return result, nil
}

// MergedRanges returns the merged regions of a sheet as "A1:G2" references.
func MergedRanges(f *excelize.File, sheetName string) ([]string, error) {
	cells, err := f.GetMergeCells(sheetName, true)
	if err != nil {
		return nil, err
	}

	ranges := make([]string, 0, len(cells))
	for _, mc := range cells {
		ranges = append(ranges, mc.GetStartAxis()+":"+mc.GetEndAxis())
	}
	return ranges, nil
}
