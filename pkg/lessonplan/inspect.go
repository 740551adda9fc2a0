package lessonplan

import (
	"path/filepath"

	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/mapper"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
	"github.com/xuri/excelize/v2"
)

// Inspect reads a workbook back into its non-empty cells, merged regions
// and print areas.
func Inspect(path string) (*models.WorkbookData, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheetList := f.GetSheetList()
	sheets := make(map[string]models.SheetData, len(sheetList))
	printAreas := mapper.PrintAreas(f)

	for _, sheetName := range sheetList {
		rows, err := mapper.ReadCells(f, sheetName)
		if err != nil {
			return nil, &GenerationError{Step: "inspect", Err: err}
		}
		merged, err := mapper.MergedRanges(f, sheetName)
		if err != nil {
			return nil, &GenerationError{Step: "inspect", Err: err}
		}
		sheets[sheetName] = models.SheetData{
			Rows:         rows,
			MergedRanges: merged,
			PrintAreas:   printAreas[sheetName],
		}
	}

	return &models.WorkbookData{
		BookName:   filepath.Base(path),
		SheetOrder: sheetList,
		Sheets:     sheets,
	}, nil
}
