package mapper

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
	"github.com/xuri/excelize/v2"
)

// Source selects how a workbook is produced: a fresh blank sheet, or the
// cells of an existing template workbook.
type Source struct {
	template []byte
	isBlank  bool
}

// Blank returns a Source that builds a new worksheet from scratch.
func Blank() Source {
	return Source{isBlank: true}
}

// Template returns a Source that fills the workbook encoded in data.
func Template(data []byte) Source {
	return Source{template: data}
}

// IsBlank reports whether s builds a new worksheet.
func (s Source) IsBlank() bool {
	return s.isBlank
}

// Map writes form into the workbook selected by src and returns the
// serialized xlsx. The form is expected to be a normalized snapshot.
func Map(form models.FormState, src Source) ([]byte, error) {
	var (
		f     *excelize.File
		sheet string
		err   error
	)
	if src.IsBlank() {
		f = excelize.NewFile()
		sheet, err = writeBlank(f, form)
	} else {
		f, sheet, err = OpenTemplate(src.template)
		if err != nil {
			return nil, err
		}
		err = fillTemplate(f, sheet, form)
	}
	defer f.Close()
	if err != nil {
		return nil, err
	}

	// A blank sheet is fitted exactly; a template keeps its designed widths
	// and only grows where content needs it.
	if err := AutoFitColumns(f, sheet, src.IsBlank()); err != nil {
		return nil, &WriteError{Sheet: sheet, Err: err}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, &WriteError{Sheet: sheet, Err: err}
	}
	return buf.Bytes(), nil
}

// OpenTemplate opens data as a workbook and returns its first worksheet.
func OpenTemplate(data []byte) (*excelize.File, string, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		f.Close()
		return nil, "", fmt.Errorf("%w: no worksheet", ErrUnreadableWorkbook)
	}
	return f, sheets[0], nil
}

func writeBlank(f *excelize.File, form models.FormState) (string, error) {
	sheet := BlankSheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return "", &WriteError{Sheet: sheet, Err: err}
	}

	w := cellWriter{f: f, sheet: sheet}
	for i, h := range BlankHeader {
		w.set(colName(i+1)+"1", h)
	}

	row := 2
	for _, r := range form.LessonPlanRows {
		n := strconv.Itoa(row)
		w.set("A"+n, r.Date.Format(models.InputDateLayout))
		w.set("B"+n, r.Detail)
		w.set("C"+n, r.Note)
		row++
	}
	return sheet, w.err
}

func fillTemplate(f *excelize.File, sheet string, form models.FormState) error {
	if len(form.LessonPlanRows) > SlotCount {
		return fmt.Errorf("%w: %d rows, %d slots", ErrTooManyRows, len(form.LessonPlanRows), SlotCount)
	}
	w := cellWriter{f: f, sheet: sheet}
	w.set(AcademyCell, form.Course.AcademyName)
	w.set(ClassMonthCell, FormatClassMonth(form.Course.ClassYear, form.Course.ClassMonth))
	w.set(SubjectsCell, form.Course.Subjects)
	w.set(ObjectivesCell, FormatObjectives(form.Objectives))

	// Every slot is written so unused blocks are cleared, not left with
	// whatever the template shipped.
	for _, slot := range LessonSlots {
		var r models.LessonPlanRow
		if slot.Index < len(form.LessonPlanRows) {
			r = form.LessonPlanRows[slot.Index]
		}
		w.set(slot.DateCell(), r.Date.Format(models.SlotDateLayout))
		w.set(slot.DetailCell(), r.Detail)
		w.set(slot.NoteCell(), r.Note)
	}
	return w.err
}

// cellWriter stops at the first failed write and remembers the error.
type cellWriter struct {
	f     *excelize.File
	sheet string
	err   error
}

func (w *cellWriter) set(cell, value string) {
	if w.err != nil {
		return
	}
	if err := w.f.SetCellStr(w.sheet, cell, value); err != nil {
		w.err = &WriteError{Sheet: w.sheet, Cell: cell, Err: err}
	}
}

func colName(col int) string {
	name, _ := excelize.ColumnNumberToName(col)
	return name
}
