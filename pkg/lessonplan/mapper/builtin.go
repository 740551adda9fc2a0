package mapper

import (
	"bytes"
	"strconv"

	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
	"github.com/xuri/excelize/v2"
)

// TemplateSheetName is the worksheet name of the built-in template.
const TemplateSheetName = "강의계획서"

// templateLastColumn is the right edge of every merged region in the layout.
const templateLastColumn = "G"

type labelCell struct {
	cell, text string
	merge      string // bottom-right cell when the label spans rows
}

var (
	templateLabels = []labelCell{
		{cell: "A4", text: "학원명"},
		{cell: "A6", text: "수업 연월"},
		{cell: "A7", text: "과목"},
		{cell: "A8", text: "강의목표", merge: "A15"},
	}
	templateValueRows = []string{"4", "6", "7"}
)

// DefaultTemplate renders the packaged lesson-plan layout: a title, the
// course header in B4..B8 and SlotCount four-row lesson blocks under a header
// block at FirstSlotRow.
func DefaultTemplate() ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := TemplateSheetName
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, err
	}

	styles, err := newTemplateStyles(f)
	if err != nil {
		return nil, err
	}

	lastRow := LessonSlots[len(LessonSlots)-1].LastRow()
	b := templateBuilder{f: f, sheet: sheet}

	b.merge("A1", templateLastColumn+"2")
	b.set("A1", TemplateSheetName)
	b.style("A1", templateLastColumn+"2", styles.title)

	b.style("A4", templateLastColumn+"4", styles.box)
	b.style("A6", templateLastColumn+strconv.Itoa(lastRow), styles.box)
	for _, row := range templateValueRows {
		b.merge("B"+row, templateLastColumn+row)
	}
	b.merge(ObjectivesCell, templateLastColumn+"15")
	b.style(ObjectivesCell, templateLastColumn+"15", styles.wrap)

	for _, l := range templateLabels {
		end := l.cell
		if l.merge != "" {
			b.merge(l.cell, l.merge)
			end = l.merge
		}
		b.set(l.cell, l.text)
		b.style(l.cell, end, styles.label)
	}

	header := Slot{Index: -1, Row: FirstSlotRow}
	b.block(header)
	b.set(header.DateCell(), BlankHeader[0])
	b.set(header.DetailCell(), BlankHeader[1])
	b.set(header.NoteCell(), BlankHeader[2])
	b.style(header.DateCell(), templateLastColumn+strconv.Itoa(header.LastRow()), styles.label)

	for _, slot := range LessonSlots {
		b.block(slot)
		b.style(slot.DetailCell(), templateLastColumn+strconv.Itoa(slot.LastRow()), styles.wrap)
	}

	b.width("A", "A", 12)
	b.width("B", templateLastColumn, 14)
	if b.err != nil {
		return nil, b.err
	}

	if err := SetPrintArea(f, sheet, models.PrintArea{R1: 1, C1: 1, R2: lastRow, C2: 7}); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

type templateStyles struct {
	title, box, label, wrap int
}

func newTemplateStyles(f *excelize.File) (templateStyles, error) {
	var s templateStyles
	border := []excelize.Border{
		{Type: "left", Color: "000000", Style: 1},
		{Type: "top", Color: "000000", Style: 1},
		{Type: "right", Color: "000000", Style: 1},
		{Type: "bottom", Color: "000000", Style: 1},
	}
	center := &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true}

	defs := []struct {
		id    *int
		style *excelize.Style
	}{
		{&s.title, &excelize.Style{
			Font:      &excelize.Font{Bold: true, Size: 18},
			Alignment: center,
		}},
		{&s.box, &excelize.Style{
			Border:    border,
			Alignment: &excelize.Alignment{Vertical: "center"},
		}},
		{&s.label, &excelize.Style{
			Border:    border,
			Font:      &excelize.Font{Bold: true},
			Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"D9E1F2"}},
			Alignment: center,
		}},
		{&s.wrap, &excelize.Style{
			Border:    border,
			Alignment: &excelize.Alignment{Vertical: "top", WrapText: true},
		}},
	}
	for _, d := range defs {
		id, err := f.NewStyle(d.style)
		if err != nil {
			return s, err
		}
		*d.id = id
	}
	return s, nil
}

// templateBuilder stops at the first failed call and remembers the error.
type templateBuilder struct {
	f     *excelize.File
	sheet string
	err   error
}

func (b *templateBuilder) set(cell, value string) {
	if b.err == nil {
		b.err = b.f.SetCellStr(b.sheet, cell, value)
	}
}

func (b *templateBuilder) merge(from, to string) {
	if b.err == nil {
		b.err = b.f.MergeCell(b.sheet, from, to)
	}
}

func (b *templateBuilder) style(from, to string, id int) {
	if b.err == nil {
		b.err = b.f.SetCellStyle(b.sheet, from, to, id)
	}
}

func (b *templateBuilder) width(from, to string, w float64) {
	if b.err == nil {
		b.err = b.f.SetColWidth(b.sheet, from, to, w)
	}
}

// block merges the date, detail (B:E) and note (F:G) columns of a four-row block.
func (b *templateBuilder) block(s Slot) {
	last := strconv.Itoa(s.LastRow())
	b.merge(s.DateCell(), SlotDateColumn+last)
	b.merge(s.DetailCell(), "E"+last)
	b.merge(s.NoteCell(), templateLastColumn+last)
}
