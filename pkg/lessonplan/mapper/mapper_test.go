package mapper

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
	"github.com/xuri/excelize/v2"
)

func sampleForm(rows ...models.LessonPlanRow) models.FormState {
	return models.FormState{
		Course: models.CourseMetadata{
			AcademyName: "한빛학원",
			Subjects:    "국어, 수학",
			Instructor:  "김선생",
			ClassYear:   2024,
			ClassMonth:  3,
		},
		Objectives:     []string{"A", "B"},
		LessonPlanRows: rows,
	}
}

func defaultTemplate(t *testing.T) []byte {
	t.Helper()
	data, err := DefaultTemplate()
	require.NoError(t, err)
	return data
}

// openSheet opens generated bytes and returns the workbook with its first sheet.
func openSheet(t *testing.T, data []byte) (*excelize.File, string) {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	t.Cleanup(func() { f.Close() })
	return f, f.GetSheetList()[0]
}

func cellValue(t *testing.T, f *excelize.File, sheet, cell string) string {
	t.Helper()
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

func TestMapTemplateHeader(t *testing.T) {
	data, err := Map(sampleForm(), Template(defaultTemplate(t)))
	require.NoError(t, err)

	f, sheet := openSheet(t, data)
	assert.Equal(t, TemplateSheetName, sheet)
	assert.Equal(t, "한빛학원", cellValue(t, f, sheet, "B4"))
	assert.Equal(t, "2024년 3월", cellValue(t, f, sheet, "B6"))
	assert.Equal(t, "국어, 수학", cellValue(t, f, sheet, "B7"))
	assert.Equal(t, "◎ A\n\n◎ B", cellValue(t, f, sheet, "B8"))
	assert.Equal(t, "학원명", cellValue(t, f, sheet, "A4"), "template labels are kept")
}

func TestMapTemplateNoObjectives(t *testing.T) {
	form := sampleForm()
	form.Objectives = nil

	data, err := Map(form, Template(defaultTemplate(t)))
	require.NoError(t, err)

	f, sheet := openSheet(t, data)
	assert.Equal(t, "", cellValue(t, f, sheet, "B8"))
}

func TestMapTemplateEmptySlots(t *testing.T) {
	data, err := Map(sampleForm(), Template(defaultTemplate(t)))
	require.NoError(t, err)

	f, sheet := openSheet(t, data)
	for _, row := range []string{"20", "24", "28", "32", "36"} {
		for _, col := range []string{"A", "B", "F"} {
			assert.Equal(t, "", cellValue(t, f, sheet, col+row), col+row)
		}
	}
}

func TestMapTemplateFirstSlot(t *testing.T) {
	form := sampleForm(models.LessonPlanRow{
		Date:   models.NewDate(2024, time.March, 5),
		Detail: "d1",
		Note:   "n1",
	})

	data, err := Map(form, Template(defaultTemplate(t)))
	require.NoError(t, err)

	f, sheet := openSheet(t, data)
	assert.Equal(t, "03/05", cellValue(t, f, sheet, "A20"))
	assert.Equal(t, "d1", cellValue(t, f, sheet, "B20"))
	assert.Equal(t, "n1", cellValue(t, f, sheet, "F20"))
	for _, row := range []string{"24", "28", "32", "36"} {
		for _, col := range []string{"A", "B", "F"} {
			assert.Equal(t, "", cellValue(t, f, sheet, col+row), col+row)
		}
	}
}

func TestMapTemplateRowWithoutDate(t *testing.T) {
	form := sampleForm(
		models.LessonPlanRow{Date: models.NewDate(2024, time.March, 5), Detail: "d1"},
		models.LessonPlanRow{Detail: "d2", Note: "n2"},
	)

	data, err := Map(form, Template(defaultTemplate(t)))
	require.NoError(t, err)

	f, sheet := openSheet(t, data)
	assert.Equal(t, "", cellValue(t, f, sheet, "A24"))
	assert.Equal(t, "d2", cellValue(t, f, sheet, "B24"))
	assert.Equal(t, "n2", cellValue(t, f, sheet, "F24"))
}

func TestMapTemplateClearsStaleSlots(t *testing.T) {
	tf, err := excelize.OpenReader(bytes.NewReader(defaultTemplate(t)))
	require.NoError(t, err)
	require.NoError(t, tf.SetCellStr(TemplateSheetName, "B36", "stale"))
	var buf bytes.Buffer
	require.NoError(t, tf.Write(&buf))
	tf.Close()

	data, err := Map(sampleForm(), Template(buf.Bytes()))
	require.NoError(t, err)

	f, sheet := openSheet(t, data)
	assert.Equal(t, "", cellValue(t, f, sheet, "B36"))
}

func TestMapTemplatePreservesLayout(t *testing.T) {
	template := defaultTemplate(t)
	tf, sheet := openSheet(t, template)
	wantMerged, err := MergedRanges(tf, sheet)
	require.NoError(t, err)
	wantWidth, err := tf.GetColWidth(sheet, "B")
	require.NoError(t, err)

	data, err := Map(sampleForm(models.LessonPlanRow{Detail: "아주 긴 강의계획 내용이 들어가는 칸"}), Template(template))
	require.NoError(t, err)

	f, sheet := openSheet(t, data)
	gotMerged, err := MergedRanges(f, sheet)
	require.NoError(t, err)
	assert.ElementsMatch(t, wantMerged, gotMerged)

	gotWidth, err := f.GetColWidth(sheet, "B")
	require.NoError(t, err)
	assert.Equal(t, wantWidth, gotWidth, "merged content does not resize columns")
	assert.Equal(t, PrintAreas(tf), PrintAreas(f))
}

func TestMapTemplateCorrupt(t *testing.T) {
	for name, data := range map[string][]byte{
		"nil":     nil,
		"garbage": []byte("not a workbook"),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Map(sampleForm(), Template(data))
			assert.ErrorIs(t, err, ErrUnreadableWorkbook)
		})
	}
}

func TestMapTemplateRejectsExtraRows(t *testing.T) {
	rows := make([]models.LessonPlanRow, SlotCount+1)
	for i := range rows {
		rows[i] = models.LessonPlanRow{Detail: string(rune('a' + i))}
	}

	data, err := Map(sampleForm(rows...), Template(defaultTemplate(t)))
	assert.ErrorIs(t, err, ErrTooManyRows)
	assert.Nil(t, data)
}

func TestMapBlank(t *testing.T) {
	form := sampleForm(
		models.LessonPlanRow{Date: models.NewDate(2024, time.March, 5), Detail: "d1", Note: "n1"},
		models.LessonPlanRow{Detail: "d2", Note: "n2"},
	)

	data, err := Map(form, Blank())
	require.NoError(t, err)

	f, sheet := openSheet(t, data)
	assert.Equal(t, BlankSheetName, sheet)
	assert.Len(t, f.GetSheetList(), 1)

	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"강의일자", "강의계획", "비고"}, rows[0])
	assert.Equal(t, []string{"2024-03-05", "d1", "n1"}, rows[1])
	assert.Equal(t, []string{"", "d2", "n2"}, rows[2])
}

func TestMapBlankNoRows(t *testing.T) {
	data, err := Map(sampleForm(), Blank())
	require.NoError(t, err)

	f, sheet := openSheet(t, data)
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"강의일자", "강의계획", "비고"}}, rows)
}

func TestMapBlankAutoFit(t *testing.T) {
	data, err := Map(sampleForm(models.LessonPlanRow{Detail: "가나다라마바사"}), Blank())
	require.NoError(t, err)

	f, sheet := openSheet(t, data)
	width, err := f.GetColWidth(sheet, "B")
	require.NoError(t, err)
	assert.Equal(t, float64(14+columnPadding), width)

	width, err = f.GetColWidth(sheet, "C")
	require.NoError(t, err)
	assert.Equal(t, float64(4+columnPadding), width, "header 비고 is the widest cell")
}

func TestMapDeterministic(t *testing.T) {
	form := sampleForm(models.LessonPlanRow{Date: models.NewDate(2024, time.March, 5), Detail: "d1", Note: "n1"})
	template := defaultTemplate(t)

	read := func() []models.CellRow {
		data, err := Map(form, Template(template))
		require.NoError(t, err)
		f, sheet := openSheet(t, data)
		rows, err := ReadCells(f, sheet)
		require.NoError(t, err)
		return rows
	}

	assert.Equal(t, read(), read())
}
