package lessonplan

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/mapper"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
)

func TestInspectBuiltinTemplate(t *testing.T) {
	data, err := mapper.DefaultTemplate()
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "template.xlsx")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	wb, err := Inspect(path)
	require.NoError(t, err)
	assert.Equal(t, "template.xlsx", wb.BookName)
	require.Equal(t, []string{mapper.TemplateSheetName}, wb.SheetOrder)

	sheet := wb.Sheets[mapper.TemplateSheetName]
	assert.Equal(t, "학원명", sheet.Cell("A", 4))
	assert.Contains(t, sheet.MergedRanges, "B8:G15")
	assert.Equal(t, []models.PrintArea{{R1: 1, C1: 1, R2: 39, C2: 7}}, sheet.PrintAreas)
}

func TestInspectMissingFile(t *testing.T) {
	_, err := Inspect(filepath.Join(t.TempDir(), "missing.xlsx"))
	assert.Error(t, err)
}
