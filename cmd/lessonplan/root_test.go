package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/mapper"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
)

const formDoc = `academy_name: 한빛학원
class_year: 2024
class_month: 3
subjects: 국어
objectives: [A, B]
lessons:
  - date: 2024-03-05
    detail: d1
    note: n1
`

type testApp struct {
	*app
	stdout, stderr *bytes.Buffer
}

func newTestApp(t *testing.T) testApp {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	stdout, stderr := &bytes.Buffer{}, &bytes.Buffer{}
	return testApp{
		app: &app{
			stdin:         strings.NewReader(""),
			stdout:        stdout,
			stderr:        stderr,
			isInteractive: func() bool { return false },
			now:           func() time.Time { return time.Date(2024, time.March, 5, 9, 30, 0, 0, time.Local) },
		},
		stdout: stdout,
		stderr: stderr,
	}
}

func (a testApp) execute(args ...string) error {
	cmd := newRootCmd(a.app)
	cmd.SetArgs(args)
	return cmd.Execute()
}

func writeForm(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestGenerateCommand(t *testing.T) {
	a := newTestApp(t)
	outDir := t.TempDir()

	err := a.execute("generate", "--input", writeForm(t, formDoc), "--output-dir", outDir)
	require.NoError(t, err, a.stderr.String())

	path := filepath.Join(outDir, "LessonPlan_20240305093000.xlsx")
	assert.Contains(t, a.stdout.String(), "강의계획서가 생성되었습니다.")
	assert.Contains(t, a.stdout.String(), path)
	assert.Contains(t, a.stderr.String(), "lesson plan generated")

	wb, err := lessonplan.Inspect(path)
	require.NoError(t, err)
	sheet := wb.Sheets[mapper.TemplateSheetName]
	assert.Equal(t, "◎ A\n\n◎ B", sheet.Cell("B", 8))
	assert.Equal(t, "03/05", sheet.Cell("A", 20))
}

func TestGenerateCommandBlankMode(t *testing.T) {
	a := newTestApp(t)
	outDir := t.TempDir()
	t.Setenv("LESSONPLAN_MODE", "blank")

	require.NoError(t, a.execute("generate", "-i", writeForm(t, formDoc), "-o", outDir))

	wb, err := lessonplan.Inspect(filepath.Join(outDir, "LessonPlan_20240305093000.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, []string{mapper.BlankSheetName}, wb.SheetOrder)
}

func TestGenerateCommandCapacityNotice(t *testing.T) {
	a := newTestApp(t)
	doc := formDoc + "  - detail: 2\n  - detail: 3\n  - detail: 4\n  - detail: 5\n  - detail: 6\n"

	require.NoError(t, a.execute("generate", "-i", writeForm(t, doc), "-o", t.TempDir()))
	assert.Contains(t, a.stderr.String(), "강의계획은 최대 5개까지 추가할 수 있어요.")
}

func TestGenerateCommandFailureNotice(t *testing.T) {
	a := newTestApp(t)
	outDir := t.TempDir()

	err := a.execute("generate", "-i", writeForm(t, formDoc), "-o", outDir,
		"--template", filepath.Join(t.TempDir(), "missing.xlsx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, lessonplan.ErrResourceNotFound)

	var reported reportedError
	assert.ErrorAs(t, err, &reported)
	assert.Contains(t, a.stderr.String(), "오류")
	assert.Contains(t, a.stderr.String(), "템플릿 파일을 찾을 수 없습니다.")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestGenerateCommandNeedsInput(t *testing.T) {
	a := newTestApp(t)
	err := a.execute("generate", "-o", t.TempDir())
	assert.ErrorContains(t, err, "no form input")
}

func TestTemplateAndInspectCommands(t *testing.T) {
	a := newTestApp(t)
	path := filepath.Join(t.TempDir(), "custom.xlsx")

	require.NoError(t, a.execute("template", path))
	assert.FileExists(t, path)

	a.stdout.Reset()
	require.NoError(t, a.execute("inspect", path))

	var wb models.WorkbookData
	require.NoError(t, json.Unmarshal(a.stdout.Bytes(), &wb))
	assert.Equal(t, "custom.xlsx", wb.BookName)
	assert.Equal(t, "학원명", wb.Sheets[mapper.TemplateSheetName].Cell("A", 4))

	// The exported template works as a --template source.
	outDir := t.TempDir()
	require.NoError(t, a.execute("generate", "-i", writeForm(t, formDoc), "-o", outDir, "--template", path))
	wbOut, err := lessonplan.Inspect(filepath.Join(outDir, "LessonPlan_20240305093000.xlsx"))
	require.NoError(t, err)
	assert.Equal(t, "한빛학원", wbOut.Sheets[mapper.TemplateSheetName].Cell("B", 4))
}

func TestInspectMissingFile(t *testing.T) {
	a := newTestApp(t)
	err := a.execute("inspect", filepath.Join(t.TempDir(), "nope.xlsx"))
	assert.ErrorContains(t, err, "file not found")
}
