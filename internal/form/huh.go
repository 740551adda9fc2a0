package form

import (
	"fmt"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// HuhPrompter asks questions with huh terminal forms.
type HuhPrompter struct {
	Now        time.Time
	Accessible bool
}

func (p HuhPrompter) run(groups ...*huh.Group) error {
	return huh.NewForm(groups...).
		WithTheme(lessonPlanTheme()).
		WithShowHelp(false).
		WithAccessible(p.Accessible).
		Run()
}

func (p HuhPrompter) Course(in *CourseInput) error {
	return p.run(huh.NewGroup(
		huh.NewInput().Title("학원명").Value(&in.AcademyName),
		huh.NewSelect[string]().Title("연도").Options(huh.NewOptions(YearOptions(p.Now)...)...).Value(&in.Year),
		huh.NewSelect[string]().Title("월").Options(huh.NewOptions(MonthOptions()...)...).Value(&in.Month),
		huh.NewInput().Title("과목").Value(&in.Subjects),
		huh.NewInput().Title("강사").Value(&in.Instructor),
	))
}

func (p HuhPrompter) Confirm(title string) (bool, error) {
	var ok bool
	err := p.run(huh.NewGroup(
		huh.NewConfirm().Title(title).Affirmative("예").Negative("아니오").Value(&ok),
	))
	return ok, err
}

func (p HuhPrompter) Objective(label string, value *string) error {
	return p.run(huh.NewGroup(
		huh.NewInput().Title(label).Placeholder(label).Value(value),
	))
}

func (p HuhPrompter) Lesson(n int, in *LessonInput) error {
	return p.run(huh.NewGroup(
		huh.NewInput().
			Title(fmt.Sprintf("강의일자 %d (YYYY-MM-DD, 비워두면 없음)", n)).
			Placeholder(p.Now.Format("2006-01-02")).
			Value(&in.Date).
			Validate(validateOptionalDate),
		huh.NewInput().Title("강의계획").Placeholder("강의계획 내용").Value(&in.Detail),
		huh.NewInput().Title("비고").Placeholder("비고").Value(&in.Note),
	))
}

func lessonPlanTheme() *huh.Theme {
	t := huh.ThemeBase()
	accent := lipgloss.Color("#83a598")
	t.Focused.Title = lipgloss.NewStyle().Foreground(accent).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(accent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(accent)
	t.Focused.FocusedButton = lipgloss.NewStyle().Background(accent).Padding(0, 1)
	return t
}
