package form

import (
	"fmt"
	"strconv"
	"time"

	"github.com/ukaji3/lessonplan-go/pkg/lessonplan"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
)

// CourseInput holds the raw header answers.
type CourseInput struct {
	AcademyName string
	Year        string
	Month       string
	Subjects    string
	Instructor  string
}

// LessonInput holds the raw answers for one lesson row.
type LessonInput struct {
	Date   string
	Detail string
	Note   string
}

// Prompter asks the user for form values. Each method blocks until answered.
type Prompter interface {
	Course(in *CourseInput) error
	Confirm(title string) (bool, error)
	Objective(label string, value *string) error
	Lesson(n int, in *LessonInput) error
}

// Wizard walks the user through the form, adding list entries through the
// Limiter as the user asks for them.
type Wizard struct {
	Prompter Prompter
	Limiter  lessonplan.Limiter
	// Notify receives capacity errors; the wizard then moves on to the next section.
	Notify func(error)
}

// Run fills state from the user's answers.
func (w *Wizard) Run(state *models.FormState) error {
	course := CourseInput{
		AcademyName: state.Course.AcademyName,
		Year:        strconv.Itoa(state.Course.ClassYear),
		Month:       strconv.Itoa(state.Course.ClassMonth),
		Subjects:    state.Course.Subjects,
		Instructor:  state.Course.Instructor,
	}
	if err := w.Prompter.Course(&course); err != nil {
		return err
	}
	if err := course.apply(state); err != nil {
		return err
	}

	for {
		more, err := w.Prompter.Confirm("강의목표를 추가할까요?")
		if err != nil {
			return err
		}
		if !more {
			break
		}
		idx, err := w.Limiter.AddObjective(state)
		if err != nil {
			report(w.Notify, err)
			break
		}
		var text string
		if err := w.Prompter.Objective(lessonplan.ObjectiveLabel(idx+1), &text); err != nil {
			return err
		}
		if err := state.SetObjective(idx, text); err != nil {
			return err
		}
	}

	for {
		more, err := w.Prompter.Confirm("강의계획을 추가할까요?")
		if err != nil {
			return err
		}
		if !more {
			break
		}
		idx, err := w.Limiter.AddLessonPlanRow(state)
		if err != nil {
			report(w.Notify, err)
			break
		}
		var in LessonInput
		if err := w.Prompter.Lesson(idx+1, &in); err != nil {
			return err
		}
		date, err := models.ParseDate(in.Date)
		if err != nil {
			return err
		}
		row := models.LessonPlanRow{Date: date, Detail: in.Detail, Note: in.Note}
		if err := state.SetLessonPlanRow(idx, row); err != nil {
			return err
		}
	}
	return nil
}

func (c CourseInput) apply(state *models.FormState) error {
	year, err := strconv.Atoi(c.Year)
	if err != nil {
		return fmt.Errorf("class year %q: %w", c.Year, err)
	}
	month, err := strconv.Atoi(c.Month)
	if err != nil {
		return fmt.Errorf("class month %q: %w", c.Month, err)
	}
	state.Course = models.CourseMetadata{
		AcademyName: models.NormalizeText(c.AcademyName),
		Subjects:    models.NormalizeText(c.Subjects),
		Instructor:  models.NormalizeText(c.Instructor),
		ClassYear:   year,
		ClassMonth:  month,
	}
	return nil
}

// YearOptions lists the selectable class years, five either side of now.
func YearOptions(now time.Time) []string {
	years := make([]string, 0, 11)
	for y := now.Year() - 5; y <= now.Year()+5; y++ {
		years = append(years, strconv.Itoa(y))
	}
	return years
}

// MonthOptions lists the months 1 through 12.
func MonthOptions() []string {
	months := make([]string, 12)
	for i := range months {
		months[i] = strconv.Itoa(i + 1)
	}
	return months
}

func validateOptionalDate(s string) error {
	_, err := models.ParseDate(s)
	return err
}
