package models

import (
	"errors"
	"fmt"
	"time"
)

const (
	// MaxObjectives is the number of teaching objectives a plan can hold.
	MaxObjectives = 4
	// MaxLessonPlanRows is the number of lesson entries a plan can hold.
	// The packaged template reserves exactly this many lesson blocks.
	MaxLessonPlanRows = 5
)

// FormState is the editable lesson-plan form for one editing session.
// Lists grow only through lessonplan.Limiter; values are copied in by the
// presentation layer with the Set methods.
type FormState struct {
	Course         CourseMetadata  `json:"course"`
	Objectives     []string        `json:"objectives"`
	LessonPlanRows []LessonPlanRow `json:"lesson_plan_rows"`
}

// NewFormState returns an empty form whose class year and month default to now.
func NewFormState(now time.Time) *FormState {
	return &FormState{
		Course: CourseMetadata{
			ClassYear:  now.Year(),
			ClassMonth: int(now.Month()),
		},
	}
}

// SetObjective stores the normalized text of objective i.
func (s *FormState) SetObjective(i int, text string) error {
	if i < 0 || i >= len(s.Objectives) {
		return fmt.Errorf("objective %d out of range (have %d)", i+1, len(s.Objectives))
	}
	s.Objectives[i] = NormalizeText(text)
	return nil
}

// SetLessonPlanRow stores the normalized row i.
func (s *FormState) SetLessonPlanRow(i int, row LessonPlanRow) error {
	if i < 0 || i >= len(s.LessonPlanRows) {
		return fmt.Errorf("lesson plan row %d out of range (have %d)", i+1, len(s.LessonPlanRows))
	}
	s.LessonPlanRows[i] = row.normalized()
	return nil
}

// Validate checks that the form is ready for generation.
func (s *FormState) Validate() error {
	var errs []error
	if s.Course.ClassMonth < 1 || s.Course.ClassMonth > 12 {
		errs = append(errs, fmt.Errorf("class month %d must be between 1 and 12", s.Course.ClassMonth))
	}
	if s.Course.ClassYear < 1 || s.Course.ClassYear > 9999 {
		errs = append(errs, fmt.Errorf("class year %d must be between 1 and 9999", s.Course.ClassYear))
	}
	if len(s.Objectives) > MaxObjectives {
		errs = append(errs, fmt.Errorf("%d objectives exceed the limit of %d", len(s.Objectives), MaxObjectives))
	}
	if len(s.LessonPlanRows) > MaxLessonPlanRows {
		errs = append(errs, fmt.Errorf("%d lesson plan rows exceed the limit of %d", len(s.LessonPlanRows), MaxLessonPlanRows))
	}
	return errors.Join(errs...)
}

// Snapshot returns a normalized deep copy of s. The copy shares no slices
// with s, so later edits do not leak into a generation in progress.
func (s *FormState) Snapshot() FormState {
	out := FormState{
		Course:         s.Course.normalized(),
		Objectives:     make([]string, len(s.Objectives)),
		LessonPlanRows: make([]LessonPlanRow, len(s.LessonPlanRows)),
	}
	for i, o := range s.Objectives {
		out.Objectives[i] = NormalizeText(o)
	}
	for i, r := range s.LessonPlanRows {
		out.LessonPlanRows[i] = r.normalized()
	}
	return out
}
