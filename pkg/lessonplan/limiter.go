package lessonplan

import (
	"fmt"

	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
)

// Limiter grows the bounded lists of a FormState.
type Limiter struct {
	MaxObjectives     int
	MaxLessonPlanRows int
}

// DefaultLimiter enforces the caps the packaged template is laid out for.
var DefaultLimiter = Limiter{
	MaxObjectives:     models.MaxObjectives,
	MaxLessonPlanRows: models.MaxLessonPlanRows,
}

// AddObjective appends an empty objective and returns its index.
// A full list is left unchanged and a *CapacityError is returned.
func (l Limiter) AddObjective(state *models.FormState) (int, error) {
	if len(state.Objectives) >= l.MaxObjectives {
		return -1, &CapacityError{List: "objectives", Limit: l.MaxObjectives}
	}
	state.Objectives = append(state.Objectives, "")
	return len(state.Objectives) - 1, nil
}

// AddLessonPlanRow appends an empty lesson row and returns its index.
// A full list is left unchanged and a *CapacityError is returned.
func (l Limiter) AddLessonPlanRow(state *models.FormState) (int, error) {
	if len(state.LessonPlanRows) >= l.MaxLessonPlanRows {
		return -1, &CapacityError{List: "lesson plan rows", Limit: l.MaxLessonPlanRows}
	}
	state.LessonPlanRows = append(state.LessonPlanRows, models.LessonPlanRow{})
	return len(state.LessonPlanRows) - 1, nil
}

// AddObjective adds an objective under DefaultLimiter.
func AddObjective(state *models.FormState) (int, error) {
	return DefaultLimiter.AddObjective(state)
}

// AddLessonPlanRow adds a lesson row under DefaultLimiter.
func AddLessonPlanRow(state *models.FormState) (int, error) {
	return DefaultLimiter.AddLessonPlanRow(state)
}

// ObjectiveLabel is the placeholder shown for the n-th (1-based) objective.
func ObjectiveLabel(n int) string {
	return fmt.Sprintf("강의목표 %d", n)
}
