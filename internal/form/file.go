// Package form fills a FormState from user input: an interactive terminal
// wizard or a YAML form document.
package form

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/ukaji3/lessonplan-go/pkg/lessonplan"
	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
	"gopkg.in/yaml.v3"
)

// Document is the YAML form file layout.
type Document struct {
	AcademyName string        `yaml:"academy_name"`
	ClassYear   int           `yaml:"class_year"`
	ClassMonth  int           `yaml:"class_month"`
	Subjects    string        `yaml:"subjects"`
	Instructor  string        `yaml:"instructor"`
	Objectives  []string      `yaml:"objectives"`
	Lessons     []LessonEntry `yaml:"lessons"`
}

// LessonEntry is one lesson of a Document.
type LessonEntry struct {
	Date   string `yaml:"date"` // yyyy-MM-dd, optional
	Detail string `yaml:"detail"`
	Note   string `yaml:"note"`
}

// LoadFile reads the form document at path.
func LoadFile(path string, now time.Time, notify func(error)) (*models.FormState, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening form: %w", err)
	}
	defer f.Close()
	return Decode(f, now, notify)
}

// Decode reads a form document and builds a FormState through the default
// Limiter. Entries beyond a list's capacity are dropped; the capacity error
// is passed to notify once per list and does not fail the load.
func Decode(r io.Reader, now time.Time, notify func(error)) (*models.FormState, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding form: %w", err)
	}

	state := models.NewFormState(now)
	if err := doc.Apply(state, lessonplan.DefaultLimiter, notify); err != nil {
		return nil, err
	}
	return state, nil
}

// Apply copies the document into state. Zero year or month keep the state's values.
func (d Document) Apply(state *models.FormState, limiter lessonplan.Limiter, notify func(error)) error {
	state.Course.AcademyName = models.NormalizeText(d.AcademyName)
	state.Course.Subjects = models.NormalizeText(d.Subjects)
	state.Course.Instructor = models.NormalizeText(d.Instructor)
	if d.ClassYear != 0 {
		state.Course.ClassYear = d.ClassYear
	}
	if d.ClassMonth != 0 {
		state.Course.ClassMonth = d.ClassMonth
	}

	for _, text := range d.Objectives {
		idx, err := limiter.AddObjective(state)
		if err != nil {
			report(notify, err)
			break
		}
		if err := state.SetObjective(idx, text); err != nil {
			return err
		}
	}

	for i, entry := range d.Lessons {
		idx, err := limiter.AddLessonPlanRow(state)
		if err != nil {
			report(notify, err)
			break
		}
		date, err := models.ParseDate(entry.Date)
		if err != nil {
			return fmt.Errorf("lesson %d: %w", i+1, err)
		}
		row := models.LessonPlanRow{Date: date, Detail: entry.Detail, Note: entry.Note}
		if err := state.SetLessonPlanRow(idx, row); err != nil {
			return err
		}
	}
	return nil
}

func report(notify func(error), err error) {
	if notify != nil {
		notify(err)
	}
}
