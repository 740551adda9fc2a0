// Package lessonplan builds lesson-plan spreadsheets from a bounded form.
package lessonplan

import (
	"fmt"

	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/resource"
)

// Mode represents the generation strategy.
type Mode string

const (
	// ModeTemplate fills the fixed cells of a packaged template workbook.
	ModeTemplate Mode = "template"
	// ModeBlank builds a new sheet with a header row and one row per lesson.
	ModeBlank Mode = "blank"
)

// ParseMode converts a config or flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeTemplate, ModeBlank:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("invalid mode: %s (must be template or blank)", s)
	}
}

// Options configures generation.
type Options struct {
	// Mode specifies the generation strategy.
	Mode Mode
	// TemplateID names the template resource passed to the Loader.
	// Ignored in blank mode.
	TemplateID string
}

// DefaultOptions returns template mode with the built-in template.
func DefaultOptions() Options {
	return Options{
		Mode:       ModeTemplate,
		TemplateID: resource.BuiltinID,
	}
}
