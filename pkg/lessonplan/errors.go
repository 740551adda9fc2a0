package lessonplan

import (
	"errors"
	"fmt"
)

// ErrCapacityExceeded indicates an add-operation on a list that is already full.
var ErrCapacityExceeded = errors.New("capacity exceeded")

// ErrResourceNotFound indicates the template asset could not be loaded.
var ErrResourceNotFound = errors.New("template resource not found")

// ErrWorkbookCorrupt indicates template bytes that are not a valid workbook.
var ErrWorkbookCorrupt = errors.New("template workbook is corrupt")

// ErrGeneration indicates an unexpected failure while populating cells.
var ErrGeneration = errors.New("lesson plan generation failed")

// ErrIO indicates the generated workbook could not be written.
var ErrIO = errors.New("failed to write output")

// ErrInvalidForm indicates the form is not ready for generation.
var ErrInvalidForm = errors.New("invalid lesson plan form")

// CapacityError reports which bounded list refused a new entry.
type CapacityError struct {
	List  string // "objectives" or "lesson plan rows"
	Limit int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s: at most %d %s", ErrCapacityExceeded, e.Limit, e.List)
}

// Is reports whether target is ErrCapacityExceeded.
func (e *CapacityError) Is(target error) bool {
	return target == ErrCapacityExceeded
}

// GenerationError represents an error while building the workbook.
type GenerationError struct {
	Step string // "load", "map", "resolve", "write"
	Cell string // empty unless a single cell write failed
	Err  error
}

func (e *GenerationError) Error() string {
	if e.Cell != "" {
		return fmt.Sprintf("generation error in %s (cell %s): %v", e.Step, e.Cell, e.Err)
	}
	return fmt.Sprintf("generation error in %s: %v", e.Step, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrGeneration.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}

// ErrorKind classifies an error returned by this package.
type ErrorKind int

const (
	// KindNone is the kind of a nil error.
	KindNone ErrorKind = iota
	// KindCapacityExceeded marks an add on a full list.
	KindCapacityExceeded
	// KindResourceNotFound marks a missing template.
	KindResourceNotFound
	// KindWorkbookCorrupt marks template bytes that are not a workbook.
	KindWorkbookCorrupt
	// KindGeneration marks any other failure while building the workbook.
	KindGeneration
	// KindIO marks a failure writing the output file.
	KindIO
	// KindInvalidForm marks a form that cannot be generated as is.
	KindInvalidForm
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindCapacityExceeded:
		return "capacity_exceeded"
	case KindResourceNotFound:
		return "resource_not_found"
	case KindWorkbookCorrupt:
		return "workbook_corrupt"
	case KindIO:
		return "io"
	case KindInvalidForm:
		return "invalid_form"
	default:
		return "generation"
	}
}

// KindOf returns the kind of err. Unrecognized errors are KindGeneration.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrCapacityExceeded):
		return KindCapacityExceeded
	case errors.Is(err, ErrResourceNotFound):
		return KindResourceNotFound
	case errors.Is(err, ErrWorkbookCorrupt):
		return KindWorkbookCorrupt
	case errors.Is(err, ErrIO):
		return KindIO
	case errors.Is(err, ErrInvalidForm):
		return KindInvalidForm
	default:
		return KindGeneration
	}
}
