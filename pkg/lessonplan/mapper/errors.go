package mapper

import (
	"errors"
	"fmt"
)

// ErrUnreadableWorkbook indicates template bytes that do not open as an xlsx
// workbook with at least one worksheet.
var ErrUnreadableWorkbook = errors.New("unreadable workbook")

// ErrTooManyRows indicates more lesson rows than the template has slots.
var ErrTooManyRows = errors.New("more lesson rows than template slots")

// WriteError reports a failed cell write or workbook serialization.
type WriteError struct {
	Sheet string
	Cell  string // empty when the workbook itself could not be written
	Err   error
}

func (e *WriteError) Error() string {
	if e.Cell == "" {
		return fmt.Sprintf("write workbook: %v", e.Err)
	}
	return fmt.Sprintf("write %s!%s: %v", e.Sheet, e.Cell, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
