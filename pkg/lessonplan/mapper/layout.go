// Package mapper writes lesson-plan form data into xlsx workbooks and reads
// populated workbooks back.
package mapper

import (
	"strconv"

	"github.com/ukaji3/lessonplan-go/pkg/lessonplan/models"
)

// Header cells of the packaged template.
const (
	AcademyCell    = "B4"
	ClassMonthCell = "B6"
	SubjectsCell   = "B7"
	ObjectivesCell = "B8"
)

// Lesson blocks: slot i starts at row FirstSlotRow + (i+1)*SlotStride.
// The block at FirstSlotRow itself holds the table header.
const (
	FirstSlotRow = 16
	SlotStride   = 4
	SlotCount    = models.MaxLessonPlanRows

	SlotDateColumn   = "A"
	SlotDetailColumn = "B"
	SlotNoteColumn   = "F"
)

// Blank workbook layout.
const BlankSheetName = "강의계획서"

// BlankHeader is written to row 1 of a blank workbook.
var BlankHeader = []string{"강의일자", "강의계획", "비고"}

// Slot is the fixed position of one lesson block in the template.
type Slot struct {
	Index int
	Row   int
}

// DateCell is the top-left cell of the block's date area.
func (s Slot) DateCell() string { return SlotDateColumn + strconv.Itoa(s.Row) }

// DetailCell is the top-left cell of the block's plan area.
func (s Slot) DetailCell() string { return SlotDetailColumn + strconv.Itoa(s.Row) }

// NoteCell is the top-left cell of the block's note area.
func (s Slot) NoteCell() string { return SlotNoteColumn + strconv.Itoa(s.Row) }

// LastRow is the bottom row of the block.
func (s Slot) LastRow() int { return s.Row + SlotStride - 1 }

// LessonSlots lists every lesson block from top to bottom.
var LessonSlots = lessonSlots()

// SlotRow returns the first row of lesson slot i.
func SlotRow(i int) int {
	return FirstSlotRow + (i+1)*SlotStride
}

func lessonSlots() []Slot {
	slots := make([]Slot, SlotCount)
	for i := range slots {
		slots[i] = Slot{Index: i, Row: SlotRow(i)}
	}
	return slots
}
