// Package models defines the lesson-plan form data and the read-back view of generated workbooks.
package models

// CellRow represents a single non-empty row of a worksheet.
type CellRow struct {
	// R is the row index (1-based).
	R int `json:"r"`
	// C maps column letter (e.g. "B") to the cell's string value.
	C map[string]string `json:"c"`
}
