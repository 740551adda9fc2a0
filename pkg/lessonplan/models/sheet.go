package models

// SheetData represents the read-back contents of a single sheet.
type SheetData struct {
	// Rows contains rows holding at least one non-empty cell.
	Rows []CellRow `json:"rows,omitempty"`
	// MergedRanges contains merged regions such as "B8:G15".
	MergedRanges []string `json:"merged_ranges,omitempty"`
	// PrintAreas contains user-defined print areas.
	PrintAreas []PrintArea `json:"print_areas,omitempty"`
}

// Cell returns the value at column col of row r, or "" when absent.
func (s SheetData) Cell(col string, r int) string {
	for _, row := range s.Rows {
		if row.R == r {
			return row.C[col]
		}
	}
	return ""
}
