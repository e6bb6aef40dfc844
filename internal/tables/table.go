package tables

import (
	"strings"

	"github.com/ShwetaPawar0705/IRIS/internal/sheets"
)

// Table is a named run of data rows discovered in one sheet. The header row
// that produced the name is never one of the rows.
type Table struct {
	Name  string
	Sheet string
	Rows  []sheets.Row
	// Fallback is set for the "{sheet}_data" table synthesised when a sheet
	// has no recognisable header
	Fallback bool
}

// label returns the trimmed first cell of a row and whether it is usable
func label(row sheets.Row) (string, bool) {
	first := row.At(0)
	if first.IsAbsent() {
		return "", false
	}
	return strings.TrimSpace(first.String()), true
}
