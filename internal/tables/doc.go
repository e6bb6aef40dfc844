// Package tables discovers named tables in spreadsheet grids and answers
// row-label and row-sum queries over them.
//
// # Segmentation
//
// Each sheet is scanned once, top to bottom. A row whose rendered text
// passes the header heuristic names a new table; following non-blank rows
// become its data rows until the next header. Rows before the first header
// are dropped. A sheet with no header yields one "{sheet}_data" table.
//
// The heuristic is deliberately loose and order sensitive. It is kept behind
// HeaderDetector so another strategy can be swapped in without touching the
// scan.
//
// # Queries
//
// A Registry is built once by Load and is read-only afterwards. Row lookup
// returns the first row whose trimmed label matches exactly. Row sums use
// Coerce, which strips everything except digits, '.' and '-' from text.
//
//	reg, err := tables.Load(ctx, "capbudg.xls")
//	if err != nil {
//	    return err // errors.Is(err, tables.ErrResourceUnavailable)
//	}
//	sum, err := reg.SumRow("Initial Investment", "Equipment")
package tables
