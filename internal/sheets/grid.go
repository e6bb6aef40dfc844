package sheets

import "strings"

// Row is an ordered sequence of cells. Rows of one grid may differ in length;
// a missing trailing position compares as absent.
type Row []Cell

// Grid is a row-major arrangement of cells from one sheet
type Grid []Row

// Sheet is a named grid
type Sheet struct {
	Name string
	Grid Grid
	// Unreadable counts cells the decoder saw but could not recover a value
	// for. They are absent in Grid.
	Unreadable int
}

// Workbook is the decoded content of one spreadsheet file
type Workbook struct {
	Path   string
	Format Format
	Sheets []Sheet
}

// At returns the cell at column i, or an absent cell past the row's end
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Absent()
	}
	return r[i]
}

// IsBlank reports whether every cell of the row is absent
func (r Row) IsBlank() bool {
	for _, c := range r {
		if !c.IsAbsent() {
			return false
		}
	}
	return true
}

// Render joins the string form of every present cell with a single space.
// Absent cells are skipped rather than rendered as empty tokens.
func (r Row) Render() string {
	var b strings.Builder
	first := true
	for _, c := range r {
		if c.IsAbsent() {
			continue
		}
		if !first {
			b.WriteByte(' ')
		}
		b.WriteString(c.String())
		first = false
	}
	return b.String()
}

// NonBlankRows returns the rows that hold at least one present cell
func (g Grid) NonBlankRows() []Row {
	rows := make([]Row, 0, len(g))
	for _, row := range g {
		if !row.IsBlank() {
			rows = append(rows, row)
		}
	}
	return rows
}

// Width returns the length of the longest row
func (g Grid) Width() int {
	w := 0
	for _, row := range g {
		if len(row) > w {
			w = len(row)
		}
	}
	return w
}

// SheetNames lists the sheets in workbook order
func (wb *Workbook) SheetNames() []string {
	names := make([]string, len(wb.Sheets))
	for i, s := range wb.Sheets {
		names[i] = s.Name
	}
	return names
}
