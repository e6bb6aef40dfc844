package tables

import "github.com/ShwetaPawar0705/IRIS/internal/sheets"

// ListRowLabels returns the row labels of the named table
func (r *Registry) ListRowLabels(table string) ([]string, error) {
	t, ok := r.tables[table]
	if !ok {
		return nil, tableNotFound(table)
	}
	return t.RowLabels(), nil
}

// SumRow sums the numeric cells of the first row labelled row in table
func (r *Registry) SumRow(table, row string) (float64, error) {
	t, ok := r.tables[table]
	if !ok {
		return 0, tableNotFound(table)
	}
	return t.SumRow(row)
}

// RowLabels returns the trimmed first cell of every row, skipping rows
// whose first cell is absent or blank after trimming
func (t *Table) RowLabels() []string {
	labels := make([]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		if l, ok := label(row); ok && l != "" {
			labels = append(labels, l)
		}
	}
	return labels
}

// FindRow returns the first row whose trimmed label equals name exactly
func (t *Table) FindRow(name string) (sheets.Row, bool) {
	for _, row := range t.Rows {
		if l, ok := label(row); ok && l == name {
			return row, true
		}
	}
	return nil, false
}

// SumRow sums every coercible cell after the label of the first row named
// name. It returns 0 when nothing coerces.
func (t *Table) SumRow(name string) (float64, error) {
	row, ok := t.FindRow(name)
	if !ok {
		return 0, rowNotFound(t.Name, name)
	}
	return SumCells(row[1:]), nil
}

// SumCells adds the cells that Coerce accepts
func SumCells(cells []sheets.Cell) float64 {
	var sum float64
	for _, c := range cells {
		if v, ok := Coerce(c); ok {
			sum += v
		}
	}
	return sum
}
