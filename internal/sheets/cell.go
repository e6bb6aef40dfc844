package sheets

import (
	"strconv"
	"strings"
)

// CellKind identifies which value a Cell holds
type CellKind uint8

const (
	// KindAbsent marks an empty grid position
	KindAbsent CellKind = iota
	// KindNumber marks a cell the decoder saw as numeric
	KindNumber
	// KindText marks any other non-empty cell
	KindText
)

// String returns the kind name used in logs
func (k CellKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "absent"
	}
}

// Cell is a single grid entry. The zero value is an absent cell.
type Cell struct {
	Kind   CellKind
	Number float64
	Text   string
}

// Absent returns the empty marker
func Absent() Cell {
	return Cell{}
}

// Number returns a numeric cell
func Number(v float64) Cell {
	return Cell{Kind: KindNumber, Number: v}
}

// Text returns a text cell. Empty text is still a present cell; decoders
// normalise blanks to Absent before calling this.
func Text(s string) Cell {
	return Cell{Kind: KindText, Text: s}
}

// IsAbsent reports whether the cell is the empty marker
func (c Cell) IsAbsent() bool {
	return c.Kind == KindAbsent
}

// String renders the cell the way it takes part in header text and labels.
// Numbers use the shortest decimal form, so 1000 renders as "1000" and
// 0.15 as "0.15". Absent cells render as "".
func (c Cell) String() string {
	switch c.Kind {
	case KindNumber:
		return strconv.FormatFloat(c.Number, 'f', -1, 64)
	case KindText:
		return c.Text
	default:
		return ""
	}
}

// inferCell turns a raw decoded string into a Cell. Blank strings become
// absent; strings that are a plain float literal become numbers.
func inferCell(raw string) Cell {
	if raw == "" {
		return Absent()
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && isPlainNumber(raw) {
		return Number(v)
	}
	return Text(raw)
}

// isPlainNumber rejects literals ParseFloat accepts but a spreadsheet never
// stores as a number ("Inf", "NaN", hex floats, "1_000").
func isPlainNumber(raw string) bool {
	for _, r := range strings.TrimSpace(raw) {
		switch {
		case r >= '0' && r <= '9':
		case r == '.', r == '-', r == '+', r == 'e', r == 'E':
		default:
			return false
		}
	}
	return true
}
