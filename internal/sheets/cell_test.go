package sheets

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCell_String(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"absent", Absent(), ""},
		{"integral number", Number(1000), "1000"},
		{"fraction", Number(0.15), "0.15"},
		{"negative", Number(-42.5), "-42.5"},
		{"text verbatim", Text("  Revenue  "), "  Revenue  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.String())
		})
	}
}

func TestInferCell(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Cell
	}{
		{"blank is absent", "", Absent()},
		{"integer", "1000", Number(1000)},
		{"padded decimal", " 12.5 ", Number(12.5)},
		{"exponent", "1e3", Number(1000)},
		{"currency stays text", "$2,000", Text("$2,000")},
		{"percent stays text", "15%", Text("15%")},
		{"nan stays text", "NaN", Text("NaN")},
		{"inf stays text", "Inf", Text("Inf")},
		{"whitespace is present text", " ", Text(" ")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inferCell(tt.raw))
		})
	}
}

func TestRow_RenderSkipsAbsent(t *testing.T) {
	row := Row{Absent(), Text("Cash"), Absent(), Text("Flow"), Number(2024), Absent()}

	assert.Equal(t, "Cash Flow 2024", row.Render())
	assert.False(t, row.IsBlank())
}

func TestRow_IsBlank(t *testing.T) {
	assert.True(t, Row{}.IsBlank())
	assert.True(t, Row{Absent(), Absent()}.IsBlank())
	assert.False(t, Row{Absent(), Text("")}.IsBlank())
}

func TestRow_AtPastEnd(t *testing.T) {
	row := Row{Text("a")}

	assert.Equal(t, Text("a"), row.At(0))
	assert.True(t, row.At(5).IsAbsent())
	assert.True(t, row.At(-1).IsAbsent())
}

func TestGrid_NonBlankRowsAndWidth(t *testing.T) {
	grid := Grid{
		{Text("a")},
		{},
		{Absent(), Absent(), Absent()},
		{Number(1), Number(2)},
	}

	rows := grid.NonBlankRows()
	assert.Len(t, rows, 2)
	assert.Equal(t, Row{Number(1), Number(2)}, rows[1])
	assert.Equal(t, 3, grid.Width())
}
