package sheets

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testdata/budget.xls is a BIFF8 workbook with two sheets:
//
//	Budget  row 0: "Capital Budget"
//	        row 1: "Equipment" NUMBER 1000, RK 2000, RK 3000 (custom format 164),
//	               FORMULA (cached 6000), NUMBER 500.5, NUMBER 250, "n/a"
//	        row 2: no records
//	        row 3: "Cash Flow"
//	        row 4: "Year1" RK 100..400, FORMULA (cached 1000), "-"
//	Summary row 0: "Total" NUMBER 42
const xlsFixture = "testdata/budget.xls"

func TestOpen_XLSCellKinds(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&logs, nil))

	wb, err := Open(xlsFixture, WithLogger(logger))
	require.NoError(t, err)
	assert.Equal(t, FormatXLS, wb.Format)
	assert.Equal(t, []string{"Budget", "Summary"}, wb.SheetNames())

	budget := wb.Sheets[0]
	require.Len(t, budget.Grid, 5)
	assert.Equal(t, 2, budget.Unreadable)

	assert.Equal(t, Text("Capital Budget"), budget.Grid[0].At(0))

	equipment := budget.Grid[1]
	assert.Equal(t, Text("Equipment"), equipment.At(0))
	assert.Equal(t, Number(1000), equipment.At(1))
	assert.Equal(t, Number(2000), equipment.At(2))
	assert.Equal(t, Number(3000), equipment.At(3), "custom format RK keeps its value")
	assert.True(t, equipment.At(4).IsAbsent(), "formula result is not readable")
	assert.Equal(t, Number(500.5), equipment.At(5))
	assert.Equal(t, Number(250), equipment.At(6))
	assert.Equal(t, Text("n/a"), equipment.At(7))

	assert.True(t, budget.Grid[2].IsBlank())
	assert.Equal(t, Text("Cash Flow"), budget.Grid[3].At(0))
	assert.Equal(t, "Year1 100 200 300 400 -", budget.Grid[4].Render())

	summary := wb.Sheets[1]
	require.Len(t, summary.Grid, 1)
	assert.Equal(t, "Total 42", summary.Grid[0].Render())
	assert.Zero(t, summary.Unreadable)

	assert.Contains(t, logs.String(), `"msg":"cells without a readable value treated as empty"`)
	assert.Contains(t, logs.String(), `"sheet":"Budget"`)
	assert.NotContains(t, logs.String(), `"sheet":"Summary"`)
}

func TestXLSCell(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Cell
	}{
		{"formula placeholder", "FormulaCol", Absent()},
		{"custom format serial", "1908-03-18T00:00:00Z", Number(3000)},
		{"custom format with time", "2024-01-01T12:00:00Z", Number(45292.5)},
		{"plain number", "1500", Number(1500)},
		{"text", "Equipment", Text("Equipment")},
		{"blank", "", Absent()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, xlsCell(tt.raw))
		})
	}
}
