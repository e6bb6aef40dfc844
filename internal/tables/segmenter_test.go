package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ShwetaPawar0705/IRIS/internal/sheets"
)

// row builds a sheets.Row from loose values: nil is absent, float64 and int
// are numbers, strings are text
func row(values ...any) sheets.Row {
	r := make(sheets.Row, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case nil:
			r[i] = sheets.Absent()
		case int:
			r[i] = sheets.Number(float64(x))
		case float64:
			r[i] = sheets.Number(x)
		case string:
			r[i] = sheets.Text(x)
		}
	}
	return r
}

func names(found []*Table) []string {
	out := make([]string, len(found))
	for i, t := range found {
		out[i] = t.Name
	}
	return out
}

func TestSegmenter_HeadersSplitTables(t *testing.T) {
	sheet := sheets.Sheet{Name: "Model", Grid: sheets.Grid{
		row("Q1", 1),
		row("Initial Investment"),
		row("Equip", 1000, "$2,000", 1, 2, 3),
		row(),
		row("Misc", nil, 5, 6, 7, 8, 9),
		row(nil, "Cash Flow", nil),
		row("Y1", 10, 20, 30, 40, 50),
		row("Capital Budget"),
		row("Y2", 1, 2, 3, 4, 5),
	}}

	found := NewSegmenter().Segment(sheet)

	require.Equal(t, []string{"Initial Investment", "Cash Flow", "Capital Budget"}, names(found))

	assert.Equal(t, []sheets.Row{
		row("Equip", 1000, "$2,000", 1, 2, 3),
		row("Misc", nil, 5, 6, 7, 8, 9),
	}, found[0].Rows)
	assert.Equal(t, []sheets.Row{row("Y1", 10, 20, 30, 40, 50)}, found[1].Rows)
	assert.Equal(t, []sheets.Row{row("Y2", 1, 2, 3, 4, 5)}, found[2].Rows)
	for _, tbl := range found {
		assert.Equal(t, "Model", tbl.Sheet)
		assert.False(t, tbl.Fallback)
	}
}

func TestSegmenter_HeaderNameIsTrimmedRender(t *testing.T) {
	sheet := sheets.Sheet{Name: "S", Grid: sheets.Grid{
		row(nil, "  Operating", nil, "Costs  "),
		row("Rent", 1, 2, 3, 4, 5),
	}}

	found := NewSegmenter().Segment(sheet)

	require.Len(t, found, 1)
	assert.Equal(t, "Operating Costs", found[0].Name)
}

func TestSegmenter_HeaderWithoutRowsIsNotCommitted(t *testing.T) {
	sheet := sheets.Sheet{Name: "S", Grid: sheets.Grid{
		row("Revenue Plan"),
		row(),
		row("Expense Plan"),
		row("Staff", 1, 2, 3, 4, 5),
	}}

	found := NewSegmenter().Segment(sheet)

	assert.Equal(t, []string{"Expense Plan"}, names(found))
}

func TestSegmenter_ShortLabelSplitsTable(t *testing.T) {
	// a lone label longer than five characters reads as a header
	sheet := sheets.Sheet{Name: "S", Grid: sheets.Grid{
		row("Assets"),
		row("Units", 10, 20, 30, 40, 50),
		row("Subtotal"),
		row("Price", 1, 2, 3, 4, 5),
	}}

	found := NewSegmenter().Segment(sheet)

	require.Equal(t, []string{"Assets", "Subtotal"}, names(found))
	assert.Len(t, found[0].Rows, 1)
	assert.Len(t, found[1].Rows, 1)
}

func TestSegmenter_DuplicateNamesKeepFirstPositionLastRows(t *testing.T) {
	sheet := sheets.Sheet{Name: "S", Grid: sheets.Grid{
		row("Budget"),
		row("a", 1, 2, 3, 4, 5),
		row("Projection"),
		row("b", 1, 2, 3, 4, 5),
		row("Budget"),
		row("c", 1, 2, 3, 4, 5),
	}}

	found := NewSegmenter().Segment(sheet)

	require.Equal(t, []string{"Budget", "Projection"}, names(found))
	assert.Equal(t, "c", found[0].Rows[0][0].Text)
}

func TestSegmenter_FallbackWhenNoHeader(t *testing.T) {
	sheet := sheets.Sheet{Name: "Raw", Grid: sheets.Grid{
		row("a", 1, 2, 3, 4, 5),
		row(),
		row(nil, nil),
		row("b", 1, 2, 3, 4, 5),
	}}

	found := NewSegmenter().Segment(sheet)

	require.Len(t, found, 1)
	assert.Equal(t, "Raw_data", found[0].Name)
	assert.True(t, found[0].Fallback)
	assert.Equal(t, []sheets.Row{row("a", 1, 2, 3, 4, 5), row("b", 1, 2, 3, 4, 5)}, found[0].Rows)
}

func TestSegmenter_FallbackKeepsRowsBeforeOrphanHeader(t *testing.T) {
	// a header with no rows after it commits nothing, so the sheet falls back
	// and the header row itself is kept
	sheet := sheets.Sheet{Name: "Tail", Grid: sheets.Grid{
		row("a", 1, 2, 3, 4, 5),
		row("Financial Summary"),
	}}

	found := NewSegmenter().Segment(sheet)

	require.Len(t, found, 1)
	assert.Equal(t, "Tail_data", found[0].Name)
	assert.Len(t, found[0].Rows, 2)
}

func TestSegmenter_EmptySheetYieldsNothing(t *testing.T) {
	assert.Empty(t, NewSegmenter().Segment(sheets.Sheet{Name: "Empty"}))
	assert.Empty(t, NewSegmenter().Segment(sheets.Sheet{Name: "Blank", Grid: sheets.Grid{row(), row(nil)}}))
}

func TestSegmenter_CustomDetector(t *testing.T) {
	sheet := sheets.Sheet{Name: "S", Grid: sheets.Grid{
		row("## Assets"),
		row("Cash", 5),
		row("Revenue"),
		row("## Liabilities"),
		row("Loan", 7),
	}}

	detector := HeaderDetectorFunc(func(text string) bool {
		return len(text) > 2 && text[:2] == "##"
	})
	found := NewSegmenter(WithHeaderDetector(detector)).Segment(sheet)

	require.Equal(t, []string{"## Assets", "## Liabilities"}, names(found))
	assert.Len(t, found[0].Rows, 2)
}

func TestSegmenter_NilDetectorKeepsDefault(t *testing.T) {
	seg := NewSegmenter(WithHeaderDetector(nil))
	assert.NotNil(t, seg.detector)
}
