package tables

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/ShwetaPawar0705/IRIS/internal/sheets"
)

func writeWorkbook(t *testing.T, content map[string][][]interface{}, order ...string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, name := range order {
		if i == 0 {
			require.NoError(t, f.SetSheetName("Sheet1", name))
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for r, values := range content[name] {
			for c, v := range values {
				if v == nil {
					continue
				}
				ref, err := excelize.CoordinatesToCellName(c+1, r+1)
				require.NoError(t, err)
				require.NoError(t, f.SetCellValue(name, ref, v))
			}
		}
	}

	path := filepath.Join(t.TempDir(), "capbudg.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoad_Workbook(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"Model": {
			{"Initial Investment"},
			{"Equipment", 1000, "$2,000", "abc", nil, "15%", "n/a"},
			{},
			{"Operating Costs"},
			{"Rent", 1, 2, 3, 4, 5},
		},
		"Raw": {
			{"a", 1, 2, 3, 4, 5},
			{"b", 6, 7, 8, 9, 10},
		},
	}, "Model", "Raw")

	reg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Initial Investment", "Operating Costs", "Raw_data"}, reg.Names())
	assert.Equal(t, 2, reg.SheetCount())
	assert.Equal(t, path, reg.Source())
	assert.False(t, reg.LoadedAt().IsZero())

	sum, err := reg.SumRow("Initial Investment", "Equipment")
	require.NoError(t, err)
	assert.Equal(t, 3015.0, sum)

	labels, err := reg.ListRowLabels("Raw_data")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, labels)
}

func TestLoad_XLS(t *testing.T) {
	reg, err := Load(context.Background(), filepath.Join("..", "sheets", "testdata", "budget.xls"), OnlySheets("Budget"))
	require.NoError(t, err)

	assert.Equal(t, []string{"Capital Budget", "Cash Flow"}, reg.Names())

	// the formula cells are unreadable and do not count
	sum, err := reg.SumRow("Capital Budget", "Equipment")
	require.NoError(t, err)
	assert.Equal(t, 6750.5, sum)

	sum, err = reg.SumRow("Cash Flow", "Year1")
	require.NoError(t, err)
	assert.Equal(t, 1000.0, sum)
}

func TestLoad_CrossSheetCollision(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"One": {
			{"Capital Budget"},
			{"first", 1, 1, 1, 1, 1},
			{"Revenue Plan"},
			{"r", 1, 1, 1, 1, 1},
		},
		"Two": {
			{"Capital Budget"},
			{"second", 2, 2, 2, 2, 2},
		},
	}, "One", "Two")

	reg, err := Load(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Capital Budget", "Revenue Plan"}, reg.Names())
	tbl, ok := reg.Table("Capital Budget")
	require.True(t, ok)
	assert.Equal(t, "Two", tbl.Sheet)

	labels, err := reg.ListRowLabels("Capital Budget")
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, labels)
}

func TestLoad_OnlySheets(t *testing.T) {
	path := writeWorkbook(t, map[string][][]interface{}{
		"One": {{"a", 1, 2, 3, 4, 5}},
		"Two": {{"b", 1, 2, 3, 4, 5}},
	}, "One", "Two")

	reg, err := Load(context.Background(), path, OnlySheets("Two"))
	require.NoError(t, err)
	assert.Equal(t, []string{"Two_data"}, reg.Names())
	assert.Equal(t, 1, reg.SheetCount())
}

func TestLoad_UsingDetector(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.csv")
	require.NoError(t, os.WriteFile(path, []byte("# Plan\nx,1\ny,2\n"), 0o600))

	detector := HeaderDetectorFunc(func(text string) bool {
		return len(text) > 0 && text[0] == '#'
	})
	reg, err := Load(context.Background(), path, UsingDetector(detector))
	require.NoError(t, err)

	assert.Equal(t, []string{"# Plan"}, reg.Names())
	sum, err := reg.SumRow("# Plan", "y")
	require.NoError(t, err)
	assert.Equal(t, 2.0, sum)
}

func TestLoad_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.xls")

	reg, err := Load(context.Background(), path)
	require.Error(t, err)
	assert.Nil(t, reg)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
	assert.ErrorIs(t, err, sheets.ErrFileNotFound)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Equal(t, path, loadErr.Path)
	assert.Contains(t, err.Error(), "error loading excel file")
}

func TestLoad_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0o600))

	_, err := Load(context.Background(), path)
	assert.ErrorIs(t, err, ErrResourceUnavailable)
}

func TestBuild_CancelledContext(t *testing.T) {
	wb := &sheets.Workbook{Path: "mem", Sheets: []sheets.Sheet{
		{Name: "S", Grid: sheets.Grid{row("a", 1, 2, 3, 4, 5)}},
	}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Build(ctx, wb, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBuild_RecoversSegmentationPanic(t *testing.T) {
	wb := &sheets.Workbook{Path: "mem", Sheets: []sheets.Sheet{
		{Name: "S", Grid: sheets.Grid{row("boom")}},
	}}
	seg := NewSegmenter(WithHeaderDetector(HeaderDetectorFunc(func(string) bool {
		panic("detector failure")
	})))

	_, err := Build(context.Background(), wb, seg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInternal)
	assert.Contains(t, err.Error(), "detector failure")
}
