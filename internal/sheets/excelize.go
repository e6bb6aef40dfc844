package sheets

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// decodeXLSX reads every sheet of an OOXML workbook. Raw cell values are
// used so number formats ("$#,##0", "0%") do not leak into the grid; the
// stored cell type decides whether a value is kept as a number.
func decodeXLSX(path string) ([]Sheet, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, newDecodeError(path, "", fmt.Errorf("%w: %v", ErrCorruptWorkbook, err))
	}
	defer f.Close()

	var sheets []Sheet
	for _, name := range f.GetSheetList() {
		grid, err := readExcelizeSheet(f, name)
		if err != nil {
			return nil, newDecodeError(path, name, err)
		}
		sheets = append(sheets, Sheet{Name: name, Grid: grid})
	}
	return sheets, nil
}

func readExcelizeSheet(f *excelize.File, sheet string) (Grid, error) {
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	grid := make(Grid, len(rows))
	for r, values := range rows {
		row := make(Row, len(values))
		for c, raw := range values {
			if raw == "" {
				continue
			}
			ref, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return nil, err
			}
			typ, err := f.GetCellType(sheet, ref)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", ref, err)
			}
			row[c] = excelizeCell(typ, raw)
		}
		grid[r] = row
	}
	return grid, nil
}

// excelizeCell maps a stored cell type and raw value to a Cell
func excelizeCell(typ excelize.CellType, raw string) Cell {
	switch typ {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeError:
		return Text(raw)
	case excelize.CellTypeBool:
		if raw == "1" || strings.EqualFold(raw, "TRUE") {
			return Text("TRUE")
		}
		return Text("FALSE")
	default:
		// numbers, dates (serials), untyped cells and cached formula results
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			return Number(v)
		}
		return Text(raw)
	}
}
