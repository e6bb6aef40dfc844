package sheets

import (
	"fmt"
	"time"

	"github.com/extrame/xls"
)

// xlsCharset is passed to the BIFF reader for pre-BIFF8 byte strings
const xlsCharset = "utf-8"

// xlsFormulaText is what the BIFF reader returns for every FORMULA record.
// The cached result is not exposed, so these cells decode as absent.
const xlsFormulaText = "FormulaCol"

// xlsEpoch is day zero of the 1900 date system. Cells with a user defined
// number format come back from the reader as RFC3339 timestamps counted from
// here and are converted back to their serial value.
var xlsEpoch = time.Date(1899, 12, 30, 0, 0, 0, 0, time.UTC)

// decodeXLS reads a legacy BIFF workbook. The reader only exposes formatted
// strings, so numeric cells are recovered by xlsCell.
func decodeXLS(path string) (sheets []Sheet, err error) {
	// the BIFF reader panics on truncated records
	defer func() {
		if rec := recover(); rec != nil {
			sheets = nil
			err = newDecodeError(path, "", fmt.Errorf("%w: %v", ErrCorruptWorkbook, rec))
		}
	}()

	wb, err := xls.Open(path, xlsCharset)
	if err != nil {
		return nil, newDecodeError(path, "", fmt.Errorf("%w: %v", ErrCorruptWorkbook, err))
	}
	if wb == nil {
		return nil, newDecodeError(path, "", fmt.Errorf("%w: no Workbook stream", ErrCorruptWorkbook))
	}

	for i := 0; i < wb.NumSheets(); i++ {
		ws := wb.GetSheet(i)
		if ws == nil {
			continue
		}
		grid, unreadable := readXLSSheet(ws)
		sheets = append(sheets, Sheet{Name: ws.Name, Grid: grid, Unreadable: unreadable})
	}
	return sheets, nil
}

func readXLSSheet(ws *xls.WorkSheet) (Grid, int) {
	grid := make(Grid, int(ws.MaxRow)+1)
	unreadable := 0
	for r := 0; r <= int(ws.MaxRow); r++ {
		xr := xlsRow(ws, r)
		if xr == nil {
			continue
		}
		// LastCol may be inclusive or one past the end depending on the writer
		width := xr.LastCol() + 1
		row := make(Row, width)
		for c := xr.FirstCol(); c >= 0 && c < width; c++ {
			raw := xr.Col(c)
			if raw == xlsFormulaText {
				unreadable++
				continue
			}
			row[c] = xlsCell(raw)
		}
		grid[r] = row
	}
	if len(grid) == 1 && grid[0] == nil {
		return Grid{}, unreadable
	}
	return grid, unreadable
}

// xlsRow returns row r or nil. WorkSheet.Row dereferences the map entry
// unchecked, so rows without any record panic.
func xlsRow(ws *xls.WorkSheet, r int) (row *xls.Row) {
	defer func() {
		if recover() != nil {
			row = nil
		}
	}()
	return ws.Row(r)
}

// xlsCell maps one formatted BIFF string to a Cell. Timestamps produced for
// custom number formats are turned back into the stored serial number.
func xlsCell(raw string) Cell {
	if raw == xlsFormulaText {
		return Absent()
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return Number(float64(t.Sub(xlsEpoch)) / float64(24*time.Hour))
	}
	return inferCell(raw)
}
