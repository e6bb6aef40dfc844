// Package sheets decodes a spreadsheet file into named grids of tagged cells.
//
// Each sheet becomes a Grid: row-major, possibly ragged, with blank cells
// normalised to the absent marker. A Cell remembers whether the decoder saw
// a number or text, because later coercion treats the two differently.
//
// Supported containers:
//
//	.xlsx .xlsm .xltx .xltm   excelize, raw values plus stored cell type
//	.xls                      extrame/xls, numbers inferred from the text
//	.csv                      encoding/csv, numbers inferred from the text
//
// Usage:
//
//	wb, err := sheets.Open("capbudg.xls", sheets.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	for _, s := range wb.Sheets {
//	    fmt.Println(s.Name, len(s.Grid))
//	}
package sheets
