package sheets

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// decodeCSV reads a comma separated file as a single sheet named after the
// file without its extension
func decodeCSV(path string) ([]Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newDecodeError(path, "", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	records, err := r.ReadAll()
	if err != nil {
		return nil, newDecodeError(path, "", fmt.Errorf("%w: %v", ErrCorruptWorkbook, err))
	}

	grid := make(Grid, len(records))
	for i, rec := range records {
		row := make(Row, len(rec))
		for j, raw := range rec {
			row[j] = inferCell(raw)
		}
		grid[i] = row
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return []Sheet{{Name: name, Grid: grid}}, nil
}
