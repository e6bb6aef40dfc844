package tables

import (
	"log/slog"
	"strings"

	"github.com/ShwetaPawar0705/IRIS/internal/sheets"
)

// fallbackSuffix names the table synthesised for a sheet without headers
const fallbackSuffix = "_data"

// Segmenter partitions a sheet grid into named tables in a single
// top-to-bottom pass with no backtracking
type Segmenter struct {
	detector HeaderDetector
	logger   *slog.Logger
}

// SegmenterOption configures a Segmenter
type SegmenterOption func(*Segmenter)

// WithHeaderDetector replaces the header heuristic
func WithHeaderDetector(d HeaderDetector) SegmenterOption {
	return func(s *Segmenter) {
		if d != nil {
			s.detector = d
		}
	}
}

// WithSegmenterLogger sets the logger used for per-sheet debug output
func WithSegmenterLogger(logger *slog.Logger) SegmenterOption {
	return func(s *Segmenter) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewSegmenter returns a segmenter using DefaultHeaderDetector
func NewSegmenter(opts ...SegmenterOption) *Segmenter {
	s := &Segmenter{
		detector: DefaultHeaderDetector,
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// sheetTables keeps the tables of one sheet in discovery order with the
// registry collision rule applied inside the sheet
type sheetTables struct {
	order []*Table
	index map[string]int
}

func (st *sheetTables) commit(t *Table) {
	if st.index == nil {
		st.index = make(map[string]int)
	}
	if i, ok := st.index[t.Name]; ok {
		st.order[i] = t
		return
	}
	st.index[t.Name] = len(st.order)
	st.order = append(st.order, t)
}

// Segment returns the tables found in sheet. Rows before the first header
// and blank rows are dropped. A header only commits the table it closes if
// that table collected at least one row. When no table is found, every
// non-blank row goes into a single "{sheet}_data" table.
func (s *Segmenter) Segment(sheet sheets.Sheet) []*Table {
	var (
		found       sheetTables
		currentName string
		currentRows []sheets.Row
		dropped     int
	)

	for _, row := range sheet.Grid {
		rendered := row.Render()

		if s.detector.IsHeader(rendered) {
			if currentName != "" && len(currentRows) > 0 {
				found.commit(&Table{Name: currentName, Sheet: sheet.Name, Rows: currentRows})
			}
			currentName = strings.TrimSpace(rendered)
			currentRows = nil
			continue
		}

		if currentName != "" && !row.IsBlank() {
			currentRows = append(currentRows, row)
			continue
		}
		if !row.IsBlank() {
			dropped++
		}
	}

	if currentName != "" && len(currentRows) > 0 {
		found.commit(&Table{Name: currentName, Sheet: sheet.Name, Rows: currentRows})
	}

	if len(found.order) == 0 {
		if rows := sheet.Grid.NonBlankRows(); len(rows) > 0 {
			found.commit(&Table{
				Name:     sheet.Name + fallbackSuffix,
				Sheet:    sheet.Name,
				Rows:     rows,
				Fallback: true,
			})
		}
	}

	s.logger.Debug("sheet segmented",
		slog.String("sheet", sheet.Name),
		slog.Int("rows", len(sheet.Grid)),
		slog.Int("tables", len(found.order)),
		slog.Int("rows_before_first_header", dropped))

	return found.order
}
