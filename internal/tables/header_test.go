package tables

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsHeaderCandidate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"empty", "", false},
		{"whitespace only", "   \t ", false},
		{"keyword match", "Cash Flow Summary", true},
		{"keyword is case insensitive", "OPERATING COSTS", true},
		{"keyword inside long row", "the initial outlay for year one was large and paid in cash", true},
		{"keyword as substring", "Reinvestment", true},
		{"six tokens no keyword", "Q1 Q2 Q3 Q4 Q5 Q6", false},
		{"five tokens long enough", "Year 1 Year 2 Total", true},
		{"short single word", "Total", false},
		{"exactly six characters", "Totals", true},
		{"five characters plus padding", " Total", true},
		{"number rendered from cell", "1000", false},
		{"label and number", "Sales 1000 2000", true},
		{"rune length not byte length", "ÉÉÉÉÉ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHeaderCandidate(tt.text))
		})
	}
}

func TestDefaultHeaderDetector(t *testing.T) {
	assert.True(t, DefaultHeaderDetector.IsHeader("Capital Budget"))
	assert.False(t, DefaultHeaderDetector.IsHeader(""))
}

func TestHeaderDetectorFunc(t *testing.T) {
	calls := 0
	d := HeaderDetectorFunc(func(text string) bool {
		calls++
		return text == "X"
	})

	assert.True(t, d.IsHeader("X"))
	assert.False(t, d.IsHeader("Y"))
	assert.Equal(t, 2, calls)
}
