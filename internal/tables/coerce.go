package tables

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/ShwetaPawar0705/IRIS/internal/sheets"
)

// Coerce converts a cell to a summable number.
//
// Numbers pass through. Text keeps only decimal digits of any script, '.'
// and '-', and the remainder must parse as a float. Digits are folded to
// ASCII first, so "١٢٣" coerces to 123. Sign position and the number of decimal
// points are not validated: "12-3" and "1.2.3" are rejected by the parse,
// "(1,500)" becomes 1500 and "-$20" becomes -20. Absent cells never coerce.
func Coerce(c sheets.Cell) (float64, bool) {
	switch c.Kind {
	case sheets.KindNumber:
		return c.Number, true
	case sheets.KindText:
		return coerceText(c.Text)
	default:
		return 0, false
	}
}

func coerceText(s string) (float64, bool) {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case r == '.', r == '-':
			return r
		case unicode.IsDigit(r):
			return asciiDigit(r)
		default:
			return -1
		}
	}, s)
	if cleaned == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// asciiDigit folds a decimal digit to '0'..'9'. Decimal digits are encoded
// as runs of ten starting at zero, so the offset into the run is the value.
func asciiDigit(r rune) rune {
	if r <= unicode.MaxASCII {
		return r
	}
	for _, rg := range unicode.Nd.R16 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return '0' + (r-lo)/rune(rg.Stride)%10
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return '0' + (r-lo)/rune(rg.Stride)%10
		}
	}
	return -1
}
