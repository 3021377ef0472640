// internal/domain/food/price.go
package food

import (
	"errors"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

var ErrInvalidPrice = errors.New("food: invalid price")

// ParsePrice parses a display-formatted price string into a decimal amount.
//
// Catalog prices arrive locale-formatted, e.g. "239,000 đ" or "1.299.000 đ":
// a trailing currency marker and grouping separators between 3-digit groups.
// Grouping separators (comma, period, space) are stripped; a separator
// followed by fewer than 3 digits at the end is treated as the decimal point.
func ParsePrice(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidPrice
	}

	// drop everything after the numeric run (currency marker etc.)
	end := len(s)
	for i, r := range s {
		if !unicode.IsDigit(r) && r != ',' && r != '.' && r != ' ' {
			end = i
			break
		}
	}
	num := strings.TrimSpace(s[:end])
	if num == "" {
		return decimal.Zero, ErrInvalidPrice
	}

	// locate a decimal separator: last ',' or '.' followed by 1-2 digits
	decIdx := -1
	for i := len(num) - 1; i >= 0; i-- {
		c := num[i]
		if c == ',' || c == '.' {
			if tail := len(num) - i - 1; tail >= 1 && tail < 3 {
				decIdx = i
			}
			break
		}
	}

	var b strings.Builder
	for i := 0; i < len(num); i++ {
		c := num[i]
		switch {
		case c >= '0' && c <= '9':
			b.WriteByte(c)
		case i == decIdx:
			b.WriteByte('.')
		case c == ',' || c == '.' || c == ' ':
			// grouping separator
		default:
			return decimal.Zero, ErrInvalidPrice
		}
	}

	d, err := decimal.NewFromString(b.String())
	if err != nil {
		return decimal.Zero, ErrInvalidPrice
	}
	return d, nil
}
