package utils

import (
	"strconv"
	"strings"
)

// FormatPrice formats a euro amount with the shortest exact decimal representation,
// keeping one decimal on whole amounts, e.g. 24.9 -> "24.9", 30 -> "30.0".
// Used inside the model prompt.
func FormatPrice(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatEUR formats a euro amount the Italian way, e.g. 1234.5 -> "€ 1.234,50".
// Uses dot as thousands separator and comma for cents.
func FormatEUR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	cents := int64(amount*100 + 0.5)
	units := strconv.FormatInt(cents/100, 10)
	frac := cents % 100

	var b strings.Builder
	// Pre-allocate: digits + separators + symbol + cents
	b.Grow(len(units) + len(units)/3 + 7)
	if neg {
		b.WriteString("-€ ")
	} else {
		b.WriteString("€ ")
	}

	// Insert separators from the left.
	rem := len(units) % 3
	if rem == 0 {
		rem = 3
	}
	b.WriteString(units[:rem])
	for i := rem; i < len(units); i += 3 {
		b.WriteByte('.')
		b.WriteString(units[i : i+3])
	}

	b.WriteByte(',')
	if frac < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(frac, 10))

	return b.String()
}
