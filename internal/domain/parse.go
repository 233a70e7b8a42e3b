package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal parses raw as a decimal number. Surrounding whitespace and a
// leading "$" are ignored.
func ParseDecimal(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// ParseDecimalOrDefault is ParseDecimal with def for anything unparsable.
func ParseDecimalOrDefault(raw string, def decimal.Decimal) decimal.Decimal {
	if d, ok := ParseDecimal(raw); ok {
		return d
	}
	return def
}

// ParseIntOrDefault parses the leading integer of raw, so "12", "12.9" and
// "12 units" all yield 12. A value without a leading integer yields def.
func ParseIntOrDefault(raw string, def int) int {
	s := strings.TrimSpace(raw)

	end := 0
	if end < len(s) && (s[end] == '-' || s[end] == '+') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return def
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return def
	}
	return n
}
