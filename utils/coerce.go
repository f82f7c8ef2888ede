package utils

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseIntOrZero coerces a form field to an integer, defaulting to 0 on
// absence or parse failure
func ParseIntOrZero(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// Tolerate numeric strings with a fractional part ("3.0")
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return 0
		}
		return int(f)
	}
	return n
}

// ParsePriceOrZero coerces a form field to a decimal price, defaulting to
// zero on absence or parse failure
func ParsePriceOrZero(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// CoerceInt coerces a decoded JSON value to an integer, defaulting to 0.
// JSON numbers decode as float64; string values are parsed leniently.
func CoerceInt(v interface{}) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case string:
		return ParseIntOrZero(n)
	case int:
		return n
	default:
		return 0
	}
}
