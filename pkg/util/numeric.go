package util

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// ParseFloat coerces an untrusted upstream value to float64 or returns def.
// Upstream APIs mix numbers, numeric strings, and nulls in the same field.
func ParseFloat(v interface{}, def float64) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int64:
		return float64(x)
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f
		}
		return def
	case string:
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return f
		}
		return def
	default:
		return def
	}
}

// ParseInt coerces an untrusted upstream value to int or returns def.
func ParseInt(v interface{}, def int) int {
	switch x := v.(type) {
	case int:
		return x
	case int64:
		return int(x)
	case float64:
		return int(x)
	case json.Number:
		if n, err := x.Int64(); err == nil {
			return int(n)
		}
		if f, err := x.Float64(); err == nil {
			return int(f)
		}
		return def
	case string:
		if n, err := strconv.Atoi(x); err == nil {
			return n
		}
		if f, err := strconv.ParseFloat(x, 64); err == nil {
			return int(f)
		}
		return def
	default:
		return def
	}
}

// ParseIntDefault parses string to int or returns default if empty/invalid.
func ParseIntDefault(s string, def int) int {
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}

// FormatRatio renders part/whole as a percentage with two decimals.
// Returns "0.00" when whole is zero.
func FormatRatio(part, whole float64) string {
	if whole == 0 {
		return "0.00"
	}
	return fmt.Sprintf("%.2f", part/whole*100)
}

// FormatTokenAmount scales a raw on-chain amount by its decimals.
func FormatTokenAmount(amount float64, decimals int) string {
	return strconv.FormatFloat(amount/math.Pow10(decimals), 'f', -1, 64)
}
