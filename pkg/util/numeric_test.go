package util

import (
	"encoding/json"
	"testing"
)

func TestParseFloatCoercions(t *testing.T) {
	cases := []struct {
		in   interface{}
		want float64
	}{
		{3.5, 3.5},
		{"2.25", 2.25},
		{json.Number("7"), 7},
		{int64(4), 4},
		{nil, -1},
		{"garbage", -1},
		{map[string]interface{}{}, -1},
	}
	for _, c := range cases {
		if got := ParseFloat(c.in, -1); got != c.want {
			t.Fatalf("ParseFloat(%v) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseIntCoercions(t *testing.T) {
	if got := ParseInt("42", 0); got != 42 {
		t.Fatalf("expected 42, got %d", got)
	}
	if got := ParseInt(9.9, 0); got != 9 {
		t.Fatalf("expected 9, got %d", got)
	}
	if got := ParseInt(nil, 20); got != 20 {
		t.Fatalf("expected default 20, got %d", got)
	}
}

func TestFormatRatioZeroWhole(t *testing.T) {
	for _, part := range []float64{0, 1, -5, 1e18} {
		if got := FormatRatio(part, 0); got != "0.00" {
			t.Fatalf("FormatRatio(%v, 0) = %q", part, got)
		}
	}
}

func TestFormatRatio(t *testing.T) {
	if got := FormatRatio(25, 200); got != "12.50" {
		t.Fatalf("unexpected ratio %q", got)
	}
}

func TestFormatTokenAmount(t *testing.T) {
	if got := FormatTokenAmount(1500000000, 9); got != "1.5" {
		t.Fatalf("unexpected amount %q", got)
	}
	if got := FormatTokenAmount(0, 6); got != "0" {
		t.Fatalf("unexpected amount %q", got)
	}
}
