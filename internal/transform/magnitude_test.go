package transform

import "testing"

func TestFormatMagnitude(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{2_500_000_000_000, "$2.50T"},
		{1_000_000_000_000, "$1.00T"}, // boundary: exactly 1e12 is T
		{999_000_000_000, "$999.00B"},
		{1_000_000_000, "$1.00B"}, // boundary: exactly 1e9 is B, not M
		{999_000_000, "$999.00M"},
		{1_000_000, "$1.00M"},
		{999_999, "$999,999"},
		{1500, "$1,500"},
		{500, "$500"},
		{0, "$0"},
	}
	for _, tt := range tests {
		if got := FormatMagnitude(tt.value); got != tt.want {
			t.Errorf("FormatMagnitude(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}
