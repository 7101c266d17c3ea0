// Package rate - range parsing tests
package rate

import (
	"testing"

	"github.com/shopspring/decimal"
)

// TestParseRange covers the published display shapes.
func TestParseRange(t *testing.T) {
	tests := []struct {
		in        string
		low, high float64
		ok        bool
	}{
		{"$900–$1,500", 900, 1500, true},
		{"$400–$750", 400, 750, true},
		{"$150", 150, 150, true},
		{"$1,049", 1049, 1049, true},
		{"$0.25–$0.35", 0.25, 0.35, true},
		{"900-1500", 900, 1500, true},  // plain hyphen
		{"$900—$1,500", 900, 1500, true}, // em dash
		{"  $150  ", 150, 150, true},
		{"", 0, 0, false},
		{"Union Rate", 0, 0, false},
		{"Union Rate – refer to SAG-AFTRA scale", 0, 0, false},
		{"Refer to TV rates", 0, 0, false},
	}

	for _, tt := range tests {
		low, high, ok := ParseRange(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseRange(%q) ok = %t, want %t", tt.in, ok, tt.ok)
			continue
		}
		if !ok {
			continue
		}
		if !low.Equal(decimal.NewFromFloat(tt.low)) || !high.Equal(decimal.NewFromFloat(tt.high)) {
			t.Errorf("ParseRange(%q) = %s, %s, want %v, %v", tt.in, low, high, tt.low, tt.high)
		}
	}
}

// TestParseRangeLeadingDash proves a leading dash is not treated as a
// separator.
func TestParseRangeLeadingDash(t *testing.T) {
	if _, _, ok := ParseRange("-500"); !ok {
		t.Error("expected a separatorless negative-looking string to parse as a single value")
	}
}
