package palette

import (
	"fmt"
	"strings"
	"testing"
)

func TestTables(t *testing.T) {
	tests := []struct {
		name    string
		table   []string
		wantLen int
	}{
		{"Monochrome", Monochrome, 16},
		{"Palette4", Palette4, 4},
		{"Palette8", Palette8, 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if len(tt.table) != tt.wantLen {
				t.Fatalf("table length = %d, want %d", len(tt.table), tt.wantLen)
			}
			for i, esc := range tt.table {
				if !strings.HasPrefix(esc, "\x1b[") || !strings.HasSuffix(esc, "m") {
					t.Errorf("entry %d = %q is not an SGR sequence", i, esc)
				}
			}
		})
	}
}

func TestMonochromeOrdering(t *testing.T) {
	// The ramp must stay dark-to-light on the 232-255 grayscale band
	prev := -1
	for i, esc := range Monochrome {
		var n int
		if _, err := fmt.Sscanf(esc, "\x1b[38;5;%dm", &n); err != nil {
			t.Fatalf("entry %d = %q: %v", i, esc, err)
		}
		if n < 232 || n > 255 {
			t.Errorf("entry %d = %d outside grayscale band", i, n)
		}
		if n <= prev {
			t.Errorf("entry %d = %d not above previous %d", i, n, prev)
		}
		prev = n
	}
}
