package window

import (
	"errors"
	"io"
	"testing"
)

func newTestWindow(t *testing.T, mode Mode, cols, rows int) *Window {
	t.Helper()
	w, err := New(mode, WithSize(cols, rows), WithOutput(io.Discard))
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return w
}

func TestNewDimensions(t *testing.T) {
	tests := []struct {
		name       string
		mode       Mode
		cols, rows int
		wantW      int
		wantH      int
	}{
		{"BW matches terminal", ModeBW, 120, 30, 120, 30},
		{"Full color matches terminal", 0, 80, 24, 80, 24},
		{"High-res doubles and quadruples", ModeBW | ModeHighRes, 120, 30, 240, 120},
		{"High-res alone still scales", ModeHighRes, 10, 5, 20, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWindow(t, tt.mode, tt.cols, tt.rows)
			if w.Width() != tt.wantW || w.Height() != tt.wantH {
				t.Errorf("virtual size = %dx%d, want %dx%d",
					w.Width(), w.Height(), tt.wantW, tt.wantH)
			}
			if w.TerminalWidth() != tt.cols || w.TerminalHeight() != tt.rows {
				t.Errorf("terminal size = %dx%d, want %dx%d",
					w.TerminalWidth(), w.TerminalHeight(), tt.cols, tt.rows)
			}
			if len(w.Buffer()) != tt.wantW*tt.wantH {
				t.Errorf("buffer length = %d, want %d", len(w.Buffer()), tt.wantW*tt.wantH)
			}
			for i, v := range w.Buffer() {
				if v != 0 {
					t.Fatalf("buffer[%d] = %d after New, want 0", i, v)
				}
			}
		})
	}
}

func TestPlot(t *testing.T) {
	tests := []struct {
		name    string
		x, y    int
		val     int
		wantIdx int // -1 when the write must be dropped
	}{
		{"Interior pixel", 3, 2, 7, 3 + 2*8},
		{"Max corner", 7, 3, 1, 7 + 3*8},
		{"Column zero dropped", 0, 2, 1, -1},
		{"Row zero dropped", 3, 0, 1, -1},
		{"X past width dropped", 8, 2, 1, -1},
		{"Y past height dropped", 3, 4, 1, -1},
		{"Negative X dropped", -1, 2, 1, -1},
		{"Negative Y dropped", 3, -1, 1, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWindow(t, ModeBW, 8, 4)
			w.Plot(tt.x, tt.y, tt.val)
			for i, v := range w.Buffer() {
				switch {
				case i == tt.wantIdx && v != tt.val:
					t.Errorf("buffer[%d] = %d, want %d", i, v, tt.val)
				case i != tt.wantIdx && v != 0:
					t.Errorf("buffer[%d] = %d, want 0", i, v)
				}
			}
		})
	}
}

func TestPlotDefaultBounds(t *testing.T) {
	// The writable range is (0, width) x (0, height), both lower bounds
	// exclusive. Every edge write must be a silent no-op.
	w := newTestWindow(t, ModeBW, 4, 4)
	for i := 0; i < 4; i++ {
		w.Plot(i, 0, 1)
		w.Plot(0, i, 1)
	}
	for i, v := range w.Buffer() {
		if v != 0 {
			t.Fatalf("buffer[%d] = %d after edge writes, want 0", i, v)
		}
	}
}

func TestCopyBuffer(t *testing.T) {
	w := newTestWindow(t, ModeBW, 4, 2)

	src := []int{1, 2, 3, 4, 5, 6, 7, 8}
	if err := w.CopyBuffer(src); err != nil {
		t.Fatalf("CopyBuffer failed: %v", err)
	}
	for i, v := range w.Buffer() {
		if v != src[i] {
			t.Errorf("buffer[%d] = %d, want %d", i, v, src[i])
		}
	}

	// The window must keep its own copy
	src[0] = 99
	if w.Buffer()[0] != 1 {
		t.Errorf("buffer[0] = %d after mutating source, want 1", w.Buffer()[0])
	}
}

func TestCopyBufferLengthMismatch(t *testing.T) {
	tests := []struct {
		name string
		size int
	}{
		{"Too short", 7},
		{"Too long", 9},
		{"Empty", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWindow(t, ModeBW, 4, 2)
			w.Plot(1, 1, 5)

			err := w.CopyBuffer(make([]int, tt.size))
			if !errors.Is(err, ErrBufferLength) {
				t.Fatalf("CopyBuffer error = %v, want ErrBufferLength", err)
			}
			// Prior state preserved on failure
			if w.Buffer()[1+1*4] != 5 {
				t.Errorf("buffer changed after failed CopyBuffer")
			}
		})
	}
}

func TestClear(t *testing.T) {
	w := newTestWindow(t, ModeBW, 4, 2)
	if err := w.CopyBuffer([]int{1, 2, 3, 4, 5, 6, 7, 8}); err != nil {
		t.Fatalf("CopyBuffer failed: %v", err)
	}

	w.Clear()
	if len(w.Buffer()) != 8 {
		t.Fatalf("buffer length = %d after Clear, want 8", len(w.Buffer()))
	}
	for i, v := range w.Buffer() {
		if v != 0 {
			t.Errorf("buffer[%d] = %d after Clear, want 0", i, v)
		}
	}
}

func TestRGB(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    int
	}{
		{"Red", 255, 0, 0, 0xFF0000},
		{"Green", 0, 255, 0, 0x00FF00},
		{"Blue", 0, 0, 255, 0x0000FF},
		{"White", 255, 255, 255, 0xFFFFFF},
		{"Mixed", 0x12, 0x34, 0x56, 0x123456},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RGB(tt.r, tt.g, tt.b); got != tt.want {
				t.Errorf("RGB(%d,%d,%d) = %#x, want %#x", tt.r, tt.g, tt.b, got, tt.want)
			}
		})
	}
}
