// Single-frame braille plotting sandbox: renders a Lissajous figure at the
// terminal's high-res virtual resolution and exits.
//
// ./braille-sandbox -a 3 -b 2 -steps 4000
package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/lixenwraith/termrender/terminal"
	"github.com/lixenwraith/termrender/window"
)

func main() {
	var (
		a     float64
		b     float64
		steps int
	)
	flag.Float64Var(&a, "a", 3, "horizontal frequency")
	flag.Float64Var(&b, "b", 2, "vertical frequency")
	flag.IntVar(&steps, "steps", 4000, "curve samples")
	flag.Parse()

	w, err := window.New(window.ModeBW | window.ModeHighRes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cx := float64(w.Width()) / 2
	cy := float64(w.Height()) / 2
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps) * 2 * math.Pi
		x := cx + (cx-2)*math.Sin(a*t)
		y := cy + (cy-2)*math.Sin(b*t+math.Pi/2)
		w.Plot(int(x), int(y), 1)
	}

	if err := terminal.Setup(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := w.Update(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := terminal.Restore(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
}
