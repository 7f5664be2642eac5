// Demo CLI for the termrender library. Each subcommand drives one render
// mode as a short animation on the live terminal:
//
//	termrender blocks    # monochrome block cells
//	termrender braille   # high-res 2x4 braille packing
//	termrender palette   # 8-color indexed bars
//	termrender rgb       # 24-bit plasma sweep
package main

import (
	"fmt"
	"math"
	"os"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/termrender/terminal"
	"github.com/lixenwraith/termrender/window"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		frames int
		delay  time.Duration
	)

	root := &cobra.Command{
		Use:           "termrender",
		Short:         "Terminal pixel framebuffer demos",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
	}
	root.PersistentFlags().IntVar(&frames, "frames", 150, "number of frames to render")
	root.PersistentFlags().DurationVar(&delay, "delay", 33*time.Millisecond, "delay between frames")

	root.AddCommand(
		&cobra.Command{
			Use:   "blocks",
			Short: "Bouncing rectangle in monochrome block mode",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemo(window.ModeBW, frames, delay, drawBlocks)
			},
		},
		&cobra.Command{
			Use:   "braille",
			Short: "Sine trace in high-res braille mode",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemo(window.ModeBW|window.ModeHighRes, frames, delay, drawSine)
			},
		},
		&cobra.Command{
			Use:   "palette",
			Short: "Scrolling color bars in 8-color indexed mode",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runDemo(window.ModePalette8, frames, delay, drawBars)
			},
		},
		&cobra.Command{
			Use:   "rgb",
			Short: "Plasma sweep in 24-bit color mode",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				if terminal.DetectColorMode() != terminal.ColorModeTrueColor {
					fmt.Fprintln(os.Stderr, "terminal lacks 24-bit color, degrading to 8-color palette")
					return runDemo(window.ModePalette8, frames, delay, drawPlasmaIndexed)
				}
				return runDemo(0, frames, delay, drawPlasma)
			},
		},
	)
	return root
}

// runDemo owns the terminal lifecycle around a frame loop
func runDemo(mode window.Mode, frames int, delay time.Duration, draw func(w *window.Window, frame int)) error {
	w, err := window.New(mode)
	if err != nil {
		return err
	}
	if err := terminal.Setup(os.Stdout); err != nil {
		return err
	}
	defer terminal.Restore(os.Stdout)

	for i := 0; i < frames; i++ {
		w.Clear()
		draw(w, i)
		if err := w.Update(); err != nil {
			return err
		}
		time.Sleep(delay)
	}
	return nil
}

func drawBlocks(w *window.Window, frame int) {
	bw, bh := max(w.Width()/6, 2), max(w.Height()/4, 2)
	// Triangle-wave bounce across the writable interior
	ox := 1 + bounce(frame*2, w.Width()-bw-1)
	oy := 1 + bounce(frame, w.Height()-bh-1)
	for y := oy; y < oy+bh; y++ {
		for x := ox; x < ox+bw; x++ {
			w.Plot(x, y, 1)
		}
	}
}

func drawSine(w *window.Window, frame int) {
	mid := float64(w.Height()) / 2
	amp := mid * 0.8
	phase := float64(frame) * 0.15
	for x := 1; x < w.Width(); x++ {
		a := float64(x) / float64(w.Width()) * 4 * math.Pi
		w.Plot(x, int(mid+amp*math.Sin(a+phase)), 1)
	}
}

func drawBars(w *window.Window, frame int) {
	barW := max(w.Width()/7, 1)
	for y := 1; y < w.Height(); y++ {
		for x := 1; x < w.Width(); x++ {
			// cycle indices 1-7; index 0 is the blank slot
			w.Plot(x, y, 1+((x+frame)/barW)%7)
		}
	}
}

func drawPlasma(w *window.Window, frame int) {
	t := float64(frame) * 0.05
	for y := 1; y < w.Height(); y++ {
		for x := 1; x < w.Width(); x++ {
			hue := plasmaHue(x, y, t)
			r, g, b := colorful.Hsv(hue, 1, 1).RGB255()
			w.Plot(x, y, window.RGB(r, g, b))
		}
	}
}

// drawPlasmaIndexed is the same field quantized onto palette slots 1-7,
// for terminals without 24-bit color
func drawPlasmaIndexed(w *window.Window, frame int) {
	t := float64(frame) * 0.05
	for y := 1; y < w.Height(); y++ {
		for x := 1; x < w.Width(); x++ {
			w.Plot(x, y, 1+int(plasmaHue(x, y, t)/360*7)%7)
		}
	}
}

func plasmaHue(x, y int, t float64) float64 {
	v := math.Sin(float64(x)*0.12+t) + math.Sin(float64(y)*0.23-t)
	return math.Mod(v*90+360, 360)
}

// bounce folds n into a 0..limit triangle wave
func bounce(n, limit int) int {
	if limit <= 0 {
		return 0
	}
	n %= 2 * limit
	if n < 0 {
		n += 2 * limit
	}
	if n > limit {
		return 2*limit - n
	}
	return n
}
