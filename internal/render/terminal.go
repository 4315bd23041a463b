package render

import (
	"fmt"
	"io"

	"github.com/guptarohit/asciigraph"

	"dealersim/internal/driver"
)

// TerminalChart renders each frame as a fixed-height line chart with a
// numeric vertical axis, clearing the screen and redrawing in full.
type TerminalChart struct {
	Out    io.Writer
	Height int
	Width  int
}

func NewTerminalChart(out io.Writer) *TerminalChart {
	return &TerminalChart{Out: out, Height: 16, Width: 70}
}

func (t *TerminalChart) Render(frame driver.Frame) {
	fmt.Fprint(t.Out, "\033[H\033[2J")
	fmt.Fprintln(t.Out, Chart(frame, t.Height, t.Width))
}

// Chart draws the frame's retained window, oldest value on the left.
func Chart(frame driver.Frame, height, width int) string {
	values := make([]float64, 0, len(frame.Values))
	for _, v := range frame.Values {
		values = append(values, float64(v))
	}
	if len(values) == 0 {
		values = []float64{0}
	}
	if len(values) == 1 {
		// asciigraph needs two points to draw a segment.
		values = append(values, values[0])
	}
	return asciigraph.Plot(values,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(fmt.Sprintf("day %d  inventory %d", frame.Day, frame.Last())),
	)
}
