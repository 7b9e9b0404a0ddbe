// Package plot renders solved trajectories and motion profiles as 2D line
// charts: an SVG artifact persisted at a caller-supplied path, plus
// Braille and asciigraph previews for the terminal.
package plot

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/guptarohit/asciigraph"
)

// Series is one ordered line series with axis labels and a title.
// Rendering is deterministic given identical input.
type Series struct {
	X, Y   []float64
	XLabel string
	YLabel string
	Title  string
}

// Artifact is a handle to a rendered plot file. Ownership is the caller's:
// it decides whether and where to display or discard it.
type Artifact struct {
	Path string
}

// RenderSVG writes the series as an SVG line chart at path, overwriting
// any existing file there. The parent directory is created if needed.
// This is the core's only side effect.
func RenderSVG(s Series, path string) (*Artifact, error) {
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("plot: mismatched series lengths %d vs %d", len(s.X), len(s.Y))
	}
	if len(s.X) < 2 {
		return nil, fmt.Errorf("plot: need at least 2 points, got %d", len(s.X))
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}

	svg := buildSVG(s, svgWidth, svgHeight)
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		return nil, err
	}
	return &Artifact{Path: path}, nil
}

// Ascii renders the series' y values as a terminal line graph.
func Ascii(s Series, width, height int) string {
	if len(s.Y) == 0 {
		return ""
	}
	caption := s.Title
	if caption == "" {
		caption = fmt.Sprintf("%s vs %s", s.YLabel, s.XLabel)
	}
	return asciigraph.Plot(s.Y,
		asciigraph.Height(height),
		asciigraph.Width(width),
		asciigraph.Caption(caption),
	)
}

// Braille renders the series on a Braille canvas, preserving the x
// spacing (unlike Ascii, which assumes evenly spaced samples).
func Braille(s Series, width, height int) string {
	if len(s.X) < 2 || len(s.X) != len(s.Y) {
		return ""
	}

	minX, maxX := bounds(s.X)
	minY, maxY := bounds(s.Y)
	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}

	c := NewCanvas(width, height)
	pw := width*2 - 1
	ph := height*4 - 1

	px := func(i int) (int, int) {
		x := int(float64(pw) * (s.X[i] - minX) / rangeX)
		y := ph - int(float64(ph)*(s.Y[i]-minY)/rangeY)
		return x, y
	}

	x0, y0 := px(0)
	for i := 1; i < len(s.X); i++ {
		x1, y1 := px(i)
		c.Line(x0, y0, x1, y1)
		x0, y0 = x1, y1
	}

	return c.String()
}

func bounds(vals []float64) (float64, float64) {
	min, max := vals[0], vals[0]
	for _, v := range vals {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return min, max
}
