// Package fbd renders static free-body diagrams as SVG. The diagrams are
// pure illustration: no forces are solved here.
package fbd

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/san-kum/phystutor/internal/plot"
)

const (
	diagramW = 480
	diagramH = 420
)

// Atwood draws the forces on one hanging mass of an Atwood machine:
// tension T upward, weight mg downward. massLabel is "m1" or "m2".
func Atwood(massLabel, path string) (*plot.Artifact, error) {
	massLabel = strings.ToLower(strings.TrimSpace(massLabel))
	if massLabel != "m1" && massLabel != "m2" {
		return nil, fmt.Errorf("fbd: mass label must be m1 or m2, got %q", massLabel)
	}

	d := newDiagram(fmt.Sprintf("FBD: Atwood (%s)", massLabel))
	cx, cy := diagramW/2.0, diagramH/2.0

	d.circle(cx, cy, 14)
	d.arrow(cx, cy-20, cx, cy-140, "T")
	d.arrow(cx, cy+20, cx, cy+140, massLabel+" g")

	return d.write(path)
}

// Incline draws a block on a slope with normal, weight, friction and the
// weight components along and perpendicular to the surface.
func Incline(path string) (*plot.Artifact, error) {
	d := newDiagram("FBD: Incline block")

	// 30 degree slope through the lower part of the frame
	x0, y0 := 60.0, 340.0
	x1, y1 := 420.0, 132.0
	d.line(x0, y0, x1, y1)

	// Block resting mid-slope, rotated with the surface
	bx, by := 240.0, 236.0
	angle := -math.Atan2(y0-y1, x1-x0) * 180 / math.Pi
	d.rectRotated(bx-30, by-40, 60, 36, angle, bx, by)

	// Normal, perpendicular to the surface
	nx, ny := unit(-(y0 - y1), -(x1 - x0))
	d.arrow(bx, by-24, bx+nx*110, by-24+ny*110, "N")

	// Weight straight down
	d.arrow(bx, by, bx, by+130, "mg")

	// Friction up the slope
	ux, uy := unit(-(x1 - x0), -(y1 - y0))
	d.arrow(bx-20, by+4, bx-20+ux*100, by+4+uy*100, "f")

	d.label(bx+70, by+80, "mg sinθ (along)")
	d.label(bx-160, by-60, "mg cosθ (normal)")

	return d.write(path)
}

// Horizontal draws a block on a flat surface with applied force, friction,
// normal and weight.
func Horizontal(path string) (*plot.Artifact, error) {
	d := newDiagram("FBD: 1D horizontal")

	cx, cy := diagramW/2.0, diagramH/2.0
	d.line(60, cy+30, diagramW-60, cy+30)
	d.rect(cx-35, cy-10, 70, 40)

	d.arrow(cx+40, cy+10, cx+170, cy+10, "F")
	d.arrow(cx-40, cy+10, cx-170, cy+10, "f")
	d.arrow(cx, cy-15, cx, cy-140, "N")
	d.arrow(cx, cy+35, cx, cy+150, "mg")

	return d.write(path)
}

func unit(dx, dy float64) (float64, float64) {
	n := math.Hypot(dx, dy)
	return dx / n, dy / n
}

// diagram accumulates SVG elements in draw order.
type diagram struct {
	sb strings.Builder
}

func newDiagram(title string) *diagram {
	d := &diagram{}
	d.sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<defs><marker id="tip" markerWidth="10" markerHeight="8" refX="9" refY="4" orient="auto">
<path d="M0,0 L10,4 L0,8 z" fill="#00ff00"/></marker></defs>
<text x="%d" y="28" fill="#dddddd" font-family="monospace" font-size="16" text-anchor="middle">%s</text>
`, diagramW, diagramH, diagramW, diagramH, diagramW/2, title))
	return d
}

func (d *diagram) line(x0, y0, x1, y1 float64) {
	d.sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#666666" stroke-width="2"/>
`, x0, y0, x1, y1))
}

func (d *diagram) rect(x, y, w, h float64) {
	d.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#dddddd" stroke-width="2"/>
`, x, y, w, h))
}

func (d *diagram) rectRotated(x, y, w, h, angle, cx, cy float64) {
	d.sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#dddddd" stroke-width="2" transform="rotate(%.1f %.1f %.1f)"/>
`, x, y, w, h, angle, cx, cy))
}

func (d *diagram) circle(cx, cy, r float64) {
	d.sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#dddddd" stroke-width="2"/>
`, cx, cy, r))
}

func (d *diagram) arrow(x0, y0, x1, y1 float64, label string) {
	d.sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="#00ff00" stroke-width="2" marker-end="url(#tip)"/>
`, x0, y0, x1, y1))
	// Label sits just past the arrow tip.
	dx, dy := unit(x1-x0, y1-y0)
	d.label(x1+dx*10+6, y1+dy*10+4, label)
}

func (d *diagram) label(x, y float64, text string) {
	d.sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="#aaaaaa" font-family="monospace" font-size="14">%s</text>
`, x, y, text))
}

func (d *diagram) write(path string) (*plot.Artifact, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, err
		}
	}
	d.sb.WriteString("</svg>\n")
	if err := os.WriteFile(path, []byte(d.sb.String()), 0644); err != nil {
		return nil, err
	}
	return &plot.Artifact{Path: path}, nil
}
