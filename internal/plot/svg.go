package plot

import (
	"fmt"
	"strings"
)

const (
	svgWidth  = 640
	svgHeight = 420
	svgMargin = 50.0
)

// buildSVG lays out a single line series with axes, min/max tick labels
// and a title on a dark background.
func buildSVG(s Series, width, height int) string {
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
	// 5% padding around the data
	minX -= rangeX * 0.05
	maxX += rangeX * 0.05
	minY -= rangeY * 0.05
	maxY += rangeY * 0.05
	rangeX = maxX - minX
	rangeY = maxY - minY

	w := float64(width)
	h := float64(height)
	plotW := w - 2*svgMargin
	plotH := h - 2*svgMargin

	toPx := func(x, y float64) (float64, float64) {
		px := svgMargin + (x-minX)/rangeX*plotW
		py := h - svgMargin - (y-minY)/rangeY*plotH
		return px, py
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	// Axes
	sb.WriteString(fmt.Sprintf(`<g stroke="#444444" stroke-width="1">
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
</g>
`,
		svgMargin, h-svgMargin, w-svgMargin, h-svgMargin,
		svgMargin, svgMargin, svgMargin, h-svgMargin))

	// Labels and min/max ticks
	sb.WriteString(fmt.Sprintf(`<g fill="#aaaaaa" font-family="monospace" font-size="12">
<text x="%.1f" y="%.1f" text-anchor="middle">%s</text>
<text x="%.1f" y="%.1f" text-anchor="middle" transform="rotate(-90 14 %.1f)">%s</text>
<text x="%.1f" y="%.1f" text-anchor="start">%.3g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.3g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.3g</text>
<text x="%.1f" y="%.1f" text-anchor="end">%.3g</text>
</g>
`,
		w/2, h-12.0, escape(s.XLabel),
		14.0, h/2, h/2, escape(s.YLabel),
		svgMargin, h-svgMargin+16, minX,
		w-svgMargin, h-svgMargin+16, maxX,
		svgMargin-6, h-svgMargin, minY,
		svgMargin-6, svgMargin+4, maxY))

	// Title
	if s.Title != "" {
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="24" fill="#dddddd" font-family="monospace" font-size="15" text-anchor="middle">%s</text>
`, w/2, escape(s.Title)))
	}

	// Data path
	sb.WriteString(`<path fill="none" stroke="#00ff00" stroke-width="1.5" d="M`)
	for i := range s.X {
		px, py := toPx(s.X[i], s.Y[i])
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", px, py))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", px, py))
		}
	}
	sb.WriteString("\"/>\n</svg>\n")

	return sb.String()
}

func escape(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}
