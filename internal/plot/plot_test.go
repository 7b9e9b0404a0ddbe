package plot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func sine() Series {
	xs := make([]float64, 50)
	ys := make([]float64, 50)
	for i := range xs {
		xs[i] = float64(i) * 0.1
		ys[i] = float64(i%10) * 0.5
	}
	return Series{X: xs, Y: ys, XLabel: "t (s)", YLabel: "x (m)", Title: "Position vs Time"}
}

func TestRenderSVG(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")

	art, err := RenderSVG(sine(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if art.Path != path {
		t.Errorf("artifact path %q, want %q", art.Path, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("artifact not written: %v", err)
	}
	svg := string(data)

	for _, want := range []string{"<svg", "Position vs Time", "t (s)", "x (m)", "<path"} {
		if !strings.Contains(svg, want) {
			t.Errorf("svg missing %q", want)
		}
	}
}

func TestRenderSVGDeterministic(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "a.svg")
	p2 := filepath.Join(dir, "b.svg")

	if _, err := RenderSVG(sine(), p1); err != nil {
		t.Fatal(err)
	}
	if _, err := RenderSVG(sine(), p2); err != nil {
		t.Fatal(err)
	}

	a, _ := os.ReadFile(p1)
	b, _ := os.ReadFile(p2)
	if string(a) != string(b) {
		t.Error("identical input should render identical output")
	}
}

func TestRenderSVGOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.svg")

	if err := os.WriteFile(path, []byte("stale"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := RenderSVG(sine(), path); err != nil {
		t.Fatal(err)
	}

	data, _ := os.ReadFile(path)
	if string(data) == "stale" {
		t.Error("existing file should be overwritten")
	}
}

func TestRenderSVGRejectsBadSeries(t *testing.T) {
	dir := t.TempDir()

	if _, err := RenderSVG(Series{X: []float64{1, 2}, Y: []float64{1}}, filepath.Join(dir, "x.svg")); err == nil {
		t.Error("expected error for mismatched lengths")
	}
	if _, err := RenderSVG(Series{X: []float64{1}, Y: []float64{1}}, filepath.Join(dir, "y.svg")); err == nil {
		t.Error("expected error for a single point")
	}
}

func TestBraille(t *testing.T) {
	out := Braille(sine(), 40, 10)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 rows, got %d", len(lines))
	}

	lit := false
	for _, line := range out {
		if line > 0x2800 && line <= 0x28FF {
			lit = true
			break
		}
	}
	if !lit {
		t.Error("expected at least one lit braille cell")
	}
}

func TestCanvasBounds(t *testing.T) {
	c := NewCanvas(4, 4)
	// None of these may panic.
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(1000, 1000)
	c.Line(-5, -5, 100, 100)
}
