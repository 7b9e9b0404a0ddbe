package projectile

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/phystutor/internal/phys"
)

func TestSolveGroundLaunchSymmetry(t *testing.T) {
	// For y0=0 the closed-form identities hold:
	//   max_height = (v0 sin theta)^2 / (2g)
	//   range      = v0^2 sin(2 theta) / g
	g := DefaultGravity
	v0 := 20.0

	for _, deg := range []float64{5, 15, 30, 45, 60, 75, 85} {
		sol, err := Solve(v0, deg, 0, g)
		if err != nil {
			t.Fatalf("theta=%v: %v", deg, err)
		}

		theta := deg * math.Pi / 180
		wantH := math.Pow(v0*math.Sin(theta), 2) / (2 * g)
		wantR := v0 * v0 * math.Sin(2*theta) / g

		if math.Abs(sol.MaxHeight-wantH) > 1e-9 {
			t.Errorf("theta=%v: max height %f, want %f", deg, sol.MaxHeight, wantH)
		}
		if math.Abs(sol.Range-wantR) > 1e-9 {
			t.Errorf("theta=%v: range %f, want %f", deg, sol.Range, wantR)
		}
	}
}

func TestSolveElevatedLaunch(t *testing.T) {
	sol, err := Solve(10, 0, 20, DefaultGravity)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Horizontal launch from 20 m: tf = sqrt(2*y0/g)
	wantTf := math.Sqrt(2 * 20 / DefaultGravity)
	if math.Abs(sol.TimeOfFlight-wantTf) > 1e-9 {
		t.Errorf("time of flight %f, want %f", sol.TimeOfFlight, wantTf)
	}
	if math.Abs(sol.MaxHeight-20) > 1e-9 {
		t.Errorf("max height %f, want 20", sol.MaxHeight)
	}
}

func TestSolveNegativeDiscriminant(t *testing.T) {
	_, err := Solve(1, 0, -100, DefaultGravity)
	if !errors.Is(err, phys.ErrDomain) {
		t.Errorf("expected ErrDomain, got %v", err)
	}
}

func TestSolveNonPositiveGravity(t *testing.T) {
	for _, g := range []float64{0, -9.8} {
		if _, err := Solve(20, 45, 0, g); !errors.Is(err, phys.ErrDomain) {
			t.Errorf("g=%v: expected ErrDomain, got %v", g, err)
		}
	}
}

func TestTrajectory(t *testing.T) {
	samples, err := Trajectory(20, 30, 0, DefaultGravity, 100)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(samples) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(samples))
	}

	first, last := samples[0], samples[len(samples)-1]
	if first.T != 0 || first.X != 0 || math.Abs(first.Y) > 1e-12 {
		t.Errorf("first sample should be the launch point, got %+v", first)
	}
	if math.Abs(last.Y) > 1e-9 {
		t.Errorf("last sample should land at y=0, got %f", last.Y)
	}

	sol, _ := Solve(20, 30, 0, DefaultGravity)
	if math.Abs(last.T-sol.TimeOfFlight) > 1e-12 {
		t.Errorf("last sample time %f, want %f", last.T, sol.TimeOfFlight)
	}
	if math.Abs(last.X-sol.Range) > 1e-9 {
		t.Errorf("last sample x %f, want range %f", last.X, sol.Range)
	}

	// Times strictly increase and are evenly spaced.
	step := samples[1].T - samples[0].T
	for i := 1; i < len(samples); i++ {
		dt := samples[i].T - samples[i-1].T
		if math.Abs(dt-step) > 1e-9 {
			t.Fatalf("uneven spacing at %d: %f vs %f", i, dt, step)
		}
	}
}

func TestTrajectoryDefaultSamples(t *testing.T) {
	samples, err := Trajectory(20, 45, 0, DefaultGravity, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(samples) != DefaultSamples {
		t.Errorf("expected %d samples, got %d", DefaultSamples, len(samples))
	}
}
