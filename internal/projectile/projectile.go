// Package projectile solves ballistic motion launched from an optional
// initial height, in closed form.
package projectile

import (
	"math"

	"github.com/san-kum/phystutor/internal/phys"
)

const (
	// DefaultGravity for projectile problems, in m/s^2.
	DefaultGravity = 9.8

	// DefaultSamples is the trajectory sample count when the caller
	// passes n <= 0.
	DefaultSamples = 400
)

// Solution holds the closed-form results, all values SI.
type Solution struct {
	Vx0          float64
	Vy0          float64
	TimeOfFlight float64
	Range        float64
	MaxHeight    float64
}

// Sample is one point of a time-sampled trajectory.
type Sample struct {
	T float64
	X float64
	Y float64
}

// Solve computes time of flight, range and max height for launch speed v0
// at thetaDeg degrees from height y0. g must be positive (callers pass
// DefaultGravity when the user supplied none); a non-positive g, or a
// start below ground with insufficient upward velocity, is a domain error.
func Solve(v0, thetaDeg, y0, g float64) (*Solution, error) {
	if g <= 0 {
		return nil, &phys.DomainError{Reason: "gravity must be positive"}
	}

	theta := thetaDeg * math.Pi / 180.0
	vx0 := v0 * math.Cos(theta)
	vy0 := v0 * math.Sin(theta)

	disc := vy0*vy0 + 2*g*y0
	if disc < 0 {
		return nil, &phys.DomainError{Reason: "no real landing time: object starts below ground with insufficient upward velocity"}
	}

	// Positive root of y0 + vy0*t - g*t^2/2 = 0.
	tf := (vy0 + math.Sqrt(disc)) / g

	return &Solution{
		Vx0:          vx0,
		Vy0:          vy0,
		TimeOfFlight: tf,
		Range:        vx0 * tf,
		MaxHeight:    y0 + vy0*vy0/(2*g),
	}, nil
}

// Trajectory samples n evenly spaced times in [0, time of flight] and
// evaluates x(t) = vx0*t, y(t) = y0 + vy0*t - g*t^2/2. The sequence is
// generated eagerly and owned by the caller.
func Trajectory(v0, thetaDeg, y0, g float64, n int) ([]Sample, error) {
	sol, err := Solve(v0, thetaDeg, y0, g)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		n = DefaultSamples
	}

	samples := make([]Sample, n)
	for i := 0; i < n; i++ {
		t := sol.TimeOfFlight * float64(i) / float64(n-1)
		samples[i] = Sample{
			T: t,
			X: sol.Vx0 * t,
			Y: y0 + sol.Vy0*t - 0.5*g*t*t,
		}
	}
	return samples, nil
}
