// Package dynamics applies Newton's second law to two fixed geometries:
// a block on a flat surface and a block on a frictional incline.
package dynamics

import (
	"math"

	"github.com/san-kum/phystutor/internal/phys"
)

// DefaultGravity is the gravitational acceleration used when the caller
// does not override it, in m/s^2.
const DefaultGravity = 9.81

// FlatResult holds the flat-surface solution, all values SI.
type FlatResult struct {
	Friction float64
	NetForce float64
	Accel    float64
}

// SolveFlat computes net force and acceleration for a mass pushed along a
// horizontal surface. mu and n are optional; friction mu*N opposes motion
// only when both are supplied; there is no partial-friction inference.
func SolveFlat(m, f, mu, n *float64) (*FlatResult, error) {
	if m == nil {
		return nil, &phys.MissingInputError{Name: "m", Usage: "/dyn 1d m=2 kg, F=10 N, mu=0.2, N=19.62 N"}
	}
	if f == nil {
		return nil, &phys.MissingInputError{Name: "F", Usage: "/dyn 1d m=2 kg, F=10 N, mu=0.2, N=19.62 N"}
	}
	if *m == 0 {
		return nil, &phys.DomainError{Reason: "mass must be non-zero"}
	}

	friction := 0.0
	if mu != nil && n != nil {
		friction = *mu * *n
	}

	net := *f - friction
	return &FlatResult{
		Friction: friction,
		NetForce: net,
		Accel:    net / *m,
	}, nil
}

// InclineResult holds the incline solution. Accel is signed positive
// down-slope; static friction is not modeled, so a negative or near-zero
// value is reported as computed, never clamped.
type InclineResult struct {
	Normal   float64
	Parallel float64
	Friction float64
	NetForce float64
	Accel    float64
}

// SolveIncline resolves forces along a slope of thetaDeg degrees. mu is
// optional (kinetic friction mu*N when given). Pass g <= 0 to use
// DefaultGravity.
func SolveIncline(m, thetaDeg, mu *float64, g float64) (*InclineResult, error) {
	if m == nil {
		return nil, &phys.MissingInputError{Name: "m", Usage: "/dyn incline m=2 kg, theta=30 deg, mu=0.10"}
	}
	if thetaDeg == nil {
		return nil, &phys.MissingInputError{Name: "theta", Usage: "/dyn incline m=2 kg, theta=30 deg, mu=0.10"}
	}
	if *m == 0 {
		return nil, &phys.DomainError{Reason: "mass must be non-zero"}
	}
	if g <= 0 {
		g = DefaultGravity
	}

	theta := *thetaDeg * math.Pi / 180.0
	normal := *m * g * math.Cos(theta)
	parallel := *m * g * math.Sin(theta)

	friction := 0.0
	if mu != nil {
		friction = *mu * normal
	}

	net := parallel - friction
	return &InclineResult{
		Normal:   normal,
		Parallel: parallel,
		Friction: friction,
		NetForce: net,
		Accel:    net / *m,
	}, nil
}
