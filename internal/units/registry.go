package units

import (
	"math"
	"strings"

	"github.com/san-kum/phystutor/internal/phys"
)

// Kind is the physical dimension of a unit.
type Kind int

const (
	Dimensionless Kind = iota
	Length
	Time
	Mass
	Velocity
	Acceleration
	Force
	Angle
)

func (k Kind) String() string {
	switch k {
	case Length:
		return "length"
	case Time:
		return "time"
	case Mass:
		return "mass"
	case Velocity:
		return "velocity"
	case Acceleration:
		return "acceleration"
	case Force:
		return "force"
	case Angle:
		return "angle"
	default:
		return "dimensionless"
	}
}

type unit struct {
	kind Kind
	// factor converts one of this unit into the canonical SI unit
	// of its kind (m, s, kg, m/s, m/s^2, N, rad).
	factor float64
}

// Registry is a fixed-dimension unit database. It is stateless after
// construction; build one per process and share it by reference.
type Registry struct {
	units map[string]unit
}

func NewRegistry() *Registry {
	r := &Registry{units: make(map[string]unit)}

	r.add(Length, 1.0, "m", "meter", "meters")
	r.add(Length, 1000.0, "km")
	r.add(Length, 0.01, "cm")
	r.add(Length, 0.001, "mm")

	r.add(Time, 1.0, "s", "sec", "seconds")
	r.add(Time, 0.001, "ms")
	r.add(Time, 60.0, "min")
	r.add(Time, 3600.0, "h", "hr")

	r.add(Mass, 1.0, "kg")
	r.add(Mass, 0.001, "g")

	r.add(Velocity, 1.0, "m/s", "mps")
	r.add(Velocity, 1000.0/3600.0, "km/h", "kph", "kmh")
	r.add(Velocity, 1000.0, "km/s")
	r.add(Velocity, 0.01, "cm/s")

	r.add(Acceleration, 1.0, "m/s^2", "m/s2", "m/s²")
	r.add(Acceleration, 0.01, "cm/s^2", "cm/s2")

	r.add(Force, 1.0, "N", "newton", "newtons")
	r.add(Force, 1000.0, "kN")

	r.add(Angle, 1.0, "rad", "radian", "radians")
	r.add(Angle, math.Pi/180.0, "deg", "degree", "degrees")

	return r
}

func (r *Registry) add(kind Kind, factor float64, names ...string) {
	for _, name := range names {
		r.units[name] = unit{kind: kind, factor: factor}
	}
}

// Lookup reports the dimension of a unit token.
func (r *Registry) Lookup(name string) (Kind, bool) {
	u, ok := r.units[strings.TrimSpace(name)]
	return u.kind, ok
}

// Convert converts value from one unit to another. An empty from unit
// returns the value unchanged: the quantity is assumed to be canonical
// already. Conversion across dimensions or through an unknown token
// fails with a UnitError; there are no side effects.
func (r *Registry) Convert(value float64, from, to string) (float64, error) {
	from = strings.TrimSpace(from)
	to = strings.TrimSpace(to)

	if from == "" {
		return value, nil
	}

	uf, ok := r.units[from]
	if !ok {
		return 0, &phys.UnitError{From: from, Wrapped: phys.ErrUnknownUnit}
	}
	ut, ok := r.units[to]
	if !ok {
		return 0, &phys.UnitError{From: to, Wrapped: phys.ErrUnknownUnit}
	}
	if uf.kind != ut.kind {
		return 0, &phys.UnitError{From: from, To: to, Wrapped: phys.ErrIncompatibleUnits}
	}

	return value * uf.factor / ut.factor, nil
}
