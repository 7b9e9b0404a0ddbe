package kinematics

import (
	"math"
	"sort"

	"github.com/san-kum/phystutor/internal/phys"
	"github.com/san-kum/phystutor/internal/units"
)

// Symbols of the constant-acceleration system, in report order.
var Symbols = []string{"v0", "v", "a", "t", "dx"}

// Canonical maps each symbol to its canonical SI unit.
var Canonical = map[string]string{
	"v0": "m/s",
	"v":  "m/s",
	"a":  "m/s^2",
	"t":  "s",
	"dx": "m",
}

// residualTol bounds the acceptable relative residual when checking the
// solved values against the full equation set.
const residualTol = 1e-6

// Result separates the quantities the caller supplied (post-conversion)
// from the ones the solve produced. All values are SI.
type Result struct {
	Known  map[string]float64
	Solved map[string]float64
}

// Solver solves the fixed kinematic system. It is stateless apart from its
// configuration and safe to reuse across invocations.
type Solver struct {
	Registry *units.Registry

	// FallbackRaw keeps the raw numeric value of a known whose unit fails
	// to convert, treating it as already-SI, instead of failing the whole
	// solve. This mirrors the lenient interactive behavior; set it false
	// to surface conversion errors.
	FallbackRaw bool
}

func NewSolver(reg *units.Registry) *Solver {
	return &Solver{Registry: reg, FallbackRaw: true}
}

// Solve substitutes the recognized knowns into the equation system and
// resolves the remaining symbols. Symbols outside the fixed set are
// ignored. Under-determined or contradictory inputs fail with an
// InsufficientDataError naming what could not be pinned down.
func (s *Solver) Solve(knowns phys.QuantitySet) (*Result, error) {
	vals := make(map[string]float64, len(Symbols))
	given := make(map[string]bool, len(Symbols))

	for _, sym := range Symbols {
		q, ok := knowns.Get(sym)
		if !ok {
			continue
		}
		si, err := s.Registry.Convert(q.Value, q.Unit, Canonical[sym])
		if err != nil {
			if !s.FallbackRaw {
				return nil, err
			}
			si = q.Value
		}
		vals[sym] = si
		given[sym] = true
	}

	if len(vals) < 3 {
		return nil, &phys.InsufficientDataError{Unresolved: missing(vals)}
	}

	propagate(vals)

	if unresolved := missing(vals); len(unresolved) > 0 {
		return nil, &phys.InsufficientDataError{Unresolved: unresolved}
	}
	if !consistent(vals) {
		return nil, &phys.InsufficientDataError{
			Unresolved: nil,
			Reason:     "the given quantities are contradictory",
		}
	}

	res := &Result{
		Known:  make(map[string]float64),
		Solved: make(map[string]float64),
	}
	for sym, v := range vals {
		if given[sym] {
			res.Known[sym] = v
		} else {
			res.Solved[sym] = v
		}
	}
	return res, nil
}

// rule inverts one equation for one target symbol. apply returns false
// when a guard fails (division by zero, negative discriminant); the
// propagation then tries other rules.
type rule struct {
	target string
	needs  []string
	apply  func(v map[string]float64) (float64, bool)
}

var rules = []rule{
	// v = v0 + a*t
	{"v", []string{"v0", "a", "t"}, func(v map[string]float64) (float64, bool) {
		return v["v0"] + v["a"]*v["t"], true
	}},
	{"v0", []string{"v", "a", "t"}, func(v map[string]float64) (float64, bool) {
		return v["v"] - v["a"]*v["t"], true
	}},
	{"a", []string{"v", "v0", "t"}, func(v map[string]float64) (float64, bool) {
		if v["t"] == 0 {
			return 0, false
		}
		return (v["v"] - v["v0"]) / v["t"], true
	}},
	{"t", []string{"v", "v0", "a"}, func(v map[string]float64) (float64, bool) {
		if v["a"] == 0 {
			return 0, false
		}
		return (v["v"] - v["v0"]) / v["a"], true
	}},

	// dx = v0*t + a*t^2/2
	{"dx", []string{"v0", "a", "t"}, func(v map[string]float64) (float64, bool) {
		return v["v0"]*v["t"] + 0.5*v["a"]*v["t"]*v["t"], true
	}},
	{"v0", []string{"dx", "a", "t"}, func(v map[string]float64) (float64, bool) {
		if v["t"] == 0 {
			return 0, false
		}
		return (v["dx"] - 0.5*v["a"]*v["t"]*v["t"]) / v["t"], true
	}},
	{"a", []string{"dx", "v0", "t"}, func(v map[string]float64) (float64, bool) {
		if v["t"] == 0 {
			return 0, false
		}
		return 2 * (v["dx"] - v["v0"]*v["t"]) / (v["t"] * v["t"]), true
	}},
	{"t", []string{"dx", "v0", "a"}, timeFromDisplacement},

	// v^2 = v0^2 + 2*a*dx
	{"v", []string{"v0", "a", "dx"}, func(v map[string]float64) (float64, bool) {
		arg := v["v0"]*v["v0"] + 2*v["a"]*v["dx"]
		if arg < 0 {
			return 0, false
		}
		return math.Sqrt(arg), true
	}},
	{"v0", []string{"v", "a", "dx"}, func(v map[string]float64) (float64, bool) {
		arg := v["v"]*v["v"] - 2*v["a"]*v["dx"]
		if arg < 0 {
			return 0, false
		}
		return math.Sqrt(arg), true
	}},
	{"a", []string{"v", "v0", "dx"}, func(v map[string]float64) (float64, bool) {
		if v["dx"] == 0 {
			return 0, false
		}
		return (v["v"]*v["v"] - v["v0"]*v["v0"]) / (2 * v["dx"]), true
	}},
	{"dx", []string{"v", "v0", "a"}, func(v map[string]float64) (float64, bool) {
		if v["a"] == 0 {
			return 0, false
		}
		return (v["v"]*v["v"] - v["v0"]*v["v0"]) / (2 * v["a"]), true
	}},

	// Derived average-velocity relation: dx = (v0+v)*t/2. Not independent,
	// but it lets every 3-of-5 combination resolve by single-symbol steps.
	{"dx", []string{"v0", "v", "t"}, func(v map[string]float64) (float64, bool) {
		return 0.5 * (v["v0"] + v["v"]) * v["t"], true
	}},
	{"t", []string{"dx", "v0", "v"}, func(v map[string]float64) (float64, bool) {
		if v["v0"]+v["v"] == 0 {
			return 0, false
		}
		return 2 * v["dx"] / (v["v0"] + v["v"]), true
	}},
	{"v0", []string{"dx", "v", "t"}, func(v map[string]float64) (float64, bool) {
		if v["t"] == 0 {
			return 0, false
		}
		return 2*v["dx"]/v["t"] - v["v"], true
	}},
	{"v", []string{"dx", "v0", "t"}, func(v map[string]float64) (float64, bool) {
		if v["t"] == 0 {
			return 0, false
		}
		return 2*v["dx"]/v["t"] - v["v0"], true
	}},
}

// timeFromDisplacement solves a/2*t^2 + v0*t - dx = 0 for t, taking the
// smallest non-negative root.
func timeFromDisplacement(v map[string]float64) (float64, bool) {
	a, v0, dx := v["a"], v["v0"], v["dx"]

	if a == 0 {
		if v0 == 0 {
			return 0, false
		}
		t := dx / v0
		return t, t >= 0
	}

	disc := v0*v0 + 2*a*dx
	if disc < 0 {
		return 0, false
	}
	sq := math.Sqrt(disc)
	t1 := (-v0 + sq) / a
	t2 := (-v0 - sq) / a

	switch {
	case t1 >= 0 && t2 >= 0:
		return math.Min(t1, t2), true
	case t1 >= 0:
		return t1, true
	case t2 >= 0:
		return t2, true
	default:
		return 0, false
	}
}

func propagate(vals map[string]float64) {
	for changed := true; changed; {
		changed = false
		for _, r := range rules {
			if _, ok := vals[r.target]; ok {
				continue
			}
			ready := true
			for _, need := range r.needs {
				if _, ok := vals[need]; !ok {
					ready = false
					break
				}
			}
			if !ready {
				continue
			}
			if out, ok := r.apply(vals); ok {
				vals[r.target] = out
				changed = true
			}
		}
	}
}

// consistent checks the residuals of the three canonical equations.
func consistent(v map[string]float64) bool {
	v0, vv, a, t, dx := v["v0"], v["v"], v["a"], v["t"], v["dx"]

	scale := 1.0
	for _, x := range []float64{v0, vv, a, t, dx} {
		if math.Abs(x) > scale {
			scale = math.Abs(x)
		}
	}
	tol := residualTol * scale * scale

	if math.Abs(vv-(v0+a*t)) > tol {
		return false
	}
	if math.Abs(dx-(v0*t+0.5*a*t*t)) > tol {
		return false
	}
	if math.Abs(vv*vv-(v0*v0+2*a*dx)) > tol {
		return false
	}
	return true
}

func missing(vals map[string]float64) []string {
	var out []string
	for _, sym := range Symbols {
		if _, ok := vals[sym]; !ok {
			out = append(out, sym)
		}
	}
	sort.Strings(out)
	return out
}
