package tutor

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/san-kum/phystutor/internal/dynamics"
	"github.com/san-kum/phystutor/internal/fbd"
	"github.com/san-kum/phystutor/internal/kinematics"
	"github.com/san-kum/phystutor/internal/parse"
	"github.com/san-kum/phystutor/internal/phys"
	"github.com/san-kum/phystutor/internal/plot"
	"github.com/san-kum/phystutor/internal/projectile"
)

// unitsPattern matches "<value> <unit> to <unit>". Unit strings may hold
// slashes and carets, so both are matched lazily up to the "to" keyword.
var unitsPattern = regexp.MustCompile(`^\s*([-+]?[0-9.]+)\s+(.+?)\s+to\s+(.+?)\s*$`)

func (t *Tutor) cmdUnits(arg string) (Reply, error) {
	m := unitsPattern.FindStringSubmatch(arg)
	if m == nil {
		return Reply{}, &phys.MissingInputError{
			Name:  "expression",
			Usage: "/units 72 km/h to m/s",
		}
	}

	val, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Reply{}, &phys.MissingInputError{Name: "value", Usage: "/units 72 km/h to m/s"}
	}

	out, err := t.reg.Convert(val, m[2], m[3])
	if err != nil {
		return Reply{}, err
	}

	return Reply{Text: fmt.Sprintf("%s %s = %s %s", fmtVal(val), m[2], fmtVal(out), m[3])}, nil
}

func (t *Tutor) cmdKin(arg string) (Reply, error) {
	res, err := t.kin.Solve(parse.Args(arg))
	if err != nil {
		return Reply{}, err
	}

	var b strings.Builder
	b.WriteString("Given:\n")
	for _, sym := range kinematics.Symbols {
		if v, ok := res.Known[sym]; ok {
			fmt.Fprintf(&b, "  %s = %s %s\n", sym, fmtVal(v), kinematics.Canonical[sym])
		}
	}
	b.WriteString("Solved:\n")
	for _, sym := range kinematics.Symbols {
		if v, ok := res.Solved[sym]; ok {
			fmt.Fprintf(&b, "  %s = %s %s\n", sym, fmtVal(v), kinematics.Canonical[sym])
		}
	}
	return Reply{Text: strings.TrimRight(b.String(), "\n")}, nil
}

func (t *Tutor) cmdPlotMotion(arg string) (Reply, error) {
	args := parse.Args(arg)

	tq := t.si(args, "t", "s")
	if tq == nil {
		return Reply{}, &phys.MissingInputError{
			Name:  "t",
			Usage: "/plot_motion v0=0 m/s, a=2 m/s^2, t=5 s, x0=0 m",
		}
	}
	if *tq <= 0 {
		return Reply{}, &phys.DomainError{Reason: "t must be positive"}
	}

	v0, a, x0 := 0.0, 0.0, 0.0
	if p := t.si(args, "v0", "m/s"); p != nil {
		v0 = *p
	}
	if p := t.si(args, "a", "m/s^2"); p != nil {
		a = *p
	}
	if p := t.si(args, "x0", "m"); p != nil {
		x0 = *p
	}

	n := t.cfg.Samples
	if n < 2 {
		n = 2
	}
	ts := make([]float64, n)
	xs := make([]float64, n)
	vs := make([]float64, n)
	as := make([]float64, n)
	for i := 0; i < n; i++ {
		tt := *tq * float64(i) / float64(n-1)
		ts[i] = tt
		xs[i] = x0 + v0*tt + 0.5*a*tt*tt
		vs[i] = v0 + a*tt
		as[i] = a
	}

	series := []plot.Series{
		{X: ts, Y: xs, XLabel: "t (s)", YLabel: "x (m)", Title: "position"},
		{X: ts, Y: vs, XLabel: "t (s)", YLabel: "v (m/s)", Title: "velocity"},
		{X: ts, Y: as, XLabel: "t (s)", YLabel: "a (m/s^2)", Title: "acceleration"},
	}

	var arts []plot.Artifact
	for _, s := range series {
		art, err := plot.RenderSVG(s, t.artifactPath("motion_"+s.Title))
		if err != nil {
			return Reply{}, err
		}
		arts = append(arts, *art)
	}

	text := fmt.Sprintf("Motion over %s s: x(t), v(t), a(t) rendered.\nfinal x = %s m, final v = %s m/s",
		fmtVal(*tq), fmtVal(xs[n-1]), fmtVal(vs[n-1]))
	return Reply{
		Text:      text,
		Preview:   plot.Ascii(series[0], 60, 10),
		Artifacts: arts,
	}, nil
}

func (t *Tutor) cmdDyn(arg string) (Reply, error) {
	kind, rest, _ := strings.Cut(arg, " ")
	args := parse.Args(rest)

	switch kind {
	case "1d":
		res, err := dynamics.SolveFlat(
			t.si(args, "m", "kg"),
			t.si(args, "F", "N"),
			t.si(args, "mu", ""),
			t.si(args, "N", "N"),
		)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf(
			"friction = %s N\nnet force = %s N\na = %s m/s^2",
			fmtVal(res.Friction), fmtVal(res.NetForce), fmtVal(res.Accel))}, nil

	case "incline":
		res, err := dynamics.SolveIncline(
			t.si(args, "m", "kg"),
			t.theta(args),
			t.si(args, "mu", ""),
			t.cfg.Gravity,
		)
		if err != nil {
			return Reply{}, err
		}
		return Reply{Text: fmt.Sprintf(
			"N = %s N\nmg sin(theta) = %s N\nfriction = %s N\nnet force = %s N\na = %s m/s^2 (down-slope positive)",
			fmtVal(res.Normal), fmtVal(res.Parallel), fmtVal(res.Friction),
			fmtVal(res.NetForce), fmtVal(res.Accel))}, nil
	}

	return Reply{}, &phys.MissingInputError{
		Name:  "scenario",
		Usage: "/dyn 1d ... or /dyn incline ...",
	}
}

// theta reads the launch/slope angle in degrees. A bare number is taken
// as degrees; otherwise the unit is converted (rad, deg).
func (t *Tutor) theta(args phys.QuantitySet) *float64 {
	q, ok := args.Get("theta")
	if !ok {
		return nil
	}
	if q.Unit == "" {
		v := q.Value
		return &v
	}
	v, err := t.reg.Convert(q.Value, q.Unit, "deg")
	if err != nil {
		v = q.Value
	}
	return &v
}

func (t *Tutor) cmdProjectile(arg string) (Reply, error) {
	args := parse.Args(arg)

	v0p := t.si(args, "v0", "m/s")
	if v0p == nil {
		return Reply{}, &phys.MissingInputError{
			Name:  "v0",
			Usage: "/projectile v0=20 m/s, theta=30 deg, y0=0 m",
		}
	}
	thp := t.theta(args)
	if thp == nil {
		return Reply{}, &phys.MissingInputError{
			Name:  "theta",
			Usage: "/projectile v0=20 m/s, theta=30 deg, y0=0 m",
		}
	}
	y0 := 0.0
	if p := t.si(args, "y0", "m"); p != nil {
		y0 = *p
	}
	g := projectile.DefaultGravity
	if p := t.si(args, "g", "m/s^2"); p != nil {
		g = *p
	}

	sol, err := projectile.Solve(*v0p, *thp, y0, g)
	if err != nil {
		return Reply{}, err
	}
	samples, err := projectile.Trajectory(*v0p, *thp, y0, g, t.cfg.Samples)
	if err != nil {
		return Reply{}, err
	}

	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, s := range samples {
		xs[i] = s.X
		ys[i] = s.Y
	}
	series := plot.Series{
		X: xs, Y: ys,
		XLabel: "x (m)", YLabel: "y (m)",
		Title: "trajectory",
	}
	art, err := plot.RenderSVG(series, t.artifactPath("trajectory"))
	if err != nil {
		return Reply{}, err
	}

	text := fmt.Sprintf(
		"time of flight = %s s\nrange = %s m\nmax height = %s m",
		fmtVal(sol.TimeOfFlight), fmtVal(sol.Range), fmtVal(sol.MaxHeight))
	return Reply{
		Text:      text,
		Preview:   plot.Braille(series, 40, 10),
		Artifacts: []plot.Artifact{*art},
	}, nil
}

func (t *Tutor) cmdFbd(arg string) (Reply, error) {
	fields := strings.Fields(arg)
	if len(fields) == 0 {
		return Reply{}, &phys.MissingInputError{
			Name:  "scenario",
			Usage: "/fbd atwood m1 | /fbd incline | /fbd 1d",
		}
	}

	var (
		art *plot.Artifact
		err error
	)
	switch fields[0] {
	case "atwood":
		mass := "m1"
		if len(fields) > 1 {
			mass = fields[1]
		}
		art, err = fbd.Atwood(mass, t.artifactPath("fbd_atwood"))
	case "incline":
		art, err = fbd.Incline(t.artifactPath("fbd_incline"))
	case "1d", "horizontal":
		art, err = fbd.Horizontal(t.artifactPath("fbd_1d"))
	default:
		return Reply{}, &phys.MissingInputError{
			Name:  "scenario",
			Usage: "/fbd atwood m1 | /fbd incline | /fbd 1d",
		}
	}
	if err != nil {
		return Reply{}, err
	}

	return Reply{
		Text:      "Free-body diagram: " + fields[0],
		Artifacts: []plot.Artifact{*art},
	}, nil
}
