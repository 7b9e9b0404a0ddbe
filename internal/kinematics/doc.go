// Package kinematics solves the 1D constant-acceleration equation system
// over the symbols v0, v, a, t, dx:
//
//	v  = v0 + a*t
//	dx = v0*t + a*t^2/2
//	v^2 = v0^2 + 2*a*dx
//
// The symbol set is fixed; a solve never introduces symbols outside it.
// Knowns are converted to canonical SI units before solving (m/s, m/s,
// m/s^2, s, m). At least 3 of the 5 quantities must be supplied: the three
// equations carry only two independent degrees of freedom, so fewer knowns
// leave the system under-determined.
//
// The solve is closed-form: each relation (plus the derived average
// velocity relation dx = (v0+v)*t/2) is inverted for whichever single
// symbol it can pin, and the rules are applied to a fixed point. Where a
// square root admits two branches the non-negative root is taken.
package kinematics
