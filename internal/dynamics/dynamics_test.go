package dynamics

import (
	"errors"
	"math"
	"testing"

	"github.com/san-kum/phystutor/internal/phys"
)

func fp(v float64) *float64 { return &v }

func TestSolveFlatNoFriction(t *testing.T) {
	res, err := SolveFlat(fp(2), fp(10), nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.Friction != 0 {
		t.Errorf("expected zero friction, got %f", res.Friction)
	}
	if res.NetForce != 10 {
		t.Errorf("expected net force 10, got %f", res.NetForce)
	}
	if res.Accel != 5.0 {
		t.Errorf("expected acceleration 5, got %f", res.Accel)
	}
}

func TestSolveFlatWithFriction(t *testing.T) {
	res, err := SolveFlat(fp(2), fp(10), fp(0.2), fp(19.62))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if math.Abs(res.Friction-3.924) > 1e-9 {
		t.Errorf("expected friction 3.924, got %f", res.Friction)
	}
	if math.Abs(res.NetForce-6.076) > 1e-9 {
		t.Errorf("expected net force 6.076, got %f", res.NetForce)
	}
}

func TestSolveFlatPartialFriction(t *testing.T) {
	// mu without N must not infer friction
	res, err := SolveFlat(fp(2), fp(10), fp(0.2), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Friction != 0 {
		t.Errorf("partial friction inputs should yield zero friction, got %f", res.Friction)
	}
}

func TestSolveFlatMissingInput(t *testing.T) {
	_, err := SolveFlat(nil, fp(10), nil, nil)
	if !errors.Is(err, phys.ErrMissingInput) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}

	var mie *phys.MissingInputError
	if !errors.As(err, &mie) || mie.Name != "m" {
		t.Errorf("expected missing m, got %v", err)
	}

	_, err = SolveFlat(fp(2), nil, nil, nil)
	if !errors.Is(err, phys.ErrMissingInput) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}
}

func TestSolveIncline(t *testing.T) {
	res, err := SolveIncline(fp(2), fp(30), fp(0), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// m=2, theta=30, g=9.81: N = 2*9.81*cos(30) = 16.9914
	if math.Abs(res.Normal-16.9914) > 1e-3 {
		t.Errorf("expected normal ~16.9914, got %f", res.Normal)
	}
	if math.Abs(res.Parallel-9.81) > 1e-6 {
		t.Errorf("expected parallel 9.81, got %f", res.Parallel)
	}
	if math.Abs(res.Accel-4.905) > 1e-6 {
		t.Errorf("expected acceleration 4.905, got %f", res.Accel)
	}
}

func TestSolveInclineFrictionNotClamped(t *testing.T) {
	// Strong friction on a shallow slope: net comes out negative and must
	// be reported as-is.
	res, err := SolveIncline(fp(1), fp(5), fp(1.0), 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Accel >= 0 {
		t.Errorf("expected negative acceleration, got %f", res.Accel)
	}
}

func TestSolveInclineGravityOverride(t *testing.T) {
	res, err := SolveIncline(fp(2), fp(90), nil, 10.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(res.Parallel-20.0) > 1e-9 {
		t.Errorf("expected parallel 20 with g=10, got %f", res.Parallel)
	}
	if math.Abs(res.Accel-10.0) > 1e-9 {
		t.Errorf("expected acceleration 10, got %f", res.Accel)
	}
}

func TestSolveInclineMissingInput(t *testing.T) {
	_, err := SolveIncline(nil, fp(30), nil, 0)
	if !errors.Is(err, phys.ErrMissingInput) {
		t.Errorf("expected ErrMissingInput, got %v", err)
	}

	_, err = SolveIncline(fp(2), nil, nil, 0)
	var mie *phys.MissingInputError
	if !errors.As(err, &mie) || mie.Name != "theta" {
		t.Errorf("expected missing theta, got %v", err)
	}
}
