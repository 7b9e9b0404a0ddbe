package phys

import (
	"errors"
	"fmt"
	"strings"
)

// Domain errors for solver operations.
var (
	// ErrUnknownUnit indicates a unit token not present in the registry.
	ErrUnknownUnit = errors.New("phys: unrecognized unit")

	// ErrIncompatibleUnits indicates a conversion across dimensions.
	ErrIncompatibleUnits = errors.New("phys: dimensionally incompatible units")

	// ErrMissingInput indicates a solver's required quantity is absent.
	ErrMissingInput = errors.New("phys: required quantity missing")

	// ErrInsufficientData indicates an under-determined or contradictory system.
	ErrInsufficientData = errors.New("phys: insufficient data to solve")

	// ErrDomain indicates physically invalid input.
	ErrDomain = errors.New("phys: physically invalid input")
)

// UnitError wraps a unit failure with the offending tokens.
type UnitError struct {
	From    string
	To      string
	Wrapped error
}

func (e *UnitError) Error() string {
	if e.To == "" {
		return fmt.Sprintf("%v: %q", e.Wrapped, e.From)
	}
	return fmt.Sprintf("%v: %q -> %q", e.Wrapped, e.From, e.To)
}

func (e *UnitError) Unwrap() error {
	return e.Wrapped
}

// MissingInputError names the quantity a solver could not do without.
type MissingInputError struct {
	Name  string
	Usage string
}

func (e *MissingInputError) Error() string {
	if e.Usage != "" {
		return fmt.Sprintf("%v: %s (%s)", ErrMissingInput, e.Name, e.Usage)
	}
	return fmt.Sprintf("%v: %s", ErrMissingInput, e.Name)
}

func (e *MissingInputError) Unwrap() error {
	return ErrMissingInput
}

// InsufficientDataError reports the symbols an equation-system solve could
// not pin down, or a contradiction among the supplied knowns.
type InsufficientDataError struct {
	Unresolved []string
	Reason     string
}

func (e *InsufficientDataError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%v: %s", ErrInsufficientData, e.Reason)
	}
	return fmt.Sprintf("%v: unresolved symbols: %s", ErrInsufficientData, strings.Join(e.Unresolved, ", "))
}

func (e *InsufficientDataError) Unwrap() error {
	return ErrInsufficientData
}

// DomainError explains why an input is outside the physical domain.
type DomainError struct {
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: %s", ErrDomain, e.Reason)
}

func (e *DomainError) Unwrap() error {
	return ErrDomain
}
