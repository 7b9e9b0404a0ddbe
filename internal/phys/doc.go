// Package phys defines the shared vocabulary of the solving core.
//
// A [Quantity] is a numeric value with an optional unit string; an empty
// unit means the value is already expressed in the solver's canonical SI
// unit. A [QuantitySet] maps symbolic names (v0, a, theta, m, ...) to
// quantities and is built once per command invocation, then only read.
//
// The package also carries the error taxonomy every solver reports
// through:
//
//   - [ErrUnknownUnit], [ErrIncompatibleUnits] via [UnitError]
//   - [ErrMissingInput] via [MissingInputError]
//   - [ErrInsufficientData] via [InsufficientDataError]
//   - [ErrDomain] via [DomainError]
//
// All failures are recoverable at the command-dispatch boundary; no solver
// ever terminates the process.
package phys
