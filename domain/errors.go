package domain

import "errors"

// Validation and simulation errors surfaced by the calculation engine.
// Callers match with errors.Is; services wrap these with the offending value.
var (
	ErrInvalidPrincipal      = errors.New("invalid principal")
	ErrInvalidRate           = errors.New("invalid interest rate")
	ErrInvalidTerm           = errors.New("invalid term")
	ErrInvalidPrepayment     = errors.New("invalid prepayment")
	ErrNonConvergingSchedule = errors.New("schedule does not converge")
)
