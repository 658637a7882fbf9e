package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // upper bound on principal
	MaxInterestRate = 100.0           // % annual
	MaxTermMonths   = 600             // 50 years
	MinTermMonths   = 1

	// Prepayment sanity caps relative to the EMI. Larger values are almost
	// always input mistakes rather than real strategies.
	MaxMonthlyPrepayEMIRatio   = 10
	MaxQuarterlyPrepayEMIRatio = 50

	monthsPerYear = 12
)
