package domain

import "github.com/shopspring/decimal"

// PeriodRecord is one immutable row of an amortization schedule.
type PeriodRecord struct {
	Period              int             `json:"period"`
	OpeningBalance      decimal.Decimal `json:"opening_balance"`
	Interest            decimal.Decimal `json:"interest"`
	Principal           decimal.Decimal `json:"principal"`
	Prepayment          decimal.Decimal `json:"prepayment"`
	TotalPayment        decimal.Decimal `json:"total_payment"`
	ClosingBalance      decimal.Decimal `json:"closing_balance"`
	CumulativeInterest  decimal.Decimal `json:"cumulative_interest"`
	CumulativePrincipal decimal.Decimal `json:"cumulative_principal"`
}

// ScheduleResult holds the full amortization sequence and its totals.
// TenureMonths is the actual payoff length, at most the nominal term.
type ScheduleResult struct {
	EMI             decimal.Decimal `json:"emi"`
	Records         []PeriodRecord  `json:"records"`
	TotalInterest   decimal.Decimal `json:"total_interest"`
	TotalPrincipal  decimal.Decimal `json:"total_principal"`
	TotalPrepayment decimal.Decimal `json:"total_prepayment"`
	TotalPayment    decimal.Decimal `json:"total_payment"`
	TenureMonths    int             `json:"tenure_months"`
}

// ScheduleSummary aggregates a schedule for reporting.
type ScheduleSummary struct {
	TotalInterest         decimal.Decimal `json:"total_interest"`
	TotalPrincipal        decimal.Decimal `json:"total_principal"`
	TotalPrepayment       decimal.Decimal `json:"total_prepayment"`
	TotalPayment          decimal.Decimal `json:"total_payment"`
	AverageMonthlyPayment decimal.Decimal `json:"average_monthly_payment"`
	InterestPercent       decimal.Decimal `json:"interest_percent"`
	TenureMonths          int             `json:"tenure_months"`
	TenureYears           float64         `json:"tenure_years"`
	HalfwayPeriod         int             `json:"halfway_period,omitempty"`
}
