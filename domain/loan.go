package domain

import "github.com/shopspring/decimal"

// DefaultQuarterlyInterval is the period spacing for quarterly prepayments.
const DefaultQuarterlyInterval = 3

type LoanInput struct {
	Principal  decimal.Decimal `json:"principal"`
	AnnualRate float64         `json:"annual_rate"`
	TermMonths int             `json:"term_months"`
}

type LoanResult struct {
	MonthlyPayment decimal.Decimal `json:"monthly_payment"`
	TotalPayment   decimal.Decimal `json:"total_payment"`
	TotalInterest  decimal.Decimal `json:"total_interest"`
}

// PrepaymentPlan configures extra payments applied on top of the scheduled
// EMI. Either component may be zero; a zero component contributes nothing.
type PrepaymentPlan struct {
	Monthly           decimal.Decimal `json:"monthly"`
	Quarterly         decimal.Decimal `json:"quarterly"`
	QuarterlyInterval int             `json:"quarterly_interval,omitempty"`
}

// Interval returns the quarterly spacing, defaulting when unset.
func (p PrepaymentPlan) Interval() int {
	if p.QuarterlyInterval <= 0 {
		return DefaultQuarterlyInterval
	}
	return p.QuarterlyInterval
}

// AmountFor returns the prepayment due in the given 1-based period.
func (p PrepaymentPlan) AmountFor(period int) decimal.Decimal {
	amount := p.Monthly
	if period%p.Interval() == 0 {
		amount = amount.Add(p.Quarterly)
	}
	return amount
}

func (p PrepaymentPlan) IsZero() bool {
	return !p.Monthly.IsPositive() && !p.Quarterly.IsPositive()
}
