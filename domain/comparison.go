package domain

import "github.com/shopspring/decimal"

// Savings quantifies the effect of a prepayment plan against the baseline.
// EffectiveSavingsRate is interest saved per unit prepaid, as a percentage.
type Savings struct {
	InterestSaved        decimal.Decimal `json:"interest_saved"`
	MonthsSaved          int             `json:"months_saved"`
	YearsSaved           float64         `json:"years_saved"`
	TotalPrepaid         decimal.Decimal `json:"total_prepaid"`
	EffectiveSavingsRate decimal.Decimal `json:"effective_savings_rate"`
}

type ComparisonResult struct {
	Baseline       ScheduleResult `json:"baseline"`
	WithPrepayment ScheduleResult `json:"with_prepayment"`
	Savings        Savings        `json:"savings"`
	Explanation    string         `json:"explanation,omitempty"`
}
