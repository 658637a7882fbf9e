package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CalculationRecord is the persisted trace of one engine invocation.
type CalculationRecord struct {
	ID            uuid.UUID
	Input         LoanInput
	Plan          PrepaymentPlan
	EMI           decimal.Decimal
	TotalInterest decimal.Decimal
	TenureMonths  int
	InterestSaved decimal.Decimal
	CreatedAt     time.Time
}

// NewCalculationRecord stamps identity and creation time on a record.
func NewCalculationRecord(input LoanInput, plan PrepaymentPlan) CalculationRecord {
	return CalculationRecord{
		ID:        uuid.New(),
		Input:     input,
		Plan:      plan,
		CreatedAt: time.Now().UTC(),
	}
}
