package service

import (
	"context"
	"fmt"
	"log"
	"math"

	"github.com/shopspring/decimal"

	"prepay-engine/domain"
	"prepay-engine/repository"
)

// MonthlyRate converts an annual percentage rate to a monthly fractional
// rate (annual / 100 / 12).
func MonthlyRate(annualPercent float64) (float64, error) {
	if annualPercent <= 0 {
		return 0, fmt.Errorf("%w: annual rate must be positive, got %.4f", domain.ErrInvalidRate, annualPercent)
	}
	return annualPercent / 100 / monthsPerYear, nil
}

type LoanService struct {
	repo repository.CalculationRepository
}

// NewLoanService creates a new LoanService with the given repository.
func NewLoanService(repo repository.CalculationRepository) *LoanService {
	return &LoanService{repo: repo}
}

// CalculateEMI computes the fixed monthly installment for the loan, plus the
// nominal (no-prepayment) totals derived from it.
func (s *LoanService) CalculateEMI(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, error) {

	if err := validateLoanInput(input); err != nil {
		return domain.LoanResult{}, err
	}

	rate, err := MonthlyRate(input.AnnualRate)
	if err != nil {
		return domain.LoanResult{}, err
	}

	emi := computeEMI(input.Principal, rate, input.TermMonths)
	total := emi.Mul(decimal.NewFromInt(int64(input.TermMonths))).Round(2)
	interest := total.Sub(input.Principal).Round(2)

	result := domain.LoanResult{
		MonthlyPayment: emi,
		TotalPayment:   total,
		TotalInterest:  interest,
	}

	record := domain.NewCalculationRecord(input, domain.PrepaymentPlan{})
	record.EMI = emi
	record.TotalInterest = interest
	record.TenureMonths = input.TermMonths

	// Persistence is bookkeeping, not part of the calculation contract.
	if err := s.repo.Save(ctx, record); err != nil {
		log.Printf("Warning: failed to save EMI calculation: %v", err)
	}

	return result, nil
}

// computeEMI applies the standard annuity formula
//
//	emi = P * r * (1+r)^n / ((1+r)^n - 1)
//
// using float64 for the power term and decimal for the monetary result,
// rounded to 2 places half-up. A numerically zero rate degenerates to an
// even split of the principal.
func computeEMI(principal decimal.Decimal, monthlyRate float64, termMonths int) decimal.Decimal {
	n := decimal.NewFromInt(int64(termMonths))
	if monthlyRate == 0 {
		return principal.Div(n).Round(2)
	}

	factor := math.Pow(1+monthlyRate, float64(termMonths))
	payment := principal.InexactFloat64() * monthlyRate * factor / (factor - 1)
	return decimal.NewFromFloat(payment).Round(2)
}

func validateLoanInput(input domain.LoanInput) error {
	if !input.Principal.IsPositive() {
		return fmt.Errorf("%w: principal must be positive, got %s", domain.ErrInvalidPrincipal, input.Principal)
	}
	if input.Principal.GreaterThan(decimal.NewFromFloat(MaxLoanAmount)) {
		return fmt.Errorf("%w: principal exceeds the maximum of %.2f", domain.ErrInvalidPrincipal, MaxLoanAmount)
	}
	if input.AnnualRate <= 0 {
		return fmt.Errorf("%w: annual rate must be positive, got %.4f", domain.ErrInvalidRate, input.AnnualRate)
	}
	if input.AnnualRate > MaxInterestRate {
		return fmt.Errorf("%w: annual rate exceeds the maximum of %.2f%%", domain.ErrInvalidRate, MaxInterestRate)
	}
	if input.TermMonths < MinTermMonths {
		return fmt.Errorf("%w: term must be at least %d month", domain.ErrInvalidTerm, MinTermMonths)
	}
	if input.TermMonths > MaxTermMonths {
		return fmt.Errorf("%w: term exceeds the maximum of %d months", domain.ErrInvalidTerm, MaxTermMonths)
	}
	return nil
}
