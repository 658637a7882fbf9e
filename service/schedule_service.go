package service

import (
	"fmt"

	"github.com/shopspring/decimal"

	"prepay-engine/domain"
)

type ScheduleService struct{}

func NewScheduleService() *ScheduleService {
	return &ScheduleService{}
}

// GenerateSchedule walks the loan balance month by month, applying the
// scheduled EMI plus any configured prepayment, until the balance reaches
// zero or the nominal term ends. The returned sequence always closes at an
// exact zero balance; a schedule whose balance cannot shrink is rejected
// with ErrNonConvergingSchedule.
//
// The simulation is a pure function of its inputs.
func (s *ScheduleService) GenerateSchedule(
	input domain.LoanInput,
	plan domain.PrepaymentPlan,
) (domain.ScheduleResult, error) {

	if err := validateLoanInput(input); err != nil {
		return domain.ScheduleResult{}, err
	}

	rate, err := MonthlyRate(input.AnnualRate)
	if err != nil {
		return domain.ScheduleResult{}, err
	}

	emi := computeEMI(input.Principal, rate, input.TermMonths)

	if err := validatePrepaymentPlan(plan, emi); err != nil {
		return domain.ScheduleResult{}, err
	}

	rateDec := decimal.NewFromFloat(rate)
	balance := input.Principal

	records := make([]domain.PeriodRecord, 0, input.TermMonths)
	cumInterest := decimal.Zero
	cumPrincipal := decimal.Zero
	totalPrepaid := decimal.Zero
	totalPaid := decimal.Zero

	for period := 1; period <= input.TermMonths && balance.IsPositive(); period++ {
		opening := balance
		interest := opening.Mul(rateDec).Round(2)

		scheduled := emi.Sub(interest)
		// The last installment is corrected so the balance lands on exactly
		// zero; this also absorbs any accumulated rounding drift.
		if scheduled.GreaterThan(opening) || period == input.TermMonths {
			scheduled = opening
		}

		// Prepayment beyond the remaining balance is discarded, never
		// carried forward.
		applied := decimal.Min(plan.AmountFor(period), opening.Sub(scheduled))
		if applied.IsNegative() {
			applied = decimal.Zero
		}

		reduction := scheduled.Add(applied)
		if !reduction.IsPositive() {
			return domain.ScheduleResult{}, fmt.Errorf(
				"%w: installment %s does not cover interest %s in period %d",
				domain.ErrNonConvergingSchedule, emi, interest, period)
		}

		closing := opening.Sub(reduction)
		payment := interest.Add(reduction)

		cumInterest = cumInterest.Add(interest)
		cumPrincipal = cumPrincipal.Add(reduction)
		totalPrepaid = totalPrepaid.Add(applied)
		totalPaid = totalPaid.Add(payment)

		records = append(records, domain.PeriodRecord{
			Period:              period,
			OpeningBalance:      opening,
			Interest:            interest,
			Principal:           scheduled,
			Prepayment:          applied,
			TotalPayment:        payment,
			ClosingBalance:      closing,
			CumulativeInterest:  cumInterest,
			CumulativePrincipal: cumPrincipal,
		})

		balance = closing
	}

	if balance.IsPositive() {
		return domain.ScheduleResult{}, fmt.Errorf(
			"%w: balance %s remains after %d periods",
			domain.ErrNonConvergingSchedule, balance, input.TermMonths)
	}

	return domain.ScheduleResult{
		EMI:             emi,
		Records:         records,
		TotalInterest:   cumInterest,
		TotalPrincipal:  cumPrincipal.Sub(totalPrepaid),
		TotalPrepayment: totalPrepaid,
		TotalPayment:    totalPaid,
		TenureMonths:    len(records),
	}, nil
}

// Summarize aggregates a schedule into reporting metrics.
func (s *ScheduleService) Summarize(result domain.ScheduleResult) domain.ScheduleSummary {
	summary := domain.ScheduleSummary{
		TotalInterest:   result.TotalInterest,
		TotalPrincipal:  result.TotalPrincipal,
		TotalPrepayment: result.TotalPrepayment,
		TotalPayment:    result.TotalPayment,
		TenureMonths:    result.TenureMonths,
		TenureYears:     float64(result.TenureMonths) / monthsPerYear,
	}
	if len(result.Records) == 0 {
		return summary
	}

	tenure := decimal.NewFromInt(int64(result.TenureMonths))
	principal := result.Records[0].OpeningBalance
	summary.AverageMonthlyPayment = result.TotalPayment.Div(tenure).Round(2)
	summary.InterestPercent = result.TotalInterest.
		Div(principal).
		Mul(decimal.NewFromInt(100)).
		Round(2)

	halfway := principal.Div(decimal.NewFromInt(2))
	for _, record := range result.Records {
		if record.CumulativePrincipal.GreaterThanOrEqual(halfway) {
			summary.HalfwayPeriod = record.Period
			break
		}
	}
	return summary
}

func validatePrepaymentPlan(plan domain.PrepaymentPlan, emi decimal.Decimal) error {
	if plan.Monthly.IsNegative() {
		return fmt.Errorf("%w: monthly prepayment cannot be negative, got %s", domain.ErrInvalidPrepayment, plan.Monthly)
	}
	if plan.Quarterly.IsNegative() {
		return fmt.Errorf("%w: quarterly prepayment cannot be negative, got %s", domain.ErrInvalidPrepayment, plan.Quarterly)
	}
	if plan.Monthly.GreaterThan(emi.Mul(decimal.NewFromInt(MaxMonthlyPrepayEMIRatio))) {
		return fmt.Errorf("%w: monthly prepayment %s is unreasonably high against EMI %s", domain.ErrInvalidPrepayment, plan.Monthly, emi)
	}
	if plan.Quarterly.GreaterThan(emi.Mul(decimal.NewFromInt(MaxQuarterlyPrepayEMIRatio))) {
		return fmt.Errorf("%w: quarterly prepayment %s is unreasonably high against EMI %s", domain.ErrInvalidPrepayment, plan.Quarterly, emi)
	}
	return nil
}
