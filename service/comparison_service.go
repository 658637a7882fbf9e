package service

import (
	"context"
	"fmt"
	"log"

	json "github.com/goccy/go-json"
	"github.com/shopspring/decimal"

	"prepay-engine/domain"
	"prepay-engine/repository"
)

type ComparisonService struct {
	schedules *ScheduleService
	advisor   *AdvisorService
	repo      repository.CalculationRepository
	cache     repository.CacheRepository
}

func NewComparisonService(
	schedules *ScheduleService,
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
) *ComparisonService {
	return &ComparisonService{
		schedules: schedules,
		advisor:   NewAdvisorService(),
		repo:      repo,
		cache:     cache,
	}
}

// CompareScenarios simulates the loan twice, without and with the prepayment
// plan, and derives the savings the plan produces. The baseline tenure and
// total interest are always at least those of the prepayment scenario: both
// runs share the same EMI and prepayments only ever reduce the balance.
func (s *ComparisonService) CompareScenarios(
	ctx context.Context,
	input domain.LoanInput,
	plan domain.PrepaymentPlan,
) (domain.ComparisonResult, error) {

	key := comparisonCacheKey(input, plan)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.ComparisonResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			return result, nil
		}
		log.Printf("Warning: discarding unreadable cached comparison %q", key)
	}

	baseline, err := s.schedules.GenerateSchedule(input, domain.PrepaymentPlan{})
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	withPlan, err := s.schedules.GenerateSchedule(input, plan)
	if err != nil {
		return domain.ComparisonResult{}, err
	}

	monthsSaved := baseline.TenureMonths - withPlan.TenureMonths
	savings := domain.Savings{
		InterestSaved: baseline.TotalInterest.Sub(withPlan.TotalInterest).Round(2),
		MonthsSaved:   monthsSaved,
		YearsSaved:    float64(monthsSaved) / monthsPerYear,
		TotalPrepaid:  withPlan.TotalPrepayment,
	}
	if savings.TotalPrepaid.IsPositive() {
		savings.EffectiveSavingsRate = savings.InterestSaved.
			Div(savings.TotalPrepaid).
			Mul(decimal.NewFromInt(100)).
			Round(2)
	}

	result := domain.ComparisonResult{
		Baseline:       baseline,
		WithPrepayment: withPlan,
		Savings:        savings,
	}
	result.Explanation = s.advisor.ExplainComparison(ctx, input, result)

	record := domain.NewCalculationRecord(input, plan)
	record.EMI = withPlan.EMI
	record.TotalInterest = withPlan.TotalInterest
	record.TenureMonths = withPlan.TenureMonths
	record.InterestSaved = savings.InterestSaved

	if err := s.repo.Save(ctx, record); err != nil {
		log.Printf("Warning: failed to save comparison: %v", err)
	}

	if payload, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(payload)); err != nil {
			log.Printf("Warning: failed to cache comparison: %v", err)
		}
	}

	return result, nil
}

func comparisonCacheKey(input domain.LoanInput, plan domain.PrepaymentPlan) string {
	return fmt.Sprintf("compare:%s:%.4f:%d:%s:%s:%d",
		input.Principal, input.AnnualRate, input.TermMonths,
		plan.Monthly, plan.Quarterly, plan.Interval())
}
