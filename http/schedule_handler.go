package http

import (
	"encoding/csv"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/shopspring/decimal"

	"prepay-engine/domain"
	"prepay-engine/service"
)

type scheduleRequest struct {
	Principal           decimal.Decimal `json:"principal"`
	AnnualRate          float64         `json:"annual_rate"`
	TermMonths          int             `json:"term_months"`
	MonthlyPrepayment   decimal.Decimal `json:"monthly_prepayment"`
	QuarterlyPrepayment decimal.Decimal `json:"quarterly_prepayment"`
	QuarterlyInterval   int             `json:"quarterly_interval,omitempty"`
}

func (req scheduleRequest) loan() domain.LoanInput {
	return domain.LoanInput{
		Principal:  req.Principal,
		AnnualRate: req.AnnualRate,
		TermMonths: req.TermMonths,
	}
}

func (req scheduleRequest) plan() domain.PrepaymentPlan {
	return domain.PrepaymentPlan{
		Monthly:           req.MonthlyPrepayment,
		Quarterly:         req.QuarterlyPrepayment,
		QuarterlyInterval: req.QuarterlyInterval,
	}
}

type scheduleResponse struct {
	domain.ScheduleResult
	Summary domain.ScheduleSummary `json:"summary"`
}

type ScheduleHandler struct {
	service *service.ScheduleService
}

func NewScheduleHandler(service *service.ScheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

func (h *ScheduleHandler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.GenerateSchedule(req.loan(), req.plan())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scheduleResponse{
		ScheduleResult: result,
		Summary:        h.service.Summarize(result),
	})
}

// ExportSchedule renders the schedule as CSV, one row per period.
func (h *ScheduleHandler) ExportSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.GenerateSchedule(req.loan(), req.plan())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="amortization_schedule.csv"`)

	writer := csv.NewWriter(w)
	defer writer.Flush()

	writer.Write([]string{
		"period", "opening_balance", "interest", "principal", "prepayment",
		"total_payment", "closing_balance", "cumulative_interest", "cumulative_principal",
	})
	for _, record := range result.Records {
		writer.Write([]string{
			strconv.Itoa(record.Period),
			record.OpeningBalance.StringFixed(2),
			record.Interest.StringFixed(2),
			record.Principal.StringFixed(2),
			record.Prepayment.StringFixed(2),
			record.TotalPayment.StringFixed(2),
			record.ClosingBalance.StringFixed(2),
			record.CumulativeInterest.StringFixed(2),
			record.CumulativePrincipal.StringFixed(2),
		})
	}
}
