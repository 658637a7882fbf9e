package http

import (
	"encoding/json"
	"net/http"

	"prepay-engine/service"
)

type CompareHandler struct {
	service *service.ComparisonService
}

func NewCompareHandler(service *service.ComparisonService) *CompareHandler {
	return &CompareHandler{service: service}
}

func (h *CompareHandler) CompareScenarios(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req scheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := h.service.CompareScenarios(r.Context(), req.loan(), req.plan())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}
