package batch

import (
	"encoding/json"
	"net/http"

	"Powergrid/internal/metrics"
	"Powergrid/internal/utils"
)

type Handler struct{}

func (h *Handler) Reliability(w http.ResponseWriter, r *http.Request) {
	var input ReliabilityBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateReliability(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	metrics.ObserveCalculations(metrics.KindReliability, "batch", len(res.Results))
	utils.RespondJSON(w, http.StatusOK, res)
}

func (h *Handler) Loss(w http.ResponseWriter, r *http.Request) {
	var input LossBatchInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := CalculateLoss(input)
	if err != nil {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	metrics.ObserveCalculations(metrics.KindLoss, "batch", len(res.Results))
	utils.RespondJSON(w, http.StatusOK, res)
}
