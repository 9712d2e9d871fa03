package loss

import (
	"encoding/json"
	"net/http"

	"Powergrid/internal/display"
	"Powergrid/internal/metrics"
	"Powergrid/internal/utils"
)

type Response struct {
	Result
	LossText string `json:"loss_text"`
}

type Handler struct {
	Currency string
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Calculate(input)
	metrics.ObserveCalculation(metrics.KindLoss, "api")

	utils.RespondJSON(w, http.StatusOK, Response{
		Result:   res,
		LossText: display.Currency(res.Loss, h.Currency),
	})
}
