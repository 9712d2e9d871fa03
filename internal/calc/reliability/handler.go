package reliability

import (
	"encoding/json"
	"net/http"

	"Powergrid/internal/display"
	"Powergrid/internal/metrics"
	"Powergrid/internal/utils"
)

type Response struct {
	Result
	SingleCircuitText string `json:"single_circuit_text"`
	DoubleCircuitText string `json:"double_circuit_text"`
}

type Handler struct{}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res := Calculate(input)
	metrics.ObserveCalculation(metrics.KindReliability, "api")

	utils.RespondJSON(w, http.StatusOK, Response{
		Result:            res,
		SingleCircuitText: display.Percent(res.SingleCircuit),
		DoubleCircuitText: display.Percent(res.DoubleCircuit),
	})
}
