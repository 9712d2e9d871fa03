package form

import (
	"encoding/json"
	"errors"
	"net/http"

	"Powergrid/internal/utils"
)

// Handler exposes the controller to clients that send raw field text.
type Handler struct {
	Controller Controller
}

type errorResponse struct {
	Errors FieldErrors `json:"errors"`
}

func (h *Handler) Reliability(w http.ResponseWriter, r *http.Request) {
	var fields ReliabilityFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := h.Controller.CalculateReliability(fields)
	if err != nil {
		writeFieldErrors(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, out)
}

func (h *Handler) Loss(w http.ResponseWriter, r *http.Request) {
	var fields LossFields
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	out, err := h.Controller.CalculateLoss(fields)
	if err != nil {
		writeFieldErrors(w, err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, out)
}

func writeFieldErrors(w http.ResponseWriter, err error) {
	var errs FieldErrors
	if !errors.As(err, &errs) {
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	utils.RespondJSON(w, http.StatusUnprocessableEntity, errorResponse{Errors: errs})
}
