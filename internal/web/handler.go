// Package web renders the calculator as a plain HTML form. The page keeps no
// server-side state: the text of each section's last calculation travels in
// hidden fields and is recomputed on the next request.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"math"
	"net/http"
	"strconv"

	"Powergrid/internal/display"
	"Powergrid/internal/form"

	"go.uber.org/zap"
)

//go:embed templates/index.html
var templatesFS embed.FS

var page = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

const (
	ActionReliability = "reliability"
	ActionLoss        = "loss"
)

type Handler struct {
	Controller form.Controller
	Log        *zap.Logger
}

type reliabilityView struct {
	form.ReliabilitySection
	Available      bool
	LastP0, LastP1 string
}

type lossView struct {
	form.LossSection
	Available                                      bool
	Currency                                       string
	LastFailureRate, LastDowntime, LastCostPerHour string
}

type pageView struct {
	Reliability reliabilityView
	Loss        lossView
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	h.render(w, form.Screen{})
}

// Submit restores the screen from the posted form, applies the pressed
// button's calculation and renders the result.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form", http.StatusBadRequest)
		return
	}
	s := h.restore(r)

	switch r.PostForm.Get("action") {
	case ActionReliability:
		s = h.Controller.OnCalculateReliability(s, r.PostForm.Get(form.FieldP0), r.PostForm.Get(form.FieldP1))
	case ActionLoss:
		s = h.Controller.OnCalculateLoss(s,
			r.PostForm.Get(form.FieldFailureRate),
			r.PostForm.Get(form.FieldDowntime),
			r.PostForm.Get(form.FieldCostPerHour))
	default:
		http.Error(w, "Unknown action", http.StatusBadRequest)
		return
	}
	h.render(w, s)
}

func (h *Handler) restore(r *http.Request) form.Screen {
	var s form.Screen
	f := r.PostForm
	if f.Has("last_p0") {
		s = h.Controller.RestoreReliability(s, f.Get("last_p0"), f.Get("last_p1"))
	}
	if f.Has("last_failure_rate") {
		s = h.Controller.RestoreLoss(s, f.Get("last_failure_rate"), f.Get("last_downtime"), f.Get("last_cost_per_hour"))
	}
	// Visible inputs keep whatever the user typed, calculated or not.
	s.Reliability.Fields = form.ReliabilityFields{P0: f.Get(form.FieldP0), P1: f.Get(form.FieldP1)}
	s.Loss.Fields = form.LossFields{
		FailureRate: f.Get(form.FieldFailureRate),
		Downtime:    f.Get(form.FieldDowntime),
		CostPerHour: f.Get(form.FieldCostPerHour),
	}
	return s
}

func (h *Handler) render(w http.ResponseWriter, s form.Screen) {
	currency := h.Controller.Currency
	if currency == "" {
		currency = display.DefaultCurrency
	}
	view := pageView{
		Reliability: reliabilityView{
			ReliabilitySection: s.Reliability,
			Available:          s.Reliability.Status == form.ResultAvailable,
			LastP0:             formatInput(s.Reliability.Outcome.Input.P0),
			LastP1:             formatInput(s.Reliability.Outcome.Input.P1),
		},
		Loss: lossView{
			LossSection:     s.Loss,
			Available:       s.Loss.Status == form.ResultAvailable,
			Currency:        currency,
			LastFailureRate: formatInput(s.Loss.Outcome.Input.FailureRate),
			LastDowntime:    formatInput(s.Loss.Outcome.Input.DowntimeH),
			LastCostPerHour: formatInput(s.Loss.Outcome.Input.CostPerHour),
		},
	}

	var buf bytes.Buffer
	if err := page.Execute(&buf, view); err != nil {
		if h.Log != nil {
			h.Log.Error("render form page", zap.Error(err))
		}
		http.Error(w, "Render error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(buf.Bytes())
}

// formatInput prints a parsed value so that form.ParseNumeric reads back the
// same float64.
func formatInput(v float64) string {
	switch {
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
