package web

import (
	"math"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"Powergrid/internal/form"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func post(t *testing.T, h *Handler, values url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(values.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h.Submit(w, req)
	return w
}

func TestPageRendersEmptyForm(t *testing.T) {
	h := &Handler{Log: zaptest.NewLogger(t)}
	w := httptest.NewRecorder()
	h.Page(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, `name="p0"`)
	assert.Contains(t, body, `name="cost_per_hour"`)
	assert.NotContains(t, body, `id="single"`)
	assert.NotContains(t, body, `id="loss-value"`)
}

func TestSubmitReliability(t *testing.T) {
	h := &Handler{}
	w := post(t, h, url.Values{"action": {"reliability"}, "p0": {"0.1"}, "p1": {"0.2"}})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<span id="single">90.0%</span>`)
	assert.Contains(t, body, `<span id="double">98.0%</span>`)
	assert.NotContains(t, body, `id="loss-value"`)
}

func TestSubmitMalformedReliability(t *testing.T) {
	w := post(t, &Handler{}, url.Values{"action": {"reliability"}, "p0": {""}, "p1": {"x"}})

	body := w.Body.String()
	assert.Contains(t, body, `<span id="single">100.0%</span>`)
	assert.Contains(t, body, `<span id="double">100.0%</span>`)
	assert.Contains(t, body, `name="p1" value="x"`)
}

func TestSubmitLossKeepsReliabilityResult(t *testing.T) {
	h := &Handler{}
	w := post(t, h, url.Values{
		"action":        {"loss"},
		"p0":            {"0.3"}, // edited after the last calculation
		"p1":            {"0.2"},
		"last_p0":       {"0.1"},
		"last_p1":       {"0.2"},
		"failure_rate":  {"2"},
		"downtime":      {"3"},
		"cost_per_hour": {"100"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `<span id="loss-value">600.00 грн</span>`)
	assert.Contains(t, body, `<span id="single">90.0%</span>`, "result reflects the last calculation")
	assert.Contains(t, body, `name="p0" value="0.3"`, "typed text is kept")
	assert.Contains(t, body, `name="last_failure_rate" value="2"`)
}

func TestSubmitStrictShowsFieldErrors(t *testing.T) {
	h := &Handler{Controller: form.Controller{Strict: true, Currency: "UAH"}}
	w := post(t, h, url.Values{"action": {"loss"}, "failure_rate": {"two"}, "downtime": {"3"}, "cost_per_hour": {"100"}})

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `class="error"`)
	assert.Contains(t, body, "not a number")
	assert.NotContains(t, body, `id="loss-value"`)
	assert.Contains(t, body, "(C), UAH")
}

func TestSubmitUnknownAction(t *testing.T) {
	w := post(t, &Handler{}, url.Values{"action": {"nope"}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFormatInputRoundTrips(t *testing.T) {
	for _, v := range []float64{0, 0.1, 1e-300, -2.5, 1.0 / 3, math.Inf(1), math.Inf(-1)} {
		assert.Equal(t, v, form.ParseNumeric(formatInput(v)))
	}
	assert.True(t, math.IsNaN(form.ParseNumeric(formatInput(math.NaN()))))
}
