package batch

import (
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"Powergrid/internal/calc/loss"
	"Powergrid/internal/calc/reliability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateReliability(t *testing.T) {
	res, err := CalculateReliability(ReliabilityBatchInput{Items: []reliability.Input{
		{P0: 0.1, P1: 0.2},
		{P0: 0, P1: 0},
	}})
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.InDelta(t, 0.98, res.Results[0].DoubleCircuit, 1e-12)
	assert.Equal(t, 1.0, res.Results[1].SingleCircuit)
}

func TestCalculateLossTotals(t *testing.T) {
	res, err := CalculateLoss(LossBatchInput{Items: []loss.Input{
		{FailureRate: 2, DowntimeH: 3, CostPerHour: 100},
		{FailureRate: 1, DowntimeH: 1, CostPerHour: 50},
	}})
	require.NoError(t, err)
	require.Len(t, res.Results, 2)
	assert.Equal(t, 600.0, res.Results[0].Loss)
	assert.Equal(t, 650.0, res.Total)
}

func TestEmptyBatch(t *testing.T) {
	_, err := CalculateReliability(ReliabilityBatchInput{})
	assert.EqualError(t, err, "batch: no items")

	_, err = CalculateLoss(LossBatchInput{Items: []loss.Input{}})
	assert.Error(t, err)
}

func TestHandlers(t *testing.T) {
	h := &Handler{}

	tests := []struct {
		name       string
		call       func(http.ResponseWriter, *http.Request)
		body       string
		wantStatus int
	}{
		{"reliability ok", h.Reliability, `{"items":[{"p0":0.1,"p1":0.2}]}`, http.StatusOK},
		{"reliability empty", h.Reliability, `{"items":[]}`, http.StatusBadRequest},
		{"loss ok", h.Loss, `{"items":[{"failure_rate":2,"downtime_h":3,"cost_per_hour":100}]}`, http.StatusOK},
		{"loss bad json", h.Loss, `{"items":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			tt.call(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"items":[{"failure_rate":2,"downtime_h":3,"cost_per_hour":100}]}`))
	w := httptest.NewRecorder()
	h.Loss(w, req)
	var res LossBatchResult
	require.NoError(t, json.NewDecoder(w.Body).Decode(&res))
	assert.Equal(t, 600.0, res.Total)
}

func TestLossHandlerOverflowingTotal(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(
		`{"items":[{"failure_rate":1e200,"downtime_h":1e200,"cost_per_hour":1},{"failure_rate":1,"downtime_h":1,"cost_per_hour":1}]}`))
	w := httptest.NewRecorder()

	(&Handler{}).Loss(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"results":[{"loss":"+Inf"},{"loss":1}],"total":"+Inf"}`, w.Body.String())

	var res LossBatchResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.True(t, math.IsInf(res.Total, 1))
	assert.Equal(t, 1.0, res.Results[1].Loss)
}
