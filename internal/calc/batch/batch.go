package batch

import (
	"encoding/json"

	"Powergrid/internal/calc/loss"
	"Powergrid/internal/calc/reliability"
	"Powergrid/internal/display"
	"Powergrid/internal/utils"
)

var errNoItems = utils.NewAppError("batch", "no items", nil)

type ReliabilityBatchInput struct {
	Items []reliability.Input `json:"items"`
}

type ReliabilityBatchResult struct {
	Results []reliability.Result `json:"results"`
}

type LossBatchInput struct {
	Items []loss.Input `json:"items"`
}

type LossBatchResult struct {
	Results []loss.Result `json:"results"`
	Total   float64       `json:"total"`
}

type lossBatchJSON struct {
	Results []loss.Result  `json:"results"`
	Total   display.Number `json:"total"`
}

func (r LossBatchResult) MarshalJSON() ([]byte, error) {
	return json.Marshal(lossBatchJSON{Results: r.Results, Total: display.Number(r.Total)})
}

func (r *LossBatchResult) UnmarshalJSON(b []byte) error {
	var w lossBatchJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = LossBatchResult{Results: w.Results, Total: float64(w.Total)}
	return nil
}

func CalculateReliability(in ReliabilityBatchInput) (ReliabilityBatchResult, error) {
	if len(in.Items) == 0 {
		return ReliabilityBatchResult{}, errNoItems
	}
	out := ReliabilityBatchResult{Results: make([]reliability.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		out.Results = append(out.Results, reliability.Calculate(item))
	}
	return out, nil
}

// CalculateLoss also sums the per-item losses, e.g. for a substation with
// several transformers.
func CalculateLoss(in LossBatchInput) (LossBatchResult, error) {
	if len(in.Items) == 0 {
		return LossBatchResult{}, errNoItems
	}
	out := LossBatchResult{Results: make([]loss.Result, 0, len(in.Items))}
	for _, item := range in.Items {
		res := loss.Calculate(item)
		out.Results = append(out.Results, res)
		out.Total += res.Loss
	}
	return out, nil
}
