package loss

import (
	"encoding/json"

	"Powergrid/internal/display"
)

type inputJSON struct {
	FailureRate display.Number `json:"failure_rate"`
	DowntimeH   display.Number `json:"downtime_h"`
	CostPerHour display.Number `json:"cost_per_hour"`
}

func (in Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(inputJSON{
		FailureRate: display.Number(in.FailureRate),
		DowntimeH:   display.Number(in.DowntimeH),
		CostPerHour: display.Number(in.CostPerHour),
	})
}

func (in *Input) UnmarshalJSON(b []byte) error {
	var w inputJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*in = Input{
		FailureRate: float64(w.FailureRate),
		DowntimeH:   float64(w.DowntimeH),
		CostPerHour: float64(w.CostPerHour),
	}
	return nil
}

type resultJSON struct {
	Loss display.Number `json:"loss"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{Loss: display.Number(r.Loss)})
}

func (r *Result) UnmarshalJSON(b []byte) error {
	var w resultJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = Result{Loss: float64(w.Loss)}
	return nil
}

type responseJSON struct {
	resultJSON
	LossText string `json:"loss_text"`
}

// Response defines its own codec so the embedded Result's does not hide
// LossText.
func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(responseJSON{
		resultJSON: resultJSON{Loss: display.Number(r.Loss)},
		LossText:   r.LossText,
	})
}

func (r *Response) UnmarshalJSON(b []byte) error {
	var w responseJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = Response{Result: Result{Loss: float64(w.Loss)}, LossText: w.LossText}
	return nil
}
