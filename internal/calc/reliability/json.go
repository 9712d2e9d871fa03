package reliability

import (
	"encoding/json"

	"Powergrid/internal/display"
)

type inputJSON struct {
	P0 display.Number `json:"p0"`
	P1 display.Number `json:"p1"`
}

func (in Input) MarshalJSON() ([]byte, error) {
	return json.Marshal(inputJSON{P0: display.Number(in.P0), P1: display.Number(in.P1)})
}

func (in *Input) UnmarshalJSON(b []byte) error {
	var w inputJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*in = Input{P0: float64(w.P0), P1: float64(w.P1)}
	return nil
}

type resultJSON struct {
	SingleCircuit display.Number `json:"single_circuit"`
	DoubleCircuit display.Number `json:"double_circuit"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	return json.Marshal(resultJSON{
		SingleCircuit: display.Number(r.SingleCircuit),
		DoubleCircuit: display.Number(r.DoubleCircuit),
	})
}

func (r *Result) UnmarshalJSON(b []byte) error {
	var w resultJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = Result{SingleCircuit: float64(w.SingleCircuit), DoubleCircuit: float64(w.DoubleCircuit)}
	return nil
}

type responseJSON struct {
	resultJSON
	SingleCircuitText string `json:"single_circuit_text"`
	DoubleCircuitText string `json:"double_circuit_text"`
}

// Response defines its own codec so the embedded Result's does not hide the
// text fields.
func (r Response) MarshalJSON() ([]byte, error) {
	return json.Marshal(responseJSON{
		resultJSON: resultJSON{
			SingleCircuit: display.Number(r.SingleCircuit),
			DoubleCircuit: display.Number(r.DoubleCircuit),
		},
		SingleCircuitText: r.SingleCircuitText,
		DoubleCircuitText: r.DoubleCircuitText,
	})
}

func (r *Response) UnmarshalJSON(b []byte) error {
	var w responseJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	*r = Response{
		Result:            Result{SingleCircuit: float64(w.SingleCircuit), DoubleCircuit: float64(w.DoubleCircuit)},
		SingleCircuitText: w.SingleCircuitText,
		DoubleCircuitText: w.DoubleCircuitText,
	}
	return nil
}
