package reliability

// Input holds failure probabilities of the two circuits. Values outside
// [0,1] are passed through unchanged.
type Input struct {
	P0 float64 `json:"p0"`
	P1 float64 `json:"p1"`
}

type Result struct {
	SingleCircuit float64 `json:"single_circuit"`
	DoubleCircuit float64 `json:"double_circuit"`
}

// SingleCircuit is the availability of a line with one transmission path.
func SingleCircuit(p0 float64) float64 {
	return 1 - p0
}

// DoubleCircuit is the availability of two independent parallel paths:
// the system is down only when both are down.
func DoubleCircuit(p0, p1 float64) float64 {
	return 1 - (p0 * p1)
}

func Calculate(in Input) Result {
	return Result{
		SingleCircuit: SingleCircuit(in.P0),
		DoubleCircuit: DoubleCircuit(in.P0, in.P1),
	}
}
