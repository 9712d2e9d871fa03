package loss

type Input struct {
	FailureRate float64 `json:"failure_rate"`  // failures per year
	DowntimeH   float64 `json:"downtime_h"`    // hours per failure
	CostPerHour float64 `json:"cost_per_hour"` // currency per hour of interruption
}

type Result struct {
	Loss float64 `json:"loss"`
}

// Expected returns the expected yearly loss from a single transformer's
// outages: intensity x duration x unit cost.
func Expected(failureRate, downtime, costPerHour float64) float64 {
	return failureRate * downtime * costPerHour
}

func Calculate(in Input) Result {
	return Result{Loss: Expected(in.FailureRate, in.DowntimeH, in.CostPerHour)}
}
