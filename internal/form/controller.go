// Package form bridges free-text form fields to the formula library. Every
// calculate action parses its fields, computes, and hands back a fresh
// value; nothing is kept between actions.
package form

import (
	"errors"

	"Powergrid/internal/calc/loss"
	"Powergrid/internal/calc/reliability"
	"Powergrid/internal/display"
	"Powergrid/internal/metrics"
)

const (
	FieldP0          = "p0"
	FieldP1          = "p1"
	FieldFailureRate = "failure_rate"
	FieldDowntime    = "downtime"
	FieldCostPerHour = "cost_per_hour"
)

type ReliabilityFields struct {
	P0 string `json:"p0"`
	P1 string `json:"p1"`
}

type LossFields struct {
	FailureRate string `json:"failure_rate"`
	Downtime    string `json:"downtime"`
	CostPerHour string `json:"cost_per_hour"`
}

type ReliabilityOutcome struct {
	Input         reliability.Input  `json:"input"`
	Result        reliability.Result `json:"result"`
	SingleCircuit string             `json:"single_circuit"`
	DoubleCircuit string             `json:"double_circuit"`
}

type LossOutcome struct {
	Input  loss.Input  `json:"input"`
	Result loss.Result `json:"result"`
	Loss   string      `json:"loss"`
}

// Controller is stateless; its fields only select behaviour.
type Controller struct {
	// Strict rejects unparsable fields instead of substituting zero.
	Strict bool
	// Currency is the unit printed after loss amounts.
	Currency string
	// Source labels the metrics this controller emits.
	Source string
}

// CalculateReliability parses P0 and P1 and evaluates both reliability
// formulas. The error is non-nil only in strict mode and is FieldErrors.
func (c Controller) CalculateReliability(f ReliabilityFields) (ReliabilityOutcome, error) {
	return c.calcReliability(f, true)
}

func (c Controller) calcReliability(f ReliabilityFields, observe bool) (ReliabilityOutcome, error) {
	var errs FieldErrors
	p0 := c.field(FieldP0, f.P0, observe, &errs)
	p1 := c.field(FieldP1, f.P1, observe, &errs)
	if len(errs) > 0 {
		return ReliabilityOutcome{}, errs
	}

	in := reliability.Input{P0: p0, P1: p1}
	res := reliability.Calculate(in)
	if observe {
		metrics.ObserveCalculation(metrics.KindReliability, c.source())
	}
	return ReliabilityOutcome{
		Input:         in,
		Result:        res,
		SingleCircuit: display.Percent(res.SingleCircuit),
		DoubleCircuit: display.Percent(res.DoubleCircuit),
	}, nil
}

// CalculateLoss parses λ, T and C and evaluates the expected loss.
func (c Controller) CalculateLoss(f LossFields) (LossOutcome, error) {
	return c.calcLoss(f, true)
}

func (c Controller) calcLoss(f LossFields, observe bool) (LossOutcome, error) {
	var errs FieldErrors
	rate := c.field(FieldFailureRate, f.FailureRate, observe, &errs)
	downtime := c.field(FieldDowntime, f.Downtime, observe, &errs)
	cost := c.field(FieldCostPerHour, f.CostPerHour, observe, &errs)
	if len(errs) > 0 {
		return LossOutcome{}, errs
	}

	in := loss.Input{FailureRate: rate, DowntimeH: downtime, CostPerHour: cost}
	res := loss.Calculate(in)
	if observe {
		metrics.ObserveCalculation(metrics.KindLoss, c.source())
	}
	return LossOutcome{
		Input:  in,
		Result: res,
		Loss:   display.Currency(res.Loss, c.Currency),
	}, nil
}

func (c Controller) field(name, text string, observe bool, errs *FieldErrors) float64 {
	v, err := parse(text)
	if err == nil {
		return v
	}
	if c.Strict {
		*errs = append(*errs, FieldError{Field: name, Text: text, Message: err.Error(), Err: err})
		return 0
	}
	if observe && !errors.Is(err, ErrRange) {
		metrics.ObserveParseFallback(name)
	}
	return v
}

func (c Controller) source() string {
	if c.Source == "" {
		return "form"
	}
	return c.Source
}
