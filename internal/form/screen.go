package form

// Status is the state of one screen section.
type Status int

const (
	AwaitingInput Status = iota
	ResultAvailable
)

func (s Status) String() string {
	switch s {
	case ResultAvailable:
		return "result_available"
	default:
		return "awaiting_input"
	}
}

type ReliabilitySection struct {
	Fields  ReliabilityFields
	Status  Status
	Outcome ReliabilityOutcome
	Errors  FieldErrors
}

type LossSection struct {
	Fields  LossFields
	Status  Status
	Outcome LossOutcome
	Errors  FieldErrors
}

// Screen is the whole calculator: two independent sections. It is a value;
// calculate actions return a new Screen and leave the receiver untouched.
type Screen struct {
	Reliability ReliabilitySection
	Loss        LossSection
}

// OnCalculateReliability records the typed text and, if it could be used,
// moves the reliability section to ResultAvailable with the new outcome.
// A rejected action (strict mode) keeps the previous status and outcome.
func (c Controller) OnCalculateReliability(s Screen, p0Text, p1Text string) Screen {
	fields := ReliabilityFields{P0: p0Text, P1: p1Text}
	s.Reliability.Fields = fields

	out, err := c.CalculateReliability(fields)
	if errs, ok := err.(FieldErrors); ok {
		s.Reliability.Errors = errs
		return s
	}
	s.Reliability.Errors = nil
	s.Reliability.Outcome = out
	s.Reliability.Status = ResultAvailable
	return s
}

// OnCalculateLoss is the loss-section counterpart of OnCalculateReliability.
func (c Controller) OnCalculateLoss(s Screen, rateText, downtimeText, costText string) Screen {
	fields := LossFields{FailureRate: rateText, Downtime: downtimeText, CostPerHour: costText}
	s.Loss.Fields = fields

	out, err := c.CalculateLoss(fields)
	if errs, ok := err.(FieldErrors); ok {
		s.Loss.Errors = errs
		return s
	}
	s.Loss.Errors = nil
	s.Loss.Outcome = out
	s.Loss.Status = ResultAvailable
	return s
}

// RestoreReliability rebuilds a section from the text of its last
// successful calculation, e.g. when a stateless page round-trips it.
// Nothing is counted as a new calculation.
func (c Controller) RestoreReliability(s Screen, p0Text, p1Text string) Screen {
	fields := ReliabilityFields{P0: p0Text, P1: p1Text}
	out, err := c.calcReliability(fields, false)
	if err != nil {
		return s
	}
	s.Reliability.Fields = fields
	s.Reliability.Outcome = out
	s.Reliability.Status = ResultAvailable
	return s
}

func (c Controller) RestoreLoss(s Screen, rateText, downtimeText, costText string) Screen {
	fields := LossFields{FailureRate: rateText, Downtime: downtimeText, CostPerHour: costText}
	out, err := c.calcLoss(fields, false)
	if err != nil {
		return s
	}
	s.Loss.Fields = fields
	s.Loss.Outcome = out
	s.Loss.Status = ResultAvailable
	return s
}
