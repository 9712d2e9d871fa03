package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"Powergrid/internal/form"
	"Powergrid/internal/utils"

	"go.uber.org/zap"
)

const usage = `usage:
  gridcalc [-strict] [-currency UNIT] reliability P0 P1
  gridcalc [-strict] [-currency UNIT] loss RATE DOWNTIME COST
`

func main() {
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprint(os.Stderr, usage)
			os.Exit(2)
		}
		logger.Error("calculation rejected", zap.Error(err))
		os.Exit(1)
	}
}

var errUsage = errors.New("usage")

// newLogger writes console-encoded diagnostics; results go to stdout.
func newLogger() (*zap.Logger, error) {
	return utils.NewLogger("info", false)
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("gridcalc", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	strict := fs.Bool("strict", false, "reject unparsable numbers instead of using zero")
	currency := fs.String("currency", "", "unit printed after the loss amount")
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	c := form.Controller{Strict: *strict, Currency: *currency, Source: "cli"}
	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}

	switch rest[0] {
	case "reliability":
		if len(rest) != 3 {
			return errUsage
		}
		res, err := c.CalculateReliability(form.ReliabilityFields{P0: rest[1], P1: rest[2]})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Single-circuit reliability: %s\n", res.SingleCircuit)
		fmt.Fprintf(out, "Double-circuit reliability: %s\n", res.DoubleCircuit)
	case "loss":
		if len(rest) != 4 {
			return errUsage
		}
		res, err := c.CalculateLoss(form.LossFields{FailureRate: rest[1], Downtime: rest[2], CostPerHour: rest[3]})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "Expected loss: %s\n", res.Loss)
	default:
		return errUsage
	}
	return nil
}
