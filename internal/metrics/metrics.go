package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	KindReliability = "reliability"
	KindLoss        = "loss"
)

var (
	calculationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "powergrid",
			Name:      "calculations_total",
			Help:      "Total number of calculations performed, partitioned by kind and entry point.",
		},
		[]string{"kind", "source"},
	)

	parseFallbacksTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "powergrid",
			Name:      "parse_fallbacks_total",
			Help:      "Text fields that could not be parsed and were replaced by zero.",
		},
		[]string{"field"},
	)
)

// Register attaches powergrid collectors to the supplied registerer.
func Register(reg prometheus.Registerer) error {
	collectors := []prometheus.Collector{
		calculationsTotal,
		parseFallbacksTotal,
	}

	for _, collector := range collectors {
		if err := reg.Register(collector); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
				continue
			}
			return err
		}
	}
	return nil
}

// ObserveCalculation counts one calculation of the given kind. source names
// the entry point: "api", "form", "batch", "workbook", "cli".
func ObserveCalculation(kind, source string) {
	calculationsTotal.WithLabelValues(kind, source).Inc()
}

// ObserveCalculations counts n calculations at once (batches, imports).
func ObserveCalculations(kind, source string, n int) {
	if n <= 0 {
		return
	}
	calculationsTotal.WithLabelValues(kind, source).Add(float64(n))
}

func ObserveParseFallback(field string) {
	parseFallbacksTotal.WithLabelValues(field).Inc()
}
