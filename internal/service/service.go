// Package service wraps the pure temperature computation with logging and
// metrics. The core package stays side-effect free; all observability lives
// here.
package service

import (
	"errors"
	"log/slog"

	"github.com/couchcryptid/vitals-stats/internal/observability"
	"github.com/couchcryptid/vitals-stats/temperature"
)

// Service runs temperature computations and records their outcomes.
type Service struct {
	logger  *slog.Logger
	metrics *observability.Metrics
}

// New creates a Service with the given logger and metrics.
func New(logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		logger:  logger,
		metrics: metrics,
	}
}

// Compute runs temperature.Compute and records the outcome.
func (s *Service) Compute(readings []float64, opts temperature.Options) (temperature.Stats, error) {
	s.metrics.BatchReadings.Observe(float64(len(readings)))

	stats, err := temperature.Compute(readings, opts)
	if err != nil {
		return temperature.Stats{}, s.recordFailure(err, len(readings))
	}

	s.recordSuccess(stats, len(readings))
	return stats, nil
}

// ComputeAny mirrors Compute for input whose type is only known at run time.
func (s *Service) ComputeAny(input any, opts temperature.Options) (temperature.Stats, error) {
	stats, err := temperature.ComputeAny(input, opts)
	if err != nil {
		return temperature.Stats{}, s.recordFailure(err, 0)
	}

	s.recordSuccess(stats, 0)
	return stats, nil
}

func (s *Service) recordSuccess(stats temperature.Stats, readings int) {
	s.metrics.ComputationsTotal.Inc()
	s.logger.Debug("batch reduced",
		"readings", readings,
		"average_f", stats.Average,
		"min_f", stats.Min,
		"max_f", stats.Max,
	)
}

func (s *Service) recordFailure(err error, readings int) error {
	reason := failureReason(err)
	s.metrics.FailuresTotal.WithLabelValues(reason).Inc()
	s.logger.Warn("batch rejected", "reason", reason, "readings", readings, "error", err)
	return err
}

// failureReason maps the core error taxonomy to a metric label.
func failureReason(err error) string {
	switch {
	case errors.Is(err, temperature.ErrInvalidInput):
		return "invalid_input"
	case errors.Is(err, temperature.ErrMissingUnit):
		return "missing_unit"
	case errors.Is(err, temperature.ErrUnitMismatch):
		return "unit_mismatch"
	case errors.Is(err, temperature.ErrAmbiguousReadings):
		return "ambiguous"
	case errors.Is(err, temperature.ErrOutOfHumanRange):
		return "out_of_range"
	default:
		return "unknown"
	}
}
