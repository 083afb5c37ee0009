package prometheus

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/hedera-wallet-cli/internal/domain"
	"github.com/bnema/hedera-wallet-cli/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeSuccess  = "success"
	OutcomeDegraded = "degraded"
	OutcomeFailure  = "failure"
)

// Observer counts executions on its own registry so several observers can
// coexist in one process.
type Observer struct {
	registry   *prometheus.Registry
	executions *prometheus.CounterVec
	degraded   *prometheus.CounterVec
	duration   *prometheus.HistogramVec
}

var _ ports.ExecutionObserver = (*Observer)(nil)

func NewObserver() *Observer {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &Observer{
		registry: registry,
		executions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hw_executions_total",
			Help: "Wallet executions by operation, outcome, last stage and submission path.",
		}, []string{"operation", "outcome", "stage", "strategy"}),
		degraded: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "hw_receipts_degraded_total",
			Help: "Executions reported successful without a receipt.",
		}, []string{"operation"}),
		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "hw_execution_duration_seconds",
			Help:    "Time from validation to the final stage.",
			Buckets: []float64{0.1, 0.5, 1, 5, 15, 30, 60, 120},
		}, []string{"operation"}),
	}
}

func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

func (o *Observer) ObserveExecution(_ context.Context, event ports.ExecutionEvent) {
	operation := string(event.Operation)
	outcome := outcomeOf(event)
	stage := event.Stage
	if stage == "" {
		stage = domain.StageCompleted
	}

	o.executions.WithLabelValues(operation, outcome, string(stage), event.Strategy).Inc()
	if outcome == OutcomeDegraded {
		o.degraded.WithLabelValues(operation).Inc()
	}
	if event.Duration > 0 {
		o.duration.WithLabelValues(operation).Observe(event.Duration.Seconds())
	}
}

// WriteTextfile writes the registry in the node_exporter textfile format.
func (o *Observer) WriteTextfile(path string) error {
	if path == "" {
		return errors.New("metrics textfile path is empty")
	}
	if err := prometheus.WriteToTextfile(path, o.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}

func outcomeOf(event ports.ExecutionEvent) string {
	switch {
	case event.Err != nil:
		return OutcomeFailure
	case event.ReceiptUnavailable:
		return OutcomeDegraded
	default:
		return OutcomeSuccess
	}
}
