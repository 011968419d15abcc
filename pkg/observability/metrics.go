package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the engine's Prometheus instruments.
type Metrics struct {
	SchedulesGenerated     prometheus.Counter
	EarlyPaymentsApplied   prometheus.Counter
	DepositsProjected      prometheus.Counter
	DistributionsConfirmed prometheus.Counter
	DistributionsCancelled prometheus.Counter
	OperationErrors        *prometheus.CounterVec
}

// NewMetrics registers the engine instruments on the given registerer.
// Pass prometheus.DefaultRegisterer in production.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		SchedulesGenerated: factory.NewCounter(prometheus.CounterOpts{
			Name: "kassa_schedules_generated_total",
			Help: "Number of credit schedules generated or regenerated.",
		}),
		EarlyPaymentsApplied: factory.NewCounter(prometheus.CounterOpts{
			Name: "kassa_early_payments_applied_total",
			Help: "Number of early payments folded into schedules.",
		}),
		DepositsProjected: factory.NewCounter(prometheus.CounterOpts{
			Name: "kassa_deposit_projections_total",
			Help: "Number of deposit maturity projections computed.",
		}),
		DistributionsConfirmed: factory.NewCounter(prometheus.CounterOpts{
			Name: "kassa_distributions_confirmed_total",
			Help: "Number of income distributions confirmed.",
		}),
		DistributionsCancelled: factory.NewCounter(prometheus.CounterOpts{
			Name: "kassa_distributions_cancelled_total",
			Help: "Number of income distributions cancelled.",
		}),
		OperationErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "kassa_operation_errors_total",
			Help: "Engine operation failures by error kind.",
		}, []string{"kind"}),
	}
}

// MetricsHandler returns the HTTP handler serving the /metrics endpoint.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
