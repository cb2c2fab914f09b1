package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the mandate lifecycle. All
// methods are nil-safe so services can run without metrics in tests.
type Metrics struct {
	// Mandates created by kind
	MandatesCreated *prometheus.CounterVec

	// Lifecycle transitions by target state
	Transitions *prometheus.CounterVec

	// Risk assessments by tier
	RiskAssessed *prometheus.CounterVec

	// Settlement outcomes by rail and status
	Settlements *prometheus.CounterVec

	// Settlement attempts refused because the risk tier was HIGH
	RiskBlocked prometheus.Counter
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return &Metrics{
		MandatesCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mandate_gateway_mandates_created_total",
			Help: "Total mandates created, by kind",
		}, []string{"kind"}),

		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mandate_gateway_transitions_total",
			Help: "Total mandate state transitions, by target state",
		}, []string{"state"}),

		RiskAssessed: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mandate_gateway_risk_assessments_total",
			Help: "Total risk assessments, by tier",
		}, []string{"tier"}),

		Settlements: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "mandate_gateway_settlements_total",
			Help: "Total settlement attempts, by rail and status",
		}, []string{"rail", "status"}),

		RiskBlocked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "mandate_gateway_risk_blocked_total",
			Help: "Total settlements refused for HIGH risk tier",
		}),
	}
}

// IncMandateCreated records a mandate creation.
func (m *Metrics) IncMandateCreated(kind string) {
	if m != nil {
		m.MandatesCreated.WithLabelValues(kind).Inc()
	}
}

// IncTransition records a state transition.
func (m *Metrics) IncTransition(state string) {
	if m != nil {
		m.Transitions.WithLabelValues(state).Inc()
	}
}

// IncRiskAssessed records a risk assessment outcome.
func (m *Metrics) IncRiskAssessed(tier string) {
	if m != nil {
		m.RiskAssessed.WithLabelValues(tier).Inc()
	}
}

// IncSettlement records a settlement attempt outcome.
func (m *Metrics) IncSettlement(rail, status string) {
	if m != nil {
		m.Settlements.WithLabelValues(rail, status).Inc()
	}
}

// IncRiskBlocked records a HIGH-risk settlement refusal.
func (m *Metrics) IncRiskBlocked() {
	if m != nil {
		m.RiskBlocked.Inc()
	}
}
