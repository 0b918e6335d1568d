package quiz

import "github.com/prometheus/client_golang/prometheus"

// Metrics counts quiz draws by category scope and outcome.
type Metrics struct {
	draws *prometheus.CounterVec
}

// NewMetrics registers the quiz collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "trivia",
			Subsystem: "quiz",
			Name:      "draws_total",
			Help:      "Quiz question draws partitioned by scope and outcome.",
		}, []string{"scope", "outcome"}),
	}
	reg.MustRegister(m.draws)
	return m
}

func (m *Metrics) observe(categoryID int, outcome string) {
	if m == nil {
		return
	}
	scope := "category"
	if categoryID == AllCategories {
		scope = "all"
	}
	m.draws.WithLabelValues(scope, outcome).Inc()
}
