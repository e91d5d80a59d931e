package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// APIMetrics agrupa las métricas Prometheus de la aplicación.
type APIMetrics struct {
	AuthzDecisions *prometheus.CounterVec
	OrdersCreated  prometheus.Counter
	LeadsCreated   prometheus.Counter
	LoginAttempts  *prometheus.CounterVec
}

// New inicializa y registra las métricas Prometheus.
func New() *APIMetrics {
	return &APIMetrics{
		AuthzDecisions: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "backoffice",
			Subsystem: "authz",
			Name:      "decisions_total",
			Help:      "Decisiones de autorización por resultado.",
		}, []string{"result"}), // result: allowed, denied_no_roles, denied_no_permission
		OrdersCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "backoffice",
			Subsystem: "orders",
			Name:      "created_total",
			Help:      "Órdenes creadas con al menos una línea satisfecha.",
		}),
		LeadsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: "backoffice",
			Subsystem: "orders",
			Name:      "leads_total",
			Help:      "Leads (backorders) generados por faltantes de stock.",
		}),
		LoginAttempts: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: "backoffice",
			Subsystem: "auth",
			Name:      "login_attempts_total",
			Help:      "Intentos de login por resultado.",
		}, []string{"result"}), // result: ok, invalid_credentials, error
	}
}
