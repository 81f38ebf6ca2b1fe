// Package metrics exposes the Prometheus collectors of the service.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	labelResult    = "result"
	labelSource    = "source"
	labelRecipient = "recipient"
	labelStatus    = "status"
)

// Outcome label values.
const (
	ResultOK      = "ok"
	ResultInvalid = "invalid"
	ResultError   = "error"

	StatusSent    = "sent"
	StatusSkipped = "skipped"
	StatusFailed  = "failed"

	RecipientClient = "client"
	RecipientAdmin  = "admin"
)

// Metrics groups the counters of the service on a dedicated registry.
type Metrics struct {
	registry *prometheus.Registry

	calculations  *prometheus.CounterVec
	plans         *prometheus.CounterVec
	notifications *prometheus.CounterVec
}

// New registers the service counters together with the Go and process
// collectors on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		calculations: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mediaplan_calculations_total",
			Help: "The number of media plan calculations (per result).",
		}, []string{labelResult}),
		plans: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mediaplan_plans_total",
			Help: "The number of generated media plans (per selection source).",
		}, []string{labelSource}),
		notifications: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "mediaplan_notifications_total",
			Help: "The number of notification emails (per recipient and status).",
		}, []string{labelRecipient, labelStatus}),
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) Calculation(result string) prometheus.Counter {
	return m.calculations.With(prometheus.Labels{labelResult: result})
}

func (m *Metrics) Plan(source string) prometheus.Counter {
	return m.plans.With(prometheus.Labels{labelSource: source})
}

func (m *Metrics) Notification(recipient, status string) prometheus.Counter {
	return m.notifications.With(prometheus.Labels{labelRecipient: recipient, labelStatus: status})
}
