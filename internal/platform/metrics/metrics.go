package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the billing service.
type Metrics struct {
	BillsGenerated     prometheus.Counter
	RenderFailures     prometheus.Counter
	HandoffsDispatched *prometheus.CounterVec
	ClipboardFallbacks prometheus.Counter
	ClipboardFailures  prometheus.Counter
}

// New creates and registers all metrics on the default registry.
func New() *Metrics {
	return &Metrics{
		BillsGenerated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fishbill_bills_generated_total",
			Help: "Total number of bills successfully generated.",
		}),
		RenderFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fishbill_render_failures_total",
			Help: "Total number of PDF rendering failures.",
		}),
		HandoffsDispatched: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "fishbill_handoffs_dispatched_total",
			Help: "Total number of WhatsApp handoffs dispatched, by target.",
		}, []string{"target"}),
		ClipboardFallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fishbill_clipboard_fallbacks_total",
			Help: "Times the primary clipboard failed and the legacy fallback was used.",
		}),
		ClipboardFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "fishbill_clipboard_failures_total",
			Help: "Times both clipboard mechanisms failed (logged only, never surfaced).",
		}),
	}
}
