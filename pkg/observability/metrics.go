package observability

import (
	"net/http"
	"strconv"

	"github.com/aretw0/domino/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the tile collectors.
type Metrics struct {
	Registry *prometheus.Registry

	Intents      *prometheus.CounterVec
	Faces        *prometheus.CounterVec
	RenderErrors prometheus.Counter
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		Intents: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domino_intents_total",
				Help: "Total number of intents applied to tiles",
			},
			[]string{"intent"},
		),
		Faces: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "domino_faces_total",
				Help: "Face values drawn by randomize, per square",
			},
			[]string{"square", "face"},
		),
		RenderErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "domino_render_errors_total",
			Help: "Total number of snapshots the renderer failed to present",
		}),
	}
	m.Registry.MustRegister(m.Intents, m.Faces, m.RenderErrors)
	return m
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

func (m *Metrics) observeIntent(e *domain.IntentEvent) {
	m.Intents.WithLabelValues(string(e.Intent)).Inc()
	if e.Intent != domain.IntentRandomize {
		return
	}
	for sq, f := range e.After.Faces {
		m.Faces.WithLabelValues(strconv.Itoa(sq), strconv.Itoa(int(f))).Inc()
	}
}
