package telemetry

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/jsamuelsen/quote-card/internal/domain"
)

const metricsNamespace = "quotecard"

// CardMetrics counts rendered cards by resolved style.
// It implements ports.RenderRecorder.
type CardMetrics struct {
	rendered *prometheus.CounterVec
}

// NewCardMetrics registers the card collectors with reg.
// Pass prometheus.DefaultRegisterer to expose them on the promhttp handler.
func NewCardMetrics(reg prometheus.Registerer) *CardMetrics {
	return &CardMetrics{
		rendered: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "cards_rendered_total",
			Help:      "Quote cards rendered, by resolved theme, font and orientation.",
		}, []string{"theme", "font", "orientation"}),
	}
}

// CardRendered increments the counter for style.
func (m *CardMetrics) CardRendered(style domain.Style) {
	m.rendered.WithLabelValues(style.Theme.Name, style.Font.Name, string(style.Orientation)).Inc()
}
