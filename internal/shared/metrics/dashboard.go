package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Dashboard agrupa as métricas de interação do dashboard
type Dashboard struct {
	Renders          *prometheus.CounterVec // por canal: http | ws
	RenderDuration   prometheus.Histogram
	ValidationErrors prometheus.Counter
	DerivationErrors *prometheus.CounterVec // por gráfico
	ChartsRendered   *prometheus.CounterVec // por gráfico
	CacheLookups     *prometheus.CounterVec // hit | miss | error
	WSConnections    prometheus.Gauge
}

// NewDashboard cria os coletores (ainda não registrados)
func NewDashboard() *Dashboard {
	return &Dashboard{
		Renders: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_renders_total", Help: "views recalculadas",
		}, []string{"channel"}),
		RenderDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name: "dashboard_render_duration_seconds", Help: "tempo de recálculo da view",
			Buckets: prometheus.ExponentialBuckets(0.0005, 2, 12),
		}),
		ValidationErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dashboard_validation_errors_total", Help: "entradas de dias inválidas",
		}),
		DerivationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_derivation_errors_total", Help: "gráficos bloqueados por linha inválida",
		}, []string{"chart"}),
		ChartsRendered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_charts_rendered_total", Help: "imagens de gráfico geradas",
		}, []string{"chart"}),
		CacheLookups: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dashboard_view_cache_lookups_total", Help: "consultas ao cache de views",
		}, []string{"result"}),
		WSConnections: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "dashboard_ws_connections", Help: "conexões websocket abertas",
		}),
	}
}

// MustRegister registra todos os coletores em reg
func (d *Dashboard) MustRegister(reg prometheus.Registerer) {
	reg.MustRegister(
		d.Renders,
		d.RenderDuration,
		d.ValidationErrors,
		d.DerivationErrors,
		d.ChartsRendered,
		d.CacheLookups,
		d.WSConnections,
	)
}
