package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics expone los collectors de Prometheus del servicio.
type Metrics struct {
	swipes        *prometheus.CounterVec
	outfits       prometheus.Counter
	outfitItems   prometheus.Histogram
	budgetSkipped prometheus.Counter
	catalogItems  prometheus.Gauge
}

// MustNewMetrics registra los collectors en reg; un registro duplicado hace panic.
// En tests usar prometheus.NewRegistry().
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	m := &Metrics{
		swipes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "totem",
				Subsystem: "stylist",
				Name:      "swipes_total",
				Help:      "Swipes recorded by type.",
			},
			[]string{"type"},
		),
		outfits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "totem",
			Subsystem: "stylist",
			Name:      "outfits_composed_total",
			Help:      "Outfits composed from a seed item.",
		}),
		outfitItems: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "totem",
			Subsystem: "stylist",
			Name:      "outfit_items",
			Help:      "Number of items per composed outfit, seed included.",
			Buckets:   []float64{1, 2, 3, 4, 5, 6},
		}),
		budgetSkipped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "totem",
			Subsystem: "stylist",
			Name:      "outfit_budget_skips_total",
			Help:      "Complement candidates skipped because they exceeded the budget.",
		}),
		catalogItems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "totem",
			Subsystem: "catalog",
			Name:      "items",
			Help:      "Items loaded in the catalog index.",
		}),
	}
	reg.MustRegister(m.swipes, m.outfits, m.outfitItems, m.budgetSkipped, m.catalogItems)
	return m
}

// ObserveSwipe cuenta un like o dislike.
func (m *Metrics) ObserveSwipe(kind string) {
	if m == nil {
		return
	}
	m.swipes.WithLabelValues(kind).Inc()
}

// ObserveOutfit registra un look compuesto y los candidatos descartados por presupuesto.
func (m *Metrics) ObserveOutfit(items, skipped int) {
	if m == nil {
		return
	}
	m.outfits.Inc()
	m.outfitItems.Observe(float64(items))
	m.budgetSkipped.Add(float64(skipped))
}

// SetCatalogSize publica el tamano del catalogo cargado.
func (m *Metrics) SetCatalogSize(n int) {
	if m == nil {
		return
	}
	m.catalogItems.Set(float64(n))
}
