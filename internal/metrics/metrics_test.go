package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func gatherValue(t *testing.T, reg *prometheus.Registry, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			switch {
			case m.GetCounter() != nil:
				total += m.GetCounter().GetValue()
			case m.GetGauge() != nil:
				total += m.GetGauge().GetValue()
			case m.GetHistogram() != nil:
				total += float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return total
}

func TestMetricsObserve(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := MustNewMetrics(reg)

	m.ObserveSwipe("like")
	m.ObserveSwipe("like")
	m.ObserveSwipe("dislike")
	m.ObserveOutfit(3, 1)
	m.SetCatalogSize(42)

	if got := gatherValue(t, reg, "totem_stylist_swipes_total"); got != 3 {
		t.Fatalf("expected 3 swipes, got %v", got)
	}
	if got := gatherValue(t, reg, "totem_stylist_outfits_composed_total"); got != 1 {
		t.Fatalf("expected 1 outfit, got %v", got)
	}
	if got := gatherValue(t, reg, "totem_stylist_outfit_items"); got != 1 {
		t.Fatalf("expected 1 histogram sample, got %v", got)
	}
	if got := gatherValue(t, reg, "totem_stylist_outfit_budget_skips_total"); got != 1 {
		t.Fatalf("expected 1 budget skip, got %v", got)
	}
	if got := gatherValue(t, reg, "totem_catalog_items"); got != 42 {
		t.Fatalf("expected catalog size 42, got %v", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.ObserveSwipe("like")
	m.ObserveOutfit(1, 0)
	m.SetCatalogSize(1)
}
