package service

import (
	"fmt"
	"strings"

	"totem-fashion/internal/catalog"
	"totem-fashion/internal/domain"
	"totem-fashion/internal/stylerules"
)

const (
	fallbackCategoryCount = 3
	candidateQueryLimit   = 5
)

// CatalogReader es la vista de solo lectura del catalogo que usan los servicios.
type CatalogReader interface {
	Query(f catalog.Filter) []domain.Item
	Categories() []string
	GetByID(id string) (domain.Item, error)
}

// OutfitComposer arma un look a partir de una pieza semilla usando las tablas
// de complementos y armonias.
type OutfitComposer struct {
	catalog CatalogReader
	rules   *stylerules.Rules
}

func NewOutfitComposer(cat CatalogReader, rules *stylerules.Rules) *OutfitComposer {
	if rules == nil {
		rules = stylerules.Default()
	}
	return &OutfitComposer{catalog: cat, rules: rules}
}

// Compose selecciona como maximo una pieza por categoria objetivo, en el orden de
// la tabla. Con presupuesto (> 0) un candidato que lo exceda se salta sin buscar
// sustituto: la seleccion es voraz, no optima. La semilla siempre va primero.
func (c *OutfitComposer) Compose(seed domain.Item, budget *float64) domain.Outfit {
	limited := budget != nil && *budget > 0
	colors := c.candidateColors(seed)

	items := []domain.Item{seed}
	total := seed.EffectivePrice()
	var skipped []string

	for _, cat := range c.targetCategories(seed) {
		if cat == "" {
			continue
		}
		candidate, ok := c.pickCandidate(cat, seed, colors)
		if !ok {
			continue
		}
		price := candidate.EffectivePrice()
		if limited && domain.RoundPrice(total+price) > *budget {
			skipped = append(skipped, cat)
			continue
		}
		items = append(items, candidate)
		total += price
	}

	return domain.Outfit{
		Items:             items,
		TotalPrice:        domain.RoundPrice(total),
		Explanation:       fmt.Sprintf("Look created from '%s' (category %s) with matching colors.", seed.Name, seed.Category),
		SkippedCategories: skipped,
	}
}

// targetCategories usa la tabla de complementos; sin entrada, toma las tres
// primeras categorias del catalogo (orden lexicografico) distintas a la semilla.
func (c *OutfitComposer) targetCategories(seed domain.Item) []string {
	if targets := c.rules.ComplementsFor(seed.Category); len(targets) > 0 {
		return targets
	}
	out := make([]string, 0, fallbackCategoryCount)
	for _, cat := range c.catalog.Categories() {
		if cat == "" || cat == seed.Category {
			continue
		}
		out = append(out, cat)
		if len(out) == fallbackCategoryCount {
			break
		}
	}
	return out
}

func (c *OutfitComposer) candidateColors(seed domain.Item) []string {
	if pairs := c.rules.HarmoniesFor(seed.Color); len(pairs) > 0 {
		return pairs
	}
	if seed.Color != "" {
		return []string{seed.Color}
	}
	return nil
}

// pickCandidate recorre la escalera armonia -> mismo color -> sin color y
// devuelve el primer resultado.
func (c *OutfitComposer) pickCandidate(category string, seed domain.Item, colors []string) (domain.Item, bool) {
	ladder := make([]string, 0, 3)
	if len(colors) > 0 {
		ladder = append(ladder, colors[0])
	}
	if seed.Color != "" && (len(ladder) == 0 || !strings.EqualFold(ladder[0], seed.Color)) {
		ladder = append(ladder, seed.Color)
	}
	ladder = append(ladder, "")

	for _, color := range ladder {
		options := c.catalog.Query(catalog.Filter{Category: category, Color: color, Limit: candidateQueryLimit})
		if len(options) > 0 {
			return options[0], true
		}
	}
	return domain.Item{}, false
}
