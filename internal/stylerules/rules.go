package stylerules

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"totem-fashion/internal/domain"
)

// Rules agrupa las tablas estaticas de combinacion. El orden de cada lista es
// significativo: el compositor la recorre tal cual.
type Rules struct {
	Complements map[string][]string `yaml:"complements"`
	Harmonies   map[string][]string `yaml:"harmonies"`
}

// Default devuelve las tablas curadas que vienen con el servicio.
func Default() *Rules {
	return &Rules{
		Complements: map[string][]string{
			"Casaco Bomber":         {"Camisola de Malha", "Calças de Ganga Skinny", "Calças de Ganga Wide Leg"},
			"Camisola de Malha":     {"Calças de Ganga Skinny", "Calças Marine", "Casaco Bomber"},
			"Pijama Polar de Natal": {"Pijama Polar de Natal"},
		},
		Harmonies: map[string][]string{
			"bege":            {"castanho", "branco", "bege claro"},
			"cinzento escuro": {"preto", "branco", "rosa"},
			"verde":           {"preto", "bege", "branco"},
			"multicor":        {},
			"branco":          {"preto", "bege", "azul escuro"},
		},
	}
}

// Load lee las tablas desde YAML. Una ruta vacia devuelve Default.
func Load(path string) (*Rules, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read style rules: %w", err)
	}
	return Parse(data)
}

// Parse decodifica y normaliza un documento YAML de reglas.
func Parse(data []byte) (*Rules, error) {
	var raw Rules
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidRules, err)
	}
	if len(raw.Complements) == 0 && len(raw.Harmonies) == 0 {
		return nil, fmt.Errorf("%w: no complements or harmonies defined", domain.ErrInvalidRules)
	}

	rules := &Rules{
		Complements: make(map[string][]string, len(raw.Complements)),
		Harmonies:   make(map[string][]string, len(raw.Harmonies)),
	}
	for cat, targets := range raw.Complements {
		if strings.TrimSpace(cat) == "" {
			return nil, fmt.Errorf("%w: empty category key", domain.ErrInvalidRules)
		}
		rules.Complements[cat] = append([]string{}, targets...)
	}
	for color, pairs := range raw.Harmonies {
		key := strings.ToLower(strings.TrimSpace(color))
		if key == "" {
			return nil, fmt.Errorf("%w: empty color key", domain.ErrInvalidRules)
		}
		rules.Harmonies[key] = append([]string{}, pairs...)
	}
	return rules, nil
}

// ComplementsFor devuelve las categorias complementarias en orden de tabla.
func (r *Rules) ComplementsFor(category string) []string {
	return r.Complements[category]
}

// HarmoniesFor devuelve los colores que combinan con color (sin distinguir mayusculas).
func (r *Rules) HarmoniesFor(color string) []string {
	return r.Harmonies[strings.ToLower(color)]
}
