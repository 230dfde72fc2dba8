package catalog

import (
	"sort"
	"strings"

	"totem-fashion/internal/domain"
)

// DefaultLimit es el tope de resultados cuando el filtro no indica uno.
const DefaultLimit = 20

// Filter describe los predicados de busqueda. Los campos vacios no filtran.
type Filter struct {
	Query    string
	Category string
	Color    string
	Gender   string
	PriceMax *float64
	Limit    int
}

// Index es el catalogo inmutable en memoria, indexado por id.
type Index struct {
	items      []domain.Item
	byID       map[string]int
	categories []string
}

// New construye el indice. Ante ids repetidos se conserva la primera aparicion;
// los items sin categoria no aportan entrada a Categories.
func New(items []domain.Item) *Index {
	idx := &Index{
		items: make([]domain.Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	seen := make(map[string]struct{})
	for _, it := range items {
		if _, dup := idx.byID[it.ID]; dup {
			continue
		}
		idx.byID[it.ID] = len(idx.items)
		idx.items = append(idx.items, it)
		if it.Category == "" {
			continue
		}
		if _, ok := seen[it.Category]; !ok {
			seen[it.Category] = struct{}{}
			idx.categories = append(idx.categories, it.Category)
		}
	}
	sort.Strings(idx.categories)
	return idx
}

// Len devuelve la cantidad de items del catalogo.
func (x *Index) Len() int {
	return len(x.items)
}

// GetByID busca un item por identidad en O(1).
func (x *Index) GetByID(id string) (domain.Item, error) {
	pos, ok := x.byID[id]
	if !ok {
		return domain.Item{}, domain.ErrItemNotFound
	}
	return x.items[pos], nil
}

// Categories devuelve las categorias distintas ordenadas lexicograficamente.
func (x *Index) Categories() []string {
	return append([]string(nil), x.categories...)
}

// Query filtra el catalogo preservando el orden de carga.
func (x *Index) Query(f Filter) []domain.Item {
	limit := f.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}
	q := strings.ToLower(f.Query)
	color := strings.ToLower(f.Color)

	out := make([]domain.Item, 0, min(limit, len(x.items)))
	for _, it := range x.items {
		if len(out) == limit {
			break
		}
		if q != "" && !matchesText(it, q) {
			continue
		}
		if f.Category != "" && !strings.EqualFold(it.Category, f.Category) {
			continue
		}
		// Substring para admitir colores compuestos ("cinzento escuro" contiene "cinzento").
		if color != "" && !strings.Contains(strings.ToLower(it.Color), color) {
			continue
		}
		if f.Gender != "" && !strings.EqualFold(it.Gender, f.Gender) {
			continue
		}
		if f.PriceMax != nil && it.Price > *f.PriceMax {
			continue
		}
		out = append(out, it)
	}
	return out
}

func matchesText(it domain.Item, q string) bool {
	return strings.Contains(strings.ToLower(it.Name), q) ||
		strings.Contains(strings.ToLower(it.Category), q) ||
		strings.Contains(strings.ToLower(it.Brand), q)
}
