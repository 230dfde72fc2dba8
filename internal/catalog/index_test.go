package catalog

import (
	"errors"
	"testing"

	"totem-fashion/internal/domain"
)

func sampleItems() []domain.Item {
	return []domain.Item{
		{ID: "1", Name: "Casaco Bomber Verde", Category: "Casaco Bomber", Color: "verde", Price: 49.99, Gender: "homem", Brand: "Norte"},
		{ID: "2", Name: "Camisola Malha", Category: "Camisola de Malha", Color: "cinzento escuro", Price: 29.99, Gender: "mulher", Brand: "Lã"},
		{ID: "3", Name: "Skinny Preta", Category: "Calças de Ganga Skinny", Color: "preto", Price: 39.90, Gender: "mulher", Brand: "Denim Co"},
		{ID: "4", Name: "Camisola Cinzenta", Category: "Camisola de Malha", Color: "cinzento", Price: 19.50, Gender: "homem", Brand: "Norte"},
		{ID: "1", Name: "duplicado", Category: "Outro"},
	}
}

func TestIndexGetByID(t *testing.T) {
	idx := New(sampleItems())

	it, err := idx.GetByID("3")
	if err != nil || it.Name != "Skinny Preta" {
		t.Fatalf("expected item 3, got %+v,%v", it, err)
	}
	if _, err := idx.GetByID("missing"); !errors.Is(err, domain.ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if it, _ := idx.GetByID("1"); it.Name != "Casaco Bomber Verde" {
		t.Fatalf("expected first occurrence to win, got %q", it.Name)
	}
	if idx.Len() != 4 {
		t.Fatalf("expected 4 unique items, got %d", idx.Len())
	}
}

func TestIndexCategoriesSorted(t *testing.T) {
	idx := New(sampleItems())
	got := idx.Categories()
	want := []string{"Calças de Ganga Skinny", "Camisola de Malha", "Casaco Bomber"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	got[0] = "mutated"
	if idx.Categories()[0] == "mutated" {
		t.Fatalf("categories slice leaked")
	}
}

func TestIndexQuery(t *testing.T) {
	idx := New(sampleItems())
	price := 30.0

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "sin filtros", filter: Filter{}, want: []string{"1", "2", "3", "4"}},
		{name: "texto en marca", filter: Filter{Query: "norte"}, want: []string{"1", "4"}},
		{name: "categoria exacta sin mayusculas", filter: Filter{Category: "camisola de malha"}, want: []string{"2", "4"}},
		{name: "color compuesto", filter: Filter{Color: "cinzento"}, want: []string{"2", "4"}},
		{name: "genero", filter: Filter{Gender: "MULHER"}, want: []string{"2", "3"}},
		{name: "precio maximo", filter: Filter{PriceMax: &price}, want: []string{"2", "4"}},
		{name: "limite", filter: Filter{Limit: 2}, want: []string{"1", "2"}},
		{name: "combinado", filter: Filter{Category: "Camisola de Malha", Color: "cinzento", Gender: "homem"}, want: []string{"4"}},
		{name: "sin resultados", filter: Filter{Color: "rosa"}, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := idx.Query(tt.filter)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %+v", tt.want, got)
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
				}
			}
		})
	}
}

func TestIndexQueryDefaultLimit(t *testing.T) {
	var items []domain.Item
	for i := 0; i < DefaultLimit+5; i++ {
		items = append(items, domain.Item{ID: string(rune('a' + i)), Category: "x"})
	}
	if got := New(items).Query(Filter{}); len(got) != DefaultLimit {
		t.Fatalf("expected %d results, got %d", DefaultLimit, len(got))
	}
}

func TestIndexCategoriesSkipEmpty(t *testing.T) {
	idx := New([]domain.Item{
		{ID: "a", Category: "Top"},
		{ID: "b"},
		{ID: "c", Category: "Pants"},
	})
	got := idx.Categories()
	if len(got) != 2 || got[0] != "Pants" || got[1] != "Top" {
		t.Fatalf("expected [Pants Top], got %v", got)
	}
	if _, err := idx.GetByID("b"); err != nil {
		t.Fatalf("uncategorized item must stay addressable: %v", err)
	}
}
