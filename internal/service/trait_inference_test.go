package service

import (
	"testing"
	"time"

	"totem-fashion/internal/domain"
)

func profileWithLikes(colors ...string) domain.SessionProfile {
	p := domain.NewSessionProfile("s1", time.Now())
	for i, c := range colors {
		p.RecordLike(domain.Item{ID: string(rune('a' + i)), Color: c}, time.Now())
	}
	return *p
}

func TestInferTraits(t *testing.T) {
	tests := []struct {
		name   string
		colors []string
		want   string
	}{
		{name: "sin likes", colors: nil, want: ""},
		{name: "likes sin color", colors: []string{"", ""}, want: ""},
		{name: "moda simple", colors: []string{"bege", "verde", "bege"}, want: "bege"},
		{name: "empate ABAB", colors: []string{"A", "B", "A", "B"}, want: "A"},
		{name: "empate gana el primero en aparecer", colors: []string{"B", "A", "A", "B"}, want: "B"},
		{name: "mayoria tardia gana", colors: []string{"B", "A", "A"}, want: "A"},
		{name: "ignora vacios", colors: []string{"", "preto", ""}, want: "preto"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			traits := InferTraits(profileWithLikes(tt.colors...))
			if tt.want == "" {
				if len(traits) != 0 {
					t.Fatalf("expected empty traits, got %+v", traits)
				}
				return
			}
			if traits[domain.TraitPreferredColor] != tt.want {
				t.Fatalf("expected %q, got %+v", tt.want, traits)
			}
		})
	}
}

func TestInferTraitsIdempotent(t *testing.T) {
	p := profileWithLikes("verde", "bege", "verde")
	first := InferTraits(p)
	second := InferTraits(p)
	if first[domain.TraitPreferredColor] != second[domain.TraitPreferredColor] || len(first) != len(second) {
		t.Fatalf("inference not idempotent: %+v vs %+v", first, second)
	}
	if len(p.Traits) != 0 {
		t.Fatalf("inference must not mutate the profile")
	}
}
