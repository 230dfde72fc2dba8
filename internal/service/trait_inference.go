package service

import "totem-fashion/internal/domain"

// InferTraits deriva rasgos a partir de los likes de la sesion. Es pura y
// determinista: el color preferido es la moda de los colores no vacios y, ante
// empate, gana el que aparecio primero en los likes.
func InferTraits(profile domain.SessionProfile) domain.Traits {
	counts := make(map[string]int)
	var order []string
	for _, like := range profile.Preferences.Likes {
		if like.Color == "" {
			continue
		}
		if counts[like.Color] == 0 {
			order = append(order, like.Color)
		}
		counts[like.Color]++
	}
	if len(order) == 0 {
		return domain.Traits{}
	}

	best := order[0]
	for _, color := range order[1:] {
		if counts[color] > counts[best] {
			best = color
		}
	}
	return domain.Traits{domain.TraitPreferredColor: best}
}
