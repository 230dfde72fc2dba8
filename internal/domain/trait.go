package domain

// TraitPreferredColor es el rasgo derivado del color mas gustado.
const TraitPreferredColor = "preferred_color"

// Traits mapea nombre de rasgo a valor. Los valores se sobrescriben, no se acumulan.
type Traits map[string]any

// PreferredColor devuelve el color preferido si existe.
func (t Traits) PreferredColor() (string, bool) {
	v, ok := t[TraitPreferredColor]
	if !ok {
		return "", false
	}
	color, ok := v.(string)
	if !ok || color == "" {
		return "", false
	}
	return color, true
}

// Clone copia el mapa y los submapas de primer nivel.
func (t Traits) Clone() Traits {
	out := make(Traits, len(t))
	for k, v := range t {
		if m, ok := v.(map[string]any); ok {
			out[k] = copyMap(m)
			continue
		}
		out[k] = v
	}
	return out
}

// Merge aplica un patch superficial: si el valor actual y el del patch son mapas
// se combinan clave a clave (un solo nivel); en otro caso se reemplaza.
func (t Traits) Merge(patch map[string]any) {
	for k, v := range patch {
		incoming, incomingIsMap := v.(map[string]any)
		current, currentIsMap := t[k].(map[string]any)
		if incomingIsMap && currentIsMap {
			for ik, iv := range incoming {
				current[ik] = iv
			}
			continue
		}
		if incomingIsMap {
			t[k] = copyMap(incoming)
			continue
		}
		t[k] = v
	}
}

func copyMap(m map[string]any) map[string]any {
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
