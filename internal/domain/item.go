package domain

// Item es un producto del catalogo. Inmutable una vez cargado.
type Item struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Price    float64 `json:"price"`
	Gender   string  `json:"gender"`
	Brand    string  `json:"brand"`
	Image    string  `json:"image,omitempty"`
}

// SlimItem es la proyeccion que se guarda en el historial de preferencias.
type SlimItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Color    string  `json:"color"`
	Price    float64 `json:"price"`
}

// Slim reduce el item a los campos esenciales.
func (i Item) Slim() SlimItem {
	return SlimItem{
		ID:       i.ID,
		Name:     i.Name,
		Category: i.Category,
		Color:    i.Color,
		Price:    i.Price,
	}
}

// EffectivePrice devuelve el precio usado en sumas: negativos cuentan como cero.
func (i Item) EffectivePrice() float64 {
	if i.Price < 0 {
		return 0
	}
	return i.Price
}
