package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"totem-fashion/internal/catalog"
	"totem-fashion/internal/domain"
)

var _ catalog.Source = (*PgItemRepository)(nil)

// PgItemRepository lee el catalogo de la tabla items.
type PgItemRepository struct {
	pool *pgxpool.Pool
}

func NewPgItemRepository(pool *pgxpool.Pool) *PgItemRepository {
	return &PgItemRepository{pool: pool}
}

// ListAll devuelve todo el catalogo ordenado por position (orden de carga) y
// luego por id. Las columnas nulas llegan como valor cero.
func (r *PgItemRepository) ListAll(ctx context.Context) ([]domain.Item, error) {
	const query = `
		SELECT id,
		       COALESCE(name, ''),
		       COALESCE(category, ''),
		       COALESCE(color, ''),
		       COALESCE(price, 0)::float8,
		       COALESCE(gender, ''),
		       COALESCE(brand, ''),
		       COALESCE(image, '')
		FROM items
		ORDER BY position, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		var it domain.Item
		if err := rows.Scan(
			&it.ID,
			&it.Name,
			&it.Category,
			&it.Color,
			&it.Price,
			&it.Gender,
			&it.Brand,
			&it.Image,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
