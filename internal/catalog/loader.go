package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"totem-fashion/internal/domain"
)

// Source entrega la lista completa de items del catalogo.
type Source interface {
	ListAll(ctx context.Context) ([]domain.Item, error)
}

// FileSource lee el catalogo desde un archivo JSON (array de items).
type FileSource struct {
	Path string
}

func (s FileSource) ListAll(_ context.Context) ([]domain.Item, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, err
	}
	var items []domain.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", s.Path, err)
	}
	return items, nil
}

// Load construye el indice desde la fuente. Un archivo inexistente produce un
// catalogo vacio; los items sin id se descartan.
func Load(ctx context.Context, src Source, logger *zap.Logger) (*Index, error) {
	items, err := src.ListAll(ctx)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logger.Warn("catalog source not found, starting empty", zap.Error(err))
			return New(nil), nil
		}
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	valid := items[:0]
	for _, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			logger.Warn("skipping catalog item without id", zap.String("name", it.Name))
			continue
		}
		valid = append(valid, it)
	}

	idx := New(valid)
	logger.Info("catalog loaded",
		zap.Int("items", idx.Len()),
		zap.Int("categories", len(idx.categories)),
	)
	return idx, nil
}
