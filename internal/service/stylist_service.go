package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"totem-fashion/internal/catalog"
	"totem-fashion/internal/domain"
	"totem-fashion/internal/metrics"
	"totem-fashion/internal/repository"
)

const (
	defaultDiscoverLimit  = 30
	defaultRecommendLimit = 12
)

// StylistService coordina sesiones, inferencia de rasgos y catalogo para el totem.
type StylistService struct {
	logger         *zap.Logger
	sessions       repository.SessionRepository
	catalog        CatalogReader
	composer       *OutfitComposer
	metrics        *metrics.Metrics
	discoverLimit  int
	recommendLimit int
}

// StylistOptions ajusta los topes de resultados. Ceros usan los valores por defecto.
type StylistOptions struct {
	DiscoverLimit  int
	RecommendLimit int
}

func NewStylistService(
	logger *zap.Logger,
	sessions repository.SessionRepository,
	cat CatalogReader,
	composer *OutfitComposer,
	m *metrics.Metrics,
	opts StylistOptions,
) *StylistService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.DiscoverLimit <= 0 {
		opts.DiscoverLimit = defaultDiscoverLimit
	}
	if opts.RecommendLimit <= 0 {
		opts.RecommendLimit = defaultRecommendLimit
	}
	return &StylistService{
		logger:         logger,
		sessions:       sessions,
		catalog:        cat,
		composer:       composer,
		metrics:        m,
		discoverLimit:  opts.DiscoverLimit,
		recommendLimit: opts.RecommendLimit,
	}
}

// CreateSession emite un id nuevo y materializa su perfil vacio.
func (s *StylistService) CreateSession(ctx context.Context) (domain.SessionProfile, error) {
	return s.sessions.Get(ctx, uuid.NewString())
}

// Discover devuelve el mazo inicial de swipes, opcionalmente por categoria.
func (s *StylistService) Discover(_ context.Context, _ string, category string) []domain.Item {
	return s.catalog.Query(catalog.Filter{Category: category, Limit: s.discoverLimit})
}

// Search expone el filtro del catalogo.
func (s *StylistService) Search(f catalog.Filter) []domain.Item {
	return s.catalog.Query(f)
}

// Categories lista las categorias del catalogo.
func (s *StylistService) Categories() []string {
	return s.catalog.Categories()
}

// Like registra un like y devuelve nuevas sugerencias.
func (s *StylistService) Like(ctx context.Context, sessionID string, item domain.Item) (domain.Recommendation, error) {
	return s.swipe(ctx, sessionID, item, domain.EventLike)
}

// Dislike registra un dislike y devuelve nuevas sugerencias.
func (s *StylistService) Dislike(ctx context.Context, sessionID string, item domain.Item) (domain.Recommendation, error) {
	return s.swipe(ctx, sessionID, item, domain.EventDislike)
}

func (s *StylistService) swipe(ctx context.Context, sessionID string, item domain.Item, kind string) (domain.Recommendation, error) {
	item, err := s.resolveItem(item)
	if err != nil {
		return domain.Recommendation{}, err
	}

	if kind == domain.EventLike {
		err = s.sessions.RecordLike(ctx, sessionID, item)
	} else {
		err = s.sessions.RecordDislike(ctx, sessionID, item)
	}
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("record %s: %w", kind, err)
	}
	s.metrics.ObserveSwipe(kind)

	profile, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("get session: %w", err)
	}
	traits := InferTraits(profile)
	if len(traits) > 0 {
		if err := s.sessions.MergeTraits(ctx, sessionID, traits); err != nil {
			// Se recalculan en el proximo swipe.
			s.logger.Warn("persist inferred traits failed", zap.String("session_id", sessionID), zap.Error(err))
		}
	}
	return s.recommendFromTraits(traits), nil
}

// Recommend calcula sugerencias a partir del perfil actual de la sesion.
func (s *StylistService) Recommend(ctx context.Context, sessionID string) (domain.Recommendation, error) {
	profile, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return domain.Recommendation{}, fmt.Errorf("get session: %w", err)
	}
	return s.recommendFromTraits(InferTraits(profile)), nil
}

func (s *StylistService) recommendFromTraits(traits domain.Traits) domain.Recommendation {
	if color, ok := traits.PreferredColor(); ok {
		return domain.Recommendation{
			Suggestions: s.catalog.Query(catalog.Filter{Color: color, Limit: s.recommendLimit}),
			Hint:        fmt.Sprintf("Based on your preference for %s", color),
		}
	}
	return domain.Recommendation{
		Suggestions: s.catalog.Query(catalog.Filter{Limit: s.recommendLimit}),
		Hint:        "Based on your recent interactions",
	}
}

// resolveItem exige identidad y, si el id existe en el catalogo, usa el registro
// completo en lugar del payload parcial del cliente.
func (s *StylistService) resolveItem(item domain.Item) (domain.Item, error) {
	item.ID = strings.TrimSpace(item.ID)
	if item.ID == "" {
		return domain.Item{}, fmt.Errorf("%w: missing id", domain.ErrInvalidItem)
	}
	if full, err := s.catalog.GetByID(item.ID); err == nil {
		return full, nil
	}
	return item, nil
}

// ComposeOutfit arma un look a partir del id de la semilla.
func (s *StylistService) ComposeOutfit(_ context.Context, sessionID, seedID string, budget *float64) (domain.Outfit, error) {
	seed, err := s.catalog.GetByID(seedID)
	if err != nil {
		return domain.Outfit{}, fmt.Errorf("seed %q: %w", seedID, err)
	}
	outfit := s.composer.Compose(seed, budget)
	s.metrics.ObserveOutfit(len(outfit.Items), len(outfit.SkippedCategories))
	s.logger.Debug("outfit composed",
		zap.String("session_id", sessionID),
		zap.String("seed_id", seedID),
		zap.Int("items", len(outfit.Items)),
		zap.Float64("total_price", outfit.TotalPrice),
	)
	return outfit, nil
}

// GetProfile devuelve el perfil de la sesion, creandolo si no existe.
func (s *StylistService) GetProfile(ctx context.Context, sessionID string) (domain.SessionProfile, error) {
	return s.sessions.Get(ctx, sessionID)
}

// MergeTraits aplica un patch superficial sobre los rasgos y devuelve el perfil.
func (s *StylistService) MergeTraits(ctx context.Context, sessionID string, patch map[string]any) (domain.SessionProfile, error) {
	if err := s.sessions.MergeTraits(ctx, sessionID, patch); err != nil {
		return domain.SessionProfile{}, fmt.Errorf("merge traits: %w", err)
	}
	return s.sessions.Get(ctx, sessionID)
}
