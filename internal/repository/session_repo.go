package repository

import (
	"context"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"totem-fashion/internal/domain"
)

// SessionRepository guarda el perfil de preferencias de cada sesion. Una sesion
// desconocida se crea vacia en el primer acceso.
type SessionRepository interface {
	Get(ctx context.Context, sessionID string) (domain.SessionProfile, error)
	RecordLike(ctx context.Context, sessionID string, item domain.Item) error
	RecordDislike(ctx context.Context, sessionID string, item domain.Item) error
	SetTrait(ctx context.Context, sessionID, key string, value any) error
	MergeTraits(ctx context.Context, sessionID string, patch map[string]any) error
}

type sessionEntry struct {
	mu      sync.Mutex
	profile *domain.SessionProfile
}

// MemorySessionRepository mantiene los perfiles en memoria del proceso, con tope
// de entradas (LRU) y expiracion por inactividad.
type MemorySessionRepository struct {
	mu    sync.Mutex
	cache *expirable.LRU[string, *sessionEntry]
	now   func() time.Time
}

// NewMemorySessionRepository crea el store. maxEntries <= 0 no limita la cantidad
// de sesiones y ttl <= 0 desactiva la expiracion.
func NewMemorySessionRepository(maxEntries int, ttl time.Duration) *MemorySessionRepository {
	if maxEntries < 0 {
		maxEntries = 0
	}
	return &MemorySessionRepository{
		cache: expirable.NewLRU[string, *sessionEntry](maxEntries, nil, ttl),
		now:   func() time.Time { return time.Now().UTC() },
	}
}

// entry obtiene o crea la entrada de la sesion. El lock global solo cubre el
// lookup; las mutaciones usan el lock de cada sesion.
func (r *MemorySessionRepository) entry(sessionID string) *sessionEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	if e, ok := r.cache.Get(sessionID); ok {
		return e
	}
	e := &sessionEntry{profile: domain.NewSessionProfile(sessionID, r.now())}
	r.cache.Add(sessionID, e)
	return e
}

// touch renueva la expiracion tras una escritura.
func (r *MemorySessionRepository) touch(sessionID string, e *sessionEntry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cur, ok := r.cache.Peek(sessionID); ok && cur == e {
		r.cache.Add(sessionID, e)
	}
}

func (r *MemorySessionRepository) mutate(sessionID string, fn func(p *domain.SessionProfile)) {
	e := r.entry(sessionID)
	e.mu.Lock()
	fn(e.profile)
	e.mu.Unlock()
	r.touch(sessionID, e)
}

func (r *MemorySessionRepository) Get(_ context.Context, sessionID string) (domain.SessionProfile, error) {
	e := r.entry(sessionID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.profile.Clone(), nil
}

func (r *MemorySessionRepository) RecordLike(_ context.Context, sessionID string, item domain.Item) error {
	now := r.now()
	r.mutate(sessionID, func(p *domain.SessionProfile) {
		p.RecordLike(item, now)
	})
	return nil
}

func (r *MemorySessionRepository) RecordDislike(_ context.Context, sessionID string, item domain.Item) error {
	now := r.now()
	r.mutate(sessionID, func(p *domain.SessionProfile) {
		p.RecordDislike(item, now)
	})
	return nil
}

func (r *MemorySessionRepository) SetTrait(_ context.Context, sessionID, key string, value any) error {
	r.mutate(sessionID, func(p *domain.SessionProfile) {
		p.Traits[key] = value
	})
	return nil
}

func (r *MemorySessionRepository) MergeTraits(_ context.Context, sessionID string, patch map[string]any) error {
	r.mutate(sessionID, func(p *domain.SessionProfile) {
		p.Traits.Merge(patch)
	})
	return nil
}

// Len devuelve la cantidad de sesiones vivas.
func (r *MemorySessionRepository) Len() int {
	return r.cache.Len()
}
