package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"totem-fashion/internal/domain"
)

const (
	defaultRedisSessionPrefix = "totem:session:"
	defaultRedisTimeout       = 500 * time.Millisecond
	maxMergeAttempts          = 3
)

// RedisSessionRepository comparte los perfiles entre instancias del servicio.
// Cada sesion usa cinco claves: meta (hash), likes, dislikes e history (listas)
// y traits (hash de valores JSON). Las escrituras van en MULTI/EXEC.
type RedisSessionRepository struct {
	client  *redis.Client
	prefix  string
	ttl     time.Duration
	timeout time.Duration
	now     func() time.Time
}

func NewRedisSessionRepository(client *redis.Client, ttl time.Duration) *RedisSessionRepository {
	if client == nil {
		return nil
	}
	return &RedisSessionRepository{
		client:  client,
		prefix:  defaultRedisSessionPrefix,
		ttl:     ttl,
		timeout: defaultRedisTimeout,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

type sessionKeys struct {
	meta     string
	likes    string
	dislikes string
	history  string
	traits   string
}

func redisSessionKeys(prefix, sessionID string) sessionKeys {
	base := prefix + strings.TrimSpace(sessionID)
	return sessionKeys{
		meta:     base + ":meta",
		likes:    base + ":likes",
		dislikes: base + ":dislikes",
		history:  base + ":history",
		traits:   base + ":traits",
	}
}

func (k sessionKeys) all() []string {
	return []string{k.meta, k.likes, k.dislikes, k.history, k.traits}
}

// prepare crea la sesion si no existe y renueva el TTL de todas sus claves.
func (r *RedisSessionRepository) prepare(ctx context.Context, pipe redis.Pipeliner, keys sessionKeys) {
	pipe.HSetNX(ctx, keys.meta, "created_at", r.now().Format(time.RFC3339Nano))
	if r.ttl > 0 {
		for _, k := range keys.all() {
			pipe.Expire(ctx, k, r.ttl)
		}
	}
}

func (r *RedisSessionRepository) Get(ctx context.Context, sessionID string) (domain.SessionProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	keys := redisSessionKeys(r.prefix, sessionID)
	var (
		created  *redis.StringCmd
		likes    *redis.StringSliceCmd
		dislikes *redis.StringSliceCmd
		history  *redis.StringSliceCmd
		traits   *redis.MapStringStringCmd
	)
	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		r.prepare(ctx, pipe, keys)
		created = pipe.HGet(ctx, keys.meta, "created_at")
		likes = pipe.LRange(ctx, keys.likes, 0, -1)
		dislikes = pipe.LRange(ctx, keys.dislikes, 0, -1)
		history = pipe.LRange(ctx, keys.history, 0, -1)
		traits = pipe.HGetAll(ctx, keys.traits)
		return nil
	})
	if err != nil {
		return domain.SessionProfile{}, fmt.Errorf("redis get session: %w", err)
	}

	createdAt, err := time.Parse(time.RFC3339Nano, created.Val())
	if err != nil {
		return domain.SessionProfile{}, fmt.Errorf("decode created_at: %w", err)
	}
	profile := domain.NewSessionProfile(sessionID, createdAt)
	if profile.Preferences.Likes, err = decodeList[domain.SlimItem](likes.Val()); err != nil {
		return domain.SessionProfile{}, fmt.Errorf("decode likes: %w", err)
	}
	if profile.Preferences.Dislikes, err = decodeList[domain.SlimItem](dislikes.Val()); err != nil {
		return domain.SessionProfile{}, fmt.Errorf("decode dislikes: %w", err)
	}
	if profile.History, err = decodeList[domain.HistoryEvent](history.Val()); err != nil {
		return domain.SessionProfile{}, fmt.Errorf("decode history: %w", err)
	}
	if profile.Traits, err = decodeTraits(traits.Val()); err != nil {
		return domain.SessionProfile{}, fmt.Errorf("decode traits: %w", err)
	}
	return *profile, nil
}

func (r *RedisSessionRepository) RecordLike(ctx context.Context, sessionID string, item domain.Item) error {
	keys := redisSessionKeys(r.prefix, sessionID)
	return r.record(ctx, keys, keys.likes, domain.EventLike, item)
}

func (r *RedisSessionRepository) RecordDislike(ctx context.Context, sessionID string, item domain.Item) error {
	keys := redisSessionKeys(r.prefix, sessionID)
	return r.record(ctx, keys, keys.dislikes, domain.EventDislike, item)
}

func (r *RedisSessionRepository) record(ctx context.Context, keys sessionKeys, listKey, eventType string, item domain.Item) error {
	slim, err := json.Marshal(item.Slim())
	if err != nil {
		return err
	}
	event, err := json.Marshal(domain.HistoryEvent{Type: eventType, ItemID: item.ID, Timestamp: r.now()})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, listKey, slim)
		pipe.RPush(ctx, keys.history, event)
		r.prepare(ctx, pipe, keys)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis record %s: %w", eventType, err)
	}
	return nil
}

func (r *RedisSessionRepository) SetTrait(ctx context.Context, sessionID, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	keys := redisSessionKeys(r.prefix, sessionID)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, keys.traits, key, raw)
		r.prepare(ctx, pipe, keys)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis set trait: %w", err)
	}
	return nil
}

// MergeTraits lee los traits bajo WATCH, aplica el merge superficial y escribe
// solo las claves del patch. Reintenta si otra escritura gana la carrera.
func (r *RedisSessionRepository) MergeTraits(ctx context.Context, sessionID string, patch map[string]any) error {
	keys := redisSessionKeys(r.prefix, sessionID)

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	txf := func(tx *redis.Tx) error {
		raw, err := tx.HGetAll(ctx, keys.traits).Result()
		if err != nil {
			return err
		}
		current, err := decodeTraits(raw)
		if err != nil {
			return err
		}
		current.Merge(patch)

		fields := make(map[string]any, len(patch))
		for k := range patch {
			encoded, err := json.Marshal(current[k])
			if err != nil {
				return err
			}
			fields[k] = encoded
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(fields) > 0 {
				pipe.HSet(ctx, keys.traits, fields)
			}
			r.prepare(ctx, pipe, keys)
			return nil
		})
		return err
	}

	var err error
	for i := 0; i < maxMergeAttempts; i++ {
		err = r.client.Watch(ctx, txf, keys.traits)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("redis merge traits: %w", err)
	}
	return nil
}

func decodeList[T any](raw []string) ([]T, error) {
	out := make([]T, 0, len(raw))
	for _, s := range raw {
		var v T
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func decodeTraits(raw map[string]string) (domain.Traits, error) {
	traits := make(domain.Traits, len(raw))
	for k, s := range raw {
		var v any
		if err := json.Unmarshal([]byte(s), &v); err != nil {
			return nil, err
		}
		traits[k] = v
	}
	return traits, nil
}
