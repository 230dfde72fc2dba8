package repository

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"totem-fashion/internal/domain"
)

func TestMemorySessionRepository_GetCreatesEmptyProfile(t *testing.T) {
	repo := NewMemorySessionRepository(0, 0)

	profile, err := repo.Get(context.Background(), "nueva")
	if err != nil {
		t.Fatalf("get should never fail, got %v", err)
	}
	if profile.SessionID != "nueva" || profile.CreatedAt.IsZero() {
		t.Fatalf("unexpected profile header: %+v", profile)
	}
	if len(profile.Preferences.Likes) != 0 || len(profile.Preferences.Dislikes) != 0 ||
		len(profile.Traits) != 0 || len(profile.History) != 0 {
		t.Fatalf("expected empty collections, got %+v", profile)
	}

	again, _ := repo.Get(context.Background(), "nueva")
	if !again.CreatedAt.Equal(profile.CreatedAt) {
		t.Fatalf("created_at should be set once")
	}
}

func TestMemorySessionRepository_LikesAndDislikes(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(0, 0)

	_ = repo.RecordLike(ctx, "s1", domain.Item{ID: "a", Color: "bege", Brand: "ignored"})
	_ = repo.RecordDislike(ctx, "s1", domain.Item{ID: "b", Color: "preto"})
	_ = repo.RecordLike(ctx, "s1", domain.Item{ID: "c", Color: "verde"})

	profile, _ := repo.Get(ctx, "s1")
	if len(profile.Preferences.Likes) != 2 || len(profile.Preferences.Dislikes) != 1 {
		t.Fatalf("unexpected preferences: %+v", profile.Preferences)
	}
	if len(profile.History) != 3 {
		t.Fatalf("expected 3 history records, got %d", len(profile.History))
	}
	wantTypes := []string{domain.EventLike, domain.EventDislike, domain.EventLike}
	wantIDs := []string{"a", "b", "c"}
	for i, ev := range profile.History {
		if ev.Type != wantTypes[i] || ev.ItemID != wantIDs[i] || ev.Timestamp.IsZero() {
			t.Fatalf("history[%d] unexpected: %+v", i, ev)
		}
	}
}

func TestMemorySessionRepository_GetReturnsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(0, 0)
	_ = repo.RecordLike(ctx, "s1", domain.Item{ID: "a"})

	profile, _ := repo.Get(ctx, "s1")
	profile.Preferences.Likes[0].ID = "mutated"
	profile.Traits["x"] = 1

	fresh, _ := repo.Get(ctx, "s1")
	if fresh.Preferences.Likes[0].ID != "a" || len(fresh.Traits) != 0 {
		t.Fatalf("store state leaked through Get: %+v", fresh)
	}
}

func TestMemorySessionRepository_Traits(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(0, 0)

	_ = repo.SetTrait(ctx, "s1", domain.TraitPreferredColor, "bege")
	_ = repo.SetTrait(ctx, "s1", domain.TraitPreferredColor, "verde")
	_ = repo.MergeTraits(ctx, "s1", map[string]any{"style": map[string]any{"fit": "slim"}})
	_ = repo.MergeTraits(ctx, "s1", map[string]any{"style": map[string]any{"era": "90s"}})

	profile, _ := repo.Get(ctx, "s1")
	if profile.Traits[domain.TraitPreferredColor] != "verde" {
		t.Fatalf("expected overwrite, got %v", profile.Traits[domain.TraitPreferredColor])
	}
	style := profile.Traits["style"].(map[string]any)
	if style["fit"] != "slim" || style["era"] != "90s" {
		t.Fatalf("expected shallow merge, got %+v", style)
	}
}

func TestMemorySessionRepository_ConcurrentSwipesStayConsistent(t *testing.T) {
	ctx := context.Background()
	repo := NewMemorySessionRepository(0, 0)

	const workers = 16
	const perWorker = 50
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				item := domain.Item{ID: fmt.Sprintf("%d-%d", w, i)}
				if (w+i)%2 == 0 {
					_ = repo.RecordLike(ctx, "shared", item)
				} else {
					_ = repo.RecordDislike(ctx, "shared", item)
				}
				_, _ = repo.Get(ctx, fmt.Sprintf("other-%d", w))
			}
		}(w)
	}
	wg.Wait()

	profile, _ := repo.Get(ctx, "shared")
	total := len(profile.Preferences.Likes) + len(profile.Preferences.Dislikes)
	if total != workers*perWorker {
		t.Fatalf("expected %d swipes, got %d", workers*perWorker, total)
	}
	if len(profile.History) != total {
		t.Fatalf("history %d != likes+dislikes %d", len(profile.History), total)
	}
}

func TestMemorySessionRepository_Eviction(t *testing.T) {
	ctx := context.Background()

	t.Run("capacidad", func(t *testing.T) {
		repo := NewMemorySessionRepository(2, 0)
		_ = repo.RecordLike(ctx, "s1", domain.Item{ID: "a"})
		_ = repo.RecordLike(ctx, "s2", domain.Item{ID: "b"})
		_ = repo.RecordLike(ctx, "s3", domain.Item{ID: "c"})

		if repo.Len() != 2 {
			t.Fatalf("expected 2 live sessions, got %d", repo.Len())
		}
		profile, _ := repo.Get(ctx, "s1")
		if len(profile.History) != 0 {
			t.Fatalf("expected oldest session to be evicted and recreated empty")
		}
	})

	t.Run("ttl", func(t *testing.T) {
		repo := NewMemorySessionRepository(0, 30*time.Millisecond)
		_ = repo.RecordLike(ctx, "s1", domain.Item{ID: "a"})
		time.Sleep(60 * time.Millisecond)

		profile, _ := repo.Get(ctx, "s1")
		if len(profile.History) != 0 {
			t.Fatalf("expected expired session to be recreated empty")
		}
	})
}
