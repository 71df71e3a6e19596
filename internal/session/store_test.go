// ABOUTME: Shared conformance tests run against both Store implementations
// ABOUTME: Validates load/append/clear semantics and the active-session listing

package session

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// storeFactories builds a fresh store per test for each implementation.
func storeFactories(t *testing.T) map[string]func(t *testing.T) Store {
	return map[string]func(t *testing.T) Store{
		"memory": func(t *testing.T) Store {
			return NewMemoryStore()
		},
		"sqlite": func(t *testing.T) Store {
			s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "sessions.db"))
			require.NoError(t, err)
			t.Cleanup(func() { s.Close() })
			return s
		},
	}
}

func newMsg(sessionID, role, content string, at time.Time) *Message {
	return &Message{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Role:      role,
		Content:   content,
		CreatedAt: at,
	}
}

func TestStore_LoadUnknownIsEmpty(t *testing.T) {
	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			snap, err := s.Load(context.Background(), "never-seen")
			require.NoError(t, err)
			assert.Equal(t, "never-seen", snap.ID)
			assert.True(t, snap.Empty())
		})
	}
}

func TestStore_AppendAndLoad(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()

			require.NoError(t, s.AppendMessage(ctx, newMsg("s1", RoleUser, "weather in karachi", base)))
			require.NoError(t, s.AppendMessage(ctx, newMsg("s1", RoleAssistant, "Sunny, 34C", base.Add(time.Second))))

			snap, err := s.Load(ctx, "s1")
			require.NoError(t, err)
			require.Len(t, snap.Messages, 2)
			assert.Equal(t, RoleUser, snap.Messages[0].Role)
			assert.Equal(t, "weather in karachi", snap.Messages[0].Content)
			assert.Equal(t, RoleAssistant, snap.Messages[1].Role)
			assert.True(t, snap.LastActive.Equal(base.Add(time.Second)))
			assert.False(t, snap.Empty())
		})
	}
}

func TestStore_MessagesChronological(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()

			for i := 0; i < 5; i++ {
				msg := newMsg("s1", RoleUser, fmt.Sprintf("turn %d", i), base.Add(time.Duration(i)*time.Second))
				require.NoError(t, s.AppendMessage(ctx, msg))
			}

			snap, err := s.Load(ctx, "s1")
			require.NoError(t, err)
			require.Len(t, snap.Messages, 5)
			for i, m := range snap.Messages {
				assert.Equal(t, fmt.Sprintf("turn %d", i), m.Content)
			}
		})
	}
}

func TestStore_SetLastAgent(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()

			// Works on first contact, before any message exists.
			require.NoError(t, s.SetLastAgent(ctx, "s1", specialist.Weather, base))

			snap, err := s.Load(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, specialist.Weather, snap.LastAgent)
			assert.True(t, snap.LastActive.Equal(base))

			require.NoError(t, s.SetLastAgent(ctx, "s1", specialist.Market, base.Add(time.Minute)))
			snap, err = s.Load(ctx, "s1")
			require.NoError(t, err)
			assert.Equal(t, specialist.Market, snap.LastAgent)
			assert.True(t, snap.LastActive.Equal(base.Add(time.Minute)))
		})
	}
}

func TestStore_ClearIsDurableAndIdempotent(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()

			require.NoError(t, s.AppendMessage(ctx, newMsg("s1", RoleUser, "hello", base)))
			require.NoError(t, s.SetLastAgent(ctx, "s1", specialist.Greeting, base))

			require.NoError(t, s.Clear(ctx, "s1"))

			snap, err := s.Load(ctx, "s1")
			require.NoError(t, err)
			assert.True(t, snap.Empty(), "cleared session reads back empty")

			// Clearing again, or clearing the unknown, is a no-op.
			require.NoError(t, s.Clear(ctx, "s1"))
			require.NoError(t, s.Clear(ctx, "never-seen"))
		})
	}
}

func TestStore_ListActive(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	cutoff := base.Add(-15 * time.Minute)

	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()

			require.NoError(t, s.AppendMessage(ctx, newMsg("warm-1", RoleUser, "q", base.Add(-time.Minute))))
			require.NoError(t, s.AppendMessage(ctx, newMsg("warm-2", RoleUser, "q", base.Add(-10*time.Minute))))
			require.NoError(t, s.AppendMessage(ctx, newMsg("stale", RoleUser, "q", base.Add(-time.Hour))))
			require.NoError(t, s.SetLastAgent(ctx, "warm-1", specialist.Pest, base.Add(-time.Minute)))

			active, err := s.ListActive(ctx, cutoff)
			require.NoError(t, err)
			require.Len(t, active, 2)
			assert.Equal(t, "warm-1", active[0].ID, "most recent first")
			assert.Equal(t, specialist.Pest, active[0].LastAgent)
			assert.Equal(t, 1, active[0].MessageCount)
			assert.Equal(t, "warm-2", active[1].ID)
		})
	}
}

func TestStore_SessionsIsolated(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			s := factory(t)
			ctx := context.Background()

			require.NoError(t, s.AppendMessage(ctx, newMsg("a", RoleUser, "for a", base)))
			require.NoError(t, s.AppendMessage(ctx, newMsg("b", RoleUser, "for b", base)))
			require.NoError(t, s.Clear(ctx, "a"))

			snap, err := s.Load(ctx, "b")
			require.NoError(t, err)
			require.Len(t, snap.Messages, 1)
			assert.Equal(t, "for b", snap.Messages[0].Content)
		})
	}
}

func TestMemoryStore_SnapshotIsCopy(t *testing.T) {
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.AppendMessage(ctx, newMsg("s1", RoleUser, "original", base)))

	snap, err := s.Load(ctx, "s1")
	require.NoError(t, err)
	snap.Messages[0].Content = "mutated"

	again, err := s.Load(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, "original", again.Messages[0].Content)
}

func TestMemoryStore_ConcurrentAccess(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := fmt.Sprintf("s%d", n%4)
			for j := 0; j < 50; j++ {
				_ = s.AppendMessage(ctx, newMsg(id, RoleUser, "q", base))
				_, _ = s.Load(ctx, id)
				_ = s.SetLastAgent(ctx, id, specialist.General, base)
			}
		}(i)
	}
	wg.Wait()

	active, err := s.ListActive(ctx, base.Add(-time.Minute))
	require.NoError(t, err)
	assert.Len(t, active, 4)
}
