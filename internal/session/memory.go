// ABOUTME: In-memory implementation of the session Store
// ABOUTME: Used by tests and as a zero-dependency store for ephemeral deployments

package session

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// MemoryStore is a Store backed by process memory. Safe for concurrent use.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]*memSession
}

type memSession struct {
	messages   []Message
	lastAgent  specialist.ID
	lastActive time.Time
	createdAt  time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]*memSession)}
}

// Load returns a copy of the session state; mutating the snapshot does not
// affect the store. Unknown ids yield an empty snapshot.
func (m *MemoryStore) Load(ctx context.Context, id string) (*Snapshot, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	snap := &Snapshot{ID: id}
	ms, ok := m.sessions[id]
	if !ok {
		return snap, nil
	}

	snap.Messages = make([]Message, len(ms.messages))
	copy(snap.Messages, ms.messages)
	snap.LastAgent = ms.lastAgent
	snap.LastActive = ms.lastActive
	snap.CreatedAt = ms.createdAt
	return snap, nil
}

// AppendMessage records one turn and bumps the session's activity timestamp.
func (m *MemoryStore) AppendMessage(ctx context.Context, msg *Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms := m.ensureLocked(msg.SessionID, msg.CreatedAt)
	ms.messages = append(ms.messages, *msg)
	ms.lastActive = msg.CreatedAt
	return nil
}

// SetLastAgent records the serving specialist and bumps the activity timestamp.
func (m *MemoryStore) SetLastAgent(ctx context.Context, sessionID string, agent specialist.ID, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms := m.ensureLocked(sessionID, at)
	ms.lastAgent = agent
	ms.lastActive = at
	return nil
}

// Clear removes a session. A no-op for unknown ids.
func (m *MemoryStore) Clear(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

// ListActive returns sessions whose last activity is at or after the cutoff,
// most recent first.
func (m *MemoryStore) ListActive(ctx context.Context, cutoff time.Time) ([]*ActiveSession, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var active []*ActiveSession
	for id, ms := range m.sessions {
		if ms.lastActive.Before(cutoff) {
			continue
		}
		active = append(active, &ActiveSession{
			ID:           id,
			LastAgent:    ms.lastAgent,
			LastActive:   ms.lastActive,
			MessageCount: len(ms.messages),
		})
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].LastActive.After(active[j].LastActive)
	})
	return active, nil
}

// Close is a no-op for the memory store.
func (m *MemoryStore) Close() error {
	return nil
}

// ensureLocked returns the session, creating it if needed. Caller holds mu.
func (m *MemoryStore) ensureLocked(id string, at time.Time) *memSession {
	ms, ok := m.sessions[id]
	if !ok {
		ms = &memSession{createdAt: at}
		m.sessions[id] = ms
	}
	return ms
}

// Ensure MemoryStore implements Store interface
var _ Store = (*MemoryStore)(nil)
