// ABOUTME: Session types and the Store interface for conversation persistence
// ABOUTME: A session is a rolling transcript plus the last specialist that served it

package session

import (
	"context"
	"errors"
	"time"

	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Role constants for message authorship.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is a single turn within a session.
type Message struct {
	ID        string
	SessionID string
	Role      string // "user" or "assistant"
	Content   string
	Agent     specialist.ID // specialist that produced an assistant turn, empty for user turns
	CreatedAt time.Time
}

// Snapshot is the point-in-time state of one session: its transcript in
// chronological order plus the continuity fields.
type Snapshot struct {
	ID         string
	Messages   []Message
	LastAgent  specialist.ID
	LastActive time.Time
	CreatedAt  time.Time
}

// Empty reports whether the snapshot carries no recorded activity, which is
// what Load returns for an id that has never been written.
func (s *Snapshot) Empty() bool {
	return len(s.Messages) == 0 && s.LastActive.IsZero()
}

// ActiveSession is the lightweight listing row for sessions with recent activity.
type ActiveSession struct {
	ID           string
	LastAgent    specialist.ID
	LastActive   time.Time
	MessageCount int
}

// Store defines the interface for session persistence. Loading an id that was
// never written returns an empty snapshot, not an error; unknown-id reads are
// the normal first contact with a new session.
type Store interface {
	Load(ctx context.Context, id string) (*Snapshot, error)
	AppendMessage(ctx context.Context, msg *Message) error
	SetLastAgent(ctx context.Context, sessionID string, agent specialist.ID, at time.Time) error
	Clear(ctx context.Context, sessionID string) error
	ListActive(ctx context.Context, cutoff time.Time) ([]*ActiveSession, error)
	Close() error
}
