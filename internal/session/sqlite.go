// ABOUTME: SQLite implementation of the session Store using modernc.org/sqlite
// ABOUTME: Persists sessions and messages with automatic schema creation

package session

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Tahasaif3/FarmSmart-AI/internal/specialist"
)

// SQLiteStore implements the Store interface using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewSQLiteStore creates a new SQLite store at the given path.
// The schema is automatically created if it doesn't exist.
// Parent directories are created if needed.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	logger := slog.Default().With("component", "session-store")

	// Ensure parent directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable WAL mode for better concurrent performance
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys=ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &SQLiteStore{
		db:     db,
		logger: logger,
	}

	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	logger.Info("session store initialized", "path", path)
	return s, nil
}

// createSchema creates the database tables if they don't exist
func (s *SQLiteStore) createSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS sessions (
			id          TEXT PRIMARY KEY,
			last_agent  TEXT NOT NULL DEFAULT '',
			last_active TEXT NOT NULL,
			created_at  TEXT NOT NULL
		);

		CREATE INDEX IF NOT EXISTS idx_sessions_last_active
			ON sessions(last_active);

		CREATE TABLE IF NOT EXISTS messages (
			id         TEXT PRIMARY KEY,
			session_id TEXT NOT NULL,
			role       TEXT NOT NULL,
			content    TEXT NOT NULL,
			agent      TEXT,
			created_at TEXT NOT NULL,
			FOREIGN KEY (session_id) REFERENCES sessions(id) ON DELETE CASCADE,
			CHECK (role IN ('user', 'assistant'))
		);

		CREATE INDEX IF NOT EXISTS idx_messages_session_created
			ON messages(session_id, created_at);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection
func (s *SQLiteStore) Close() error {
	s.logger.Debug("closing session store")
	return s.db.Close()
}

// Load retrieves a session snapshot with its full message history in
// chronological order. An id that was never written yields an empty snapshot.
func (s *SQLiteStore) Load(ctx context.Context, id string) (*Snapshot, error) {
	snap := &Snapshot{ID: id}

	var lastAgent, lastActiveStr, createdAtStr string
	err := s.db.QueryRowContext(ctx,
		`SELECT last_agent, last_active, created_at FROM sessions WHERE id = ?`, id,
	).Scan(&lastAgent, &lastActiveStr, &createdAtStr)
	if err == sql.ErrNoRows {
		return snap, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying session: %w", err)
	}

	snap.LastAgent = specialist.ID(lastAgent)
	snap.LastActive, err = time.Parse(time.RFC3339, lastActiveStr)
	if err != nil {
		return nil, fmt.Errorf("parsing last_active: %w", err)
	}
	snap.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, role, content, agent, created_at
		FROM messages
		WHERE session_id = ?
		ORDER BY created_at ASC, rowid ASC
	`, id)
	if err != nil {
		return nil, fmt.Errorf("querying messages: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var msg Message
		var agent sql.NullString
		var createdAtStr string

		if err := rows.Scan(&msg.ID, &msg.Role, &msg.Content, &agent, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning message row: %w", err)
		}
		msg.SessionID = id
		if agent.Valid {
			msg.Agent = specialist.ID(agent.String)
		}
		msg.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing message created_at: %w", err)
		}
		snap.Messages = append(snap.Messages, msg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating message rows: %w", err)
	}
	return snap, nil
}

// AppendMessage records one turn and bumps the session's activity timestamp,
// creating the session row on first contact.
func (s *SQLiteStore) AppendMessage(ctx context.Context, msg *Message) error {
	ts := msg.CreatedAt.UTC().Format(time.RFC3339)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO sessions (id, last_active, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET last_active = excluded.last_active
	`, msg.SessionID, ts, ts)
	if err != nil {
		return fmt.Errorf("upserting session: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO messages (id, session_id, role, content, agent, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, msg.ID, msg.SessionID, msg.Role, msg.Content, nullString(string(msg.Agent)), ts)
	if err != nil {
		return fmt.Errorf("inserting message: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing message: %w", err)
	}

	s.logger.Debug("appended message", "session_id", msg.SessionID, "role", msg.Role)
	return nil
}

// nullString returns nil for empty strings, otherwise the string
func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// SetLastAgent records which specialist served the session and bumps its
// activity timestamp, creating the session row on first contact.
func (s *SQLiteStore) SetLastAgent(ctx context.Context, sessionID string, agent specialist.ID, at time.Time) error {
	ts := at.UTC().Format(time.RFC3339)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO sessions (id, last_agent, last_active, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			last_agent = excluded.last_agent,
			last_active = excluded.last_active
	`, sessionID, string(agent), ts, ts)
	if err != nil {
		return fmt.Errorf("setting last agent: %w", err)
	}

	s.logger.Debug("set last agent", "session_id", sessionID, "agent", agent)
	return nil
}

// Clear durably removes a session and its messages. Clearing an id that does
// not exist is a no-op.
func (s *SQLiteStore) Clear(ctx context.Context, sessionID string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM messages WHERE session_id = ?`, sessionID); err != nil {
		return fmt.Errorf("deleting messages: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, sessionID); err != nil {
		return fmt.Errorf("deleting session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing clear: %w", err)
	}

	s.logger.Debug("cleared session", "session_id", sessionID)
	return nil
}

// ListActive returns sessions whose last activity is at or after the cutoff,
// most recent first.
func (s *SQLiteStore) ListActive(ctx context.Context, cutoff time.Time) ([]*ActiveSession, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT s.id, s.last_agent, s.last_active, COUNT(m.id)
		FROM sessions s
		LEFT JOIN messages m ON m.session_id = s.id
		WHERE s.last_active >= ?
		GROUP BY s.id
		ORDER BY s.last_active DESC
	`, cutoff.UTC().Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("querying active sessions: %w", err)
	}
	defer rows.Close()

	var active []*ActiveSession
	for rows.Next() {
		var a ActiveSession
		var lastAgent, lastActiveStr string

		if err := rows.Scan(&a.ID, &lastAgent, &lastActiveStr, &a.MessageCount); err != nil {
			return nil, fmt.Errorf("scanning active session row: %w", err)
		}
		a.LastAgent = specialist.ID(lastAgent)
		a.LastActive, err = time.Parse(time.RFC3339, lastActiveStr)
		if err != nil {
			return nil, fmt.Errorf("parsing last_active: %w", err)
		}
		active = append(active, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating active session rows: %w", err)
	}
	return active, nil
}

// Ensure SQLiteStore implements Store interface
var _ Store = (*SQLiteStore)(nil)
