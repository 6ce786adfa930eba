package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Session represents a recorded play session.
type Session struct {
	SessionID  string
	StartedAt  time.Time
	EndedAt    *time.Time
	DurationMs *int64
	Scramble   *string
	Solved     bool
	MoveCount  int
}

// SessionRepository provides CRUD operations for sessions.
type SessionRepository struct {
	db *DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create starts a new session and returns its ID. The scramble, if any, is
// the notation string the session started from.
func (r *SessionRepository) Create(scramble string) (string, error) {
	id := uuid.New().String()
	startedAt := time.Now().UTC()

	var scramblePtr *string
	if scramble != "" {
		scramblePtr = &scramble
	}

	_, err := r.db.Exec(`
		INSERT INTO sessions (session_id, started_at, scramble_text)
		VALUES (?, ?, ?)
	`, id, startedAt.Format(time.RFC3339), scramblePtr)
	if err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return id, nil
}

// SetScramble replaces the session's starting state: the scramble notation
// is stored (empty clears it) and the moves recorded so far are removed,
// since they no longer lead to the session's current state. Replaying the
// session afterwards applies the new scramble and whatever moves follow.
func (r *SessionRepository) SetScramble(sessionID, notation string) error {
	var notationPtr *string
	if notation != "" {
		notationPtr = &notation
	}

	_, err := r.db.Exec(`
		UPDATE sessions SET scramble_text = ?, move_count = 0 WHERE session_id = ?
	`, notationPtr, sessionID)
	if err != nil {
		return fmt.Errorf("failed to set scramble: %w", err)
	}

	_, err = r.db.Exec(`
		DELETE FROM session_moves WHERE session_id = ?
	`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear moves: %w", err)
	}
	return nil
}

// AppendMove records one move at the given index within a session.
func (r *SessionRepository) AppendMove(sessionID string, index int, notation string) error {
	_, err := r.db.Exec(`
		INSERT INTO session_moves (session_id, move_index, notation, recorded_at)
		VALUES (?, ?, ?, ?)
	`, sessionID, index, notation, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to append move: %w", err)
	}

	_, err = r.db.Exec(`
		UPDATE sessions SET move_count = move_count + 1 WHERE session_id = ?
	`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to bump move count: %w", err)
	}
	return nil
}

// End marks a session as complete, recording duration and whether the cube
// ended solved.
func (r *SessionRepository) End(sessionID string, solved bool) error {
	endedAt := time.Now().UTC()

	var startedAtStr string
	err := r.db.QueryRow("SELECT started_at FROM sessions WHERE session_id = ?", sessionID).Scan(&startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to get session start time: %w", err)
	}

	startedAt, err := time.Parse(time.RFC3339, startedAtStr)
	if err != nil {
		return fmt.Errorf("failed to parse start time: %w", err)
	}

	durationMs := endedAt.Sub(startedAt).Milliseconds()

	_, err = r.db.Exec(`
		UPDATE sessions
		SET ended_at = ?, duration_ms = ?, solved = ?
		WHERE session_id = ?
	`, endedAt.Format(time.RFC3339), durationMs, boolToInt(solved), sessionID)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

// Get fetches a single session by ID.
func (r *SessionRepository) Get(sessionID string) (*Session, error) {
	row := r.db.QueryRow(`
		SELECT session_id, started_at, ended_at, duration_ms, scramble_text, solved, move_count
		FROM sessions WHERE session_id = ?
	`, sessionID)

	s, err := scanSession(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}
	return s, err
}

// List returns sessions newest first, up to limit (0 for all).
func (r *SessionRepository) List(limit int) ([]*Session, error) {
	query := `
		SELECT session_id, started_at, ended_at, duration_ms, scramble_text, solved, move_count
		FROM sessions ORDER BY started_at DESC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}
	defer rows.Close()

	var sessions []*Session
	for rows.Next() {
		s, err := scanSession(rows)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}

// Moves returns a session's moves in recorded order as notation strings.
func (r *SessionRepository) Moves(sessionID string) ([]string, error) {
	rows, err := r.db.Query(`
		SELECT notation FROM session_moves
		WHERE session_id = ? ORDER BY move_index
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load moves: %w", err)
	}
	defer rows.Close()

	var moves []string
	for rows.Next() {
		var n string
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to scan move: %w", err)
		}
		moves = append(moves, n)
	}
	return moves, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSession(row rowScanner) (*Session, error) {
	var s Session
	var startedAt string
	var endedAt *string
	var solved int

	err := row.Scan(&s.SessionID, &startedAt, &endedAt, &s.DurationMs, &s.Scramble, &solved, &s.MoveCount)
	if err != nil {
		return nil, err
	}

	s.StartedAt, err = time.Parse(time.RFC3339, startedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse started_at: %w", err)
	}
	if endedAt != nil {
		t, err := time.Parse(time.RFC3339, *endedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ended_at: %w", err)
		}
		s.EndedAt = &t
	}
	s.Solved = solved != 0

	return &s, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
