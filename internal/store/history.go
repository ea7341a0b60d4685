package store

import (
	"fmt"
	"time"

	"github.com/spaceworld/console/internal/domain"
)

// LoadHistory returns persisted command lines, oldest first. A positive
// limit keeps only the newest limit lines.
func (s *Store) LoadHistory(limit int) ([]string, error) {
	query := `SELECT line FROM command_history ORDER BY id DESC`
	var args []any
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var newestFirst []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		newestFirst = append(newestFirst, line)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make([]string, len(newestFirst))
	for i, line := range newestFirst {
		out[len(out)-1-i] = line
	}
	return out, nil
}

// AppendHistory stores the lines a session added and records the session.
// All rows are written in one transaction.
func (s *Store) AppendHistory(sessionID string, lines []string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}

	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	stmt, err := tx.Prepare(`INSERT INTO command_history (session_id, line) VALUES (?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, line := range lines {
		if _, err := stmt.Exec(sessionID, line); err != nil {
			return fmt.Errorf("insert history line: %w", err)
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(
		`INSERT INTO sessions (id, started_at, ended_at, line_count)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
			ended_at = excluded.ended_at,
			line_count = sessions.line_count + excluded.line_count`,
		sessionID, now, now, len(lines),
	)
	if err != nil {
		return fmt.Errorf("record session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	committed = true
	return nil
}

// SessionLines returns the lines recorded for one session, oldest first.
func (s *Store) SessionLines(sessionID string) ([]string, error) {
	rows, err := s.db.Query(
		`SELECT line FROM command_history WHERE session_id = ? ORDER BY id`,
		sessionID,
	)
	if err != nil {
		return nil, fmt.Errorf("query session: %w", err)
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var line string
		if err := rows.Scan(&line); err != nil {
			return nil, err
		}
		out = append(out, line)
	}
	return out, rows.Err()
}

var _ domain.HistoryStore = (*Store)(nil)
