// Package storage keeps the history of matches finished during this process.
// It uses an in-memory SQLite database through the pure-Go modernc.org/sqlite
// driver: nothing is written to disk and the history disappears on Close.
package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-pong/internal/pong"
)

// Ledger records finished matches.
type Ledger struct {
	db *sql.DB
}

// MatchRecord is one finished match.
type MatchRecord struct {
	ID         int64
	Mode       pong.Mode
	Difficulty string // Empty for two-player matches
	Winner     pong.Side
	WinnerName string
	Score1     int
	Score2     int
	Ticks      int64
	FinishedAt time.Time
}

// Tally counts wins per side.
type Tally struct {
	Left  int
	Right int
}

// Total returns the number of matches counted.
func (t Tally) Total() int {
	return t.Left + t.Right
}

// Open creates an empty in-memory ledger.
func Open() (*Ledger, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	l := &Ledger{db: db}
	if err := l.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}
	return l, nil
}

// migrate creates the schema.
func (l *Ledger) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS matches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			mode TEXT NOT NULL,
			difficulty TEXT NOT NULL DEFAULT '',
			winner INTEGER NOT NULL,
			winner_name TEXT NOT NULL,
			score1 INTEGER NOT NULL,
			score2 INTEGER NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			finished_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_matches_mode ON matches(mode);
	`
	_, err := l.db.Exec(schema)
	return err
}

// Close releases the database, discarding the history.
func (l *Ledger) Close() error {
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

// Record stores a finished match and returns its ID.
func (l *Ledger) Record(end pong.MatchEnd) (int64, error) {
	difficulty := ""
	if end.Mode == pong.ModeSolo {
		difficulty = string(end.Difficulty)
	}

	res, err := l.db.Exec(
		`INSERT INTO matches (mode, difficulty, winner, winner_name, score1, score2, ticks)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(end.Mode), difficulty, int(end.Winner), end.WinnerName(),
		end.Score1, end.Score2, int64(min(end.Ticks, 1<<62)), //nolint:gosec // clamped
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save match: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// Recent returns the latest matches, newest first.
func (l *Ledger) Recent(limit int) ([]MatchRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := l.db.Query(
		`SELECT id, mode, difficulty, winner, winner_name, score1, score2, ticks, finished_at
		 FROM matches
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query matches: %w", err)
	}
	defer rows.Close()

	var records []MatchRecord
	for rows.Next() {
		var r MatchRecord
		var mode string
		var winner int
		var finishedAt any
		if err := rows.Scan(
			&r.ID, &mode, &r.Difficulty, &winner, &r.WinnerName,
			&r.Score1, &r.Score2, &r.Ticks, &finishedAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Mode = pong.Mode(mode)
		r.Winner = pong.Side(winner)
		r.FinishedAt = parseTime(finishedAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return records, nil
}

// Wins counts wins per side for a mode. An empty mode counts every match.
func (l *Ledger) Wins(mode pong.Mode) (Tally, error) {
	rows, err := l.db.Query(
		`SELECT winner, COUNT(*)
		 FROM matches
		 WHERE ? = '' OR mode = ?
		 GROUP BY winner`,
		string(mode), string(mode),
	)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot count wins: %w", err)
	}
	defer rows.Close()

	var t Tally
	for rows.Next() {
		var winner, count int
		if err := rows.Scan(&winner, &count); err != nil {
			return Tally{}, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		switch pong.Side(winner) {
		case pong.SideLeft:
			t.Left = count
		case pong.SideRight:
			t.Right = count
		}
	}

	if err := rows.Err(); err != nil {
		return Tally{}, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return t, nil
}

// Clear deletes every recorded match.
func (l *Ledger) Clear() error {
	if _, err := l.db.Exec("DELETE FROM matches"); err != nil {
		return fmt.Errorf("storage: cannot clear matches: %w", err)
	}
	return nil
}

// Sink returns a pong.Sink that records every finished match.
// Failures are logged; the simulation never waits on the ledger.
func (l *Ledger) Sink(logger *log.Logger) pong.Sink {
	return ledgerSink{ledger: l, logger: logger}
}

type ledgerSink struct {
	ledger *Ledger
	logger *log.Logger
}

func (s ledgerSink) Render(pong.RenderState) {}

func (s ledgerSink) MatchEnded(end pong.MatchEnd) {
	if _, err := s.ledger.Record(end); err != nil && s.logger != nil {
		s.logger.Warn("could not record match", "error", err)
	}
}

// parseTime handles both time.Time and the SQLite text format.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
