package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/tursodatabase/libsql-client-go/libsql"
)

// TursoClient publishes hero aggregates to the Turso edge database the
// public dashboard reads from
type TursoClient struct {
	db *sql.DB
}

// NewTursoClient creates a new Turso client
func NewTursoClient(url, authToken string) (*TursoClient, error) {
	connStr := url
	if authToken != "" {
		connStr = fmt.Sprintf("%s?authToken=%s", url, authToken)
	}

	db, err := sql.Open("libsql", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Turso: %w", err)
	}

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping Turso: %w", err)
	}

	return &TursoClient{db: db}, nil
}

// Close closes the Turso connection
func (c *TursoClient) Close() error {
	return c.db.Close()
}

// CreateTables creates the required tables if they don't exist
func (c *TursoClient) CreateTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS hero_stats (
			hero_id INTEGER PRIMARY KEY,
			picks INTEGER NOT NULL DEFAULT 0,
			bans INTEGER NOT NULL DEFAULT 0,
			wins INTEGER NOT NULL DEFAULT 0,
			win_rate REAL NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS publish_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			published_at TEXT NOT NULL,
			match_count INTEGER NOT NULL
		)`,
	}

	for _, q := range queries {
		if _, err := c.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("failed to create Turso tables: %w", err)
		}
	}
	return nil
}

// PublishHeroStats replaces the hero aggregate rows with a fresh snapshot
func (c *TursoClient) PublishHeroStats(ctx context.Context, stats []HeroStat, matchCount int) error {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin Turso tx: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM hero_stats"); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to clear hero_stats: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO hero_stats (hero_id, picks, bans, wins, win_rate) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, s := range stats {
		if _, err := stmt.ExecContext(ctx, s.HeroID, s.Picks, s.Bans, s.Wins, s.WinRate); err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert hero %d: %w", s.HeroID, err)
		}
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO publish_state (id, published_at, match_count)
		VALUES (1, ?, ?)
		ON CONFLICT (id) DO UPDATE SET published_at = excluded.published_at,
			match_count = excluded.match_count
	`, time.Now().UTC().Format(time.RFC3339), matchCount)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to record publish state: %w", err)
	}

	return tx.Commit()
}
