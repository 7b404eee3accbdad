package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"

	"dotadash/internal/match"
)

// MatchSummary is one row of the match list view
type MatchSummary struct {
	MatchID       int64  `json:"matchId"`
	StartTime     int64  `json:"startTime"`
	Duration      int    `json:"duration"`
	RadiantTeamID int64  `json:"radiantTeamId"`
	DireTeamID    int64  `json:"direTeamId"`
	RadiantScore  int    `json:"radiantScore"`
	DireScore     int    `json:"direScore"`
	Winner        string `json:"winner"`
}

// SaveMatch persists one normalized match. Saving the same match twice is
// a no-op, so replays of a crawl are safe.
func (db *DB) SaveMatch(ctx context.Context, m *match.Match) error {
	data, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to marshal match %d: %w", m.ID, err)
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx, `
		INSERT INTO matches (match_id, start_time, duration, radiant_team_id, dire_team_id,
			radiant_score, dire_score, winner, data)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (match_id) DO NOTHING
	`, m.ID, m.Date.Unix(), m.Duration, m.RadiantTeamID, m.DireTeamID,
		m.RadiantScore, m.DireScore, string(m.Winner), string(data))
	if err != nil {
		return fmt.Errorf("failed to insert match %d: %w", m.ID, err)
	}

	for _, side := range [][]match.PlayerMatchData{m.Radiant, m.Dire} {
		for _, p := range side {
			win := match.SideOfSlot(p.Slot) == m.Winner
			_, err = tx.Exec(ctx, `
				INSERT INTO match_players (match_id, slot, account_id, hero_id, role,
					kills, deaths, assists, gold_per_min, xp_per_min, net_worth, level, win)
				VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
				ON CONFLICT (match_id, slot) DO NOTHING
			`, m.ID, p.Slot, p.AccountID, p.Hero.ID, string(p.Role),
				p.Kills, p.Deaths, p.Assists, p.GoldPerMin, p.XPPerMin, p.NetWorth, p.Level, win)
			if err != nil {
				return fmt.Errorf("failed to insert player %d of match %d: %w", p.Slot, m.ID, err)
			}
		}
	}

	if err := db.saveDraft(ctx, tx, m); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (db *DB) saveDraft(ctx context.Context, tx pgx.Tx, m *match.Match) error {
	// Picks and bans flatten into one table keyed by side and phase
	insert := func(heroID int, isPick bool, side match.Side, ord int) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO match_picks_bans (match_id, hero_id, is_pick, side, ord)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (match_id, side, is_pick, ord, hero_id) DO NOTHING
		`, m.ID, heroID, isPick, string(side), ord)
		if err != nil {
			return fmt.Errorf("failed to insert draft entry of match %d: %w", m.ID, err)
		}
		return nil
	}

	for _, p := range m.Draft.RadiantPicks {
		if err := insert(p.Hero.ID, true, match.SideRadiant, p.Order); err != nil {
			return err
		}
	}
	for _, p := range m.Draft.DirePicks {
		if err := insert(p.Hero.ID, true, match.SideDire, p.Order); err != nil {
			return err
		}
	}
	for i, h := range m.Draft.RadiantBans {
		if err := insert(h.ID, false, match.SideRadiant, i); err != nil {
			return err
		}
	}
	for i, h := range m.Draft.DireBans {
		if err := insert(h.ID, false, match.SideDire, i); err != nil {
			return err
		}
	}
	return nil
}

// HasMatch checks whether a match was already stored
func (db *DB) HasMatch(ctx context.Context, matchID int64) (bool, error) {
	var exists bool
	err := db.pool.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM matches WHERE match_id = $1)
	`, matchID).Scan(&exists)
	return exists, err
}

// GetMatch rehydrates one normalized match from its stored document
func (db *DB) GetMatch(ctx context.Context, matchID int64) (*match.Match, error) {
	var data []byte
	err := db.pool.QueryRow(ctx, `
		SELECT data FROM matches WHERE match_id = $1
	`, matchID).Scan(&data)
	if err != nil {
		return nil, err
	}

	var m match.Match
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to unmarshal match %d: %w", matchID, err)
	}
	return &m, nil
}

// GetRecentMatches returns the most recent matches, newest first
func (db *DB) GetRecentMatches(ctx context.Context, limit int) ([]MatchSummary, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT match_id, start_time, duration, radiant_team_id, dire_team_id,
			radiant_score, dire_score, winner
		FROM matches
		ORDER BY start_time DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []MatchSummary
	for rows.Next() {
		var s MatchSummary
		if err := rows.Scan(&s.MatchID, &s.StartTime, &s.Duration, &s.RadiantTeamID,
			&s.DireTeamID, &s.RadiantScore, &s.DireScore, &s.Winner); err != nil {
			return nil, err
		}
		matches = append(matches, s)
	}
	return matches, nil
}

// GetMatchCount returns the total number of stored matches
func (db *DB) GetMatchCount(ctx context.Context) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM matches`).Scan(&count)
	return count, err
}

// GetMaxMatchID returns the highest stored match id, 0 when empty
func (db *DB) GetMaxMatchID(ctx context.Context) (int64, error) {
	var id int64
	err := db.pool.QueryRow(ctx, `SELECT COALESCE(MAX(match_id), 0) FROM matches`).Scan(&id)
	return id, err
}

// HeroStat is the aggregated pick/ban record for one hero
type HeroStat struct {
	HeroID  int     `json:"heroId"`
	Picks   int     `json:"picks"`
	Bans    int     `json:"bans"`
	Wins    int     `json:"wins"`
	WinRate float64 `json:"winRate"`
}

// GetHeroStats returns pick/ban/win aggregates across all stored matches,
// most contested heroes first
func (db *DB) GetHeroStats(ctx context.Context) ([]HeroStat, error) {
	rows, err := db.pool.Query(ctx, `
		SELECT
			pb.hero_id,
			SUM(CASE WHEN pb.is_pick THEN 1 ELSE 0 END) AS picks,
			SUM(CASE WHEN NOT pb.is_pick THEN 1 ELSE 0 END) AS bans,
			SUM(CASE WHEN pb.is_pick AND m.winner = pb.side THEN 1 ELSE 0 END) AS wins
		FROM match_picks_bans pb
		JOIN matches m ON m.match_id = pb.match_id
		GROUP BY pb.hero_id
		ORDER BY picks + bans DESC, pb.hero_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []HeroStat
	for rows.Next() {
		var s HeroStat
		if err := rows.Scan(&s.HeroID, &s.Picks, &s.Bans, &s.Wins); err != nil {
			return nil, err
		}
		if s.Picks > 0 {
			s.WinRate = float64(s.Wins) / float64(s.Picks) * 100
		}
		stats = append(stats, s)
	}
	return stats, nil
}
