package match

import (
	"time"

	"dotadash/internal/opendota"
	"dotadash/internal/refdata"
)

// Assemble normalizes one raw match record into a Match entity. It is a
// pure composition function: no I/O, no shared state, safe to call
// concurrently across records. The resolver may be nil, in which case every
// hero and item resolves to a placeholder descriptor. A nil strategy falls
// back to WardCountStrategy.
//
// Assembly is all-or-nothing: a missing mandatory field or a side without
// exactly five players returns a *MalformedMatchError and no Match.
func Assemble(raw *opendota.RawMatch, resolver refdata.Resolver, strat ScoringStrategy) (*Match, error) {
	if raw == nil {
		return nil, malformed("record", "nil raw match")
	}
	if raw.MatchID == 0 {
		return nil, malformed("match_id", "missing")
	}
	if raw.StartTime == 0 {
		return nil, malformed("start_time", "missing")
	}
	if len(raw.Players) == 0 {
		return nil, malformed("players", "missing")
	}

	var radiant, dire []opendota.RawPlayer
	for _, p := range raw.Players {
		if opendota.IsRadiant(p.PlayerSlot) {
			radiant = append(radiant, p)
		} else {
			dire = append(dire, p)
		}
	}
	if len(radiant) != 5 {
		return nil, malformed("players", "radiant side has %d players, want 5", len(radiant))
	}
	if len(dire) != 5 {
		return nil, malformed("players", "dire side has %d players, want 5", len(dire))
	}

	radiantRoles, err := ClassifyRoles(radiant, strat)
	if err != nil {
		return nil, err
	}
	direRoles, err := ClassifyRoles(dire, strat)
	if err != nil {
		return nil, err
	}

	resolve := NewHeroResolver(resolver)

	winner := SideDire
	if raw.RadiantWin {
		winner = SideRadiant
	}

	m := &Match{
		ID:            raw.MatchID,
		Date:          time.Unix(raw.StartTime, 0).UTC(),
		Duration:      raw.Duration,
		RadiantTeamID: raw.RadiantTeamID,
		DireTeamID:    raw.DireTeamID,
		RadiantScore:  raw.RadiantScore,
		DireScore:     raw.DireScore,
		Winner:        winner,
		Draft:         ReconstructDraft(raw.PicksBans, resolve),
		Radiant:       normalizePlayers(radiant, radiantRoles, resolve),
		Dire:          normalizePlayers(dire, direRoles, resolve),
		Events:        BuildTimeline(raw.Objectives),
		GoldAdv:       BuildAdvantage(raw.RadiantGoldAdv, DefaultSampleInterval),
		XPAdv:         BuildAdvantage(raw.RadiantXPAdv, DefaultSampleInterval),
	}

	return m, nil
}

func normalizePlayers(players []opendota.RawPlayer, roles map[int]Role, resolve HeroResolver) []PlayerMatchData {
	out := make([]PlayerMatchData, 0, len(players))
	for i := range players {
		p := &players[i]

		var items []refdata.Item
		for _, id := range p.Items() {
			if id == 0 { // empty slot
				continue
			}
			items = append(items, resolve.resolveItem(id))
		}

		out = append(out, PlayerMatchData{
			AccountID:   p.AccountID,
			Name:        p.Personaname,
			Slot:        p.PlayerSlot,
			Hero:        resolve.resolveHero(p.HeroID),
			Role:        roles[p.PlayerSlot],
			Items:       items,
			Kills:       p.Kills,
			Deaths:      p.Deaths,
			Assists:     p.Assists,
			GoldPerMin:  p.GoldPerMin,
			XPPerMin:    p.XPPerMin,
			NetWorth:    p.NetWorth,
			Level:       p.Level,
			LastHits:    p.LastHits,
			Denies:      p.Denies,
			HeroDamage:  p.HeroDamage,
			TowerDamage: p.TowerDamage,
			HeroHealing: p.HeroHealing,
			ObsPlaced:   p.ObsPlaced,
			SenPlaced:   p.SenPlaced,
		})
	}
	return out
}
