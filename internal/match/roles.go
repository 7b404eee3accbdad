package match

import (
	"sort"

	"dotadash/internal/opendota"
)

// scored carries one player's derived heuristic numbers
type scored struct {
	p       *opendota.RawPlayer
	support float64
	farm    float64
	kill    float64
	total   float64
}

// ClassifyRoles assigns exactly one role to each of the five players of one
// side, keyed by player slot. It never leaves a player unassigned: the
// fallback chain bottoms out at RoleUnknown. Ties inside a lane bucket break
// by higher score first, then lower player slot, so the result is fully
// deterministic for a given input.
func ClassifyRoles(players []opendota.RawPlayer, strat ScoringStrategy) (map[int]Role, error) {
	if len(players) != 5 {
		return nil, malformed("players", "side has %d players, want 5", len(players))
	}
	if strat == nil {
		strat = WardCountStrategy{}
	}

	scores := make([]*scored, 0, 5)
	for i := range players {
		p := &players[i]
		s := &scored{p: p}
		s.support = strat.SupportScore(p)
		s.farm = float64(p.GoldPerMin + p.XPPerMin)
		s.kill = float64(p.Kills) + 0.5*float64(p.Assists)
		s.total = s.support + s.farm + s.kill
		scores = append(scores, s)
	}

	roles := make(map[int]Role, 5)
	assigned := func(s *scored) bool {
		_, ok := roles[s.p.PlayerSlot]
		return ok
	}

	buckets := make(map[int][]*scored)
	for _, s := range scores {
		buckets[s.p.LaneRole] = append(buckets[s.p.LaneRole], s)
	}

	// Mid lane: best farmer is the mid player
	if mid := buckets[opendota.LaneMid]; len(mid) > 0 {
		top := best(mid, func(s *scored) float64 { return s.farm })
		roles[top.p.PlayerSlot] = RoleMid
	}

	// Safe lane: best farmer is the carry, the most support-heavy of the
	// rest laned with them as the support
	if safe := buckets[opendota.LaneSafe]; len(safe) > 0 {
		carry := best(safe, func(s *scored) float64 { return s.farm })
		roles[carry.p.PlayerSlot] = RoleCarry

		if rest := unassignedOf(safe, assigned); len(rest) > 0 {
			sup := best(rest, func(s *scored) float64 { return s.support })
			roles[sup.p.PlayerSlot] = RoleSupport
		}
	}

	// Off lane: best overall score is the offlaner, partner is hard support
	if off := buckets[opendota.LaneOff]; len(off) > 0 {
		offlane := best(off, func(s *scored) float64 { return s.total })
		roles[offlane.p.PlayerSlot] = RoleOfflane

		if rest := unassignedOf(off, assigned); len(rest) > 0 {
			sup := best(rest, func(s *scored) float64 { return s.support })
			roles[sup.p.PlayerSlot] = RoleHardSupport
		}
	}

	// Fallback for anyone still unassigned, in slot order
	leftovers := unassignedOf(scores, assigned)
	sort.Slice(leftovers, func(i, j int) bool {
		return leftovers[i].p.PlayerSlot < leftovers[j].p.PlayerSlot
	})
	for _, s := range leftovers {
		switch {
		case s.p.IsRoaming:
			roles[s.p.PlayerSlot] = RoleRoaming
		case s.p.LaneRole == opendota.LaneJungle:
			roles[s.p.PlayerSlot] = RoleJungle
		case s.support > s.farm:
			roles[s.p.PlayerSlot] = RoleSupport
		case s.farm > s.kill:
			roles[s.p.PlayerSlot] = RoleCarry
		default:
			roles[s.p.PlayerSlot] = RoleUnknown
		}
	}

	return roles, nil
}

// best returns the bucket member with the highest key, breaking ties by
// lower player slot
func best(bucket []*scored, key func(*scored) float64) *scored {
	sorted := append([]*scored(nil), bucket...)
	sort.SliceStable(sorted, func(i, j int) bool {
		ki, kj := key(sorted[i]), key(sorted[j])
		if ki != kj {
			return ki > kj
		}
		return sorted[i].p.PlayerSlot < sorted[j].p.PlayerSlot
	})
	return sorted[0]
}

func unassignedOf(bucket []*scored, assigned func(*scored) bool) []*scored {
	var rest []*scored
	for _, s := range bucket {
		if !assigned(s) {
			rest = append(rest, s)
		}
	}
	return rest
}
