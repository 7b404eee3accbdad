package match

import (
	"sort"
	"strings"

	"dotadash/internal/opendota"
)

// Objective log type tags that map directly to an event kind
var eventKinds = map[string]EventKind{
	"CHAT_MESSAGE_FIRSTBLOOD":  EventFirstBlood,
	"CHAT_MESSAGE_ROSHAN_KILL": EventRoshanKill,
	"CHAT_MESSAGE_AEGIS":       EventAegisPickup,
}

// BuildTimeline turns the raw objective log into the sorted match timeline.
// Unrecognized type tags are dropped. Building kills are classified from
// their structure key; a building kill with no key at all is dropped. Ties
// on timestamp keep their input order.
func BuildTimeline(entries []opendota.RawObjective) []Event {
	events := make([]Event, 0, len(entries))

	for _, e := range entries {
		side := SideOfSlot(e.PlayerSlot)

		if kind, ok := eventKinds[e.Type]; ok {
			events = append(events, Event{Time: e.Time, Kind: kind, Side: side})
			continue
		}

		if e.Type == "building_kill" {
			if e.Key == "" {
				continue
			}
			detail := parseBuildingKey(e.Key)
			kind := EventTowerKill
			if detail.Kind == BuildingBarracks {
				kind = EventBarracksKill
			}
			events = append(events, Event{Time: e.Time, Kind: kind, Side: side, Building: &detail})
		}
		// Anything else (chat spam, runes, ...) is not a timeline event
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Time < events[j].Time
	})

	return events
}

// parseBuildingKey extracts kind, tier and lane from a structure name like
// "npc_dota_goodguys_tower2_mid" or "npc_dota_badguys_melee_rax_bot".
// Unparsable parts fall back to tower, tier 1, mid lane.
func parseBuildingKey(key string) BuildingDetail {
	k := strings.ToLower(key)

	detail := BuildingDetail{Kind: BuildingTower, Tier: 1, Lane: LaneMid}

	if strings.Contains(k, "rax") || strings.Contains(k, "barracks") {
		detail.Kind = BuildingBarracks
	}

	if idx := strings.Index(k, "tower"); idx >= 0 && idx+5 < len(k) {
		if c := k[idx+5]; c >= '1' && c <= '4' {
			detail.Tier = int(c - '0')
		}
	}

	switch {
	case strings.HasSuffix(k, "_top") || strings.Contains(k, "_top_"):
		detail.Lane = LaneTop
	case strings.HasSuffix(k, "_bot") || strings.Contains(k, "_bot_"):
		detail.Lane = LaneBot
	}

	return detail
}
