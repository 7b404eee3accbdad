package match

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"dotadash/internal/opendota"
)

func TestBuildTimeline_SortedAndTyped(t *testing.T) {
	entries := []opendota.RawObjective{
		{Time: 1450, Type: "building_kill", PlayerSlot: 130, Key: "npc_dota_goodguys_tower1_mid"},
		{Time: 95, Type: "CHAT_MESSAGE_FIRSTBLOOD", PlayerSlot: 2},
		{Time: 1210, Type: "CHAT_MESSAGE_ROSHAN_KILL", PlayerSlot: 129},
		{Time: 1215, Type: "CHAT_MESSAGE_AEGIS", PlayerSlot: 129},
	}

	events := BuildTimeline(entries)

	if len(events) != 4 {
		t.Fatalf("got %d events, want 4", len(events))
	}

	for i := 1; i < len(events); i++ {
		if events[i].Time < events[i-1].Time {
			t.Errorf("events not sorted: %d before %d", events[i-1].Time, events[i].Time)
		}
	}

	if events[0].Kind != EventFirstBlood || events[0].Side != SideRadiant {
		t.Errorf("first event = %+v, want radiant first blood", events[0])
	}
	if events[1].Kind != EventRoshanKill || events[1].Side != SideDire {
		t.Errorf("second event = %+v, want dire roshan kill", events[1])
	}
	if events[2].Kind != EventAegisPickup {
		t.Errorf("third event = %+v, want aegis pickup", events[2])
	}
	if events[3].Kind != EventTowerKill || events[3].Side != SideDire {
		t.Errorf("fourth event = %+v, want dire tower kill", events[3])
	}
}

func TestBuildTimeline_DropsUnknownTags(t *testing.T) {
	entries := []opendota.RawObjective{
		{Time: 95, Type: "CHAT_MESSAGE_FIRSTBLOOD", PlayerSlot: 2},
		{Time: 300, Type: "CHAT_MESSAGE_UNKNOWN", PlayerSlot: 2},
		{Time: 400, Type: "CHAT_MESSAGE_RUNE_PICKUP", PlayerSlot: 130},
		{Time: 1210, Type: "CHAT_MESSAGE_ROSHAN_KILL", PlayerSlot: 129},
	}

	events := BuildTimeline(entries)

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2 (unknown tags dropped)", len(events))
	}
	if events[0].Kind != EventFirstBlood || events[1].Kind != EventRoshanKill {
		t.Errorf("surviving events wrong: %+v", events)
	}
}

func TestBuildTimeline_DropsBuildingKillWithoutKey(t *testing.T) {
	entries := []opendota.RawObjective{
		{Time: 900, Type: "building_kill", PlayerSlot: 1, Key: ""},
		{Time: 950, Type: "building_kill", PlayerSlot: 1, Key: "npc_dota_badguys_tower1_top"},
	}

	events := BuildTimeline(entries)

	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Time != 950 {
		t.Errorf("wrong event survived: %+v", events[0])
	}
}

// Output order is independent of input order, up to stable tie ordering
func TestBuildTimeline_PermutationInvariant(t *testing.T) {
	entries := []opendota.RawObjective{
		{Time: 95, Type: "CHAT_MESSAGE_FIRSTBLOOD", PlayerSlot: 2},
		{Time: 700, Type: "building_kill", PlayerSlot: 3, Key: "npc_dota_badguys_tower1_bot"},
		{Time: 1210, Type: "CHAT_MESSAGE_ROSHAN_KILL", PlayerSlot: 129},
		{Time: 1500, Type: "building_kill", PlayerSlot: 130, Key: "npc_dota_goodguys_tower2_mid"},
		{Time: 2100, Type: "building_kill", PlayerSlot: 130, Key: "npc_dota_goodguys_melee_rax_mid"},
	}

	want := BuildTimeline(entries)

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 10; i++ {
		shuffled := append([]opendota.RawObjective(nil), entries...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})

		got := BuildTimeline(shuffled)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("permutation %d changed the output:\ngot  %+v\nwant %+v", i, got, want)
		}
		if !sort.SliceIsSorted(got, func(a, b int) bool { return got[a].Time < got[b].Time }) {
			t.Fatalf("permutation %d output not sorted", i)
		}
	}
}

func TestParseBuildingKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want BuildingDetail
	}{
		{"tier one mid tower", "npc_dota_goodguys_tower1_mid", BuildingDetail{BuildingTower, 1, LaneMid}},
		{"tier three top tower", "npc_dota_badguys_tower3_top", BuildingDetail{BuildingTower, 3, LaneTop}},
		{"tier four tower", "npc_dota_goodguys_tower4", BuildingDetail{BuildingTower, 4, LaneMid}},
		{"melee rax bottom", "npc_dota_goodguys_melee_rax_bot", BuildingDetail{BuildingBarracks, 1, LaneBot}},
		{"ranged rax top", "npc_dota_badguys_range_rax_top", BuildingDetail{BuildingBarracks, 1, LaneTop}},
		{"garbage defaults to tier one mid tower", "???", BuildingDetail{BuildingTower, 1, LaneMid}},
		{"uppercase provider variant", "NPC_DOTA_GOODGUYS_TOWER2_BOT", BuildingDetail{BuildingTower, 2, LaneBot}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseBuildingKey(tt.key)
			if got != tt.want {
				t.Errorf("parseBuildingKey(%q) = %+v, want %+v", tt.key, got, tt.want)
			}
		})
	}
}

func TestBuildTimeline_TimestampTiesKeepInputOrder(t *testing.T) {
	entries := []opendota.RawObjective{
		{Time: 1500, Type: "building_kill", PlayerSlot: 1, Key: "npc_dota_badguys_tower1_top"},
		{Time: 1500, Type: "building_kill", PlayerSlot: 1, Key: "npc_dota_badguys_tower1_bot"},
	}

	events := BuildTimeline(entries)

	if len(events) != 2 {
		t.Fatalf("got %d events, want 2", len(events))
	}
	if events[0].Building.Lane != LaneTop || events[1].Building.Lane != LaneBot {
		t.Errorf("tie order not stable: %+v then %+v", events[0], events[1])
	}
}
