package match

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"dotadash/internal/opendota"
	"dotadash/internal/refdata"
)

// stubResolver resolves a handful of ids and misses everything else
type stubResolver struct{}

var stubHeroes = map[int]string{
	8:  "juggernaut",
	14: "pudge",
	26: "lion",
}

func (stubResolver) Hero(id int) (refdata.Hero, bool) {
	if name, ok := stubHeroes[id]; ok {
		return refdata.Hero{ID: id, Name: name, LocalizedName: name}, true
	}
	return refdata.Hero{}, false
}

func (stubResolver) Item(id int) (refdata.Item, bool) {
	if id == 1 {
		return refdata.Item{ID: 1, Name: "blink"}, true
	}
	return refdata.Item{}, false
}

func sampleRaw() *opendota.RawMatch {
	raw := &opendota.RawMatch{
		MatchID:       7654321001,
		StartTime:     1755907200, // 2025-08-23 00:00:00 UTC
		Duration:      2710,
		RadiantTeamID: 2163,
		DireTeamID:    8599101,
		RadiantScore:  33,
		DireScore:     21,
		RadiantWin:    true,
		PicksBans: []opendota.RawPickBan{
			{IsPick: false, HeroID: 14, Team: 1, Order: intp(0)},
			{IsPick: false, HeroID: 26, Team: 0, Order: intp(1)},
			{IsPick: true, HeroID: 8, Team: 0, Order: intp(2)},
			{IsPick: true, HeroID: 99, Team: 1, Order: intp(3)},
		},
		Objectives: []opendota.RawObjective{
			{Time: 120, Type: "CHAT_MESSAGE_FIRSTBLOOD", PlayerSlot: 1},
			{Time: 1900, Type: "building_kill", PlayerSlot: 2, Key: "npc_dota_badguys_tower1_mid"},
			{Time: 2500, Type: "CHAT_MESSAGE_ROSHAN_KILL", PlayerSlot: 0},
		},
		RadiantGoldAdv: []int{0, 250, 900, 1800, 4100},
		RadiantXPAdv:   []int{0, 100, 700, 1500, 3900},
	}

	lanes := []int{opendota.LaneSafe, opendota.LaneMid, opendota.LaneOff, opendota.LaneSafe, opendota.LaneOff}
	for side := 0; side < 2; side++ {
		for i := 0; i < 5; i++ {
			slot := i
			if side == 1 {
				slot = 128 + i
			}
			raw.Players = append(raw.Players, opendota.RawPlayer{
				AccountID:  int64(1000 + slot),
				PlayerSlot: slot,
				HeroID:     8,
				LaneRole:   lanes[i],
				GoldPerMin: 600 - i*100,
				XPPerMin:   650 - i*100,
				Kills:      8 - i,
				Assists:    2 * i,
				ObsPlaced:  i * 3,
				SenPlaced:  i * 2,
				Level:      25 - i,
				Item0:      1,
				Item1:      116,
			})
		}
	}
	return raw
}

func TestAssemble_FullRecord(t *testing.T) {
	m, err := Assemble(sampleRaw(), stubResolver{}, WardCountStrategy{})
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	if m.ID != 7654321001 {
		t.Errorf("ID = %d, want 7654321001", m.ID)
	}
	if want := time.Unix(1755907200, 0).UTC(); !m.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", m.Date, want)
	}
	if m.Winner != SideRadiant {
		t.Errorf("Winner = %q, want radiant", m.Winner)
	}

	if len(m.Radiant) != 5 || len(m.Dire) != 5 {
		t.Fatalf("sides = %d/%d players, want 5/5", len(m.Radiant), len(m.Dire))
	}
	for _, p := range m.Radiant {
		if !opendota.IsRadiant(p.Slot) {
			t.Errorf("slot %d landed on radiant, belongs to dire", p.Slot)
		}
		if p.Role == "" {
			t.Errorf("slot %d has no role", p.Slot)
		}
	}
	for _, p := range m.Dire {
		if opendota.IsRadiant(p.Slot) {
			t.Errorf("slot %d landed on dire, belongs to radiant", p.Slot)
		}
	}

	if total := len(m.Draft.RadiantPicks) + len(m.Draft.DirePicks) +
		len(m.Draft.RadiantBans) + len(m.Draft.DireBans); total != 4 {
		t.Errorf("draft entries = %d, want 4", total)
	}

	if len(m.Events) != 3 {
		t.Errorf("events = %d, want 3", len(m.Events))
	}

	for i := range m.GoldAdv.Radiant {
		if m.GoldAdv.Dire[i] != -m.GoldAdv.Radiant[i] {
			t.Errorf("gold adv not antisymmetric at %d", i)
		}
	}
	if len(m.XPAdv.Times) != 5 {
		t.Errorf("xp adv samples = %d, want 5", len(m.XPAdv.Times))
	}
}

func TestAssemble_PlaceholderDescriptors(t *testing.T) {
	raw := sampleRaw()
	raw.Players[0].HeroID = 9999 // not in the stub resolver

	m, err := Assemble(raw, stubResolver{}, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}

	hero := m.Radiant[0].Hero
	if hero.ID != 9999 {
		t.Errorf("placeholder hero kept id %d, want 9999", hero.ID)
	}
	if hero.Name == "" {
		t.Error("placeholder hero has no name")
	}

	// Item 116 misses the stub resolver but must still be present
	found := false
	for _, it := range m.Radiant[0].Items {
		if it.ID == 116 {
			found = true
			if it.Name == "" {
				t.Error("placeholder item has no name")
			}
		}
	}
	if !found {
		t.Error("unresolvable item was dropped instead of degraded")
	}
}

func TestAssemble_NilResolver(t *testing.T) {
	m, err := Assemble(sampleRaw(), nil, nil)
	if err != nil {
		t.Fatalf("Assemble with nil resolver failed: %v", err)
	}
	if m.Radiant[0].Hero.Name == "" {
		t.Error("nil resolver should still yield placeholder hero names")
	}
}

func TestAssemble_MalformedRecords(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*opendota.RawMatch)
	}{
		{"missing start_time", func(r *opendota.RawMatch) { r.StartTime = 0 }},
		{"missing match_id", func(r *opendota.RawMatch) { r.MatchID = 0 }},
		{"no players", func(r *opendota.RawMatch) { r.Players = nil }},
		{"four-player radiant", func(r *opendota.RawMatch) { r.Players = r.Players[1:] }},
		{"six-player dire", func(r *opendota.RawMatch) {
			r.Players = append(r.Players, opendota.RawPlayer{PlayerSlot: 133})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := sampleRaw()
			tt.mutate(raw)

			m, err := Assemble(raw, nil, nil)
			if m != nil {
				t.Error("got a partial Match on the fatal path, want nil")
			}

			var malformedErr *MalformedMatchError
			if !errors.As(err, &malformedErr) {
				t.Errorf("error = %v, want *MalformedMatchError", err)
			}
		})
	}
}

func TestAssemble_Idempotent(t *testing.T) {
	a, err := Assemble(sampleRaw(), stubResolver{}, WardCountStrategy{})
	if err != nil {
		t.Fatalf("first Assemble failed: %v", err)
	}
	b, err := Assemble(sampleRaw(), stubResolver{}, WardCountStrategy{})
	if err != nil {
		t.Fatalf("second Assemble failed: %v", err)
	}

	if !reflect.DeepEqual(a, b) {
		t.Error("two assemblies of the same record differ")
	}
}

func TestAssemble_DireWin(t *testing.T) {
	raw := sampleRaw()
	raw.RadiantWin = false

	m, err := Assemble(raw, nil, nil)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if m.Winner != SideDire {
		t.Errorf("Winner = %q, want dire", m.Winner)
	}
}
