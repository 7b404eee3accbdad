package match

import (
	"time"

	"dotadash/internal/opendota"
	"dotadash/internal/refdata"
)

// Side identifies one of the two teams contesting a match
type Side string

const (
	SideRadiant Side = "radiant"
	SideDire    Side = "dire"
)

// Other returns the opposing side
func (s Side) Other() Side {
	if s == SideRadiant {
		return SideDire
	}
	return SideRadiant
}

// SideOfSlot maps a provider player slot to a side
func SideOfSlot(slot int) Side {
	if opendota.IsRadiant(slot) {
		return SideRadiant
	}
	return SideDire
}

// Role is the position a player filled in a match
type Role string

const (
	RoleCarry       Role = "carry"
	RoleMid         Role = "mid"
	RoleOfflane     Role = "offlane"
	RoleSupport     Role = "support"
	RoleHardSupport Role = "hard_support"
	RoleRoaming     Role = "roaming"
	RoleJungle      Role = "jungle"
	RoleUnknown     Role = "unknown"
)

// Match is the normalized, read-only match entity. It is constructed once
// by Assemble from one raw record and never mutated afterwards.
type Match struct {
	ID            int64             `json:"id"`
	Date          time.Time         `json:"date"`
	Duration      int               `json:"duration"` // seconds
	RadiantTeamID int64             `json:"radiantTeamId"`
	DireTeamID    int64             `json:"direTeamId"`
	RadiantScore  int               `json:"radiantScore"`
	DireScore     int               `json:"direScore"`
	Winner        Side              `json:"winner"`
	Draft         Draft             `json:"draft"`
	Radiant       []PlayerMatchData `json:"radiant"` // exactly five
	Dire          []PlayerMatchData `json:"dire"`    // exactly five
	Events        []Event           `json:"events"`  // sorted by time
	GoldAdv       AdvantageSeries   `json:"goldAdv"`
	XPAdv         AdvantageSeries   `json:"xpAdv"`
}

// Draft holds the reconstructed pick/ban phase
type Draft struct {
	RadiantPicks []Pick         `json:"radiantPicks"`
	DirePicks    []Pick         `json:"direPicks"`
	RadiantBans  []refdata.Hero `json:"radiantBans"`
	DireBans     []refdata.Hero `json:"direBans"`
}

// Pick is one drafted hero with its position in the draft sequence.
// Order is -1 when the provider did not report one.
type Pick struct {
	Hero  refdata.Hero `json:"hero"`
	Order int          `json:"order"`
}

// PlayerMatchData is one player's normalized performance in a match
type PlayerMatchData struct {
	AccountID int64          `json:"accountId"`
	Name      string         `json:"name"`
	Slot      int            `json:"slot"`
	Hero      refdata.Hero   `json:"hero"`
	Role      Role           `json:"role"`
	Items     []refdata.Item `json:"items"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	GoldPerMin int `json:"goldPerMin"`
	XPPerMin   int `json:"xpPerMin"`
	NetWorth   int `json:"netWorth"`
	Level      int `json:"level"`
	LastHits   int `json:"lastHits"`
	Denies     int `json:"denies"`

	HeroDamage  int `json:"heroDamage"`
	TowerDamage int `json:"towerDamage"`
	HeroHealing int `json:"heroHealing"`

	ObsPlaced int `json:"obsPlaced"`
	SenPlaced int `json:"senPlaced"`
}

// EventKind is the closed set of timeline event types
type EventKind string

const (
	EventFirstBlood   EventKind = "first_blood"
	EventRoshanKill   EventKind = "roshan_kill"
	EventAegisPickup  EventKind = "aegis_pickup"
	EventTowerKill    EventKind = "tower_kill"
	EventBarracksKill EventKind = "barracks_kill"
)

// BuildingKind distinguishes destroyed structures
type BuildingKind string

const (
	BuildingTower    BuildingKind = "tower"
	BuildingBarracks BuildingKind = "barracks"
)

// Lane identifies a map lane
type Lane string

const (
	LaneTop Lane = "top"
	LaneMid Lane = "mid"
	LaneBot Lane = "bottom"
)

// Event is one typed entry of the match timeline
type Event struct {
	Time     int             `json:"time"` // seconds from match start
	Kind     EventKind       `json:"kind"`
	Side     Side            `json:"side"`
	Building *BuildingDetail `json:"building,omitempty"` // set for structure kills
}

// BuildingDetail describes a destroyed structure
type BuildingDetail struct {
	Kind BuildingKind `json:"kind"`
	Tier int          `json:"tier"`
	Lane Lane         `json:"lane"`
}

// AdvantageSeries is a time-indexed gold or experience differential.
// The three slices always share one length and Dire[i] == -Radiant[i].
type AdvantageSeries struct {
	Times   []int `json:"times"` // seconds
	Radiant []int `json:"radiant"`
	Dire    []int `json:"dire"`
}
