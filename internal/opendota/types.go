package opendota

// Player slots below this value are radiant, at or above are dire.
const RadiantSlotLimit = 128

// Lane role codes as reported by the provider.
const (
	LaneSafe   = 1
	LaneMid    = 2
	LaneOff    = 3
	LaneJungle = 4
)

// IsRadiant reports whether a player slot belongs to the radiant side.
func IsRadiant(slot int) bool {
	return slot < RadiantSlotLimit
}

// RawMatch represents the response from /matches/{matchId}
type RawMatch struct {
	MatchID        int64          `json:"match_id"`
	StartTime      int64          `json:"start_time"` // unix seconds
	Duration       int            `json:"duration"`   // seconds
	RadiantTeamID  int64          `json:"radiant_team_id"`
	DireTeamID     int64          `json:"dire_team_id"`
	RadiantScore   int            `json:"radiant_score"`
	DireScore      int            `json:"dire_score"`
	RadiantWin     bool           `json:"radiant_win"`
	LeagueID       int64          `json:"leagueid"`
	Players        []RawPlayer    `json:"players"`
	PicksBans      []RawPickBan   `json:"picks_bans"`
	Objectives     []RawObjective `json:"objectives"`
	RadiantGoldAdv []int          `json:"radiant_gold_adv"`
	RadiantXPAdv   []int          `json:"radiant_xp_adv"`
}

// RawPlayer holds one participant's raw per-match stats
type RawPlayer struct {
	AccountID   int64  `json:"account_id"`
	Personaname string `json:"personaname"`
	PlayerSlot  int    `json:"player_slot"` // 0-127 radiant, 128+ dire
	HeroID      int    `json:"hero_id"`
	LaneRole    int    `json:"lane_role"` // 1 safe, 2 mid, 3 off, 4 jungle
	IsRoaming   bool   `json:"is_roaming"`

	Kills   int `json:"kills"`
	Deaths  int `json:"deaths"`
	Assists int `json:"assists"`

	GoldPerMin int `json:"gold_per_min"`
	XPPerMin   int `json:"xp_per_min"`
	NetWorth   int `json:"net_worth"`
	Level      int `json:"level"`
	LastHits   int `json:"last_hits"`
	Denies     int `json:"denies"`

	HeroDamage  int `json:"hero_damage"`
	TowerDamage int `json:"tower_damage"`
	HeroHealing int `json:"hero_healing"`

	ObsPlaced int `json:"obs_placed"`
	SenPlaced int `json:"sen_placed"`

	PurchaseLog []PurchaseEvent `json:"purchase_log"`

	Item0 int `json:"item_0"`
	Item1 int `json:"item_1"`
	Item2 int `json:"item_2"`
	Item3 int `json:"item_3"`
	Item4 int `json:"item_4"`
	Item5 int `json:"item_5"`
}

// Items returns the six item slots in order. Slot value 0 means empty.
func (p *RawPlayer) Items() []int {
	return []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5}
}

// PurchaseEvent is one entry of a player's item purchase log
type PurchaseEvent struct {
	Time int    `json:"time"`
	Key  string `json:"key"` // item short name, e.g. "ward_observer"
}

// RawPickBan is one entry of the ordered draft log
type RawPickBan struct {
	IsPick bool `json:"is_pick"`
	HeroID int  `json:"hero_id"`
	Team   int  `json:"team"`  // 0 radiant, 1 dire
	Order  *int `json:"order"` // nil when the provider omits it
}

// RawObjective is one entry of the objective/event log
type RawObjective struct {
	Time       int    `json:"time"`
	Type       string `json:"type"` // open string, e.g. "CHAT_MESSAGE_FIRSTBLOOD"
	PlayerSlot int    `json:"player_slot"`
	Key        string `json:"key"` // structure name for building kills
}

// TeamMatchSummary represents one row of /teams/{teamId}/matches
type TeamMatchSummary struct {
	MatchID          int64  `json:"match_id"`
	Radiant          bool   `json:"radiant"`
	RadiantWin       bool   `json:"radiant_win"`
	Duration         int    `json:"duration"`
	StartTime        int64  `json:"start_time"`
	LeagueID         int64  `json:"leagueid"`
	LeagueName       string `json:"league_name"`
	OpposingTeamID   int64  `json:"opposing_team_id"`
	OpposingTeamName string `json:"opposing_team_name"`
}
