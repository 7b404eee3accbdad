package match

import "dotadash/internal/opendota"

// ScoringStrategy computes the support score used by role classification.
// Two variants exist in the wild depending on which fields the provider
// populates for a given match; both are kept behind this interface and the
// caller picks one explicitly.
type ScoringStrategy interface {
	Name() string
	SupportScore(p *opendota.RawPlayer) float64
}

// WardCountStrategy scores support play from the ward placement counters.
// This is the default: the counters are present on every parsed match.
type WardCountStrategy struct{}

func (WardCountStrategy) Name() string { return "ward_counts" }

func (WardCountStrategy) SupportScore(p *opendota.RawPlayer) float64 {
	return float64(p.ObsPlaced) + 2*float64(p.SenPlaced)
}

// Support consumables counted by PurchaseLogStrategy
var supportItems = map[string]bool{
	"ward_observer":   true,
	"ward_sentry":     true,
	"smoke_of_deceit": true,
	"dust":            true,
}

// PurchaseLogStrategy scores support play by counting support-item entries
// in the purchase log. Useful when ward counters are missing but the
// purchase log survived parsing.
type PurchaseLogStrategy struct{}

func (PurchaseLogStrategy) Name() string { return "purchase_log" }

func (PurchaseLogStrategy) SupportScore(p *opendota.RawPlayer) float64 {
	var n int
	for _, e := range p.PurchaseLog {
		if supportItems[e.Key] {
			n++
		}
	}
	return float64(n)
}
