package match

import (
	"sort"

	"dotadash/internal/opendota"
	"dotadash/internal/refdata"
)

// ReconstructDraft splits the ordered pick/ban log into per-side pick and
// ban lists. Team index 0 is radiant by provider convention. Picks are
// ordered by the draft order field; entries without one keep their input
// position (stable sort). No entry is ever dropped or duplicated.
func ReconstructDraft(entries []opendota.RawPickBan, resolve HeroResolver) Draft {
	var d Draft

	sorted := append([]opendota.RawPickBan(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		oi, oj := sorted[i].Order, sorted[j].Order
		if oi == nil || oj == nil {
			return false
		}
		return *oi < *oj
	})

	for _, e := range sorted {
		radiant := e.Team == 0
		if e.IsPick {
			pick := Pick{Hero: resolve.resolveHero(e.HeroID), Order: -1}
			if e.Order != nil {
				pick.Order = *e.Order
			}
			if radiant {
				d.RadiantPicks = append(d.RadiantPicks, pick)
			} else {
				d.DirePicks = append(d.DirePicks, pick)
			}
		} else {
			hero := resolve.resolveHero(e.HeroID)
			if radiant {
				d.RadiantBans = append(d.RadiantBans, hero)
			} else {
				d.DireBans = append(d.DireBans, hero)
			}
		}
	}

	return d
}

// HeroResolver adapts an optional refdata.Resolver for hero lookups,
// falling back to placeholder descriptors
type HeroResolver struct {
	r refdata.Resolver
}

// NewHeroResolver wraps a resolver; a nil resolver yields placeholders
// for every id
func NewHeroResolver(r refdata.Resolver) HeroResolver {
	return HeroResolver{r: r}
}

func (h HeroResolver) resolveHero(id int) refdata.Hero {
	if h.r != nil {
		if hero, ok := h.r.Hero(id); ok {
			return hero
		}
	}
	return refdata.PlaceholderHero(id)
}

func (h HeroResolver) resolveItem(id int) refdata.Item {
	if h.r != nil {
		if item, ok := h.r.Item(id); ok {
			return item
		}
	}
	return refdata.PlaceholderItem(id)
}
