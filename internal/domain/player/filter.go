package player

import (
	"sort"
	"strings"
)

// Range is an inclusive numeric [Min, Max] bound.
type Range struct {
	Min float64
	Max float64
}

func (r Range) contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// FilterParams select a subsequence of normalized players. Empty team
// or position sets mean no restriction; the name term is a
// case-insensitive substring match applied after the set and range
// filters.
type FilterParams struct {
	Teams     []string
	Positions []string
	Price     Range
	Form      Range
	Name      string
}

// Filter applies params to players, preserving relative order.
func Filter(players []Normalized, params FilterParams) []Normalized {
	teamSet := toSet(params.Teams)
	positionSet := toSet(params.Positions)
	nameTerm := strings.ToLower(strings.TrimSpace(params.Name))

	out := make([]Normalized, 0, len(players))
	for _, p := range players {
		if len(teamSet) > 0 {
			if _, ok := teamSet[p.TeamName]; !ok {
				continue
			}
		}
		if len(positionSet) > 0 {
			if _, ok := positionSet[p.Position]; !ok {
				continue
			}
		}
		if !params.Price.contains(p.Price) {
			continue
		}
		if !params.Form.contains(p.Form) {
			continue
		}
		if nameTerm != "" && !strings.Contains(strings.ToLower(p.Name), nameTerm) {
			continue
		}
		out = append(out, p)
	}

	return out
}

// SortKey names a sortable column of the normalized player table.
type SortKey string

const (
	SortKeyPrice       SortKey = "price"
	SortKeyForm        SortKey = "form"
	SortKeyTotalPoints SortKey = "total_points"
	SortKeyMinutes     SortKey = "minutes"
	SortKeyGoalsScored SortKey = "goals_scored"
	SortKeyAssists     SortKey = "assists"
)

// ParseSortKey maps a raw query value onto a supported sort key.
func ParseSortKey(raw string) (SortKey, bool) {
	key := SortKey(strings.ToLower(strings.TrimSpace(raw)))
	switch key {
	case SortKeyPrice, SortKeyForm, SortKeyTotalPoints, SortKeyMinutes, SortKeyGoalsScored, SortKeyAssists:
		return key, true
	default:
		return "", false
	}
}

// SortBy returns a copy of players stably sorted on key. Players with
// equal key values keep their pre-sort relative order.
func SortBy(players []Normalized, key SortKey, ascending bool) []Normalized {
	out := make([]Normalized, len(players))
	copy(out, players)

	value := sortValue(key)
	sort.SliceStable(out, func(i, j int) bool {
		if ascending {
			return value(out[i]) < value(out[j])
		}
		return value(out[i]) > value(out[j])
	})

	return out
}

func sortValue(key SortKey) func(Normalized) float64 {
	switch key {
	case SortKeyForm:
		return func(p Normalized) float64 { return p.Form }
	case SortKeyTotalPoints:
		return func(p Normalized) float64 { return float64(p.TotalPoints) }
	case SortKeyMinutes:
		return func(p Normalized) float64 { return float64(p.Minutes) }
	case SortKeyGoalsScored:
		return func(p Normalized) float64 { return float64(p.GoalsScored) }
	case SortKeyAssists:
		return func(p Normalized) float64 { return float64(p.Assists) }
	default:
		return func(p Normalized) float64 { return p.Price }
	}
}

func toSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set[item] = struct{}{}
	}
	return set
}
