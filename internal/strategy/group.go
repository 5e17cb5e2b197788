package strategy

import (
	"sort"

	"CanslimScanner/internal/model"
)

// DefaultGroupRank is used for a symbol that was not ranked.
const DefaultGroupRank = 99

// GroupMember is one symbol's input to group ranking.
type GroupMember struct {
	Symbol     string
	Sector     string
	YearReturn float64
}

// GroupRanks orders sectors by mean return, then symbols within each sector
// by return, and numbers the concatenation 1..N. Ties keep input order.
func GroupRanks(members []GroupMember) map[string]int {
	type bucket struct {
		members []GroupMember
		mean    float64
	}
	var order []string
	buckets := map[string]*bucket{}
	for _, m := range members {
		b, ok := buckets[m.Sector]
		if !ok {
			b = &bucket{}
			buckets[m.Sector] = b
			order = append(order, m.Sector)
		}
		b.members = append(b.members, m)
	}

	sectors := make([]*bucket, 0, len(order))
	for _, name := range order {
		b := buckets[name]
		sum := 0.0
		for _, m := range b.members {
			sum += m.YearReturn
		}
		b.mean = sum / float64(len(b.members))
		sort.SliceStable(b.members, func(i, j int) bool {
			return b.members[i].YearReturn > b.members[j].YearReturn
		})
		sectors = append(sectors, b)
	}
	sort.SliceStable(sectors, func(i, j int) bool { return sectors[i].mean > sectors[j].mean })

	ranks := make(map[string]int, len(members))
	rank := 1
	for _, b := range sectors {
		for _, m := range b.members {
			ranks[m.Symbol] = rank
			rank++
		}
	}
	return ranks
}

// groupMembers builds ranking inputs from the universe entries that have a chart.
func groupMembers(entries []model.SymbolEntry, charts map[string]*model.PriceSeries) []GroupMember {
	out := make([]GroupMember, 0, len(entries))
	for _, e := range entries {
		out = append(out, GroupMember{Symbol: e.Symbol, Sector: e.Sector, YearReturn: yearReturn(charts[e.Symbol])})
	}
	return out
}
