package matching

import (
	"sort"

	"prop-match/internal/domain/professional"
)

// ShortlistSize caps how many candidates each category keeps after ranking.
const ShortlistSize = 5

// ScoredCandidate pairs a professional with its computed score. It lives only
// inside the ranking pipeline and is never persisted.
type ScoredCandidate struct {
	Professional professional.Professional
	Score        int
}

// RankByCategory groups scored candidates by category, orders each group by
// score descending and truncates it to ShortlistSize. The sort is stable:
// equal scores keep the order the candidates arrived in, so determinism is the
// supplier's responsibility (the professional store returns a fixed order).
func RankByCategory(cands []ScoredCandidate) map[professional.Category][]ScoredCandidate {
	grouped := make(map[professional.Category][]ScoredCandidate)
	for _, c := range cands {
		grouped[c.Professional.Category] = append(grouped[c.Professional.Category], c)
	}

	for cat, group := range grouped {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Score > group[j].Score
		})
		if len(group) > ShortlistSize {
			group = group[:ShortlistSize]
		}
		grouped[cat] = group
	}
	return grouped
}
