package recommend

import (
	"gameReco/domain"
	"sort"
)

// Rank orders candidates by score descending, ties by game id ascending, and
// keeps the first topN.
func Rank(scores map[uint64]float64, topN int) []domain.Recommendation {
	out := make([]domain.Recommendation, 0, len(scores))
	for id, s := range scores {
		out = append(out, domain.Recommendation{GameID: id, Score: s})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Score != out[j].Score {
			return out[i].Score > out[j].Score
		}
		return out[i].GameID < out[j].GameID
	})

	if topN >= 0 && len(out) > topN {
		out = out[:topN]
	}
	return out
}

func finalScores(b map[uint64]*domain.ScoreBreakdown) map[uint64]float64 {
	out := make(map[uint64]float64, len(b))
	for id, s := range b {
		out[id] = s.Final
	}
	return out
}
