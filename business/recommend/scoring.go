package recommend

import (
	"gameReco/business/similarity"
	"gameReco/domain"
)

// Weights are the fixed blend constants of the scoring engine.
type Weights struct {
	SimilarityCold float64
	SimilarityWarm float64
	Affinity       float64
	Social         float64
	TrendingCold   float64
	TrendingWarm   float64
	Editorial      float64
}

func DefaultWeights() Weights {
	return Weights{
		SimilarityCold: 0.3,
		SimilarityWarm: 0.6,
		Affinity:       0.3,
		Social:         0.25,
		TrendingCold:   0.2,
		TrendingWarm:   0.05,
		Editorial:      0.4,
	}
}

// Signals is everything read from the store for one request. PeerLikes holds
// one entry per like of every qualifying peer, duplicates included.
type Signals struct {
	Interactions   []domain.Interaction
	PeerLikes      []uint64
	Trending       []domain.Trending
	EditorialPicks []uint64
}

type ScoreInput struct {
	CurrentGameID uint64
	Index         *similarity.Index
	State         domain.UserState
	Signals       Signals
	Weights       Weights
}

// Score computes the per-signal breakdown for every published game except
// the current one. Every candidate starts at zero; signals only ever add.
func Score(in ScoreInput) map[uint64]*domain.ScoreBreakdown {
	w := in.Weights
	cold := in.State == domain.UserStateCold

	scores := make(map[uint64]*domain.ScoreBreakdown, in.Index.Len())
	for _, id := range in.Index.IDs() {
		if id == in.CurrentGameID {
			continue
		}
		scores[id] = &domain.ScoreBreakdown{}
	}

	// 1. item similarity
	simWeight := w.SimilarityWarm
	if cold {
		simWeight = w.SimilarityCold
	}
	for id, b := range scores {
		b.Similarity += in.Index.Similarity(in.CurrentGameID, id) * simWeight
	}

	// 2. affinity: reinforces games the user already liked
	if !cold {
		for _, it := range in.Signals.Interactions {
			if it.InteractionType != domain.InteractionLike {
				continue
			}
			if b, ok := scores[it.GamePostID]; ok {
				b.Affinity += w.Affinity
			}
		}
	}

	// 3. same-role peers
	if in.State == domain.UserStateActive {
		for _, id := range in.Signals.PeerLikes {
			if b, ok := scores[id]; ok {
				b.Social += w.Social
			}
		}
	}

	// 4. trending
	trendWeight := w.TrendingWarm
	if cold {
		trendWeight = w.TrendingCold
	}
	for _, tr := range in.Signals.Trending {
		if tr.TrendingScore <= 0 {
			continue
		}
		if b, ok := scores[tr.GamePostID]; ok {
			b.Trending += tr.TrendingScore * trendWeight
		}
	}

	// 5. editorial
	if cold {
		for _, id := range in.Signals.EditorialPicks {
			if b, ok := scores[id]; ok {
				b.Editorial += w.Editorial
			}
		}
	}

	for _, b := range scores {
		b.Final = b.Similarity + b.Affinity + b.Social + b.Trending + b.Editorial
	}

	return scores
}
