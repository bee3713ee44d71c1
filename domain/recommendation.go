package domain

type UserState string

const (
	UserStateCold   UserState = "cold"
	UserStateWarm   UserState = "warm"
	UserStateActive UserState = "active"
)

type Recommendation struct {
	GameID uint64  `json:"game_id"`
	Score  float64 `json:"score"`
}

// ScoreBreakdown holds the additive contribution of every signal to one
// candidate. Final is the sum of the others.
type ScoreBreakdown struct {
	Similarity float64 `json:"similarity"`
	Affinity   float64 `json:"affinity"`
	Social     float64 `json:"social"`
	Trending   float64 `json:"trending"`
	Editorial  float64 `json:"editorial"`
	Final      float64 `json:"final"`
}

type DebugRecommendation struct {
	GameID        uint64         `json:"game_id"`
	RawSimilarity float64        `json:"raw_similarity"`
	Breakdown     ScoreBreakdown `json:"breakdown"`
	UserState     UserState      `json:"user_state"`
}
