package recommend

import (
	"context"
	"fmt"
	"gameReco/business/corpus"
	"gameReco/business/similarity"
	"gameReco/domain"
	"gameReco/pkg/logger"
	"sort"
)

const DefaultTopN = 5

// ---- Repository interfaces ----

type GameRepository interface {
	FindPublished(ctx context.Context) ([]domain.Game, error)
}

type InteractionRepository interface {
	FindByUser(ctx context.Context, userID uint) ([]domain.Interaction, error)
	// FindSameRolePeers returns other users with the same role who share at
	// least one interacted game with userID.
	FindSameRolePeers(ctx context.Context, userID uint) ([]uint, error)
	FindLikedGameIDs(ctx context.Context, userID uint) ([]uint64, error)
}

type TrendingRepository interface {
	FindAll(ctx context.Context) ([]domain.Trending, error)
}

type EditorialPickRepository interface {
	FindAll(ctx context.Context) ([]uint64, error)
}

// ModelProvider turns the published corpus into a similarity index.
// *similarity.ModelCache is the production implementation.
type ModelProvider interface {
	Get(ctx context.Context, docs []similarity.Document) *similarity.Index
}

// ---- Service ----

type RecommendService struct {
	gameRepo        GameRepository
	interactionRepo InteractionRepository
	trendingRepo    TrendingRepository
	editorialRepo   EditorialPickRepository
	models          ModelProvider
	weights         Weights
	defaultTopN     int
}

func NewRecommendService(
	gameRepo GameRepository,
	interactionRepo InteractionRepository,
	trendingRepo TrendingRepository,
	editorialRepo EditorialPickRepository,
	models ModelProvider,
	defaultTopN int,
) *RecommendService {
	if models == nil {
		models = similarity.NewModelCache(similarity.CacheOff, nil)
	}
	if defaultTopN <= 0 {
		defaultTopN = DefaultTopN
	}
	return &RecommendService{
		gameRepo:        gameRepo,
		interactionRepo: interactionRepo,
		trendingRepo:    trendingRepo,
		editorialRepo:   editorialRepo,
		models:          models,
		weights:         DefaultWeights(),
		defaultTopN:     defaultTopN,
	}
}

// RecommendMore ranks the games to show next to currentGameID for userID.
// topN <= 0 uses the service default.
func (s *RecommendService) RecommendMore(ctx context.Context, userID uint, currentGameID uint64, topN int) ([]domain.Recommendation, error) {
	scored, state, err := s.score(ctx, userID, currentGameID)
	if err != nil {
		return nil, err
	}

	recs := Rank(finalScores(scored), s.topN(topN))

	logger.Debug("recommend_more",
		"trace_id", TraceIDFromContext(ctx),
		"user_id", userID,
		"game_id", currentGameID,
		"user_state", state,
		"candidates", len(scored),
		"returned", len(recs),
	)

	return recs, nil
}

// DebugRecommendMore returns the same ranking as RecommendMore with the
// contribution of every signal.
func (s *RecommendService) DebugRecommendMore(ctx context.Context, userID uint, currentGameID uint64, topN int) ([]domain.DebugRecommendation, error) {
	scored, state, err := s.score(ctx, userID, currentGameID)
	if err != nil {
		return nil, err
	}

	ranked := Rank(finalScores(scored), s.topN(topN))
	w := s.simWeight(state)

	out := make([]domain.DebugRecommendation, 0, len(ranked))
	for _, r := range ranked {
		b := scored[r.GameID]
		raw := 0.0
		if w > 0 {
			raw = b.Similarity / w
		}
		out = append(out, domain.DebugRecommendation{
			GameID:        r.GameID,
			RawSimilarity: raw,
			Breakdown:     *b,
			UserState:     state,
		})
	}

	return out, nil
}

// SimilarGames ranks published games by content similarity alone.
func (s *RecommendService) SimilarGames(ctx context.Context, gameID uint64, n int) ([]domain.Recommendation, error) {
	idx, err := s.loadIndex(ctx)
	if err != nil {
		return nil, err
	}
	if idx.Len() == 0 {
		return []domain.Recommendation{}, nil
	}
	if !idx.Contains(gameID) {
		return nil, fmt.Errorf("game %d: %w", gameID, domain.ErrGameNotFound)
	}

	neighbors := idx.Neighbors(gameID, s.topN(n))
	out := make([]domain.Recommendation, 0, len(neighbors))
	for _, nb := range neighbors {
		out = append(out, domain.Recommendation{GameID: nb.GameID, Score: nb.Similarity})
	}
	return out, nil
}

// WarmModel builds the similarity model once so the first request does not
// pay for it.
func (s *RecommendService) WarmModel(ctx context.Context) error {
	idx, err := s.loadIndex(ctx)
	if err != nil {
		return err
	}
	logger.Info("similarity_model_warmed", "games", idx.Len())
	return nil
}

func (s *RecommendService) score(ctx context.Context, userID uint, currentGameID uint64) (map[uint64]*domain.ScoreBreakdown, domain.UserState, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", fmt.Errorf("context error: %w", err)
	}

	interactions, err := s.interactionRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, "", fmt.Errorf("load interactions: %w", err)
	}
	state := ClassifyUserState(len(interactions))

	idx, err := s.loadIndex(ctx)
	if err != nil {
		return nil, state, err
	}
	if idx.Len() == 0 {
		return map[uint64]*domain.ScoreBreakdown{}, state, nil
	}
	if !idx.Contains(currentGameID) {
		return nil, state, fmt.Errorf("game %d: %w", currentGameID, domain.ErrGameNotFound)
	}

	signals, err := s.loadSignals(ctx, userID, state, interactions)
	if err != nil {
		return nil, state, err
	}

	RecommendRequestsTotal.WithLabelValues(string(state)).Inc()

	return Score(ScoreInput{
		CurrentGameID: currentGameID,
		Index:         idx,
		State:         state,
		Signals:       signals,
		Weights:       s.weights,
	}), state, nil
}

// loadSignals reads only the data the user's state will use. Any failure
// fails the request.
func (s *RecommendService) loadSignals(ctx context.Context, userID uint, state domain.UserState, interactions []domain.Interaction) (Signals, error) {
	signals := Signals{Interactions: interactions}

	if state == domain.UserStateActive {
		peers, err := s.interactionRepo.FindSameRolePeers(ctx, userID)
		if err != nil {
			return Signals{}, fmt.Errorf("load same-role peers: %w", err)
		}
		sort.Slice(peers, func(i, j int) bool { return peers[i] < peers[j] })

		for _, peer := range peers {
			liked, err := s.interactionRepo.FindLikedGameIDs(ctx, peer)
			if err != nil {
				return Signals{}, fmt.Errorf("load likes of user %d: %w", peer, err)
			}
			signals.PeerLikes = append(signals.PeerLikes, liked...)
		}
	}

	trending, err := s.trendingRepo.FindAll(ctx)
	if err != nil {
		return Signals{}, fmt.Errorf("load trending: %w", err)
	}
	signals.Trending = trending

	if state == domain.UserStateCold {
		picks, err := s.editorialRepo.FindAll(ctx)
		if err != nil {
			return Signals{}, fmt.Errorf("load editorial picks: %w", err)
		}
		signals.EditorialPicks = picks
	}

	return signals, nil
}

func (s *RecommendService) loadIndex(ctx context.Context) (*similarity.Index, error) {
	docs, err := corpus.Load(ctx, s.gameRepo)
	if err != nil {
		return nil, err
	}
	return s.models.Get(ctx, docs), nil
}

func (s *RecommendService) topN(n int) int {
	if n <= 0 {
		return s.defaultTopN
	}
	return n
}

func (s *RecommendService) simWeight(state domain.UserState) float64 {
	if state == domain.UserStateCold {
		return s.weights.SimilarityCold
	}
	return s.weights.SimilarityWarm
}
