package rest

import (
	"context"
	"errors"
	"fmt"
	"gameReco/domain"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecommendService struct {
	recs  []domain.Recommendation
	debug []domain.DebugRecommendation
	err   error

	gotUser uint
	gotGame uint64
	gotN    int
}

func (f *fakeRecommendService) RecommendMore(ctx context.Context, userID uint, gameID uint64, n int) ([]domain.Recommendation, error) {
	f.gotUser, f.gotGame, f.gotN = userID, gameID, n
	return f.recs, f.err
}

func (f *fakeRecommendService) DebugRecommendMore(ctx context.Context, userID uint, gameID uint64, n int) ([]domain.DebugRecommendation, error) {
	f.gotUser, f.gotGame, f.gotN = userID, gameID, n
	return f.debug, f.err
}

func (f *fakeRecommendService) SimilarGames(ctx context.Context, gameID uint64, n int) ([]domain.Recommendation, error) {
	f.gotGame, f.gotN = gameID, n
	return f.recs, f.err
}

func newTestServer(svc *fakeRecommendService, withUser bool) *echo.Echo {
	e := echo.New()
	h := NewRecommendHandler(svc)

	setUser := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if withUser {
				c.Set("user_id", uint(42))
			}
			return next(c)
		}
	}

	e.GET("/games/:id/more", h.MoreGames, setUser)
	e.GET("/games/:id/more/debug", h.DebugMoreGames, setUser)
	e.GET("/games/:id/similar", h.SimilarGames)
	return e
}

func get(e *echo.Echo, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestMoreGames_OK(t *testing.T) {
	svc := &fakeRecommendService{recs: []domain.Recommendation{{GameID: 2, Score: 0.64}, {GameID: 3, Score: 0.46}}}
	e := newTestServer(svc, true)

	rec := get(e, "/games/1/more?n=2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"game_id":2`)
	assert.Contains(t, rec.Body.String(), `"score":0.46`)
	assert.Equal(t, uint(42), svc.gotUser)
	assert.Equal(t, uint64(1), svc.gotGame)
	assert.Equal(t, 2, svc.gotN)
}

func TestMoreGames_DefaultN(t *testing.T) {
	svc := &fakeRecommendService{recs: []domain.Recommendation{}}
	rec := get(newTestServer(svc, true), "/games/7/more")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, svc.gotN, "zero lets the service pick its default")
}

func TestMoreGames_Errors(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		withUser bool
		err      error
		want     int
	}{
		{name: "no user", target: "/games/1/more", want: http.StatusUnauthorized},
		{name: "bad id", target: "/games/abc/more", withUser: true, want: http.StatusBadRequest},
		{name: "zero id", target: "/games/0/more", withUser: true, want: http.StatusBadRequest},
		{name: "n too large", target: "/games/1/more?n=1000", withUser: true, want: http.StatusBadRequest},
		{name: "not found", target: "/games/1/more", withUser: true, err: fmt.Errorf("game 1: %w", domain.ErrGameNotFound), want: http.StatusNotFound},
		{name: "store down", target: "/games/1/more", withUser: true, err: errors.New("db down"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeRecommendService{err: tt.err}
			rec := get(newTestServer(svc, tt.withUser), tt.target)
			assert.Equal(t, tt.want, rec.Code)
			if tt.want == http.StatusInternalServerError {
				assert.NotContains(t, rec.Body.String(), "db down")
			}
		})
	}
}

func TestDebugMoreGames(t *testing.T) {
	svc := &fakeRecommendService{debug: []domain.DebugRecommendation{{
		GameID:    2,
		UserState: domain.UserStateCold,
		Breakdown: domain.ScoreBreakdown{Similarity: 0.24, Trending: 0.4, Final: 0.64},
	}}}

	rec := get(newTestServer(svc, true), "/games/1/more/debug")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"user_state":"cold"`)
	assert.Contains(t, rec.Body.String(), `"trending":0.4`)
}

func TestSimilarGames(t *testing.T) {
	svc := &fakeRecommendService{recs: []domain.Recommendation{{GameID: 9, Score: 0.5}}}

	rec := get(newTestServer(svc, false), "/games/3/similar?n=1")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(3), svc.gotGame)
	assert.Equal(t, 1, svc.gotN)

	svc.err = domain.ErrGameNotFound
	rec = get(newTestServer(svc, false), "/games/3/similar")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
