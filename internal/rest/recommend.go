package rest

import (
	"context"
	"errors"
	"gameReco/domain"
	"gameReco/pkg/logger"
	"net/http"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	RecommendHandler struct {
		validate         *validator.Validate
		recommendService RecommendService
	}

	RecommendService interface {
		RecommendMore(ctx context.Context, userID uint, currentGameID uint64, topN int) ([]domain.Recommendation, error)
		DebugRecommendMore(ctx context.Context, userID uint, currentGameID uint64, topN int) ([]domain.DebugRecommendation, error)
		SimilarGames(ctx context.Context, gameID uint64, n int) ([]domain.Recommendation, error)
	}

	MoreGamesQuery struct {
		GameID uint64 `param:"id" validate:"required"`
		N      int    `query:"n" validate:"gte=0,lte=100"`
	}
)

func NewRecommendHandler(svc RecommendService) *RecommendHandler {
	return &RecommendHandler{
		validate:         validator.New(),
		recommendService: svc,
	}
}

// GET /api/v1/games/:id/more?n=5
func (h *RecommendHandler) MoreGames(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	q, err := h.bindQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	recs, err := h.recommendService.RecommendMore(c.Request().Context(), userID, q.GameID, q.N)
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/games/:id/more/debug?n=5
func (h *RecommendHandler) DebugMoreGames(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	q, err := h.bindQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	recs, err := h.recommendService.DebugRecommendMore(c.Request().Context(), userID, q.GameID, q.N)
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

// GET /api/v1/games/:id/similar?n=5
func (h *RecommendHandler) SimilarGames(c echo.Context) error {
	q, err := h.bindQuery(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	recs, err := h.recommendService.SimilarGames(c.Request().Context(), q.GameID, q.N)
	if err != nil {
		return h.serviceError(c, err)
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(recs))
}

func (h *RecommendHandler) bindQuery(c echo.Context) (MoreGamesQuery, error) {
	var q MoreGamesQuery
	if err := c.Bind(&q); err != nil {
		return q, err
	}
	if err := h.validate.Struct(&q); err != nil {
		return q, err
	}
	return q, nil
}

func (h *RecommendHandler) serviceError(c echo.Context, err error) error {
	if errors.Is(err, domain.ErrGameNotFound) {
		return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
	}

	logger.Error("recommend request failed", "path", c.Path(), "error", err)
	return c.JSON(http.StatusInternalServerError, ResponseError{Message: "failed to load recommendations"})
}
