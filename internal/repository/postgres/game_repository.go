package postgres

import (
	"context"
	"fmt"
	"gameReco/domain"

	"gorm.io/gorm"
)

type GameRepository struct {
	DB *gorm.DB
}

func NewGameRepository(db *gorm.DB) *GameRepository {
	return &GameRepository{
		DB: db,
	}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// FindPublished loads every published game with all of its content records,
// games ordered by id and each sub-record list by its own id.
func (r *GameRepository) FindPublished(ctx context.Context) ([]domain.Game, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var games []domain.Game
	if err := r.DB.WithContext(ctx).
		Where("status = ?", domain.GameStatusPublished).
		Preload("Heroes", orderByID).
		Preload("Storylines", orderByID).
		Preload("Gameplays", orderByID).
		Preload("Mechanics", orderByID).
		Preload("Modes", orderByID).
		Preload("Infos", orderByID).
		Order("game_post_id ASC").
		Find(&games).Error; err != nil {
		return nil, fmt.Errorf("failed to query published games: %w", err)
	}

	return games, nil
}
