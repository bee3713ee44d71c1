package postgres

import (
	"context"
	"fmt"
	"gameReco/domain"

	"gorm.io/gorm"
)

type TrendingRepository struct {
	DB *gorm.DB
}

func NewTrendingRepository(db *gorm.DB) *TrendingRepository {
	return &TrendingRepository{
		DB: db,
	}
}

func (r *TrendingRepository) FindAll(ctx context.Context) ([]domain.Trending, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var rows []domain.Trending
	if err := r.DB.WithContext(ctx).
		Order("game_post_id ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to query trending: %w", err)
	}

	return rows, nil
}

type EditorialPickRepository struct {
	DB *gorm.DB
}

func NewEditorialPickRepository(db *gorm.DB) *EditorialPickRepository {
	return &EditorialPickRepository{
		DB: db,
	}
}

func (r *EditorialPickRepository) FindAll(ctx context.Context) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ids []uint64
	if err := r.DB.WithContext(ctx).
		Model(&domain.EditorialPick{}).
		Order("game_post_id ASC").
		Pluck("game_post_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to query editorial picks: %w", err)
	}

	return ids, nil
}
