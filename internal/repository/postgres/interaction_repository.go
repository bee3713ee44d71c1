package postgres

import (
	"context"
	"fmt"
	"gameReco/domain"

	"gorm.io/gorm"
)

type InteractionRepository struct {
	DB *gorm.DB
}

func NewInteractionRepository(db *gorm.DB) *InteractionRepository {
	return &InteractionRepository{
		DB: db,
	}
}

func (r *InteractionRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Interaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var interactions []domain.Interaction
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&interactions).Error; err != nil {
		return nil, fmt.Errorf("failed to query interactions: %w", err)
	}

	return interactions, nil
}

const sameRolePeersQuery = `
SELECT DISTINCT i2.user_id
FROM interactions i1
JOIN interactions i2 ON i1.game_post_id = i2.game_post_id
JOIN users u1 ON u1.user_id = i1.user_id
JOIN users u2 ON u2.user_id = i2.user_id
WHERE i1.user_id = ?
  AND u1.role = u2.role
  AND i2.user_id <> ?
ORDER BY i2.user_id`

// FindSameRolePeers returns users sharing userID's role who interacted with
// at least one of the same games.
func (r *InteractionRepository) FindSameRolePeers(ctx context.Context, userID uint) ([]uint, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var peers []uint
	if err := r.DB.WithContext(ctx).
		Raw(sameRolePeersQuery, userID, userID).
		Scan(&peers).Error; err != nil {
		return nil, fmt.Errorf("failed to query same-role peers: %w", err)
	}

	return peers, nil
}

// FindLikedGameIDs returns one entry per like, so repeated likes repeat.
func (r *InteractionRepository) FindLikedGameIDs(ctx context.Context, userID uint) ([]uint64, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ids []uint64
	if err := r.DB.WithContext(ctx).
		Model(&domain.Interaction{}).
		Where("user_id = ? AND interaction_type = ?", userID, domain.InteractionLike).
		Order("id ASC").
		Pluck("game_post_id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to query liked games: %w", err)
	}

	return ids, nil
}
