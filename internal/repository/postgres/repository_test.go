package postgres

import (
	"context"
	"gameReco/domain"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameRepository_FindPublished(t *testing.T) {
	tx := txDB(t)
	seedGame(t, tx, 9002, domain.GameStatusPublished, "Second")
	seedGame(t, tx, 9001, domain.GameStatusPublished, "First")
	seedGame(t, tx, 9003, "draft", "Hidden")

	games, err := NewGameRepository(tx).FindPublished(context.Background())
	require.NoError(t, err)

	var ids []uint64
	for _, g := range games {
		if g.GamePostID >= 9001 && g.GamePostID <= 9003 {
			ids = append(ids, g.GamePostID)
		}
	}
	assert.Equal(t, []uint64{9001, 9002}, ids)

	for _, g := range games {
		if g.GamePostID == 9001 {
			require.Len(t, g.Heroes, 1)
			assert.Equal(t, "First", g.Heroes[0].GameTitle.String)
			assert.False(t, g.Heroes[0].GameDescShort.Valid)
			require.Len(t, g.Infos, 1)
			assert.Equal(t, "rpg", g.Infos[0].Genres.String)
		}
	}
}

func TestInteractionRepository(t *testing.T) {
	tx := txDB(t)
	repo := NewInteractionRepository(tx)
	ctx := context.Background()

	seedUser(t, tx, 9101, "player")
	seedUser(t, tx, 9102, "player")
	seedUser(t, tx, 9103, "creator")
	seedUser(t, tx, 9104, "player")
	seedGame(t, tx, 9201, domain.GameStatusPublished, "Shared")
	seedGame(t, tx, 9202, domain.GameStatusPublished, "Other")

	seedInteraction(t, tx, 9101, 9201, domain.InteractionView)
	seedInteraction(t, tx, 9101, 9201, domain.InteractionLike)
	seedInteraction(t, tx, 9102, 9201, domain.InteractionView)
	seedInteraction(t, tx, 9102, 9202, domain.InteractionLike)
	seedInteraction(t, tx, 9102, 9202, domain.InteractionLike)
	seedInteraction(t, tx, 9103, 9201, domain.InteractionLike)
	seedInteraction(t, tx, 9104, 9202, domain.InteractionLike)

	own, err := repo.FindByUser(ctx, 9101)
	require.NoError(t, err)
	assert.Len(t, own, 2)

	peers, err := repo.FindSameRolePeers(ctx, 9101)
	require.NoError(t, err)
	// 9103 has another role, 9104 shares no game
	assert.Equal(t, []uint{9102}, peers)

	liked, err := repo.FindLikedGameIDs(ctx, 9102)
	require.NoError(t, err)
	assert.Equal(t, []uint64{9202, 9202}, liked)
}

func TestTrendingAndEditorialRepositories(t *testing.T) {
	tx := txDB(t)
	ctx := context.Background()

	require.NoError(t, tx.Create(&domain.Trending{GamePostID: 9301, TrendingScore: 1.5}).Error)
	require.NoError(t, tx.Create(&domain.EditorialPick{GamePostID: 9302}).Error)

	trending, err := NewTrendingRepository(tx).FindAll(ctx)
	require.NoError(t, err)
	assert.Contains(t, trending, domain.Trending{GamePostID: 9301, TrendingScore: 1.5})

	picks, err := NewEditorialPickRepository(tx).FindAll(ctx)
	require.NoError(t, err)
	assert.Contains(t, picks, uint64(9302))
}

func TestRepositories_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGameRepository(nil).FindPublished(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewInteractionRepository(nil).FindByUser(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewTrendingRepository(nil).FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = NewEditorialPickRepository(nil).FindAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
