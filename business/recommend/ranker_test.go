package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRank(t *testing.T) {
	scores := map[uint64]float64{
		7: 0.5,
		3: 0.9,
		5: 0.5,
		1: 0.5,
		9: 0.1,
	}

	got := Rank(scores, 4)
	ids := make([]uint64, 0, len(got))
	for _, r := range got {
		ids = append(ids, r.GameID)
	}
	assert.Equal(t, []uint64{3, 1, 5, 7}, ids)
}

func TestRank_Lengths(t *testing.T) {
	scores := map[uint64]float64{1: 1, 2: 2, 3: 3}

	assert.Len(t, Rank(scores, 5), 3)
	assert.Len(t, Rank(scores, 2), 2)
	assert.Len(t, Rank(scores, 0), 0)
	assert.Empty(t, Rank(map[uint64]float64{}, 5))
}

func TestRank_Deterministic(t *testing.T) {
	scores := map[uint64]float64{}
	for i := uint64(1); i <= 50; i++ {
		scores[i] = float64(i % 4)
	}

	first := Rank(scores, 20)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Rank(scores, 20))
	}
}
