package similarity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{name: "lowercases and splits punctuation", in: "Dragon-Slayer, CASTLE!", want: []string{"dragon", "slayer", "castle"}},
		{name: "drops stop words", in: "The Co-op mode of the game", want: []string{"op", "mode", "game"}},
		{name: "drops single runes", in: "a 2 x ä rpg", want: []string{"rpg"}},
		{name: "keeps underscores and digits", in: "level_2 x64", want: []string{"level_2", "x64"}},
		{name: "empty", in: "   ", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.in)
			if len(tt.want) == 0 {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVectorizer_MaxFeaturesKeepsMostFrequent(t *testing.T) {
	v := &Vectorizer{MaxFeatures: 2}
	_, vocab := v.FitTransform([]Document{
		{GameID: 1, Text: "alpha alpha beta"},
		{GameID: 2, Text: "beta gamma delta"},
	})
	assert.Equal(t, []string{"alpha", "beta"}, vocab)
}

func TestVectorizer_MaxFeaturesTieBreaksLexically(t *testing.T) {
	v := &Vectorizer{MaxFeatures: 1}
	_, vocab := v.FitTransform([]Document{{GameID: 1, Text: "zeta alpha"}})
	assert.Equal(t, []string{"alpha"}, vocab)
}

func TestVectorizer_RowsAreNormalized(t *testing.T) {
	vectors, _ := NewVectorizer().FitTransform([]Document{
		{GameID: 1, Text: "dragon dragon castle"},
		{GameID: 2, Text: "the of and"},
	})
	require.Len(t, vectors, 2)

	var norm float64
	for _, w := range vectors[0] {
		norm += w.Value * w.Value
	}
	assert.InDelta(t, 1.0, norm, eps)
	assert.Empty(t, vectors[1])
}

func TestBuild_EmptyCorpus(t *testing.T) {
	idx := Build(nil)
	assert.Equal(t, 0, idx.Len())
	assert.Empty(t, idx.IDs())
	assert.False(t, idx.Contains(1))
	assert.Nil(t, idx.Neighbors(1, 5))
}

func TestBuild_KnownValue(t *testing.T) {
	idx := Build([]Document{
		{GameID: 1, Text: "dragon castle"},
		{GameID: 2, Text: "dragon forest"},
		{GameID: 3, Text: "space"},
	})

	shared := math.Log(4.0/3.0) + 1
	unique := math.Log(2.0) + 1
	want := shared * shared / (shared*shared + unique*unique)

	assert.InDelta(t, want, idx.Similarity(1, 2), eps)
	assert.Equal(t, 0.0, idx.Similarity(1, 3))
	assert.Equal(t, 0.0, idx.Similarity(2, 3))
}

func TestBuild_IdenticalDocuments(t *testing.T) {
	idx := Build([]Document{
		{GameID: 1, Text: "open world survival"},
		{GameID: 2, Text: "open world survival"},
	})
	assert.InDelta(t, 1.0, idx.Similarity(1, 2), eps)
}

func TestBuild_Properties(t *testing.T) {
	docs := []Document{
		{GameID: 10, Text: "space shooter arcade lasers"},
		{GameID: 11, Text: "arcade racing cars lasers"},
		{GameID: 12, Text: ""},
		{GameID: 13, Text: "the and of"},
		{GameID: 14, Text: "racing simulator cars cars"},
		{GameID: 15, Text: "puzzle platformer"},
	}
	idx := Build(docs)
	require.Equal(t, len(docs), idx.Len())
	assert.Equal(t, []uint64{10, 11, 12, 13, 14, 15}, idx.IDs())

	for _, a := range docs {
		assert.Equal(t, 1.0, idx.Similarity(a.GameID, a.GameID), "diagonal of %d", a.GameID)
		for _, b := range docs {
			s := idx.Similarity(a.GameID, b.GameID)
			assert.GreaterOrEqual(t, s, 0.0)
			assert.LessOrEqual(t, s, 1.0)
			assert.Equal(t, s, idx.Similarity(b.GameID, a.GameID), "symmetry %d/%d", a.GameID, b.GameID)
		}
	}

	assert.Equal(t, 0.0, idx.Similarity(12, 10))
	assert.Equal(t, 0.0, idx.Similarity(13, 12))
	assert.Equal(t, 0.0, idx.Similarity(10, 999))
}

func TestBuild_Deterministic(t *testing.T) {
	docs := []Document{
		{GameID: 1, Text: "tactical shooter squads"},
		{GameID: 2, Text: "squads of tactical bots"},
		{GameID: 3, Text: "farming"},
	}
	a := Build(docs)
	b := Build(docs)
	assert.Equal(t, a.matrix, b.matrix)
}

func TestIndex_Neighbors(t *testing.T) {
	idx := Build([]Document{
		{GameID: 1, Text: "dragon castle"},
		{GameID: 4, Text: "space"},
		{GameID: 2, Text: "dragon forest"},
		{GameID: 3, Text: "ocean"},
	})

	got := idx.Neighbors(1, 0)
	require.Len(t, got, 3)
	assert.Equal(t, uint64(2), got[0].GameID)
	// zero similarity ties fall back to id order
	assert.Equal(t, uint64(3), got[1].GameID)
	assert.Equal(t, uint64(4), got[2].GameID)

	assert.Len(t, idx.Neighbors(1, 2), 2)
}

func TestSnapshotRoundTrip(t *testing.T) {
	idx := Build([]Document{
		{GameID: 5, Text: "stealth action"},
		{GameID: 6, Text: "action rpg"},
	})

	back, err := FromSnapshot(idx.Snapshot(42))
	require.NoError(t, err)
	assert.Equal(t, idx.IDs(), back.IDs())
	assert.Equal(t, idx.Similarity(5, 6), back.Similarity(5, 6))
}

func TestFromSnapshot_Invalid(t *testing.T) {
	tests := []struct {
		name string
		snap *Snapshot
	}{
		{name: "nil", snap: nil},
		{name: "row count mismatch", snap: &Snapshot{IDs: []uint64{1, 2}, Matrix: [][]float64{{1}}}},
		{name: "not square", snap: &Snapshot{IDs: []uint64{1}, Matrix: [][]float64{{1, 0}}}},
		{name: "duplicate id", snap: &Snapshot{IDs: []uint64{1, 1}, Matrix: [][]float64{{1, 0}, {0, 1}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromSnapshot(tt.snap)
			assert.Error(t, err)
		})
	}
}
