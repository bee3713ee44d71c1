package similarity

import (
	"fmt"
	"sort"
)

// Index maps game ids to rows of a dense, symmetric cosine similarity
// matrix. The diagonal is always 1.
type Index struct {
	ids    []uint64
	pos    map[uint64]int
	matrix [][]float64
}

type Neighbor struct {
	GameID     uint64  `json:"game_id"`
	Similarity float64 `json:"similarity"`
}

// Build fits TF-IDF over docs and computes the full pairwise similarity
// matrix. It is pure: the same documents always give the same index.
func Build(docs []Document) *Index {
	idx := &Index{
		ids:    make([]uint64, 0, len(docs)),
		pos:    make(map[uint64]int, len(docs)),
		matrix: make([][]float64, len(docs)),
	}
	if len(docs) == 0 {
		return idx
	}

	vectors, _ := NewVectorizer().FitTransform(docs)

	for i, d := range docs {
		idx.ids = append(idx.ids, d.GameID)
		idx.pos[d.GameID] = i
		idx.matrix[i] = make([]float64, len(docs))
	}

	for i := range vectors {
		idx.matrix[i][i] = 1
		for j := i + 1; j < len(vectors); j++ {
			s := cosine(vectors[i], vectors[j])
			idx.matrix[i][j] = s
			idx.matrix[j][i] = s
		}
	}

	return idx
}

func (x *Index) Len() int {
	return len(x.ids)
}

// IDs returns the game ids in row order.
func (x *Index) IDs() []uint64 {
	out := make([]uint64, len(x.ids))
	copy(out, x.ids)
	return out
}

func (x *Index) Contains(id uint64) bool {
	_, ok := x.pos[id]
	return ok
}

// Similarity returns sim(a, b), or 0 when either game is not indexed.
func (x *Index) Similarity(a, b uint64) float64 {
	i, ok := x.pos[a]
	if !ok {
		return 0
	}
	j, ok := x.pos[b]
	if !ok {
		return 0
	}
	return x.matrix[i][j]
}

// Neighbors ranks every other game by content similarity to id, highest
// first, ties by id ascending.
func (x *Index) Neighbors(id uint64, n int) []Neighbor {
	row, ok := x.pos[id]
	if !ok {
		return nil
	}

	out := make([]Neighbor, 0, len(x.ids)-1)
	for j, other := range x.ids {
		if other == id {
			continue
		}
		out = append(out, Neighbor{GameID: other, Similarity: x.matrix[row][j]})
	}

	sort.Slice(out, func(a, b int) bool {
		if out[a].Similarity != out[b].Similarity {
			return out[a].Similarity > out[b].Similarity
		}
		return out[a].GameID < out[b].GameID
	})

	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Snapshot is the serialized form of an Index, keyed by corpus fingerprint.
type Snapshot struct {
	Fingerprint uint64      `json:"fingerprint"`
	IDs         []uint64    `json:"ids"`
	Matrix      [][]float64 `json:"matrix"`
}

func (x *Index) Snapshot(fingerprint uint64) *Snapshot {
	return &Snapshot{
		Fingerprint: fingerprint,
		IDs:         x.IDs(),
		Matrix:      x.matrix,
	}
}

// FromSnapshot rebuilds an Index, rejecting anything that is not a square
// matrix matching the id list.
func FromSnapshot(s *Snapshot) (*Index, error) {
	if s == nil {
		return nil, fmt.Errorf("nil snapshot")
	}
	if len(s.Matrix) != len(s.IDs) {
		return nil, fmt.Errorf("snapshot has %d ids but %d rows", len(s.IDs), len(s.Matrix))
	}

	idx := &Index{
		ids:    make([]uint64, len(s.IDs)),
		pos:    make(map[uint64]int, len(s.IDs)),
		matrix: s.Matrix,
	}
	copy(idx.ids, s.IDs)

	for i, id := range s.IDs {
		if len(s.Matrix[i]) != len(s.IDs) {
			return nil, fmt.Errorf("snapshot row %d has %d columns, want %d", i, len(s.Matrix[i]), len(s.IDs))
		}
		if _, dup := idx.pos[id]; dup {
			return nil, fmt.Errorf("snapshot has duplicate game id %d", id)
		}
		idx.pos[id] = i
	}

	return idx, nil
}
