package similarity

import (
	"math"
	"sort"
)

// MaxFeatures caps the vocabulary to the most frequent terms of the corpus.
const MaxFeatures = 5000

type Document struct {
	GameID uint64 `json:"game_id"`
	Text   string `json:"text"`
}

// Weight is one non-zero TF-IDF entry; Term indexes the vocabulary.
type Weight struct {
	Term  int
	Value float64
}

// Vector is a sparse, L2 normalized TF-IDF row sorted by term index.
type Vector []Weight

type Vectorizer struct {
	MaxFeatures int
}

func NewVectorizer() *Vectorizer {
	return &Vectorizer{MaxFeatures: MaxFeatures}
}

// FitTransform learns the vocabulary and idf of docs and returns one
// normalized vector per document, in input order, plus the vocabulary.
func (v *Vectorizer) FitTransform(docs []Document) ([]Vector, []string) {
	counts := make([]map[string]int, len(docs))
	total := make(map[string]int)
	for i, d := range docs {
		tf := make(map[string]int)
		for _, tok := range Tokenize(d.Text) {
			tf[tok]++
			total[tok]++
		}
		counts[i] = tf
	}

	vocab := v.vocabulary(total)
	termIdx := make(map[string]int, len(vocab))
	for i, t := range vocab {
		termIdx[t] = i
	}

	df := make([]int, len(vocab))
	for _, tf := range counts {
		for term := range tf {
			if idx, ok := termIdx[term]; ok {
				df[idx]++
			}
		}
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	vectors := make([]Vector, len(docs))
	for i, tf := range counts {
		row := make(Vector, 0, len(tf))
		var norm float64
		for term, c := range tf {
			idx, ok := termIdx[term]
			if !ok {
				continue
			}
			w := float64(c) * idf[idx]
			row = append(row, Weight{Term: idx, Value: w})
			norm += w * w
		}
		if norm > 0 {
			norm = math.Sqrt(norm)
			for j := range row {
				row[j].Value /= norm
			}
		}
		sort.Slice(row, func(a, b int) bool { return row[a].Term < row[b].Term })
		vectors[i] = row
	}

	return vectors, vocab
}

// vocabulary keeps the MaxFeatures terms with the highest corpus count, ties
// broken lexically, and returns them in lexical order.
func (v *Vectorizer) vocabulary(total map[string]int) []string {
	terms := make([]string, 0, len(total))
	for t := range total {
		terms = append(terms, t)
	}

	limit := v.MaxFeatures
	if limit > 0 && len(terms) > limit {
		sort.Slice(terms, func(i, j int) bool {
			if total[terms[i]] != total[terms[j]] {
				return total[terms[i]] > total[terms[j]]
			}
			return terms[i] < terms[j]
		})
		terms = terms[:limit]
	}

	sort.Strings(terms)
	return terms
}

// cosine of two normalized sparse vectors. Empty vectors give 0.
func cosine(a, b Vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	var dot float64
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i].Term == b[j].Term:
			dot += a[i].Value * b[j].Value
			i++
			j++
		case a[i].Term < b[j].Term:
			i++
		default:
			j++
		}
	}
	return clamp01(dot)
}

func clamp01(x float64) float64 {
	if math.IsNaN(x) || x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
