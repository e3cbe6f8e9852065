// GamePilot - Contextual Game Recommendation Server
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/gamepilot

// Package reranking holds optional post-processing for ranked recommendations.
package reranking

import (
	"context"

	"github.com/tomtom215/gamepilot/internal/recommend"
)

// maxRerankSize bounds the similarity matrix.
const maxRerankSize = 1000

// MMR implements Maximal Marginal Relevance over game genres:
//
//	MMR = argmax[lambda * score(i)/100 - (1-lambda) * max(sim(i, s)) for s in selected]
//
// lambda = 1 keeps the original order, lambda = 0 maximises genre spread.
type MMR struct {
	lambda float64
}

// NewMMR creates an MMR reranker. lambda is clamped to [0, 1].
func NewMMR(lambda float64) *MMR {
	if lambda < 0 {
		lambda = 0
	}
	if lambda > 1 {
		lambda = 1
	}
	return &MMR{lambda: lambda}
}

// Name returns the reranker identifier.
func (m *MMR) Name() string {
	return "mmr"
}

// Rerank greedily picks k recommendations balancing score against genre
// overlap with those already picked. Scores are left untouched.
//
//nolint:gocritic // rangeValCopy: Recommendation copied in range for readability
func (m *MMR) Rerank(ctx context.Context, recs []recommend.Recommendation, k int) []recommend.Recommendation {
	if len(recs) == 0 || k <= 0 {
		return recs
	}
	if k > len(recs) {
		k = len(recs)
	}
	if k > maxRerankSize {
		k = maxRerankSize
	}
	if m.lambda >= 1 {
		return recs[:k]
	}

	pool := recs
	if len(pool) > maxRerankSize {
		pool = pool[:maxRerankSize]
	}
	sims := similarityMatrix(pool)

	selected := make([]recommend.Recommendation, 0, k)
	picked := make([]bool, len(pool))
	var pickedIdx []int

	for len(selected) < k {
		if ctx.Err() != nil {
			break
		}
		best, bestMMR := -1, 0.0
		for i, r := range pool {
			if picked[i] {
				continue
			}
			maxSim := 0.0
			for _, j := range pickedIdx {
				if sims[i][j] > maxSim {
					maxSim = sims[i][j]
				}
			}
			score := m.lambda*(r.Score/100) - (1-m.lambda)*maxSim
			if best < 0 || score > bestMMR {
				best, bestMMR = i, score
			}
		}
		if best < 0 {
			break
		}
		picked[best] = true
		pickedIdx = append(pickedIdx, best)
		selected = append(selected, pool[best])
	}

	// A cancelled context still returns a full-length list.
	for i := 0; len(selected) < k && i < len(pool); i++ {
		if !picked[i] {
			selected = append(selected, pool[i])
		}
	}
	return selected
}

func similarityMatrix(recs []recommend.Recommendation) [][]float64 {
	n := len(recs)
	sets := make([]map[string]struct{}, n)
	for i := range recs {
		sets[i] = make(map[string]struct{}, len(recs[i].Game.Genres))
		for _, g := range recs[i].Game.Genres {
			sets[i][g.ID] = struct{}{}
		}
	}

	sims := make([][]float64, n)
	for i := range sims {
		sims[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			s := jaccard(sets[i], sets[j])
			sims[i][j], sims[j][i] = s, s
		}
	}
	return sims
}

func jaccard(a, b map[string]struct{}) float64 {
	inter := 0
	for g := range a {
		if _, ok := b[g]; ok {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

var _ recommend.Reranker = (*MMR)(nil)
