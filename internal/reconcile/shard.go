package reconcile

import (
	"sync"

	"github.com/joseph-ayodele/invoice-reconciler/constants"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// MatchSharded fans one match call out over contiguous shards of a large
// candidate set and merges the per-shard winners. The merge applies the same
// precedence as the cascade itself: an earlier-listed algorithm beats a later
// one regardless of score, then higher score, then the shard that appeared
// first in the input. With shards <= 1 it degenerates to a plain Match.
func (s *Service) MatchSharded(rawName string, materials []entity.Material, shards int) entity.MatchResult {
	if shards <= 1 || len(materials) <= shards {
		return s.Matcher.Match(rawName, materials)
	}

	size := (len(materials) + shards - 1) / shards
	results := make([]entity.MatchResult, shards)
	var wg sync.WaitGroup
	for i := 0; i < shards; i++ {
		lo := i * size
		if lo >= len(materials) {
			break
		}
		hi := lo + size
		if hi > len(materials) {
			hi = len(materials)
		}
		wg.Add(1)
		go func(i int, shard []entity.Material) {
			defer wg.Done()
			results[i] = s.Matcher.Match(rawName, shard)
		}(i, materials[lo:hi])
	}
	wg.Wait()

	best := entity.NoMatch()
	for _, r := range results {
		if !r.Matched {
			continue
		}
		if !best.Matched || betterResult(r, best) {
			best = r
		}
	}
	return best
}

func betterResult(a, b entity.MatchResult) bool {
	ra, rb := constants.CascadeRank(a.Algorithm), constants.CascadeRank(b.Algorithm)
	if ra != rb {
		return ra < rb
	}
	return a.Score > b.Score
}
