package match

import (
	"github.com/agext/levenshtein"
)

// sequenceRatio is a difflib-style similarity in [0,1]: twice the total size
// of matching blocks over the combined length. Blocks are found by recursive
// longest-common-substring splitting, which keeps the measure order-sensitive
// (unlike a bag-of-characters overlap).
func sequenceRatio(a, b string) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	ra, rb := []rune(a), []rune(b)
	m := matchingSize(ra, rb)
	return 2 * float64(m) / float64(len(ra)+len(rb))
}

func matchingSize(a, b []rune) int {
	ai, bi, size := longestCommonBlock(a, b)
	if size == 0 {
		return 0
	}
	total := size
	total += matchingSize(a[:ai], b[:bi])
	total += matchingSize(a[ai+size:], b[bi+size:])
	return total
}

// longestCommonBlock finds the longest common substring of a and b,
// preferring the earliest occurrence in a, then in b.
func longestCommonBlock(a, b []rune) (ai, bi, size int) {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai = i - size
					bi = j - size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, size
}

// bestTokenSimilarity is the edit-distance-derived measure of the fuzzy
// strategy: the best Levenshtein similarity over all (query token, candidate
// token) pairs. A shared exact token ("cotton" on both sides) scores 1
// regardless of the surrounding words.
func bestTokenSimilarity(q, c []string) float64 {
	best := 0.0
	for _, qt := range q {
		for _, ct := range c {
			if s := levenshtein.Similarity(qt, ct, nil); s > best {
				best = s
				if best == 1 {
					return best
				}
			}
		}
	}
	return best
}
