package match

import (
	"log/slog"
	"math"
	"strings"

	"github.com/joseph-ayodele/invoice-reconciler/constants"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
)

// Config holds the per-strategy minimum scores and the global confidence
// floor. Zero values fall back to the defaults.
type Config struct {
	SubstringThreshold float64 // default 60
	FuzzyThreshold     float64 // default 70
	SemanticThreshold  float64 // default 50
	ConfidenceFloor    float64 // default 50; winning scores below it are NO_MATCH
}

// DefaultConfig returns the thresholds the original engine shipped with.
func DefaultConfig() Config {
	return Config{
		SubstringThreshold: 60,
		FuzzyThreshold:     70,
		SemanticThreshold:  50,
		ConfidenceFloor:    50,
	}
}

// Matcher maps noisy invoice item names onto reference materials. It holds
// configuration only; Match is a pure function of its arguments and safe for
// concurrent use.
type Matcher struct {
	cfg    Config
	vocab  lookup
	logger *slog.Logger
}

func New(cfg Config, vocab Vocabulary, logger *slog.Logger) *Matcher {
	if logger == nil {
		logger = slog.Default()
	}
	def := DefaultConfig()
	if cfg.SubstringThreshold <= 0 {
		cfg.SubstringThreshold = def.SubstringThreshold
	}
	if cfg.FuzzyThreshold <= 0 {
		cfg.FuzzyThreshold = def.FuzzyThreshold
	}
	if cfg.SemanticThreshold <= 0 {
		cfg.SemanticThreshold = def.SemanticThreshold
	}
	if cfg.ConfidenceFloor <= 0 {
		cfg.ConfidenceFloor = def.ConfidenceFloor
	}
	if len(vocab.FabricTypes)+len(vocab.Colors)+len(vocab.Patterns) == 0 {
		vocab = DefaultVocabulary()
	}
	return &Matcher{cfg: cfg, vocab: vocab.compile(), logger: logger}
}

// strategyFunc scores one candidate against the normalized query in [0,100].
type strategyFunc func(q, c NormalizedName) float64

// strategy is one rung of the cascade. secondary breaks score ties before
// falling back to input order; nil means input order only.
type strategy struct {
	algo      constants.MatchAlgorithm
	threshold float64
	score     strategyFunc
	secondary func(q, c NormalizedName) float64
}

func (m *Matcher) strategies() []strategy {
	return []strategy{
		{algo: constants.AlgorithmExact, threshold: 100, score: exactScore},
		{algo: constants.AlgorithmSubstring, threshold: m.cfg.SubstringThreshold, score: substringScore,
			secondary: func(q, c NormalizedName) float64 {
				return -math.Abs(float64(len(q.Canonical) - len(c.Canonical)))
			}},
		{algo: constants.AlgorithmFuzzy, threshold: m.cfg.FuzzyThreshold, score: m.fuzzyScore},
		{algo: constants.AlgorithmSemantic, threshold: m.cfg.SemanticThreshold, score: m.semanticScore},
	}
}

// Match runs the cascade over candidates and returns the first strategy's
// winner, or the canonical no-match result. Candidates are read-only for the
// duration of the call; their normalized forms are memoized once per call.
// A nil or empty candidate slice and an empty (post-normalization) query both
// yield NO_MATCH deterministically.
func (m *Matcher) Match(rawQuery string, candidates []entity.Material) entity.MatchResult {
	q := Normalize(rawQuery)
	if q.Canonical == "" || len(candidates) == 0 {
		return entity.NoMatch()
	}

	norms := make([]NormalizedName, len(candidates))
	for i := range candidates {
		norms[i] = Normalize(candidates[i].Name)
	}

	for _, st := range m.strategies() {
		best := -1
		var bestScore, bestSec float64
		for i := range candidates {
			score := st.score(q, norms[i])
			if score < st.threshold {
				continue
			}
			sec := 0.0
			if st.secondary != nil {
				sec = st.secondary(q, norms[i])
			}
			if best < 0 || score > bestScore || (score == bestScore && sec > bestSec) {
				best, bestScore, bestSec = i, score, sec
			}
		}
		if best < 0 {
			continue
		}
		if bestScore < m.cfg.ConfidenceFloor {
			// strategy cleared its own bar but not the global floor
			m.logger.Debug("match.floor_reject",
				"algorithm", st.algo, "score", bestScore, "floor", m.cfg.ConfidenceFloor)
			return entity.NoMatch()
		}
		return entity.MatchResult{
			Matched:   true,
			Candidate: &candidates[best],
			Algorithm: st.algo,
			Score:     bestScore,
			Tier:      constants.TierForScore(bestScore),
		}
	}
	return entity.NoMatch()
}

func exactScore(q, c NormalizedName) float64 {
	if c.Canonical != "" && q.Canonical == c.Canonical {
		return 100
	}
	return 0
}

// substringScore checks containment in both directions over canonical forms.
// Containment scores on an affine scale of the length ratio: a query covering
// the whole candidate (or vice versa) approaches 95, a sliver of it stays
// near 80.
func substringScore(q, c NormalizedName) float64 {
	lq, lc := len(q.Canonical), len(c.Canonical)
	if lq == 0 || lc == 0 {
		return 0
	}
	if !strings.Contains(c.Canonical, q.Canonical) && !strings.Contains(q.Canonical, c.Canonical) {
		return 0
	}
	shorter, longer := float64(lq), float64(lc)
	if shorter > longer {
		shorter, longer = longer, shorter
	}
	score := 80 + 15*shorter/longer
	if score > 95 {
		score = 95
	}
	return score
}

// fuzzyScore is the arithmetic mean of two independent similarity measures:
// a character-sequence ratio over the canonical strings and the best
// Levenshtein token similarity.
func (m *Matcher) fuzzyScore(q, c NormalizedName) float64 {
	if q.Canonical == "" || c.Canonical == "" {
		return 0
	}
	seq := sequenceRatio(q.Canonical, c.Canonical)
	tok := bestTokenSimilarity(q.Tokens, c.Tokens)
	return 100 * (seq + tok) / 2
}

// semanticScore intersects the recognized keyword sets of both names.
// Zero when either side has no recognized keywords.
func (m *Matcher) semanticScore(q, c NormalizedName) float64 {
	qk := m.vocab.keywords(q.Tokens)
	ck := m.vocab.keywords(c.Tokens)
	if len(qk) == 0 || len(ck) == 0 {
		return 0
	}
	inter := 0
	union := len(ck)
	for w := range qk {
		if _, ok := ck[w]; ok {
			inter++
		} else {
			union++
		}
	}
	return 100 * float64(inter) / float64(union)
}
