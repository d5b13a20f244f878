package match_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-reconciler/constants"
	"github.com/joseph-ayodele/invoice-reconciler/internal/entity"
	"github.com/joseph-ayodele/invoice-reconciler/internal/match"
)

func defaultMatcher() *match.Matcher {
	return match.New(match.Config{}, match.Vocabulary{}, nil)
}

func TestMatchExactPriority(t *testing.T) {
	t.Parallel()

	m := defaultMatcher()
	candidates := []entity.Material{
		{Name: "Cassia 101", Price: 720},
		{Name: "CASSIA - 101 DELUXE", Price: 880}, // would win substring, must not
	}

	res := m.Match("CASSIA - 101 Isstegz00 | 5%", candidates)

	require.True(t, res.Matched)
	assert.Equal(t, constants.AlgorithmExact, res.Algorithm)
	assert.Equal(t, 100.0, res.Score)
	assert.Equal(t, constants.ConfidenceHigh, res.Tier)
	assert.Equal(t, "Cassia 101", res.Candidate.Name)
}

func TestMatchSubstring(t *testing.T) {
	t.Parallel()

	m := defaultMatcher()
	candidates := []entity.Material{{Name: "NEW ROYAL FABRIC", Price: 550}}

	res := m.Match("NEW ROYAL", candidates)

	require.True(t, res.Matched)
	assert.Equal(t, constants.AlgorithmSubstring, res.Algorithm)
	assert.InDelta(t, 88.5, res.Score, 0.5)
	assert.Equal(t, constants.ConfidenceHigh, res.Tier)
	assert.Equal(t, 550.0, res.Candidate.Price)
}

func TestMatchSubstringTieBreakLengthDiff(t *testing.T) {
	t.Parallel()

	// both candidates share the containment ratio 0.75 with the query, so the
	// smaller absolute length difference decides
	m := defaultMatcher()
	candidates := []entity.Material{
		{Name: "xyz royal fabric", Price: 1}, // |12-16| = 4
		{Name: "al fabric", Price: 2},        // |12-9|  = 3
	}

	res := m.Match("royal fabric", candidates)

	require.True(t, res.Matched)
	assert.Equal(t, constants.AlgorithmSubstring, res.Algorithm)
	assert.Equal(t, "al fabric", res.Candidate.Name)
}

func TestMatchFuzzy(t *testing.T) {
	t.Parallel()

	m := defaultMatcher()
	candidates := []entity.Material{{Name: "Premium Cotton", Price: 300}}

	res := m.Match("cotton fabric", candidates)

	require.True(t, res.Matched)
	assert.Equal(t, constants.AlgorithmFuzzy, res.Algorithm)
	assert.GreaterOrEqual(t, res.Score, 70.0)
	assert.Less(t, res.Score, 80.0)
	assert.Equal(t, constants.ConfidenceMedium, res.Tier)
}

func TestMatchSemantic(t *testing.T) {
	t.Parallel()

	m := defaultMatcher()
	candidates := []entity.Material{
		{Name: "Premium Quality Cotton Weave Collection Crimson", Price: 950},
	}

	res := m.Match("red cotton", candidates)

	require.True(t, res.Matched)
	assert.Equal(t, constants.AlgorithmSemantic, res.Algorithm)
	assert.InDelta(t, 50.0, res.Score, 1e-9)
	assert.Equal(t, constants.ConfidenceLow, res.Tier)
}

func TestMatchConfidenceFloorForcesNoMatch(t *testing.T) {
	t.Parallel()

	// semantic clears its own lowered bar at 33.3 but stays under the global
	// floor; the result must be the canonical no-match shape
	m := match.New(match.Config{
		FuzzyThreshold:    90,
		SemanticThreshold: 30,
		ConfidenceFloor:   50,
	}, match.Vocabulary{}, nil)
	candidates := []entity.Material{{Name: "blue cotton something", Price: 10}}

	res := m.Match("red cotton", candidates)

	assert.False(t, res.Matched)
	assert.Nil(t, res.Candidate)
	assert.Equal(t, constants.AlgorithmNone, res.Algorithm)
	assert.Equal(t, 0.0, res.Score)
	assert.Equal(t, constants.ConfidenceNoMatch, res.Tier)
}

func TestMatchNoCandidates(t *testing.T) {
	t.Parallel()

	m := defaultMatcher()

	for _, candidates := range [][]entity.Material{nil, {}} {
		res := m.Match("anything at all", candidates)
		assert.False(t, res.Matched)
		assert.Equal(t, constants.AlgorithmNone, res.Algorithm)
		assert.Equal(t, 0.0, res.Score)
		assert.Equal(t, constants.ConfidenceNoMatch, res.Tier)
	}
}

func TestMatchEmptyQuery(t *testing.T) {
	t.Parallel()

	m := defaultMatcher()
	candidates := []entity.Material{{Name: "NEW ROYAL FABRIC", Price: 550}}

	for _, q := range []string{"", "   ", "## || --"} {
		res := m.Match(q, candidates)
		assert.False(t, res.Matched, "query %q must not match", q)
		assert.Equal(t, constants.AlgorithmNone, res.Algorithm)
	}
}

func TestMatchOrderTieBreak(t *testing.T) {
	t.Parallel()

	m := defaultMatcher()
	candidates := []entity.Material{
		{Name: "Royal Mix", Price: 100},
		{Name: "ROYAL MIX", Price: 200}, // same normalized name, later in sequence
	}

	res := m.Match("royal mix", candidates)

	require.True(t, res.Matched)
	assert.Equal(t, constants.AlgorithmExact, res.Algorithm)
	assert.Equal(t, 100.0, res.Candidate.Price)
}

func TestMatchAttributesPassThrough(t *testing.T) {
	t.Parallel()

	m := defaultMatcher()
	attrs := map[string]string{"category": "Upholstery", "gsm": "320"}
	candidates := []entity.Material{
		{Name: "NEW ROYAL FABRIC", Price: 550, Supplier: "Home Ideas DDecor", Attributes: attrs},
	}

	res := m.Match("NEW ROYAL", candidates)

	require.True(t, res.Matched)
	assert.Equal(t, "Home Ideas DDecor", res.Candidate.Supplier)
	assert.Equal(t, attrs, res.Candidate.Attributes)
}

func TestMatchThresholdOverride(t *testing.T) {
	t.Parallel()

	// raising the substring bar pushes the same pair down the cascade
	m := match.New(match.Config{SubstringThreshold: 95}, match.Vocabulary{}, nil)
	candidates := []entity.Material{{Name: "NEW ROYAL FABRIC", Price: 550}}

	res := m.Match("NEW ROYAL", candidates)

	require.True(t, res.Matched)
	assert.Equal(t, constants.AlgorithmFuzzy, res.Algorithm)
}

func TestMatchCustomVocabulary(t *testing.T) {
	t.Parallel()

	query := "foo zed"
	candidates := []entity.Material{{Name: "bar quux zed thing", Price: 5}}

	// built-in vocabulary knows none of these words
	res := defaultMatcher().Match(query, candidates)
	assert.False(t, res.Matched)

	custom := match.New(match.Config{}, match.Vocabulary{FabricTypes: []string{"zed"}}, nil)
	res = custom.Match(query, candidates)
	require.True(t, res.Matched)
	assert.Equal(t, constants.AlgorithmSemantic, res.Algorithm)
	assert.Equal(t, 100.0, res.Score)
}

func TestMatchedScoreNeverBelowFloor(t *testing.T) {
	t.Parallel()

	m := defaultMatcher()
	candidates := []entity.Material{
		{Name: "NEW ROYAL FABRIC", Price: 550},
		{Name: "Premium Cotton", Price: 300},
		{Name: "Agora 3787 Rayure Biege", Price: 1250},
		{Name: "CASSIA - 101", Price: 720},
	}
	queries := []string{
		"NEW ROYAL", "cotton fabric", "agora rayure", "CASSIA - 101",
		"totally unrelated gibberish", "zz", "",
	}

	for _, q := range queries {
		res := m.Match(q, candidates)
		if res.Matched {
			assert.GreaterOrEqual(t, res.Score, 50.0, "query %q", q)
			assert.NotNil(t, res.Candidate, "query %q", q)
		} else {
			assert.Equal(t, 0.0, res.Score, "query %q", q)
			assert.Nil(t, res.Candidate, "query %q", q)
		}
	}
}
