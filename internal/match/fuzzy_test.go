package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSequenceRatio(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{name: "identical", a: "new royal", b: "new royal", want: 1},
		{name: "both empty", a: "", b: "", want: 1},
		{name: "one empty", a: "new royal", b: "", want: 0},
		{name: "disjoint", a: "abc", b: "xyz", want: 0},
		// "cotton" is the single matching block: 2*6/(13+14)
		{name: "shared word", a: "cotton fabric", b: "premium cotton", want: 2.0 * 6 / 27},
		// prefix containment: 2*9/(9+16)
		{name: "containment", a: "new royal", b: "new royal fabric", want: 2.0 * 9 / 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.InDelta(t, tt.want, sequenceRatio(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSequenceRatioSymmetricBounds(t *testing.T) {
	t.Parallel()

	pairs := [][2]string{
		{"cassia 101", "cassia 102"},
		{"agora rayure biege", "agora 3787 rayure"},
		{"velvet", "velour"},
	}
	for _, p := range pairs {
		ab := sequenceRatio(p[0], p[1])
		ba := sequenceRatio(p[1], p[0])
		assert.InDelta(t, ab, ba, 1e-9, "ratio must be symmetric for %q/%q", p[0], p[1])
		assert.GreaterOrEqual(t, ab, 0.0)
		assert.LessOrEqual(t, ab, 1.0)
	}
}

func TestBestTokenSimilarity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, bestTokenSimilarity(
		[]string{"cotton", "fabric"}, []string{"premium", "cotton"}))
	assert.Equal(t, 0.0, bestTokenSimilarity(nil, []string{"cotton"}))
	assert.Equal(t, 0.0, bestTokenSimilarity([]string{"cotton"}, nil))

	// close but not equal tokens land strictly between 0 and 1
	s := bestTokenSimilarity([]string{"velvet"}, []string{"velvets"})
	assert.Greater(t, s, 0.5)
	assert.Less(t, s, 1.0)
}
