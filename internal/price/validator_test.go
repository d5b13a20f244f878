package price_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joseph-ayodele/invoice-reconciler/constants"
	"github.com/joseph-ayodele/invoice-reconciler/internal/price"
)

func f(v float64) *float64 { return &v }

func TestAssessSeverityBands(t *testing.T) {
	t.Parallel()

	v := price.NewValidator(price.Bands{})

	tests := []struct {
		name    string
		rate    float64
		dbPrice float64
		wantPct float64
		want    constants.PriceSeverity
	}{
		{name: "exact", rate: 150, dbPrice: 150, wantPct: 0, want: constants.PriceExact},
		{name: "minor boundary", rate: 102, dbPrice: 100, wantPct: 2, want: constants.PriceMinor},
		{name: "small", rate: 104, dbPrice: 100, wantPct: 4, want: constants.PriceSmall},
		{name: "small boundary", rate: 105, dbPrice: 100, wantPct: 5, want: constants.PriceSmall},
		{name: "moderate", rate: 108, dbPrice: 100, wantPct: 8, want: constants.PriceModerate},
		{name: "significant", rate: 112, dbPrice: 100, wantPct: 12, want: constants.PriceSignificant},
		{name: "significant boundary", rate: 125, dbPrice: 100, wantPct: 25, want: constants.PriceSignificant},
		{name: "major", rate: 150, dbPrice: 100, wantPct: 50, want: constants.PriceMajor},
		{name: "undercharge moderate", rate: 90, dbPrice: 100, wantPct: 10, want: constants.PriceModerate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := v.Assess(f(tt.rate), tt.dbPrice)
			require.NotNil(t, got)
			assert.Equal(t, tt.rate, got.InvoiceRate)
			assert.Equal(t, tt.dbPrice, got.DatabasePrice)
			assert.InDelta(t, tt.rate-tt.dbPrice, got.Difference, 1e-9)
			assert.InDelta(t, tt.wantPct, got.DifferencePct, 1e-9)
			assert.GreaterOrEqual(t, got.DifferencePct, 0.0)
			assert.Equal(t, tt.want, got.Severity)
		})
	}
}

func TestAssessSignedDifference(t *testing.T) {
	t.Parallel()

	v := price.NewValidator(price.Bands{})

	over := v.Assess(f(112), 100)
	require.NotNil(t, over)
	assert.Equal(t, 12.0, over.Difference)

	under := v.Assess(f(88), 100)
	require.NotNil(t, under)
	assert.Equal(t, -12.0, under.Difference)
	assert.Equal(t, over.DifferencePct, under.DifferencePct)
}

func TestAssessNotApplicable(t *testing.T) {
	t.Parallel()

	v := price.NewValidator(price.Bands{})

	assert.Nil(t, v.Assess(nil, 100), "missing rate")
	assert.Nil(t, v.Assess(f(0), 100), "zero rate")
	assert.Nil(t, v.Assess(f(-5), 100), "negative rate")
	assert.Nil(t, v.Assess(f(100), 0), "zero price")
	assert.Nil(t, v.Assess(f(100), -1), "negative price")
	assert.Nil(t, v.Assess(f(math.NaN()), 100), "NaN rate")
	assert.Nil(t, v.Assess(f(math.Inf(1)), 100), "infinite rate")
	assert.Nil(t, v.Assess(f(100), math.NaN()), "NaN price")
}

func TestAssessCustomBands(t *testing.T) {
	t.Parallel()

	v := price.NewValidator(price.Bands{Minor: 1, Small: 3, Moderate: 6, Significant: 15})

	got := v.Assess(f(112), 100)
	require.NotNil(t, got)
	assert.Equal(t, constants.PriceSignificant, got.Severity)

	got = v.Assess(f(120), 100)
	require.NotNil(t, got)
	assert.Equal(t, constants.PriceMajor, got.Severity)
}

func TestBandPartitionIsTotal(t *testing.T) {
	t.Parallel()

	// every positive pair lands in exactly one band
	v := price.NewValidator(price.Bands{})
	for _, rate := range []float64{0.01, 1, 97.9, 100, 102, 105, 110, 125, 126, 1e6} {
		got := v.Assess(f(rate), 100)
		require.NotNil(t, got)
		assert.NotEmpty(t, got.Severity, "rate %v", rate)
	}
}
