package advisor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKwToAmperes(t *testing.T) {
	assert.Zero(t, KwToAmperes(0))
	assert.InDelta(t, 1000.0/230.0, KwToAmperes(1), 1e-9)

	for _, kw := range []float64{0.06, 1.5, 2.365, 6, 11.2} {
		assert.InDelta(t, 2*KwToAmperes(kw), KwToAmperes(2*kw), 1e-9)
	}
}

func TestBucketBoundaries(t *testing.T) {
	tests := []struct {
		amperes  float64
		breaker  string
		cable    string
		overload bool
	}{
		{0, "10A MCB", "1.5 mm²", false},
		{10, "10A MCB", "1.5 mm²", false},
		{10.01, "20A MCB", "2.5 mm²", false},
		{20, "20A MCB", "2.5 mm²", false},
		{20.01, "30A ELCB", "4 mm²", false},
		{30, "30A ELCB", "4 mm²", false},
		{30.01, "40A RCCB", "6 mm²", true},
		{500, "40A RCCB", "6 mm²", true},
	}

	for _, tt := range tests {
		rec := Recommend(tt.amperes)
		assert.True(t, strings.HasPrefix(RecommendBreaker(tt.amperes), tt.breaker), "breaker at %gA: %s", tt.amperes, rec.Breaker())
		assert.True(t, strings.HasPrefix(RecommendCable(tt.amperes), tt.cable), "cable at %gA: %s", tt.amperes, rec.Cable())
		assert.Equal(t, tt.overload, rec.Overload, "overload at %gA", tt.amperes)
		assert.Equal(t, tt.overload, IsOverload(tt.amperes))
	}
}

func TestExactLabels(t *testing.T) {
	assert.Equal(t, "10A MCB (Miniature Circuit Breaker)", RecommendBreaker(5))
	assert.Equal(t, "20A MCB", RecommendBreaker(15))
	assert.Equal(t, "30A ELCB (Earth Leakage Circuit Breaker)", RecommendBreaker(25))
	assert.Equal(t, "40A RCCB (Residual Current Circuit Breaker)", RecommendBreaker(35))
	assert.Equal(t, "2.5 mm² Cable", RecommendCable(15))
}

func TestBreakerAndCableNeverDiverge(t *testing.T) {
	table := Buckets()
	for a := 0.0; a <= 45; a += 0.25 {
		rec := Recommend(a)
		var idxB, idxC int = -1, -1
		for i, b := range table {
			if b.Breaker == rec.Breaker() {
				idxB = i
			}
			if b.Cable == rec.Cable() {
				idxC = i
			}
		}
		require.NotEqual(t, -1, idxB)
		assert.Equal(t, idxB, idxC, "at %gA", a)
	}
}

func TestForLoadScenarios(t *testing.T) {
	bedroom := ForLoad(2.365)
	assert.InDelta(t, 10.28, bedroom.Amperes, 0.005)
	assert.Equal(t, "20A MCB", bedroom.Breaker())
	assert.Equal(t, "2.5 mm² Cable", bedroom.Cable())

	geysers := ForLoad(6.0)
	assert.InDelta(t, 26.09, geysers.Amperes, 0.005)
	assert.True(t, strings.HasPrefix(geysers.Breaker(), "30A ELCB"))
	assert.Equal(t, "4 mm² Cable", geysers.Cable())
	assert.False(t, geysers.Overload)
}
