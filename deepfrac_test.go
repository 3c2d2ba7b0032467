package deepfrac

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cfdwalrus/deepfrac/family"
)

func TestRecommendedPrecisionFloor(t *testing.T) {
	assert.Equal(t, 50, RecommendedPrecision(1))
	assert.Equal(t, 50, RecommendedPrecision(100))
}

func TestRecommendedPrecisionGrowsWithZoom(t *testing.T) {
	assert.Equal(t, 50, RecommendedPrecision(1e20)) // 20+20=40, floored to 50
	assert.Equal(t, 50, RecommendedPrecision(1e30)) // 30+20=50
	assert.InDelta(t, 71, RecommendedPrecision(1e51), 1) // 51+20=71, +-1 for fp log10 noise
}

func TestShouldUsePerturbationThreshold(t *testing.T) {
	assert.False(t, ShouldUsePerturbation(1e12))
	assert.True(t, ShouldUsePerturbation(1e14))
}

func TestDescribeEveryFamily(t *testing.T) {
	for _, id := range IDs() {
		info, err := Describe(id)
		require.NoError(t, err)
		assert.Equal(t, id, info.ID)
		assert.NotEmpty(t, info.Formula)
	}
}

func TestDescribeUnknownFamilyErrors(t *testing.T) {
	_, err := Describe(family.ID(999))
	assert.Error(t, err)
}
