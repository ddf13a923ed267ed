package lampshade_test

import (
	"math/rand"
	"testing"

	"github.com/soypat/lampshade"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomize(t *testing.T) {
	lim := lampshade.DefaultLimits()
	base := lampshade.DefaultParams()
	base.Detail = 77
	base.OverhangAngle = 45
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 200; i++ {
		p := lampshade.Randomize(rng, base, lim)
		require.NoError(t, lim.Validate(p), "randomized design %d out of limits", i)
		assert.Equal(t, 77, p.Detail)
		assert.Equal(t, 45., p.OverhangAngle)
		assert.Equal(t, p, p.Derive(), "randomized design must be derived")
		assert.LessOrEqual(t, p.FeatureDepth, p.FeatureDepthMax)
	}
}

func TestRandomizeDeterministic(t *testing.T) {
	lim := lampshade.DefaultLimits()
	a := lampshade.Randomize(rand.New(rand.NewSource(3)), lampshade.DefaultParams(), lim)
	b := lampshade.Randomize(rand.New(rand.NewSource(3)), lampshade.DefaultParams(), lim)
	assert.Equal(t, a, b)
}
