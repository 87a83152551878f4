package colorbrew

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBlendMode(t *testing.T) {
	for name, want := range blendModeNames {
		got, err := ParseBlendMode(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseBlendMode("invalid")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "invalid", perr.Input)
	assert.Contains(t, err.Error(),
		"difference, hard_light, multiply, overlay, screen, soft_light")
}

func TestBlendMultiply(t *testing.T) {
	t.Run("white base returns the top layer", func(t *testing.T) {
		top := rgb(52, 152, 219)
		assert.Equal(t, top, rgb(255, 255, 255).Blend(top, BlendMultiply))
	})

	t.Run("black base returns black", func(t *testing.T) {
		assert.Equal(t, rgb(0, 0, 0), rgb(0, 0, 0).Blend(rgb(52, 152, 219), BlendMultiply))
	})

	t.Run("never lightens", func(t *testing.T) {
		base := rgb(128, 128, 128)
		r, g, b := base.Blend(base, BlendMultiply).RGB()
		assert.LessOrEqual(t, r, 128)
		assert.LessOrEqual(t, g, 128)
		assert.LessOrEqual(t, b, 128)
	})
}

func TestBlendScreen(t *testing.T) {
	t.Run("black base returns the top layer", func(t *testing.T) {
		top := rgb(52, 152, 219)
		assert.Equal(t, top, rgb(0, 0, 0).Blend(top, BlendScreen))
	})

	t.Run("white base returns white", func(t *testing.T) {
		white := rgb(255, 255, 255)
		assert.Equal(t, white, white.Blend(rgb(52, 152, 219), BlendScreen))
	})
}

func TestBlendDifference(t *testing.T) {
	t.Run("same color gives black", func(t *testing.T) {
		c := rgb(52, 152, 219)
		assert.Equal(t, rgb(0, 0, 0), c.Blend(c, BlendDifference))
	})

	t.Run("black top returns the base", func(t *testing.T) {
		c := rgb(52, 152, 219)
		assert.Equal(t, c, c.Blend(rgb(0, 0, 0), BlendDifference))
	})
}

func TestBlendStaysInRange(t *testing.T) {
	base := rgb(100, 150, 200)
	top := rgb(50, 100, 150)
	for _, mode := range []BlendMode{
		BlendMultiply, BlendScreen, BlendOverlay,
		BlendSoftLight, BlendHardLight, BlendDifference,
	} {
		out := base.Blend(top, mode)
		r, g, b := out.RGB()
		for _, v := range []int{r, g, b} {
			assert.GreaterOrEqual(t, v, 0, mode)
			assert.LessOrEqual(t, v, 255, mode)
		}
	}
}

func TestBlendHardLightSwapsOverlay(t *testing.T) {
	base := rgb(100, 150, 200)
	top := rgb(50, 100, 150)
	assert.Equal(t, base.Blend(top, BlendHardLight), top.Blend(base, BlendOverlay))
}
