package colorbrew

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeficiency(t *testing.T) {
	for name, want := range deficiencyNames {
		got, err := ParseDeficiency(name)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, name, got.String())
	}

	_, err := ParseDeficiency("invalid")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "invalid", perr.Input)
	assert.Contains(t, err.Error(), "deuteranopia, protanopia, tritanopia")
}

func TestSimulateProtanopia(t *testing.T) {
	t.Run("red loses most of its red", func(t *testing.T) {
		r, _, _ := rgb(255, 0, 0).Simulate(Protanopia).RGB()
		assert.Less(t, r, 130)
	})

	t.Run("blue largely preserved", func(t *testing.T) {
		_, _, b := rgb(0, 0, 255).Simulate(Protanopia).RGB()
		assert.Greater(t, b, 200)
	})
}

func TestSimulateDeuteranopia(t *testing.T) {
	t.Run("green shifts", func(t *testing.T) {
		_, g, _ := rgb(0, 255, 0).Simulate(Deuteranopia).RGB()
		assert.Less(t, g, 255)
	})

	t.Run("blue largely preserved", func(t *testing.T) {
		_, _, b := rgb(0, 0, 255).Simulate(Deuteranopia).RGB()
		assert.Greater(t, b, 200)
	})
}

func TestSimulateTritanopia(t *testing.T) {
	t.Run("blue shifts", func(t *testing.T) {
		_, _, b := rgb(0, 0, 255).Simulate(Tritanopia).RGB()
		assert.Less(t, b, 100)
	})

	t.Run("red largely preserved", func(t *testing.T) {
		r, _, _ := rgb(255, 0, 0).Simulate(Tritanopia).RGB()
		assert.Greater(t, r, 200)
	})
}

func TestSimulateAchromaticStability(t *testing.T) {
	deficiencies := []Deficiency{Protanopia, Deuteranopia, Tritanopia}

	t.Run("black and white are fixed points", func(t *testing.T) {
		for _, d := range deficiencies {
			assert.Equal(t, rgb(0, 0, 0), rgb(0, 0, 0).Simulate(d), d)
			assert.Equal(t, rgb(255, 255, 255), rgb(255, 255, 255).Simulate(d), d)
		}
	})

	t.Run("mid-gray nearly unchanged", func(t *testing.T) {
		for _, d := range deficiencies {
			r, g, b := rgb(128, 128, 128).Simulate(d).RGB()
			for _, v := range []int{r, g, b} {
				assert.InDelta(t, 128, v, 2, d)
			}
		}
	})
}
