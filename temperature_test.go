package colorbrew

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTemperature(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b int
		want    TemperatureClass
	}{
		{"red is warm", 255, 0, 0, TemperatureWarm},
		{"orange is warm", 255, 165, 0, TemperatureWarm},
		{"magenta side is warm", 255, 0, 128, TemperatureWarm},
		{"blue is cool", 0, 0, 255, TemperatureCool},
		{"green is cool", 0, 255, 0, TemperatureCool},
		{"gray is neutral", 128, 128, 128, TemperatureNeutral},
		{"near-white is neutral", 245, 245, 245, TemperatureNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rgb(tt.r, tt.g, tt.b).Temperature())
		})
	}
}

func TestTemperatureClass_String(t *testing.T) {
	assert.Equal(t, "warm", TemperatureWarm.String())
	assert.Equal(t, "cool", TemperatureCool.String())
	assert.Equal(t, "neutral", TemperatureNeutral.String())
}

func TestKelvin(t *testing.T) {
	t.Run("within range", func(t *testing.T) {
		k := rgb(52, 152, 219).Kelvin()
		assert.GreaterOrEqual(t, k, 1000)
		assert.LessOrEqual(t, k, 40000)
	})

	t.Run("warm colors estimate lower than cool colors", func(t *testing.T) {
		warm := rgb(255, 100, 0).Kelvin()
		cool := rgb(0, 100, 255).Kelvin()
		assert.Less(t, warm, cool)
	})

	t.Run("black returns the floor", func(t *testing.T) {
		assert.Equal(t, 1000, rgb(0, 0, 0).Kelvin())
	})

	t.Run("white sits near the D65 point", func(t *testing.T) {
		k := rgb(255, 255, 255).Kelvin()
		assert.InDelta(t, 6500, k, 150)
	})
}
