package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZoom(t *testing.T) {
	z := NewZoom(1)
	for i := 0; i < 20; i++ {
		z = z.In()
	}
	assert.Equal(t, Zoom(MaxZoom), z)

	assert.Equal(t, Zoom(4.5), z.Out())
	assert.Equal(t, Zoom(MinZoom), NewZoom(0.2).Out())
	assert.Equal(t, Zoom(MinZoom), NewZoom(math.NaN()))
	assert.Equal(t, Zoom(2.5), NewZoom(2).In())
}

func TestMarkers(t *testing.T) {
	t.Run("every ten seconds at zoom 1", func(t *testing.T) {
		markers := Markers(35, NewZoom(1))
		require.Len(t, markers, 4)
		assert.Equal(t, 0.0, markers[0].Time)
		assert.Equal(t, 30.0, markers[3].Time)
		assert.Equal(t, "00:30", markers[3].Label)
		assert.InDelta(t, 30.0/35*100, markers[3].Position, 1e-9)
	})

	t.Run("zoom narrows the interval", func(t *testing.T) {
		markers := Markers(20, NewZoom(2))
		require.Len(t, markers, 5)
		assert.Equal(t, 5.0, markers[1].Time)
		assert.Equal(t, 100.0, markers[4].Position)
	})

	t.Run("invalid duration", func(t *testing.T) {
		assert.Nil(t, Markers(0, NewZoom(1)))
		assert.Nil(t, Markers(math.Inf(1), NewZoom(1)))
	})
}

func TestPlayheadPercent(t *testing.T) {
	assert.Equal(t, 25.0, PlayheadPercent(25, 100))
	assert.Equal(t, 100.0, PlayheadPercent(150, 100))
	assert.Equal(t, 0.0, PlayheadPercent(-3, 100))
	assert.Equal(t, 0.0, PlayheadPercent(10, 0))
	assert.Equal(t, 0.0, PlayheadPercent(math.NaN(), 100))
}
