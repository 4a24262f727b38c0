package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoundsString(t *testing.T) {
	b := NewBounds(-30.5, -20, -50, -40.25)
	assert.Equal(t, "-20,-30.5,-50,-40.25", b.String())
}

func TestBoundsAroundPoint(t *testing.T) {
	b := BoundsAroundPoint(-23.432, -46.469, 40000)

	// 40 km is about 0.36 degrees of latitude
	assert.InDelta(t, -23.072, b.North, 0.01)
	assert.InDelta(t, -23.792, b.South, 0.01)
	assert.Less(t, b.West, -46.469)
	assert.Greater(t, b.East, -46.469)
	assert.InDelta(t, 0.785, b.East-b.West, 0.02)
}

func TestUnavailableProvider(t *testing.T) {
	p := NewUnavailableProvider("disabled by configuration")

	err := p.Availability()
	assert.True(t, IsUnavailable(err))
	assert.Contains(t, err.Error(), "disabled by configuration")
	assert.Equal(t, "PROVIDER_UNAVAILABLE", ErrorCode(err))

	_, err = p.GetFlightDetails(context.Background(), "abc")
	assert.True(t, IsUnavailable(err))

	b := p.BoundsByPoint(0, 0, 1000)
	assert.Greater(t, b.North, b.South)
}
