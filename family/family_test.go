package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIDRoundTrip(t *testing.T) {
	for _, id := range []ID{Mandelbrot, Julia, BurningShip, Tricorn, Phoenix, Newton, Custom} {
		parsed, ok := ParseID(id.String())
		assert.True(t, ok)
		assert.Equal(t, id, parsed)
	}
}

func TestParseIDRejectsUnknown(t *testing.T) {
	_, ok := ParseID("not-a-family")
	assert.False(t, ok)
}

func TestCapabilitiesForMandelbrot(t *testing.T) {
	caps := CapabilitiesFor(Mandelbrot)
	assert.True(t, caps.SupportsPerturbation)
	assert.True(t, caps.SupportsSeriesApproximation)
	assert.True(t, caps.SupportsArbitraryPrecision)
	assert.True(t, caps.HasInterior)
}

func TestCapabilitiesForNewtonHasNoPerturbationOrSeries(t *testing.T) {
	caps := CapabilitiesFor(Newton)
	assert.False(t, caps.SupportsPerturbation)
	assert.False(t, caps.SupportsSeriesApproximation)
}

func TestCapabilitiesForCustomHasNoArbitraryPrecision(t *testing.T) {
	caps := CapabilitiesFor(Custom)
	assert.False(t, caps.SupportsArbitraryPrecision)
	assert.False(t, caps.SupportsPerturbation)
}

func TestCapabilitiesForBurningShipHasNoSeries(t *testing.T) {
	caps := CapabilitiesFor(BurningShip)
	assert.True(t, caps.SupportsPerturbation)
	assert.False(t, caps.SupportsSeriesApproximation)
}
