package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatScheduleDuration(t *testing.T) {
	tests := []struct {
		dep, arr int64
		want     string
	}{
		{1700000000, 1700005400, "1h 30m"},
		{1700000000, 1700000000, "0h 0m"},
		{1700000000, 1700000000 + 86400 + 3660, "1h 1m"},
		{1700005400, 1700000000, "22h 30m"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatScheduleDuration(tt.dep, tt.arr))
	}
}

func TestFormatClockAndDate(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*3600)

	assert.Equal(t, "22:13", FormatClock(1700000000, nil))
	assert.Equal(t, "19:13", FormatClock(1700000000, saoPaulo))
	assert.Equal(t, "2023-11-14", FormatDate(1700000000, saoPaulo))
	assert.Equal(t, "2023-11-15", FormatDate(1700000000+7200, nil))
}

func TestFlightNumberPrefix(t *testing.T) {
	assert.Equal(t, "AD4", FlightNumberPrefix("AD4050"))
	assert.Equal(t, "AD", FlightNumberPrefix("AD4"))
	assert.Equal(t, "G31", FlightNumberPrefix("G31234"))
	assert.Equal(t, "TAM", FlightNumberPrefix("TAM8084"))
	assert.Equal(t, "", FlightNumberPrefix("N/A"))
	assert.Equal(t, "", FlightNumberPrefix("la123"))
}

func TestAircraftCodes(t *testing.T) {
	assert.Equal(t, "B38M", AircraftCoreCode("B38M"))
	assert.Equal(t, "A320", AircraftCoreCode("A320neo"))
	assert.Equal(t, "", AircraftCoreCode("n/a"))
	assert.Equal(t, "B73", AircraftFamilyCode("B738"))
	assert.Equal(t, "", AircraftFamilyCode(""))
}

func TestAirlineLogoURL(t *testing.T) {
	assert.Equal(t, "https://pics.avs.io/200/200/LA.png", AirlineLogoURL("LA"))
	assert.Equal(t, "", AirlineLogoURL(""))
}

func TestStringPtrAndFirstNonEmpty(t *testing.T) {
	assert.Nil(t, StringPtr(""))
	assert.Equal(t, "x", *StringPtr("x"))
	assert.Equal(t, "b", FirstNonEmpty("", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty())
}
