package providers

import (
	"fmt"
	"math"
	"strconv"
)

const earthRadiusKm = 6371.0

// Bounds is a geographic box. String renders the provider's "north,south,west,east" form.
type Bounds struct {
	North float64
	South float64
	West  float64
	East  float64
}

func (b Bounds) String() string {
	return fmt.Sprintf("%s,%s,%s,%s", fmtCoord(b.North), fmtCoord(b.South), fmtCoord(b.West), fmtCoord(b.East))
}

// NewBounds builds bounds from min/max lat/lon
func NewBounds(minLat, maxLat, minLon, maxLon float64) Bounds {
	return Bounds{North: maxLat, South: minLat, West: minLon, East: maxLon}
}

// BoundsAroundPoint projects the corners of a square with half side radiusMeters
// along the 225° and 45° bearings from the point.
func BoundsAroundPoint(lat, lon, radiusMeters float64) Bounds {
	halfSideKm := math.Abs(radiusMeters) / 1000
	latRad := toRadians(lat)
	lonRad := toRadians(lon)
	angular := math.Sqrt(2*halfSideKm*halfSideKm) / earthRadiusKm

	corner := func(bearingDeg float64) (float64, float64) {
		bearing := toRadians(bearingDeg)
		cLat := math.Asin(math.Sin(latRad)*math.Cos(angular) + math.Cos(latRad)*math.Sin(angular)*math.Cos(bearing))
		cLon := lonRad + math.Atan2(
			math.Sin(bearing)*math.Sin(angular)*math.Cos(latRad),
			math.Cos(angular)-math.Sin(latRad)*math.Sin(cLat),
		)
		return toDegrees(cLat), toDegrees(cLon)
	}

	south, west := corner(225)
	north, east := corner(45)
	return Bounds{North: north, South: south, West: west, East: east}
}

func toRadians(deg float64) float64 { return deg * math.Pi / 180 }
func toDegrees(rad float64) float64 { return rad * 180 / math.Pi }

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
