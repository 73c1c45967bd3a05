package resources

import (
	"math"

	"github.com/kellydunn/golang-geo"

	"github.com/gre-42/mlib/math32"
)

// meanEarthRadius is the mean radius r0 spec 4.J's geographic mapping
// approximation uses.
const meanEarthRadius = 6.371e6

// GeoMapper converts latitude/longitude pairs to local meters relative
// to an origin point, using the mean-radius equirectangular
// approximation spec 4.J specifies (r0 = 6.371e6 m, circumference =
// 2*pi*r). The origin is kept as a geo.Point (github.com/kellydunn/
// golang-geo) so GreatCircleDistance can cross-check the local
// approximation's error against the library's haversine distance.
type GeoMapper struct {
	origin *geo.Point
}

// NewGeoMapper creates a mapper whose local-meters origin is
// (originLat, originLng).
func NewGeoMapper(originLat, originLng float64) *GeoMapper {
	return &GeoMapper{origin: geo.NewPoint(originLat, originLng)}
}

// ToLocalMeters converts (lat, lng) to meters east/north of the
// mapper's origin, using the small-angle equirectangular
// approximation: x = r0*cos(lat0)*dLng, y = r0*dLat, with dLat/dLng in
// radians. The result holds east in X and north as -Z (Y is 0).
func (m *GeoMapper) ToLocalMeters(lat, lng float64) math32.Vector3 {

	lat0 := m.origin.Lat() * math.Pi / 180
	dLat := (lat - m.origin.Lat()) * math.Pi / 180
	dLng := (lng - m.origin.Lng()) * math.Pi / 180

	x := meanEarthRadius * math.Cos(lat0) * dLng
	y := meanEarthRadius * dLat
	return math32.Vector3{X: float32(x), Y: 0, Z: float32(-y)}
}

// GreatCircleDistanceKM returns golang-geo's haversine great-circle
// distance in kilometers between the mapper's origin and (lat, lng),
// usable as a sanity check against ToLocalMeters for points far enough
// from the origin that the flat-earth approximation starts to diverge.
func (m *GeoMapper) GreatCircleDistanceKM(lat, lng float64) float64 {
	return m.origin.GreatCircleDistance(geo.NewPoint(lat, lng))
}

// Circumference returns the mean-radius approximation's circumference
// (2*pi*r0), exposed for callers validating the approximation's global
// consistency.
func Circumference() float64 {
	return 2 * math.Pi * meanEarthRadius
}
