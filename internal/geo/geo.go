package geo

import "math"

// EarthRadiusKm is the mean spherical earth radius used by the haversine
// formula.
const EarthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometers between two
// lat/lng points using the spherical law of haversines.
func HaversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusKm * c
}

// BoundingBox is a lat/lng rectangle used as a cheap pre-filter before the
// exact haversine check.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLng float64
	MaxLng float64
}

// NewBoundingBox returns the box enclosing a circle of radiusKm around the
// given point. The longitude span widens toward the poles to compensate for
// meridian convergence.
func NewBoundingBox(lat, lng, radiusKm float64) BoundingBox {
	latDelta := radiusKm / 111.0

	cosLat := math.Cos(toRadians(lat))
	if cosLat < 0.01 {
		cosLat = 0.01
	}
	lngDelta := radiusKm / (111.0 * cosLat)

	return BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLng: lng - lngDelta,
		MaxLng: lng + lngDelta,
	}
}

// Contains reports whether the point falls inside the box.
func (b BoundingBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat &&
		lng >= b.MinLng && lng <= b.MaxLng
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
