package geo

import "math"

const earthRadiusMiles = 3958.7613

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// DistanceMiles returns the great-circle distance between two points using
// the haversine formula on a spherical earth.
func DistanceMiles(a, b Point) float64 {
	latA := radians(a.Latitude)
	latB := radians(b.Latitude)
	dLat := radians(b.Latitude - a.Latitude)
	dLon := radians(b.Longitude - a.Longitude)

	sinLat := math.Sin(dLat / 2)
	sinLon := math.Sin(dLon / 2)
	h := sinLat*sinLat + math.Cos(latA)*math.Cos(latB)*sinLon*sinLon

	return 2 * earthRadiusMiles * math.Asin(math.Min(1, math.Sqrt(h)))
}

// WithinRadius reports whether candidate lies within radiusMiles of center.
// The boundary is inclusive.
func WithinRadius(center, candidate Point, radiusMiles float64) bool {
	return DistanceMiles(center, candidate) <= radiusMiles
}

// BoundingBox returns latitude/longitude bounds that fully contain the circle
// of radiusMiles around center. It is a coarse prefilter, never a substitute
// for the exact distance test.
type Bounds struct {
	MinLatitude  float64
	MaxLatitude  float64
	MinLongitude float64
	MaxLongitude float64
}

func BoundingBox(center Point, radiusMiles float64) Bounds {
	if radiusMiles < 0 {
		radiusMiles = 0
	}

	latDelta := degrees(radiusMiles / earthRadiusMiles)
	lonDelta := 180.0
	cosLat := math.Cos(radians(center.Latitude))
	if cosLat > 1e-9 {
		lonDelta = degrees(radiusMiles / (earthRadiusMiles * cosLat))
	}

	return Bounds{
		MinLatitude:  math.Max(center.Latitude-latDelta, -90),
		MaxLatitude:  math.Min(center.Latitude+latDelta, 90),
		MinLongitude: math.Max(center.Longitude-lonDelta, -180),
		MaxLongitude: math.Min(center.Longitude+lonDelta, 180),
	}
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

func degrees(rad float64) float64 {
	return rad * 180 / math.Pi
}
