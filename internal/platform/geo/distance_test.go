package geo

import (
	"math"
	"testing"
)

var (
	buckinghamPalace = Point{Latitude: 51.5014, Longitude: -0.1419}
	towerBridge      = Point{Latitude: 51.5055, Longitude: -0.0754}
)

func TestDistanceMiles_KnownPair(t *testing.T) {
	got := DistanceMiles(buckinghamPalace, towerBridge)

	// Straight-line distance between the two landmarks is about 2.9 miles.
	if got < 2.7 || got > 3.1 {
		t.Fatalf("unexpected distance: %f", got)
	}
}

func TestDistanceMiles_ZeroForSamePoint(t *testing.T) {
	if got := DistanceMiles(buckinghamPalace, buckinghamPalace); got != 0 {
		t.Fatalf("expected zero distance, got %f", got)
	}
}

func TestWithinRadius_InclusiveBoundary(t *testing.T) {
	center := Point{Latitude: 51.5, Longitude: -0.1}

	// Move due north by exactly ten miles worth of latitude.
	const radius = 10.0
	latDelta := degrees(radius / earthRadiusMiles)
	onBoundary := Point{Latitude: center.Latitude + latDelta, Longitude: center.Longitude}
	outside := Point{Latitude: center.Latitude + latDelta*1.01, Longitude: center.Longitude}

	d := DistanceMiles(center, onBoundary)
	if math.Abs(d-radius) > 0.01 {
		t.Fatalf("boundary point should be %f miles away, got %f", radius, d)
	}
	if !WithinRadius(center, onBoundary, radius) {
		t.Fatal("point at exactly the radius must be included")
	}
	if WithinRadius(center, outside, radius) {
		t.Fatal("point beyond the radius must be excluded")
	}
}

func TestBoundingBox_ContainsRadius(t *testing.T) {
	center := Point{Latitude: 51.5, Longitude: -0.1}
	bounds := BoundingBox(center, 10)

	if bounds.MinLatitude >= center.Latitude || bounds.MaxLatitude <= center.Latitude {
		t.Fatalf("latitude bounds do not bracket center: %+v", bounds)
	}
	if bounds.MinLongitude >= center.Longitude || bounds.MaxLongitude <= center.Longitude {
		t.Fatalf("longitude bounds do not bracket center: %+v", bounds)
	}

	// A point at 9.9 miles in any cardinal direction stays inside the box.
	latDelta := degrees(9.9 / earthRadiusMiles)
	north := Point{Latitude: center.Latitude + latDelta, Longitude: center.Longitude}
	if north.Latitude > bounds.MaxLatitude {
		t.Fatalf("northern point escaped bounding box: %+v vs %+v", north, bounds)
	}
}

func TestBoundingBox_ClampsAtPoles(t *testing.T) {
	bounds := BoundingBox(Point{Latitude: 89.99, Longitude: 0}, 100)
	if bounds.MaxLatitude > 90 {
		t.Fatalf("latitude must clamp at 90, got %f", bounds.MaxLatitude)
	}
}
