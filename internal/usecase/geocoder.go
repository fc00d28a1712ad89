package usecase

import (
	"context"

	"github.com/codescribler/playerprofile-sub000/internal/platform/geo"
)

// Geocoder resolves a UK postcode to a coordinate pair. Implementations
// return an error wrapping ErrNotFound for unknown postcodes and
// ErrDependencyUnavailable when the upstream service cannot answer.
type Geocoder interface {
	Resolve(ctx context.Context, postcode string) (geo.Point, error)
}
