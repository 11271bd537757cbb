package nationality

import "context"

// Repository describes nationality lookups from use cases.
type Repository interface {
	Get(ctx context.Context, isoCode string) (Nationality, bool, error)
	GetSubdivision(ctx context.Context, nationCode, isoCode string) (Subdivision, bool, error)
}
