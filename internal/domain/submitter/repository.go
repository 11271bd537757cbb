package submitter

import "context"

// Repository describes submitter persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Submitter, bool, error)
	GetOrCreateByIP(ctx context.Context, ip string) (Submitter, error)
	SetBanned(ctx context.Context, id int64, banned bool) error
}
