package record

import "context"

// Repository describes record persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Record, bool, error)
	// FindActive returns the pending, under consideration or approved record
	// of player on demon, if any.
	FindActive(ctx context.Context, playerID, demonID int64) (Record, bool, error)
	// FindByVideo matches the normalized video across all records.
	FindByVideo(ctx context.Context, video string) (Record, bool, error)
	ListByPlayer(ctx context.Context, playerID int64) ([]Record, error)
	Create(ctx context.Context, item Record) (Record, error)
	UpdateStatus(ctx context.Context, id int64, status Status) error
}
