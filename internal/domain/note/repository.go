package note

import "context"

// Repository describes note persistence needs from use cases.
type Repository interface {
	Create(ctx context.Context, item Note) (Note, error)
	ListByRecord(ctx context.Context, recordID int64) ([]Note, error)
	Delete(ctx context.Context, recordID, noteID int64) (bool, error)
}
