package player

import "context"

// Repository describes player persistence needs from use cases.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Player, bool, error)
	GetByName(ctx context.Context, name string) (Player, bool, error)
	GetOrCreateByName(ctx context.Context, name string) (Player, error)
	Update(ctx context.Context, item Player) error
}
