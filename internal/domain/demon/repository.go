package demon

import "context"

// Repository describes demon persistence needs from use cases. Position
// mutations are only ever issued by the position service inside a ranked
// list write unit.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Demon, bool, error)
	GetByPosition(ctx context.Context, position int) (Demon, bool, error)
	ListByName(ctx context.Context, name string) ([]Demon, error)
	ListByIDs(ctx context.Context, ids []int64) ([]Demon, error)
	// ListRanked returns all demons holding a position, ordered ascending.
	ListRanked(ctx context.Context) ([]Demon, error)
	MaxPosition(ctx context.Context) (int, error)
	// Positions returns every non-zero position, ascending.
	Positions(ctx context.Context) ([]int, error)
	Create(ctx context.Context, item Demon) (Demon, error)
	SetPosition(ctx context.Context, id int64, position int) error
	// ShiftPositions adds delta to every position in [from, to].
	ShiftPositions(ctx context.Context, from, to, delta int) error
	// RecomputeLegacy sets the legacy flag of every demon from its current
	// position.
	RecomputeLegacy(ctx context.Context, thresholds Thresholds) error
	UpdateRequirement(ctx context.Context, id int64, requirement int) error

	AddCreator(ctx context.Context, creator Creator) error
	RemoveCreator(ctx context.Context, creator Creator) (bool, error)
	ListCreators(ctx context.Context, demonID int64) ([]int64, error)
}
