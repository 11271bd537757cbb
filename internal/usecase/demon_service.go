package usecase

import (
	"context"
	"slices"
	"strings"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/domain/player"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
)

// DemonDetail is a demon with the players attached to it.
type DemonDetail struct {
	Demon     demon.Demon
	Publisher player.Player
	Verifier  player.Player
	Creators  []player.Player
}

// DemonService serves demon lookups and the edits that do not move
// positions.
type DemonService struct {
	tx     txn.Manager
	logger *logging.Logger
}

func NewDemonService(tx txn.Manager, logger *logging.Logger) *DemonService {
	if logger == nil {
		logger = logging.Default()
	}
	return &DemonService{tx: tx, logger: logger}
}

func (s *DemonService) Get(ctx context.Context, demonID int64) (DemonDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DemonService.Get")
	defer span.End()

	return s.detail(ctx, func(ctx context.Context, repos txn.Repositories) (demon.Demon, error) {
		return requireDemon(ctx, repos, demonID)
	})
}

func (s *DemonService) GetByPosition(ctx context.Context, position int) (DemonDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DemonService.GetByPosition")
	defer span.End()

	return s.detail(ctx, func(ctx context.Context, repos txn.Repositories) (demon.Demon, error) {
		found, ok, err := repos.Demons.GetByPosition(ctx, position)
		if err != nil {
			return demon.Demon{}, err
		}
		if !ok {
			return demon.Demon{}, listerr.DemonNotFoundPosition(position)
		}
		return found, nil
	})
}

// FindByName resolves a demon by name. Names are not unique, so more than
// one match is reported with every candidate.
func (s *DemonService) FindByName(ctx context.Context, name string) (DemonDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DemonService.FindByName")
	defer span.End()

	name = strings.TrimSpace(name)
	if name == "" {
		return DemonDetail{}, invalidInput("demon name is required")
	}

	return s.detail(ctx, func(ctx context.Context, repos txn.Repositories) (demon.Demon, error) {
		matches, err := repos.Demons.ListByName(ctx, name)
		if err != nil {
			return demon.Demon{}, err
		}
		switch len(matches) {
		case 0:
			return demon.Demon{}, listerr.DemonNotFoundName(name)
		case 1:
			return matches[0], nil
		default:
			refs := make([]listerr.DemonRef, 0, len(matches))
			for _, d := range matches {
				refs = append(refs, d.Ref())
			}
			return demon.Demon{}, listerr.DemonNameNotUnique(refs)
		}
	})
}

func (s *DemonService) detail(ctx context.Context, find func(context.Context, txn.Repositories) (demon.Demon, error)) (DemonDetail, error) {
	var out DemonDetail
	err := s.tx.Read(ctx, func(ctx context.Context, repos txn.Repositories) error {
		found, err := find(ctx, repos)
		if err != nil {
			return err
		}
		out.Demon = found

		if out.Publisher, _, err = repos.Players.GetByID(ctx, found.PublisherID); err != nil {
			return err
		}
		if out.Verifier, _, err = repos.Players.GetByID(ctx, found.VerifierID); err != nil {
			return err
		}
		out.Creators, err = listCreators(ctx, repos, found.ID)
		return err
	})
	return out, err
}

// UpdateRequirement runs under the submissions lock because the pipeline
// reads the requirement.
func (s *DemonService) UpdateRequirement(ctx context.Context, demonID int64, requirement int) (updated demon.Demon, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DemonService.UpdateRequirement")
	defer func() { endSpan(span, err) }()

	if err := demon.ValidateRequirement(requirement); err != nil {
		return demon.Demon{}, err
	}

	err = s.tx.Write(ctx, txn.LockSubmissions, func(ctx context.Context, repos txn.Repositories) error {
		current, err := requireDemon(ctx, repos, demonID)
		if err != nil {
			return err
		}
		if err := repos.Demons.UpdateRequirement(ctx, demonID, requirement); err != nil {
			return err
		}
		updated = current
		updated.RequiredProgress = requirement
		return nil
	})
	if err != nil {
		return demon.Demon{}, err
	}
	return updated, nil
}

func (s *DemonService) AddCreator(ctx context.Context, demonID, playerID int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DemonService.AddCreator")
	defer func() { endSpan(span, err) }()

	return s.tx.Write(ctx, txn.LockRankedList, func(ctx context.Context, repos txn.Repositories) error {
		if _, err := requireDemon(ctx, repos, demonID); err != nil {
			return err
		}
		if err := requirePlayer(ctx, repos, playerID); err != nil {
			return err
		}
		creators, err := repos.Demons.ListCreators(ctx, demonID)
		if err != nil {
			return err
		}
		if slices.Contains(creators, playerID) {
			return listerr.CreatorExists()
		}
		return repos.Demons.AddCreator(ctx, demon.Creator{DemonID: demonID, PlayerID: playerID})
	})
}

func (s *DemonService) RemoveCreator(ctx context.Context, demonID, playerID int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DemonService.RemoveCreator")
	defer func() { endSpan(span, err) }()

	return s.tx.Write(ctx, txn.LockRankedList, func(ctx context.Context, repos txn.Repositories) error {
		if _, err := requireDemon(ctx, repos, demonID); err != nil {
			return err
		}
		removed, err := repos.Demons.RemoveCreator(ctx, demon.Creator{DemonID: demonID, PlayerID: playerID})
		if err != nil {
			return err
		}
		if !removed {
			return listerr.CreatorNotFound(demonID, playerID)
		}
		return nil
	})
}

func (s *DemonService) ListCreators(ctx context.Context, demonID int64) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.DemonService.ListCreators")
	defer span.End()

	var out []player.Player
	err := s.tx.Read(ctx, func(ctx context.Context, repos txn.Repositories) error {
		if _, err := requireDemon(ctx, repos, demonID); err != nil {
			return err
		}
		var err error
		out, err = listCreators(ctx, repos, demonID)
		return err
	})
	return out, err
}

func listCreators(ctx context.Context, repos txn.Repositories, demonID int64) ([]player.Player, error) {
	ids, err := repos.Demons.ListCreators(ctx, demonID)
	if err != nil {
		return nil, err
	}
	out := make([]player.Player, 0, len(ids))
	for _, id := range ids {
		p, ok, err := repos.Players.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, p)
		}
	}
	return out, nil
}
