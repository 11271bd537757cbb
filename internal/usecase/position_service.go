package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	"github.com/riskibarqy/demonlist/internal/domain/history"
	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	"github.com/riskibarqy/demonlist/internal/domain/video"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
)

// InsertDemonInput is the incoming payload for placing a new demon.
type InsertDemonInput struct {
	Name        string
	Position    int
	Requirement int
	Video       string
	PublisherID int64
	VerifierID  int64
	CreatorIDs  []int64
}

// PositionService owns every mutation of the ranked list. Each operation is
// one write unit under the ranked list lock: positions are shifted, the
// history event is appended, legacy flags are recomputed and contiguity is
// verified before commit.
type PositionService struct {
	tx         txn.Manager
	thresholds demon.Thresholds
	metrics    *Metrics
	logger     *logging.Logger
	now        func() time.Time
}

func NewPositionService(tx txn.Manager, thresholds demon.Thresholds, metrics *Metrics, logger *logging.Logger) *PositionService {
	if logger == nil {
		logger = logging.Default()
	}

	return &PositionService{
		tx:         tx,
		thresholds: thresholds,
		metrics:    metrics,
		logger:     logger,
		now:        time.Now,
	}
}

func (s *PositionService) Insert(ctx context.Context, input InsertDemonInput) (created demon.Demon, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PositionService.Insert")
	defer func() {
		s.metrics.observePositionMutation("insert", err)
		endSpan(span, err)
	}()

	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return demon.Demon{}, invalidInput("demon name is required")
	}
	if err := demon.ValidateRequirement(input.Requirement); err != nil {
		return demon.Demon{}, err
	}
	verification := ""
	if strings.TrimSpace(input.Video) != "" {
		verification, err = video.Validate(input.Video)
		if err != nil {
			return demon.Demon{}, err
		}
	}

	err = s.tx.Write(ctx, txn.LockRankedList, func(ctx context.Context, repos txn.Repositories) error {
		for _, playerID := range append([]int64{input.PublisherID, input.VerifierID}, input.CreatorIDs...) {
			if err := requirePlayer(ctx, repos, playerID); err != nil {
				return err
			}
		}

		maxPosition, err := repos.Demons.MaxPosition(ctx)
		if err != nil {
			return err
		}
		if input.Position < 1 || input.Position > maxPosition+1 {
			return listerr.InvalidPosition(maxPosition + 1)
		}

		if err := repos.Demons.ShiftPositions(ctx, input.Position, maxPosition, 1); err != nil {
			return err
		}
		created, err = repos.Demons.Create(ctx, demon.Demon{
			Name:             input.Name,
			Position:         input.Position,
			RequiredProgress: input.Requirement,
			Video:            verification,
			PublisherID:      input.PublisherID,
			VerifierID:       input.VerifierID,
			Legacy:           s.thresholds.IsLegacy(input.Position),
		})
		if err != nil {
			return err
		}
		for _, creatorID := range input.CreatorIDs {
			if err := repos.Demons.AddCreator(ctx, demon.Creator{DemonID: created.ID, PlayerID: creatorID}); err != nil {
				return err
			}
		}

		return s.commitMutation(ctx, repos, created.ID, 0, input.Position)
	})
	if err != nil {
		return demon.Demon{}, err
	}

	s.logger.InfoContext(ctx, "demon inserted", "demon_id", created.ID, "position", created.Position)
	return created, nil
}

// Move places a demon at newPosition. A demon without position is put back
// on the list, which allows one position past the current end.
func (s *PositionService) Move(ctx context.Context, demonID int64, newPosition int) (moved demon.Demon, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PositionService.Move")
	defer func() {
		s.metrics.observePositionMutation("move", err)
		endSpan(span, err)
	}()

	err = s.tx.Write(ctx, txn.LockRankedList, func(ctx context.Context, repos txn.Repositories) error {
		current, err := requireDemon(ctx, repos, demonID)
		if err != nil {
			return err
		}
		maxPosition, err := repos.Demons.MaxPosition(ctx)
		if err != nil {
			return err
		}

		if !current.Ranked() {
			if newPosition < 1 || newPosition > maxPosition+1 {
				return listerr.InvalidPosition(maxPosition + 1)
			}
			if err := repos.Demons.ShiftPositions(ctx, newPosition, maxPosition, 1); err != nil {
				return err
			}
		} else {
			if newPosition < 1 || newPosition > maxPosition {
				return listerr.InvalidPosition(maxPosition)
			}
			if newPosition == current.Position {
				moved = current
				return nil
			}

			// Park the demon so the shift below does not touch it.
			if err := repos.Demons.SetPosition(ctx, demonID, 0); err != nil {
				return err
			}
			if newPosition < current.Position {
				err = repos.Demons.ShiftPositions(ctx, newPosition, current.Position-1, 1)
			} else {
				err = repos.Demons.ShiftPositions(ctx, current.Position+1, newPosition, -1)
			}
			if err != nil {
				return err
			}
		}

		if err := repos.Demons.SetPosition(ctx, demonID, newPosition); err != nil {
			return err
		}
		if err := s.commitMutation(ctx, repos, demonID, current.Position, newPosition); err != nil {
			return err
		}

		moved, err = requireDemon(ctx, repos, demonID)
		return err
	})
	if err != nil {
		return demon.Demon{}, err
	}

	s.logger.InfoContext(ctx, "demon moved", "demon_id", demonID, "position", moved.Position)
	return moved, nil
}

// Remove takes a demon off the list. The row and its records stay; only the
// position is cleared. Removing an unranked demon does nothing.
func (s *PositionService) Remove(ctx context.Context, demonID int64) (err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PositionService.Remove")
	defer func() {
		s.metrics.observePositionMutation("remove", err)
		endSpan(span, err)
	}()

	return s.tx.Write(ctx, txn.LockRankedList, func(ctx context.Context, repos txn.Repositories) error {
		current, err := requireDemon(ctx, repos, demonID)
		if err != nil {
			return err
		}
		if !current.Ranked() {
			return nil
		}
		maxPosition, err := repos.Demons.MaxPosition(ctx)
		if err != nil {
			return err
		}

		if err := repos.Demons.SetPosition(ctx, demonID, 0); err != nil {
			return err
		}
		if err := repos.Demons.ShiftPositions(ctx, current.Position+1, maxPosition, -1); err != nil {
			return err
		}
		if err := s.commitMutation(ctx, repos, demonID, current.Position, 0); err != nil {
			return err
		}

		s.logger.InfoContext(ctx, "demon removed", "demon_id", demonID, "old_position", current.Position)
		return nil
	})
}

func (s *PositionService) CurrentMaxPosition(ctx context.Context) (int, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PositionService.CurrentMaxPosition")
	defer span.End()

	var maxPosition int
	err := s.tx.Read(ctx, func(ctx context.Context, repos txn.Repositories) error {
		var err error
		maxPosition, err = repos.Demons.MaxPosition(ctx)
		return err
	})
	return maxPosition, err
}

// commitMutation finishes a position change inside its write unit.
func (s *PositionService) commitMutation(ctx context.Context, repos txn.Repositories, demonID int64, oldPosition, newPosition int) error {
	if _, err := repos.History.Append(ctx, history.Event{
		DemonID:     demonID,
		OldPosition: oldPosition,
		NewPosition: newPosition,
		At:          s.now().UTC(),
	}); err != nil {
		return err
	}
	if err := repos.Demons.RecomputeLegacy(ctx, s.thresholds); err != nil {
		return err
	}
	return s.verifyContiguity(ctx, repos)
}

// verifyContiguity fails the unit of work unless the ranked positions are
// exactly 1..n.
func (s *PositionService) verifyContiguity(ctx context.Context, repos txn.Repositories) error {
	positions, err := repos.Demons.Positions(ctx)
	if err != nil {
		return err
	}
	for i, position := range positions {
		if position != i+1 {
			broken := fmt.Errorf("ranked list not contiguous: index %d holds position %d", i, position)
			s.logger.ErrorContext(ctx, "ranked list invariant violated, aborting", "error", broken, "positions", positions)
			return listerr.Internal(broken)
		}
	}
	return nil
}

func requireDemon(ctx context.Context, repos txn.Repositories, demonID int64) (demon.Demon, error) {
	item, ok, err := repos.Demons.GetByID(ctx, demonID)
	if err != nil {
		return demon.Demon{}, err
	}
	if !ok {
		return demon.Demon{}, listerr.DemonNotFound(demonID)
	}
	return item, nil
}

func requirePlayer(ctx context.Context, repos txn.Repositories, playerID int64) error {
	_, ok, err := repos.Players.GetByID(ctx, playerID)
	if err != nil {
		return err
	}
	if !ok {
		return listerr.PlayerNotFound(playerID)
	}
	return nil
}
