package usecase

import (
	"context"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/domain/nationality"
	"github.com/riskibarqy/demonlist/internal/domain/player"
	"github.com/riskibarqy/demonlist/internal/domain/record"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
)

// UpdatePlayerInput is a partial update; nil fields stay unchanged and an
// empty nationality or subdivision clears it.
type UpdatePlayerInput struct {
	Banned      *bool
	LinkBanned  *bool
	Nationality *string
	Subdivision *string
}

type PlayerService struct {
	tx     txn.Manager
	logger *logging.Logger
}

func NewPlayerService(tx txn.Manager, logger *logging.Logger) *PlayerService {
	if logger == nil {
		logger = logging.Default()
	}
	return &PlayerService{tx: tx, logger: logger}
}

func (s *PlayerService) Get(ctx context.Context, playerID int64) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Get")
	defer span.End()

	var out player.Player
	err := s.tx.Read(ctx, func(ctx context.Context, repos txn.Repositories) error {
		found, ok, err := repos.Players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}
		if !ok {
			return listerr.PlayerNotFound(playerID)
		}
		out = found
		return nil
	})
	return out, err
}

func (s *PlayerService) GetByName(ctx context.Context, name string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetByName")
	defer span.End()

	name = player.NormalizeName(name)
	var out player.Player
	err := s.tx.Read(ctx, func(ctx context.Context, repos txn.Repositories) error {
		found, ok, err := repos.Players.GetByName(ctx, name)
		if err != nil {
			return err
		}
		if !ok {
			return listerr.PlayerNotFoundName(name)
		}
		out = found
		return nil
	})
	return out, err
}

// Update applies input to a player. Banning also rejects every record of the
// player that is not rejected yet, in the same unit of work.
func (s *PlayerService) Update(ctx context.Context, playerID int64, input UpdatePlayerInput) (updated player.Player, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.Update")
	defer func() { endSpan(span, err) }()

	err = s.tx.Write(ctx, txn.LockSubmissions, func(ctx context.Context, repos txn.Repositories) error {
		current, ok, err := repos.Players.GetByID(ctx, playerID)
		if err != nil {
			return err
		}
		if !ok {
			return listerr.PlayerNotFound(playerID)
		}
		updated = current

		if input.Nationality != nil {
			code := nationality.NormalizeCode(*input.Nationality)
			if code != "" {
				if _, ok, err := repos.Nationalities.Get(ctx, code); err != nil {
					return err
				} else if !ok {
					return listerr.NationalityNotFound(code)
				}
			}
			if code != updated.Nationality {
				updated.Subdivision = ""
			}
			updated.Nationality = code
		}

		if input.Subdivision != nil {
			code := nationality.NormalizeCode(*input.Subdivision)
			if code != "" {
				if updated.Nationality == "" {
					return listerr.NoNationSet()
				}
				if _, ok, err := repos.Nationalities.GetSubdivision(ctx, updated.Nationality, code); err != nil {
					return err
				} else if !ok {
					return listerr.SubdivisionNotFound(updated.Nationality, code)
				}
			}
			updated.Subdivision = code
		}

		if input.LinkBanned != nil {
			updated.LinkBanned = *input.LinkBanned
		}
		if input.Banned != nil {
			updated.Banned = *input.Banned
		}

		if err := repos.Players.Update(ctx, updated); err != nil {
			return err
		}
		if updated.Banned && !current.Banned {
			return s.rejectRecords(ctx, repos, playerID)
		}
		return nil
	})
	if err != nil {
		return player.Player{}, err
	}
	return updated, nil
}

func (s *PlayerService) rejectRecords(ctx context.Context, repos txn.Repositories, playerID int64) error {
	records, err := repos.Records.ListByPlayer(ctx, playerID)
	if err != nil {
		return err
	}

	rejected := 0
	for _, r := range records {
		if r.Status == record.StatusRejected {
			continue
		}
		if err := repos.Records.UpdateStatus(ctx, r.ID, record.StatusRejected); err != nil {
			return err
		}
		rejected++
	}

	s.logger.InfoContext(ctx, "player banned", "player_id", playerID, "rejected_records", rejected)
	return nil
}
