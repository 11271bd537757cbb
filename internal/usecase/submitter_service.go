package usecase

import (
	"context"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/domain/submitter"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	"github.com/riskibarqy/demonlist/internal/platform/logging"
)

type SubmitterService struct {
	tx     txn.Manager
	logger *logging.Logger
}

func NewSubmitterService(tx txn.Manager, logger *logging.Logger) *SubmitterService {
	if logger == nil {
		logger = logging.Default()
	}
	return &SubmitterService{tx: tx, logger: logger}
}

func (s *SubmitterService) Get(ctx context.Context, submitterID int64) (submitter.Submitter, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SubmitterService.Get")
	defer span.End()

	var out submitter.Submitter
	err := s.tx.Read(ctx, func(ctx context.Context, repos txn.Repositories) error {
		var err error
		out, err = requireSubmitter(ctx, repos, submitterID)
		return err
	})
	return out, err
}

// SetBanned runs under the submissions lock so a ban takes effect for every
// submission that starts after it commits.
func (s *SubmitterService) SetBanned(ctx context.Context, submitterID int64, banned bool) (updated submitter.Submitter, err error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SubmitterService.SetBanned")
	defer func() { endSpan(span, err) }()

	err = s.tx.Write(ctx, txn.LockSubmissions, func(ctx context.Context, repos txn.Repositories) error {
		current, err := requireSubmitter(ctx, repos, submitterID)
		if err != nil {
			return err
		}
		if err := repos.Submitters.SetBanned(ctx, submitterID, banned); err != nil {
			return err
		}
		updated = current
		updated.Banned = banned
		return nil
	})
	if err != nil {
		return submitter.Submitter{}, err
	}

	s.logger.InfoContext(ctx, "submitter ban changed", "submitter_id", submitterID, "banned", banned)
	return updated, nil
}

func requireSubmitter(ctx context.Context, repos txn.Repositories, submitterID int64) (submitter.Submitter, error) {
	item, ok, err := repos.Submitters.GetByID(ctx, submitterID)
	if err != nil {
		return submitter.Submitter{}, err
	}
	if !ok {
		return submitter.Submitter{}, listerr.SubmitterNotFound(submitterID)
	}
	return item, nil
}
