package postgres

import (
	"context"
	"fmt"

	"github.com/riskibarqy/demonlist/internal/domain/history"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	"github.com/riskibarqy/demonlist/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads seed into a database whose list was never used. Demons
// are placed in seed order, each with an insertion event, exactly as the
// memory store does. It reports whether anything was written.
func BootstrapSeed(ctx context.Context, tx txn.Manager, seed memory.Seed) (bool, error) {
	seeded := false
	err := tx.Write(ctx, txn.LockRankedList, func(ctx context.Context, repos txn.Repositories) error {
		used, err := listInUse(ctx, repos)
		if err != nil || used {
			return err
		}

		playerIDs := make(map[int64]int64, len(seed.Players))
		for _, p := range seed.Players {
			seedID := p.ID
			existing, err := repos.Players.GetOrCreateByName(ctx, p.Name)
			if err != nil {
				return fmt.Errorf("seed player %s: %w", p.Name, err)
			}
			playerIDs[seedID] = existing.ID

			// Real players keep their own flags and nationality.
			if existing.Banned || existing.LinkBanned || existing.Nationality != "" {
				continue
			}
			p.ID = existing.ID
			p.Banned, p.LinkBanned = false, false
			if err := repos.Players.Update(ctx, p); err != nil {
				return fmt.Errorf("seed player %s: %w", p.Name, err)
			}
		}

		thresholds := seed.EffectiveThresholds()
		for i, d := range seed.Demons {
			d.Position = i + 1
			d.PublisherID = playerIDs[d.PublisherID]
			d.VerifierID = playerIDs[d.VerifierID]
			d.Legacy = thresholds.IsLegacy(d.Position)

			created, err := repos.Demons.Create(ctx, d)
			if err != nil {
				return fmt.Errorf("seed demon %s: %w", d.Name, err)
			}
			if _, err := repos.History.Append(ctx, history.Event{
				DemonID:     created.ID,
				NewPosition: created.Position,
				At:          seed.SeededAt,
			}); err != nil {
				return fmt.Errorf("seed demon %s history: %w", d.Name, err)
			}
		}
		seeded = len(seed.Demons) > 0
		return nil
	})
	return seeded && err == nil, err
}

// listInUse reports whether the list ever held a demon. History is append
// only, so a list whose demons were all removed still counts.
func listInUse(ctx context.Context, repos txn.Repositories) (bool, error) {
	if _, ok, err := repos.History.Earliest(ctx); err != nil || ok {
		return ok, err
	}
	maxPosition, err := repos.Demons.MaxPosition(ctx)
	if err != nil {
		return false, err
	}
	return maxPosition > 0, nil
}
