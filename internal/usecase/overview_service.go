package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
	"github.com/riskibarqy/demonlist/internal/domain/player"
	"github.com/riskibarqy/demonlist/internal/domain/txn"
	"github.com/riskibarqy/demonlist/internal/domain/video"
)

// OverviewDemon is one row of the list overview.
type OverviewDemon struct {
	ID        int64
	Position  int
	Name      string
	Publisher string
	Video     string
	Thumbnail string
}

// Overview is the ranked list as shown to visitors. When is nil for the live
// list and the effective timestamp otherwise.
type Overview struct {
	When   *time.Time
	Demons []OverviewDemon
}

type OverviewService struct {
	tx      txn.Manager
	machine *TimeMachine
}

func NewOverviewService(tx txn.Manager, machine *TimeMachine) *OverviewService {
	return &OverviewService{tx: tx, machine: machine}
}

func (s *OverviewService) Overview(ctx context.Context, at *time.Time) (Overview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.OverviewService.Overview")
	defer span.End()

	var out Overview
	err := s.tx.Read(ctx, func(ctx context.Context, repos txn.Repositories) error {
		snapshot, err := s.machine.reconstructIn(ctx, repos, at)
		if err != nil {
			return err
		}

		players := make(map[int64]player.Player)
		lookup := func(id int64) (player.Player, error) {
			if p, ok := players[id]; ok {
				return p, nil
			}
			p, ok, err := repos.Players.GetByID(ctx, id)
			if err != nil {
				return player.Player{}, err
			}
			if !ok {
				return player.Player{}, listerr.Internal(fmt.Errorf("demon references missing player %d", id))
			}
			players[id] = p
			return p, nil
		}

		out = Overview{When: snapshot.At, Demons: make([]OverviewDemon, 0, len(snapshot.Demons))}
		for _, ranked := range snapshot.Demons {
			publisher, err := lookup(ranked.Demon.PublisherID)
			if err != nil {
				return err
			}
			verifier, err := lookup(ranked.Demon.VerifierID)
			if err != nil {
				return err
			}

			row := OverviewDemon{
				ID:        ranked.Demon.ID,
				Position:  ranked.Position,
				Name:      ranked.Demon.Name,
				Publisher: publisher.Name,
			}
			if !verifier.LinkBanned && ranked.Demon.Video != "" {
				row.Video = ranked.Demon.Video
				if thumbnail, err := video.Thumbnail(ranked.Demon.Video); err == nil {
					row.Thumbnail = thumbnail
				}
			}
			out.Demons = append(out.Demons, row)
		}
		return nil
	})
	return out, err
}
