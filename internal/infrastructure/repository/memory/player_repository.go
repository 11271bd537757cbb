package memory

import (
	"context"
	"fmt"
	"strings"

	"github.com/riskibarqy/demonlist/internal/domain/player"
)

type PlayerRepository struct {
	unit
}

func (r *PlayerRepository) GetByID(_ context.Context, id int64) (player.Player, bool, error) {
	item, ok := r.data.players[id]
	return item, ok, nil
}

func (r *PlayerRepository) GetByName(_ context.Context, name string) (player.Player, bool, error) {
	name = player.NormalizeName(name)
	for _, item := range r.data.players {
		if strings.EqualFold(item.Name, name) {
			return item, true, nil
		}
	}
	return player.Player{}, false, nil
}

func (r *PlayerRepository) GetOrCreateByName(ctx context.Context, name string) (player.Player, error) {
	item, ok, err := r.GetByName(ctx, name)
	if err != nil || ok {
		return item, err
	}
	if err := r.writable(); err != nil {
		return player.Player{}, err
	}

	r.data.seq.player++
	item = player.Player{ID: r.data.seq.player, Name: player.NormalizeName(name)}
	r.data.players[item.ID] = item
	return item, nil
}

func (r *PlayerRepository) Update(_ context.Context, item player.Player) error {
	if err := r.writable(); err != nil {
		return err
	}
	if _, ok := r.data.players[item.ID]; !ok {
		return fmt.Errorf("update player: player %d does not exist", item.ID)
	}
	r.data.players[item.ID] = item
	return nil
}
