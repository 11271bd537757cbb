package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/demonlist/internal/domain/player"
	qb "github.com/riskibarqy/demonlist/internal/platform/querybuilder"
)

type PlayerRepository struct {
	tx *sqlx.Tx
}

func (r *PlayerRepository) GetByID(ctx context.Context, id int64) (player.Player, bool, error) {
	return r.getOne(ctx, "get player by id", qb.Eq("id", id))
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (player.Player, bool, error) {
	return r.getOne(ctx, "get player by name", qb.Expr("lower(name) = lower(?)", player.NormalizeName(name)))
}

func (r *PlayerRepository) getOne(ctx context.Context, op string, cond qb.Condition) (player.Player, bool, error) {
	query, args, err := qb.Select(playerColumns...).From("players").Where(cond).ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row playerTableModel
	if err := r.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

func (r *PlayerRepository) GetOrCreateByName(ctx context.Context, name string) (player.Player, error) {
	const query = `
INSERT INTO players (name)
VALUES ($1)
ON CONFLICT ((lower(name))) DO UPDATE SET name = players.name
RETURNING id, name, nationality, subdivision, banned, link_banned`

	var row playerTableModel
	if err := r.tx.GetContext(ctx, &row, query, player.NormalizeName(name)); err != nil {
		return player.Player{}, fmt.Errorf("get or create player: %w", err)
	}
	return row.toDomain(), nil
}

func (r *PlayerRepository) Update(ctx context.Context, item player.Player) error {
	query, args, err := qb.Update("players").
		Set("nationality", nullString(item.Nationality)).
		Set("subdivision", nullString(item.Subdivision)).
		Set("banned", item.Banned).
		Set("link_banned", item.LinkBanned).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update player query: %w", err)
	}
	return execOne(ctx, r.tx, "update player", query, args...)
}
