package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
	qb "github.com/riskibarqy/demonlist/internal/platform/querybuilder"
)

type DemonRepository struct {
	tx *sqlx.Tx
}

func (r *DemonRepository) GetByID(ctx context.Context, id int64) (demon.Demon, bool, error) {
	return r.getOne(ctx, "get demon by id", qb.Eq("id", id))
}

func (r *DemonRepository) GetByPosition(ctx context.Context, position int) (demon.Demon, bool, error) {
	if position <= 0 {
		return demon.Demon{}, false, nil
	}
	return r.getOne(ctx, "get demon by position", qb.Eq("position", position))
}

func (r *DemonRepository) getOne(ctx context.Context, op string, cond qb.Condition) (demon.Demon, bool, error) {
	query, args, err := qb.Select(demonColumns...).From("demons").Where(cond).ToSQL()
	if err != nil {
		return demon.Demon{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row demonTableModel
	if err := r.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return demon.Demon{}, false, nil
		}
		return demon.Demon{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

func (r *DemonRepository) ListByName(ctx context.Context, name string) ([]demon.Demon, error) {
	return r.list(ctx, "list demons by name",
		qb.Select(demonColumns...).
			From("demons").
			Where(qb.Expr("lower(name) = lower(?)", name)).
			OrderBy("position NULLS LAST", "id"),
	)
}

func (r *DemonRepository) ListByIDs(ctx context.Context, ids []int64) ([]demon.Demon, error) {
	return r.list(ctx, "list demons by ids",
		qb.Select(demonColumns...).
			From("demons").
			Where(qb.In("id", int64sToAny(ids))).
			OrderBy("id"),
	)
}

func (r *DemonRepository) ListRanked(ctx context.Context) ([]demon.Demon, error) {
	return r.list(ctx, "list ranked demons",
		qb.Select(demonColumns...).
			From("demons").
			Where(qb.IsNotNull("position")).
			OrderBy("position"),
	)
}

func (r *DemonRepository) list(ctx context.Context, op string, builder *qb.SelectBuilder) ([]demon.Demon, error) {
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build %s query: %w", op, err)
	}

	var rows []demonTableModel
	if err := r.tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make([]demon.Demon, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *DemonRepository) MaxPosition(ctx context.Context) (int, error) {
	var maxPosition int
	if err := r.tx.GetContext(ctx, &maxPosition, `SELECT COALESCE(MAX(position), 0) FROM demons`); err != nil {
		return 0, fmt.Errorf("max demon position: %w", err)
	}
	return maxPosition, nil
}

func (r *DemonRepository) Positions(ctx context.Context) ([]int, error) {
	query, args, err := qb.Select("position").
		From("demons").
		Where(qb.IsNotNull("position")).
		OrderBy("position").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build positions query: %w", err)
	}

	var out []int
	if err := r.tx.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list demon positions: %w", err)
	}
	return out, nil
}

func (r *DemonRepository) Create(ctx context.Context, item demon.Demon) (demon.Demon, error) {
	query, args, err := qb.InsertModel("demons", demonInsertModel{
		Name:        item.Name,
		Position:    nullPosition(item.Position),
		Requirement: item.RequiredProgress,
		Video:       nullString(item.Video),
		Publisher:   item.PublisherID,
		Verifier:    item.VerifierID,
		Legacy:      item.Legacy,
	}, "RETURNING id")
	if err != nil {
		return demon.Demon{}, fmt.Errorf("build insert demon query: %w", err)
	}

	if err := r.tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID); err != nil {
		return demon.Demon{}, fmt.Errorf("insert demon: %w", err)
	}
	return item, nil
}

func (r *DemonRepository) SetPosition(ctx context.Context, id int64, position int) error {
	query, args, err := qb.Update("demons").
		Set("position", nullPosition(position)).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set position query: %w", err)
	}
	return execOne(ctx, r.tx, "set demon position", query, args...)
}

func (r *DemonRepository) ShiftPositions(ctx context.Context, from, to, delta int) error {
	query, args, err := qb.Update("demons").
		SetExpr("position", "position + ?", delta).
		Where(qb.Expr("position BETWEEN ? AND ?", from, to)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build shift positions query: %w", err)
	}
	if _, err := r.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("shift demon positions [%d,%d] by %d: %w", from, to, delta, err)
	}
	return nil
}

func (r *DemonRepository) RecomputeLegacy(ctx context.Context, thresholds demon.Thresholds) error {
	const query = `
UPDATE demons
SET legacy = (position IS NULL OR position > $1)
WHERE legacy IS DISTINCT FROM (position IS NULL OR position > $1)`

	if _, err := r.tx.ExecContext(ctx, query, thresholds.ExtendedListSize); err != nil {
		return fmt.Errorf("recompute legacy flags: %w", err)
	}
	return nil
}

func (r *DemonRepository) UpdateRequirement(ctx context.Context, id int64, requirement int) error {
	query, args, err := qb.Update("demons").
		Set("requirement", requirement).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update requirement query: %w", err)
	}
	return execOne(ctx, r.tx, "update demon requirement", query, args...)
}

func (r *DemonRepository) AddCreator(ctx context.Context, creator demon.Creator) error {
	query, args, err := qb.InsertInto("creators").
		Columns("demon", "creator").
		Values(creator.DemonID, creator.PlayerID).
		Suffix("ON CONFLICT DO NOTHING").
		ToSQL()
	if err != nil {
		return fmt.Errorf("build add creator query: %w", err)
	}
	if _, err := r.tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("add creator: %w", err)
	}
	return nil
}

func (r *DemonRepository) RemoveCreator(ctx context.Context, creator demon.Creator) (bool, error) {
	query, args, err := qb.DeleteFrom("creators").
		Where(qb.Eq("demon", creator.DemonID), qb.Eq("creator", creator.PlayerID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build remove creator query: %w", err)
	}
	res, err := r.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("remove creator: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("remove creator rows affected: %w", err)
	}
	return affected > 0, nil
}

func (r *DemonRepository) ListCreators(ctx context.Context, demonID int64) ([]int64, error) {
	query, args, err := qb.Select("creator").
		From("creators").
		Where(qb.Eq("demon", demonID)).
		OrderBy("creator").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list creators query: %w", err)
	}

	out := make([]int64, 0)
	if err := r.tx.SelectContext(ctx, &out, query, args...); err != nil {
		return nil, fmt.Errorf("list creators: %w", err)
	}
	return out, nil
}

// execOne runs a statement that must touch exactly one row.
func execOne(ctx context.Context, tx *sqlx.Tx, op, query string, args ...any) error {
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s rows affected: %w", op, err)
	}
	if affected != 1 {
		return fmt.Errorf("%s: expected 1 row, affected %d", op, affected)
	}
	return nil
}
