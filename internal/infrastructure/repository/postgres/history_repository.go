package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/demonlist/internal/domain/history"
	qb "github.com/riskibarqy/demonlist/internal/platform/querybuilder"
)

type HistoryRepository struct {
	tx *sqlx.Tx
}

type historyTableModel struct {
	ID          int64         `db:"id"`
	Demon       int64         `db:"demon"`
	OldPosition sql.NullInt64 `db:"old_position"`
	NewPosition sql.NullInt64 `db:"new_position"`
	HappenedAt  time.Time     `db:"happened_at"`
}

// Append clamps the timestamp to the latest existing event so replay order
// always equals insertion order.
func (r *HistoryRepository) Append(ctx context.Context, item history.Event) (history.Event, error) {
	const query = `
INSERT INTO demon_history (demon, old_position, new_position, happened_at)
VALUES ($1, $2, $3, GREATEST($4::timestamptz, COALESCE((SELECT MAX(happened_at) FROM demon_history), $4::timestamptz)))
RETURNING id, happened_at`

	err := r.tx.QueryRowxContext(ctx, query,
		item.DemonID,
		nullPosition(item.OldPosition),
		nullPosition(item.NewPosition),
		item.At,
	).Scan(&item.ID, &item.At)
	if err != nil {
		return history.Event{}, fmt.Errorf("append demon history: %w", err)
	}
	return item, nil
}

func (r *HistoryRepository) ListUntil(ctx context.Context, at time.Time) ([]history.Event, error) {
	query, args, err := qb.Select("id", "demon", "old_position", "new_position", "happened_at").
		From("demon_history").
		Where(qb.Expr("happened_at <= ?", at)).
		OrderBy("happened_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list history query: %w", err)
	}

	var rows []historyTableModel
	if err := r.tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list demon history: %w", err)
	}

	out := make([]history.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, history.Event{
			ID:          row.ID,
			DemonID:     row.Demon,
			OldPosition: int(row.OldPosition.Int64),
			NewPosition: int(row.NewPosition.Int64),
			At:          row.HappenedAt,
		})
	}
	return out, nil
}

func (r *HistoryRepository) Earliest(ctx context.Context) (time.Time, bool, error) {
	var earliest sql.NullTime
	if err := r.tx.GetContext(ctx, &earliest, `SELECT MIN(happened_at) FROM demon_history`); err != nil {
		return time.Time{}, false, fmt.Errorf("earliest demon history: %w", err)
	}
	return earliest.Time, earliest.Valid, nil
}
