package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/demonlist/internal/domain/record"
	qb "github.com/riskibarqy/demonlist/internal/platform/querybuilder"
)

type RecordRepository struct {
	tx *sqlx.Tx
}

func (r *RecordRepository) GetByID(ctx context.Context, id int64) (record.Record, bool, error) {
	return r.getFirst(ctx, "get record by id", qb.Eq("id", id))
}

func (r *RecordRepository) FindActive(ctx context.Context, playerID, demonID int64) (record.Record, bool, error) {
	return r.getFirst(ctx, "find active record",
		qb.Eq("player", playerID),
		qb.Eq("demon", demonID),
		qb.In("status", []any{
			string(record.StatusPending),
			string(record.StatusUnderConsideration),
			string(record.StatusApproved),
		}),
	)
}

func (r *RecordRepository) FindByVideo(ctx context.Context, video string) (record.Record, bool, error) {
	if video == "" {
		return record.Record{}, false, nil
	}
	return r.getFirst(ctx, "find record by video", qb.Eq("video", video))
}

func (r *RecordRepository) getFirst(ctx context.Context, op string, conds ...qb.Condition) (record.Record, bool, error) {
	query, args, err := qb.Select(recordColumns...).
		From("records").
		Where(conds...).
		OrderBy("id").
		Limit(1).
		ToSQL()
	if err != nil {
		return record.Record{}, false, fmt.Errorf("build %s query: %w", op, err)
	}

	var row recordTableModel
	if err := r.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return record.Record{}, false, nil
		}
		return record.Record{}, false, fmt.Errorf("%s: %w", op, err)
	}
	return row.toDomain(), true, nil
}

func (r *RecordRepository) ListByPlayer(ctx context.Context, playerID int64) ([]record.Record, error) {
	query, args, err := qb.Select(recordColumns...).
		From("records").
		Where(qb.Eq("player", playerID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list records by player query: %w", err)
	}

	var rows []recordTableModel
	if err := r.tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list records by player: %w", err)
	}

	out := make([]record.Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *RecordRepository) Create(ctx context.Context, item record.Record) (record.Record, error) {
	query, args, err := qb.InsertModel("records", recordInsertModel{
		Demon:     item.DemonID,
		Player:    item.PlayerID,
		Submitter: item.SubmitterID,
		Progress:  item.Progress,
		Video:     nullString(item.Video),
		Status:    string(item.Status),
	}, "RETURNING id, created_at")
	if err != nil {
		return record.Record{}, fmt.Errorf("build insert record query: %w", err)
	}

	if err := r.tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID, &item.CreatedAt); err != nil {
		return record.Record{}, fmt.Errorf("insert record: %w", err)
	}
	return item, nil
}

func (r *RecordRepository) UpdateStatus(ctx context.Context, id int64, status record.Status) error {
	query, args, err := qb.Update("records").
		Set("status", string(status)).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update record status query: %w", err)
	}
	return execOne(ctx, r.tx, "update record status", query, args...)
}
