package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/demonlist/internal/domain/note"
	qb "github.com/riskibarqy/demonlist/internal/platform/querybuilder"
)

type NoteRepository struct {
	tx *sqlx.Tx
}

type noteTableModel struct {
	ID        int64     `db:"id"`
	Record    int64     `db:"record"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

func (r *NoteRepository) Create(ctx context.Context, item note.Note) (note.Note, error) {
	query, args, err := qb.InsertInto("record_notes").
		Columns("record", "content").
		Values(item.RecordID, item.Content).
		Suffix("RETURNING id, created_at").
		ToSQL()
	if err != nil {
		return note.Note{}, fmt.Errorf("build insert note query: %w", err)
	}

	if err := r.tx.QueryRowxContext(ctx, query, args...).Scan(&item.ID, &item.CreatedAt); err != nil {
		return note.Note{}, fmt.Errorf("insert note: %w", err)
	}
	return item, nil
}

func (r *NoteRepository) ListByRecord(ctx context.Context, recordID int64) ([]note.Note, error) {
	query, args, err := qb.Select("id", "record", "content", "created_at").
		From("record_notes").
		Where(qb.Eq("record", recordID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list notes query: %w", err)
	}

	var rows []noteTableModel
	if err := r.tx.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list notes: %w", err)
	}

	out := make([]note.Note, 0, len(rows))
	for _, row := range rows {
		out = append(out, note.Note{ID: row.ID, RecordID: row.Record, Content: row.Content, CreatedAt: row.CreatedAt})
	}
	return out, nil
}

func (r *NoteRepository) Delete(ctx context.Context, recordID, noteID int64) (bool, error) {
	query, args, err := qb.DeleteFrom("record_notes").
		Where(qb.Eq("id", noteID), qb.Eq("record", recordID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete note query: %w", err)
	}

	res, err := r.tx.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete note: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete note rows affected: %w", err)
	}
	return affected > 0, nil
}
