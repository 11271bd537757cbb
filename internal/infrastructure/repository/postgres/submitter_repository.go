package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/demonlist/internal/domain/submitter"
	qb "github.com/riskibarqy/demonlist/internal/platform/querybuilder"
)

type SubmitterRepository struct {
	tx *sqlx.Tx
}

type submitterTableModel struct {
	ID     int64  `db:"submitter_id"`
	IP     string `db:"ip_address"`
	Banned bool   `db:"banned"`
}

func (m submitterTableModel) toDomain() submitter.Submitter {
	return submitter.Submitter{ID: m.ID, IP: m.IP, Banned: m.Banned}
}

func (r *SubmitterRepository) GetByID(ctx context.Context, id int64) (submitter.Submitter, bool, error) {
	query, args, err := qb.Select("submitter_id", "ip_address", "banned").
		From("submitters").
		Where(qb.Eq("submitter_id", id)).
		ToSQL()
	if err != nil {
		return submitter.Submitter{}, false, fmt.Errorf("build get submitter query: %w", err)
	}

	var row submitterTableModel
	if err := r.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return submitter.Submitter{}, false, nil
		}
		return submitter.Submitter{}, false, fmt.Errorf("get submitter: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *SubmitterRepository) GetOrCreateByIP(ctx context.Context, ip string) (submitter.Submitter, error) {
	const query = `
INSERT INTO submitters (ip_address)
VALUES ($1)
ON CONFLICT (ip_address) DO UPDATE SET ip_address = EXCLUDED.ip_address
RETURNING submitter_id, ip_address, banned`

	var row submitterTableModel
	if err := r.tx.GetContext(ctx, &row, query, ip); err != nil {
		return submitter.Submitter{}, fmt.Errorf("get or create submitter: %w", err)
	}
	return row.toDomain(), nil
}

func (r *SubmitterRepository) SetBanned(ctx context.Context, id int64, banned bool) error {
	query, args, err := qb.Update("submitters").
		Set("banned", banned).
		Where(qb.Eq("submitter_id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build set submitter banned query: %w", err)
	}
	return execOne(ctx, r.tx, "set submitter banned", query, args...)
}
