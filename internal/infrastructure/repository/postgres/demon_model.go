package postgres

import (
	"database/sql"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
)

var demonColumns = []string{"id", "name", "position", "requirement", "video", "publisher", "verifier", "legacy"}

type demonTableModel struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Position    sql.NullInt64  `db:"position"`
	Requirement int            `db:"requirement"`
	Video       sql.NullString `db:"video"`
	Publisher   int64          `db:"publisher"`
	Verifier    int64          `db:"verifier"`
	Legacy      bool           `db:"legacy"`
}

type demonInsertModel struct {
	Name        string         `db:"name"`
	Position    sql.NullInt64  `db:"position"`
	Requirement int            `db:"requirement"`
	Video       sql.NullString `db:"video"`
	Publisher   int64          `db:"publisher"`
	Verifier    int64          `db:"verifier"`
	Legacy      bool           `db:"legacy"`
}

func (m demonTableModel) toDomain() demon.Demon {
	return demon.Demon{
		ID:               m.ID,
		Name:             m.Name,
		Position:         int(m.Position.Int64),
		RequiredProgress: m.Requirement,
		Video:            m.Video.String,
		PublisherID:      m.Publisher,
		VerifierID:       m.Verifier,
		Legacy:           m.Legacy,
	}
}

func nullPosition(position int) sql.NullInt64 {
	return sql.NullInt64{Int64: int64(position), Valid: position > 0}
}

func nullString(value string) sql.NullString {
	return sql.NullString{String: value, Valid: value != ""}
}

func int64sToAny(ids []int64) []any {
	out := make([]any, 0, len(ids))
	for _, id := range ids {
		out = append(out, id)
	}
	return out
}
