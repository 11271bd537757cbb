package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/demonlist/internal/domain/record"
)

var recordColumns = []string{"id", "demon", "player", "submitter", "progress", "video", "status", "created_at"}

type recordTableModel struct {
	ID        int64          `db:"id"`
	Demon     int64          `db:"demon"`
	Player    int64          `db:"player"`
	Submitter int64          `db:"submitter"`
	Progress  int            `db:"progress"`
	Video     sql.NullString `db:"video"`
	Status    string         `db:"status"`
	CreatedAt time.Time      `db:"created_at"`
}

type recordInsertModel struct {
	Demon     int64          `db:"demon"`
	Player    int64          `db:"player"`
	Submitter int64          `db:"submitter"`
	Progress  int            `db:"progress"`
	Video     sql.NullString `db:"video"`
	Status    string         `db:"status"`
}

func (m recordTableModel) toDomain() record.Record {
	return record.Record{
		ID:          m.ID,
		DemonID:     m.Demon,
		PlayerID:    m.Player,
		SubmitterID: m.Submitter,
		Progress:    m.Progress,
		Video:       m.Video.String,
		Status:      record.Status(m.Status),
		CreatedAt:   m.CreatedAt,
	}
}
