package postgres

import (
	"database/sql"

	"github.com/riskibarqy/demonlist/internal/domain/player"
)

var playerColumns = []string{"id", "name", "nationality", "subdivision", "banned", "link_banned"}

type playerTableModel struct {
	ID          int64          `db:"id"`
	Name        string         `db:"name"`
	Nationality sql.NullString `db:"nationality"`
	Subdivision sql.NullString `db:"subdivision"`
	Banned      bool           `db:"banned"`
	LinkBanned  bool           `db:"link_banned"`
}

func (m playerTableModel) toDomain() player.Player {
	return player.Player{
		ID:          m.ID,
		Name:        m.Name,
		Nationality: m.Nationality.String,
		Subdivision: m.Subdivision.String,
		Banned:      m.Banned,
		LinkBanned:  m.LinkBanned,
	}
}
