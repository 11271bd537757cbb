package note

import (
	"strings"
	"time"

	"github.com/riskibarqy/demonlist/internal/domain/listerr"
)

// Note is a free text remark attached to a record.
type Note struct {
	ID        int64
	RecordID  int64
	Content   string
	CreatedAt time.Time
}

func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return listerr.NoteEmpty()
	}
	return nil
}
