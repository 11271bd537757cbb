package memory

import (
	"context"
	"slices"

	"github.com/riskibarqy/demonlist/internal/domain/note"
)

type NoteRepository struct {
	unit
}

func (r *NoteRepository) Create(_ context.Context, item note.Note) (note.Note, error) {
	if err := r.writable(); err != nil {
		return note.Note{}, err
	}
	r.data.seq.note++
	item.ID = r.data.seq.note
	r.data.notes[item.ID] = item
	return item, nil
}

func (r *NoteRepository) ListByRecord(_ context.Context, recordID int64) ([]note.Note, error) {
	out := make([]note.Note, 0)
	for _, item := range r.data.notes {
		if item.RecordID == recordID {
			out = append(out, item)
		}
	}
	slices.SortFunc(out, func(a, b note.Note) int { return int(a.ID - b.ID) })
	return out, nil
}

func (r *NoteRepository) Delete(_ context.Context, recordID, noteID int64) (bool, error) {
	if err := r.writable(); err != nil {
		return false, err
	}
	item, ok := r.data.notes[noteID]
	if !ok || item.RecordID != recordID {
		return false, nil
	}
	delete(r.data.notes, noteID)
	return true, nil
}
