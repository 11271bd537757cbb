package memory

import (
	"context"
	"fmt"
	"slices"

	"github.com/riskibarqy/demonlist/internal/domain/record"
)

type RecordRepository struct {
	unit
}

func (r *RecordRepository) GetByID(_ context.Context, id int64) (record.Record, bool, error) {
	item, ok := r.data.records[id]
	return item, ok, nil
}

func (r *RecordRepository) FindActive(_ context.Context, playerID, demonID int64) (record.Record, bool, error) {
	var (
		found record.Record
		ok    bool
	)
	for _, item := range r.data.records {
		if item.PlayerID != playerID || item.DemonID != demonID || !item.Status.Active() {
			continue
		}
		if !ok || item.ID < found.ID {
			found, ok = item, true
		}
	}
	return found, ok, nil
}

func (r *RecordRepository) FindByVideo(_ context.Context, video string) (record.Record, bool, error) {
	var (
		found record.Record
		ok    bool
	)
	for _, item := range r.data.records {
		if item.Video == "" || item.Video != video {
			continue
		}
		if !ok || item.ID < found.ID {
			found, ok = item, true
		}
	}
	return found, ok, nil
}

func (r *RecordRepository) ListByPlayer(_ context.Context, playerID int64) ([]record.Record, error) {
	out := make([]record.Record, 0)
	for _, item := range r.data.records {
		if item.PlayerID == playerID {
			out = append(out, item)
		}
	}
	slices.SortFunc(out, func(a, b record.Record) int { return int(a.ID - b.ID) })
	return out, nil
}

func (r *RecordRepository) Create(_ context.Context, item record.Record) (record.Record, error) {
	if err := r.writable(); err != nil {
		return record.Record{}, err
	}
	r.data.seq.record++
	item.ID = r.data.seq.record
	r.data.records[item.ID] = item
	return item, nil
}

func (r *RecordRepository) UpdateStatus(_ context.Context, id int64, status record.Status) error {
	if err := r.writable(); err != nil {
		return err
	}
	item, ok := r.data.records[id]
	if !ok {
		return fmt.Errorf("update status: record %d does not exist", id)
	}
	item.Status = status
	r.data.records[id] = item
	return nil
}
