package memory

import (
	"context"
	"fmt"

	"github.com/riskibarqy/demonlist/internal/domain/submitter"
)

type SubmitterRepository struct {
	unit
}

func (r *SubmitterRepository) GetByID(_ context.Context, id int64) (submitter.Submitter, bool, error) {
	item, ok := r.data.submitters[id]
	return item, ok, nil
}

func (r *SubmitterRepository) GetOrCreateByIP(_ context.Context, ip string) (submitter.Submitter, error) {
	for _, item := range r.data.submitters {
		if item.IP == ip {
			return item, nil
		}
	}
	if err := r.writable(); err != nil {
		return submitter.Submitter{}, err
	}

	r.data.seq.submitter++
	item := submitter.Submitter{ID: r.data.seq.submitter, IP: ip}
	r.data.submitters[item.ID] = item
	return item, nil
}

func (r *SubmitterRepository) SetBanned(_ context.Context, id int64, banned bool) error {
	if err := r.writable(); err != nil {
		return err
	}
	item, ok := r.data.submitters[id]
	if !ok {
		return fmt.Errorf("set banned: submitter %d does not exist", id)
	}
	item.Banned = banned
	r.data.submitters[id] = item
	return nil
}
