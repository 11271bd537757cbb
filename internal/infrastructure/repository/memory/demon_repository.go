package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/riskibarqy/demonlist/internal/domain/demon"
)

type DemonRepository struct {
	unit
}

func (r *DemonRepository) GetByID(_ context.Context, id int64) (demon.Demon, bool, error) {
	item, ok := r.data.demons[id]
	return item, ok, nil
}

func (r *DemonRepository) GetByPosition(_ context.Context, position int) (demon.Demon, bool, error) {
	if position <= 0 {
		return demon.Demon{}, false, nil
	}
	for _, item := range r.data.demons {
		if item.Position == position {
			return item, true, nil
		}
	}
	return demon.Demon{}, false, nil
}

func (r *DemonRepository) ListByName(_ context.Context, name string) ([]demon.Demon, error) {
	out := make([]demon.Demon, 0, 1)
	for _, item := range r.data.demons {
		if strings.EqualFold(item.Name, name) {
			out = append(out, item)
		}
	}
	sortDemons(out)
	return out, nil
}

func (r *DemonRepository) ListByIDs(_ context.Context, ids []int64) ([]demon.Demon, error) {
	out := make([]demon.Demon, 0, len(ids))
	for _, id := range ids {
		if item, ok := r.data.demons[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *DemonRepository) ListRanked(_ context.Context) ([]demon.Demon, error) {
	out := make([]demon.Demon, 0, len(r.data.demons))
	for _, item := range r.data.demons {
		if item.Ranked() {
			out = append(out, item)
		}
	}
	sortDemons(out)
	return out, nil
}

func (r *DemonRepository) MaxPosition(_ context.Context) (int, error) {
	maxPosition := 0
	for _, item := range r.data.demons {
		maxPosition = max(maxPosition, item.Position)
	}
	return maxPosition, nil
}

func (r *DemonRepository) Positions(_ context.Context) ([]int, error) {
	out := make([]int, 0, len(r.data.demons))
	for _, item := range r.data.demons {
		if item.Ranked() {
			out = append(out, item.Position)
		}
	}
	slices.Sort(out)
	return out, nil
}

func (r *DemonRepository) Create(_ context.Context, item demon.Demon) (demon.Demon, error) {
	if err := r.writable(); err != nil {
		return demon.Demon{}, err
	}
	r.data.seq.demon++
	item.ID = r.data.seq.demon
	r.data.demons[item.ID] = item
	return item, nil
}

func (r *DemonRepository) SetPosition(_ context.Context, id int64, position int) error {
	if err := r.writable(); err != nil {
		return err
	}
	item, ok := r.data.demons[id]
	if !ok {
		return fmt.Errorf("set position: demon %d does not exist", id)
	}
	item.Position = position
	r.data.demons[id] = item
	return nil
}

func (r *DemonRepository) ShiftPositions(_ context.Context, from, to, delta int) error {
	if err := r.writable(); err != nil {
		return err
	}
	for id, item := range r.data.demons {
		if item.Position >= from && item.Position <= to {
			item.Position += delta
			r.data.demons[id] = item
		}
	}
	return nil
}

func (r *DemonRepository) RecomputeLegacy(_ context.Context, thresholds demon.Thresholds) error {
	if err := r.writable(); err != nil {
		return err
	}
	for id, item := range r.data.demons {
		legacy := thresholds.IsLegacy(item.Position)
		if item.Legacy != legacy {
			item.Legacy = legacy
			r.data.demons[id] = item
		}
	}
	return nil
}

func (r *DemonRepository) UpdateRequirement(_ context.Context, id int64, requirement int) error {
	if err := r.writable(); err != nil {
		return err
	}
	item, ok := r.data.demons[id]
	if !ok {
		return fmt.Errorf("update requirement: demon %d does not exist", id)
	}
	item.RequiredProgress = requirement
	r.data.demons[id] = item
	return nil
}

func (r *DemonRepository) AddCreator(_ context.Context, creator demon.Creator) error {
	if err := r.writable(); err != nil {
		return err
	}
	r.data.creators[creator] = struct{}{}
	return nil
}

func (r *DemonRepository) RemoveCreator(_ context.Context, creator demon.Creator) (bool, error) {
	if err := r.writable(); err != nil {
		return false, err
	}
	if _, ok := r.data.creators[creator]; !ok {
		return false, nil
	}
	delete(r.data.creators, creator)
	return true, nil
}

func (r *DemonRepository) ListCreators(_ context.Context, demonID int64) ([]int64, error) {
	out := make([]int64, 0)
	for creator := range r.data.creators {
		if creator.DemonID == demonID {
			out = append(out, creator.PlayerID)
		}
	}
	slices.Sort(out)
	return out, nil
}

// sortDemons orders ranked demons by position and unranked ones by id after
// them.
func sortDemons(items []demon.Demon) {
	slices.SortFunc(items, func(a, b demon.Demon) int {
		switch {
		case a.Ranked() && !b.Ranked():
			return -1
		case !a.Ranked() && b.Ranked():
			return 1
		case a.Position != b.Position:
			return a.Position - b.Position
		default:
			return int(a.ID - b.ID)
		}
	})
}
