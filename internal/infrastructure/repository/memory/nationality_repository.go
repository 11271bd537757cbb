package memory

import (
	"context"

	"github.com/riskibarqy/demonlist/internal/domain/nationality"
)

type NationalityRepository struct {
	unit
}

func (r *NationalityRepository) Get(_ context.Context, isoCode string) (nationality.Nationality, bool, error) {
	item, ok := r.data.nationalities[nationality.NormalizeCode(isoCode)]
	return item, ok, nil
}

func (r *NationalityRepository) GetSubdivision(_ context.Context, nationCode, isoCode string) (nationality.Subdivision, bool, error) {
	key := subdivisionKey(nationality.NormalizeCode(nationCode), nationality.NormalizeCode(isoCode))
	item, ok := r.data.subdivisions[key]
	return item, ok, nil
}
