package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/demonlist/internal/domain/nationality"
	qb "github.com/riskibarqy/demonlist/internal/platform/querybuilder"
)

type NationalityRepository struct {
	tx *sqlx.Tx
}

func (r *NationalityRepository) Get(ctx context.Context, isoCode string) (nationality.Nationality, bool, error) {
	query, args, err := qb.Select("iso_country_code", "nation").
		From("nationalities").
		Where(qb.Eq("iso_country_code", nationality.NormalizeCode(isoCode))).
		ToSQL()
	if err != nil {
		return nationality.Nationality{}, false, fmt.Errorf("build get nationality query: %w", err)
	}

	var row struct {
		ISOCode string `db:"iso_country_code"`
		Nation  string `db:"nation"`
	}
	if err := r.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nationality.Nationality{}, false, nil
		}
		return nationality.Nationality{}, false, fmt.Errorf("get nationality: %w", err)
	}
	return nationality.Nationality{ISOCode: row.ISOCode, Name: row.Nation}, true, nil
}

func (r *NationalityRepository) GetSubdivision(ctx context.Context, nationCode, isoCode string) (nationality.Subdivision, bool, error) {
	query, args, err := qb.Select("nation", "iso_code", "name").
		From("subdivisions").
		Where(
			qb.Eq("nation", nationality.NormalizeCode(nationCode)),
			qb.Eq("iso_code", nationality.NormalizeCode(isoCode)),
		).
		ToSQL()
	if err != nil {
		return nationality.Subdivision{}, false, fmt.Errorf("build get subdivision query: %w", err)
	}

	var row struct {
		Nation  string `db:"nation"`
		ISOCode string `db:"iso_code"`
		Name    string `db:"name"`
	}
	if err := r.tx.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nationality.Subdivision{}, false, nil
		}
		return nationality.Subdivision{}, false, fmt.Errorf("get subdivision: %w", err)
	}
	return nationality.Subdivision{NationCode: row.Nation, ISOCode: row.ISOCode, Name: row.Name}, true, nil
}
