package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/pharmahub/backend/internal/domain"
)

// Gazetteer reads the address hierarchy from the address_unit table. Each
// lookup joins through the parents so a child listed under the wrong parent
// never resolves.
type Gazetteer struct {
	db *sqlx.DB
}

func NewGazetteer(db *sqlx.DB) *Gazetteer {
	return &Gazetteer{
		db: db,
	}
}

func (r *Gazetteer) Provinces(ctx context.Context) ([]domain.AddressOption, error) {
	const query = `
	SELECT code, name, name_km FROM address_unit WHERE level = 'province' ORDER BY code ASC;
	`
	return r.selectOptions(ctx, query)
}

func (r *Gazetteer) Districts(ctx context.Context, province string) ([]domain.AddressOption, error) {
	const query = `
	SELECT code, name, name_km FROM address_unit
	WHERE level = 'district' AND parent_code = ?
	ORDER BY code ASC;
	`
	return r.selectOptions(ctx, query, province)
}

func (r *Gazetteer) Communes(ctx context.Context, province, district string) ([]domain.AddressOption, error) {
	const query = `
	SELECT c.code, c.name, c.name_km FROM address_unit c
	JOIN address_unit d ON d.code = c.parent_code AND d.level = 'district'
	WHERE c.level = 'commune' AND d.code = ? AND d.parent_code = ?
	ORDER BY c.code ASC;
	`
	return r.selectOptions(ctx, query, district, province)
}

func (r *Gazetteer) Villages(ctx context.Context, province, district, commune string) ([]domain.AddressOption, error) {
	const query = `
	SELECT v.code, v.name, v.name_km FROM address_unit v
	JOIN address_unit c ON c.code = v.parent_code AND c.level = 'commune'
	JOIN address_unit d ON d.code = c.parent_code AND d.level = 'district'
	WHERE v.level = 'village' AND c.code = ? AND d.code = ? AND d.parent_code = ?
	ORDER BY v.code ASC;
	`
	return r.selectOptions(ctx, query, commune, district, province)
}

func (r *Gazetteer) selectOptions(ctx context.Context, query string, args ...interface{}) ([]domain.AddressOption, error) {
	options := []domain.AddressOption{}
	if err := r.db.SelectContext(ctx, &options, query, args...); err != nil {
		return nil, fmt.Errorf("select address units failed: %w", err)
	}
	return options, nil
}
