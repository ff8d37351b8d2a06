// Package address serves the province / district / commune / village option
// lists used by the signup address cascade.
package address

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/pharmahub/backend/internal/domain"
)

const (
	SourceEmbedded = "embedded"
	SourceMySQL    = "mysql"
)

// Gazetteer resolves the option list of each address level under its parent.
// A parent that does not exist yields an empty list, not an error.
type Gazetteer interface {
	Provinces(ctx context.Context) ([]domain.AddressOption, error)
	Districts(ctx context.Context, province string) ([]domain.AddressOption, error)
	Communes(ctx context.Context, province, district string) ([]domain.AddressOption, error)
	Villages(ctx context.Context, province, district, commune string) ([]domain.AddressOption, error)
}

//go:embed data/cambodia.json
var embeddedData []byte

type node struct {
	domain.AddressOption
	Districts []node `json:"districts,omitempty"`
	Communes  []node `json:"communes,omitempty"`
	Villages  []node `json:"villages,omitempty"`
}

// Static is an in-memory gazetteer.
type Static struct {
	provinces []domain.AddressOption
	districts map[string][]domain.AddressOption
	communes  map[string][]domain.AddressOption
	villages  map[string][]domain.AddressOption
}

// NewEmbedded loads the gazetteer compiled into the binary.
func NewEmbedded() (*Static, error) {
	return NewStatic(embeddedData)
}

// NewStatic builds a gazetteer from a nested JSON document.
func NewStatic(raw []byte) (*Static, error) {
	var provinces []node
	if err := json.Unmarshal(raw, &provinces); err != nil {
		return nil, fmt.Errorf("decode gazetteer: %w", err)
	}

	s := &Static{
		districts: make(map[string][]domain.AddressOption),
		communes:  make(map[string][]domain.AddressOption),
		villages:  make(map[string][]domain.AddressOption),
	}
	for _, p := range provinces {
		s.provinces = append(s.provinces, p.AddressOption)
		for _, d := range p.Districts {
			s.districts[p.Code] = append(s.districts[p.Code], d.AddressOption)
			for _, c := range d.Communes {
				key := districtKey(p.Code, d.Code)
				s.communes[key] = append(s.communes[key], c.AddressOption)
				for _, v := range c.Villages {
					key := communeKey(p.Code, d.Code, c.Code)
					s.villages[key] = append(s.villages[key], v.AddressOption)
				}
			}
		}
	}
	return s, nil
}

func (s *Static) Provinces(context.Context) ([]domain.AddressOption, error) {
	return clone(s.provinces), nil
}

func (s *Static) Districts(_ context.Context, province string) ([]domain.AddressOption, error) {
	return clone(s.districts[province]), nil
}

func (s *Static) Communes(_ context.Context, province, district string) ([]domain.AddressOption, error) {
	return clone(s.communes[districtKey(province, district)]), nil
}

func (s *Static) Villages(_ context.Context, province, district, commune string) ([]domain.AddressOption, error) {
	return clone(s.villages[communeKey(province, district, commune)]), nil
}

func districtKey(province, district string) string {
	return province + "/" + district
}

func communeKey(province, district, commune string) string {
	return province + "/" + district + "/" + commune
}

func clone(in []domain.AddressOption) []domain.AddressOption {
	out := make([]domain.AddressOption, len(in))
	copy(out, in)
	return out
}
