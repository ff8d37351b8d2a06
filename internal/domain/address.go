package domain

// AddressOption is one selectable entry of an address level.
type AddressOption struct {
	Code   string `db:"code" json:"code"`
	Name   string `db:"name" json:"name"`
	NameKm string `db:"name_km" json:"name_km,omitempty"`
}

type AddressLevel string

const (
	LevelProvince AddressLevel = "province"
	LevelDistrict AddressLevel = "district"
	LevelCommune  AddressLevel = "commune"
	LevelVillage  AddressLevel = "village"
)
