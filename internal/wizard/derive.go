package wizard

import (
	"strings"

	"github.com/pharmahub/backend/internal/domain"
)

// SubdomainFallbackPrefix is prepended when a derived slug would not start
// with a letter or digit.
const SubdomainFallbackPrefix = "rx"

// DeriveSubdomain turns a business name into a subdomain slug:
// lowercase, drop everything but [a-z0-9] and whitespace, replace each
// whitespace run with one hyphen, trim, drop trailing hyphens, then prefix
// SubdomainFallbackPrefix if the first character is not alphanumeric.
//
//	"St. Mary's Pharmacy!!" -> "st-marys-pharmacy"
//	" 24/7 Care"            -> "rx-247-care"
func DeriveSubdomain(name string) string {
	lowered := strings.ToLower(name)

	var b strings.Builder
	b.Grow(len(lowered))
	inSpace := false
	for _, r := range lowered {
		switch {
		case isSlugSpace(r):
			if !inSpace {
				b.WriteByte('-')
				inSpace = true
			}
		case (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9'):
			b.WriteRune(r)
			inSpace = false
		}
	}

	slug := strings.TrimSpace(b.String())
	slug = strings.TrimRight(slug, "-")
	if slug == "" {
		return ""
	}
	if !isAlphanumeric(slug[0]) {
		slug = SubdomainFallbackPrefix + slug
	}
	return slug
}

func isSlugSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\f', '\v':
		return true
	}
	return false
}

func isAlphanumeric(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
}

// cascadeAddress assigns value to the given level and clears every level
// below it. Re-selecting the current value changes nothing. It reports the
// field paths that were cleared.
func cascadeAddress(addr *domain.BusinessAddress, level domain.AddressLevel, value string) []string {
	switch level {
	case domain.LevelProvince:
		if addr.Province == value {
			return nil
		}
		addr.Province = value
		addr.District, addr.Commune, addr.Village = "", "", ""
		return []string{FieldDistrict, FieldCommune, FieldVillage}
	case domain.LevelDistrict:
		if addr.District == value {
			return nil
		}
		addr.District = value
		addr.Commune, addr.Village = "", ""
		return []string{FieldCommune, FieldVillage}
	case domain.LevelCommune:
		if addr.Commune == value {
			return nil
		}
		addr.Commune = value
		addr.Village = ""
		return []string{FieldVillage}
	case domain.LevelVillage:
		addr.Village = value
	}
	return nil
}
