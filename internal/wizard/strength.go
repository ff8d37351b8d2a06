package wizard

import (
	"unicode/utf8"

	pkgvalidator "github.com/pharmahub/backend/pkg/validator"
)

type StrengthLevel string

const (
	StrengthWeak     StrengthLevel = "weak"
	StrengthModerate StrengthLevel = "moderate"
	StrengthStrong   StrengthLevel = "strong"
)

type PasswordChecks struct {
	MinLength bool `json:"minLength"`
	Uppercase bool `json:"uppercase"`
	Lowercase bool `json:"lowercase"`
	Digit     bool `json:"digit"`
	Special   bool `json:"special"`
}

func (c PasswordChecks) passed() int {
	n := 0
	for _, ok := range []bool{c.MinLength, c.Uppercase, c.Lowercase, c.Digit, c.Special} {
		if ok {
			n++
		}
	}
	return n
}

type Strength struct {
	Checks  PasswordChecks `json:"checks"`
	Percent int            `json:"percent"`
	Level   StrengthLevel  `json:"level"`
}

// PasswordStrength is display only; gating uses the password rule.
func PasswordStrength(password string) Strength {
	var checks PasswordChecks
	checks.MinLength = utf8.RuneCountInString(password) >= pkgvalidator.PasswordMinLength
	for _, r := range password {
		switch {
		case r >= 'A' && r <= 'Z':
			checks.Uppercase = true
		case r >= 'a' && r <= 'z':
			checks.Lowercase = true
		case r >= '0' && r <= '9':
			checks.Digit = true
		default:
			checks.Special = true
		}
	}

	percent := checks.passed() * 100 / 5
	level := StrengthWeak
	switch {
	case percent >= 80:
		level = StrengthStrong
	case percent >= 40:
		level = StrengthModerate
	}

	return Strength{Checks: checks, Percent: percent, Level: level}
}
