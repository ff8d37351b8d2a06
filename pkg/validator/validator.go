package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const (
	TagPassword    = "password"
	TagPhoneNumber = "phonenumber"
	TagSubdomain   = "subdomain"
	TagTime        = "hhmm"

	PasswordMinLength = 8
)

var (
	// Optional "+" with a 1-3 digit country code, then digit groups split by
	// single spaces, dashes or dots. Digit count is checked separately.
	phonePattern     = regexp.MustCompile(`^(\+\d{1,3}[ .-]?)?\(?\d{1,4}\)?([ .-]?\d{1,4}){1,5}$`)
	subdomainPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]{1,61}[a-z0-9]$`)
	timePattern      = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

var (
	shared     *validator.Validate
	sharedOnce sync.Once
)

// New returns a validator with the project's custom tags registered and
// field names taken from json tags.
func New() *validator.Validate {
	sharedOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		if err := register(v); err != nil {
			log.Fatalf("register custom validators failed: %s", err)
		}
		shared = v
	})
	return shared
}

func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := register(v); err != nil {
			log.Fatal("register gin validators failed")
		}
	}
}

func register(v *validator.Validate) error {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	custom := map[string]validator.Func{
		TagPhoneNumber: phoneNumberValidator,
		TagPassword:    passwordValidator,
		TagSubdomain:   subdomainValidator,
		TagTime:        timeValidator,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

var phoneNumberValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsPhoneNumber(fl.Field().String())
}

var passwordValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsStrongPassword(fl.Field().String())
}

var subdomainValidator validator.Func = func(fl validator.FieldLevel) bool {
	return subdomainPattern.MatchString(fl.Field().String())
}

var timeValidator validator.Func = func(fl validator.FieldLevel) bool {
	return IsClockTime(fl.Field().String())
}

func IsPhoneNumber(s string) bool {
	if !phonePattern.MatchString(s) {
		return false
	}
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

// IsStrongPassword is the gating password rule: at least PasswordMinLength
// characters with an upper, a lower, a digit and a character outside
// [A-Za-z0-9].
func IsStrongPassword(s string) bool {
	if len([]rune(s)) < PasswordMinLength {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range s {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			special = true
		}
	}
	return upper && lower && digit && special
}

// IsClockTime reports whether s is HH:MM on a 24 hour clock.
func IsClockTime(s string) bool {
	return timePattern.MatchString(s)
}

func IsSubdomain(s string) bool {
	return subdomainPattern.MatchString(s)
}
