package otp

import (
	"github.com/pkg/errors"
	"github.com/xlzd/gotp"
)

// Generator issues numeric one-time codes for email verification.
type Generator interface {
	RandomCode(length int) (string, error)
}

type GOTPGenerator struct{}

func NewGOTPGenerator() *GOTPGenerator {
	return &GOTPGenerator{}
}

// RandomCode returns a fresh TOTP value for a throwaway secret, which gives a
// uniformly distributed numeric code of the requested length.
func (g *GOTPGenerator) RandomCode(length int) (string, error) {
	if length <= 0 || length > 10 {
		return "", errors.Errorf("unsupported code length %d", length)
	}

	secret := gotp.RandomSecret(16)
	code := gotp.NewTOTP(secret, length, 30, nil).Now()
	if len(code) != length {
		return "", errors.New("generated code has unexpected length")
	}

	return code, nil
}
