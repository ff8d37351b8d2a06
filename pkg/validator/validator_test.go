package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStrongPassword(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{in: "Str0ng!Pass", want: true},
		{in: "Sh0rt!", want: false},
		{in: "alllower1!", want: false},
		{in: "ALLUPPER1!", want: false},
		{in: "NoDigits!!", want: false},
		{in: "NoSpecial12", want: false},
		{in: "Ünïcødé1Ab", want: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStrongPassword(tt.in))
		})
	}
}

func TestIsPhoneNumber(t *testing.T) {
	valid := []string{"+855 12 345 678", "012-345-678", "+1.555.123.4567", "0123456789"}
	invalid := []string{"", "12345", "+855  12 345 678", "phone", "+12345 1234567890123456"}

	for _, s := range valid {
		assert.True(t, IsPhoneNumber(s), s)
	}
	for _, s := range invalid {
		assert.False(t, IsPhoneNumber(s), s)
	}
}

func TestIsSubdomain(t *testing.T) {
	assert.True(t, IsSubdomain("st-marys-pharmacy"))
	assert.True(t, IsSubdomain("rx1"))
	assert.False(t, IsSubdomain("ab"))
	assert.False(t, IsSubdomain("-pharmacy"))
	assert.False(t, IsSubdomain("pharmacy-"))
	assert.False(t, IsSubdomain("Pharmacy"))
}

func TestIsClockTime(t *testing.T) {
	assert.True(t, IsClockTime("00:00"))
	assert.True(t, IsClockTime("23:59"))
	assert.False(t, IsClockTime("24:00"))
	assert.False(t, IsClockTime("9:00"))
	assert.False(t, IsClockTime("09:60"))
}

func TestCustomTags(t *testing.T) {
	type signup struct {
		Password  string `json:"password" validate:"required,password"`
		Phone     string `json:"phone" validate:"required,phonenumber"`
		Subdomain string `json:"subdomain" validate:"required,subdomain"`
		Opens     string `json:"opens" validate:"required,hhmm"`
	}

	v := New()
	require.NoError(t, v.Struct(signup{
		Password:  "Str0ng!Pass",
		Phone:     "+855 12 345 678",
		Subdomain: "st-marys",
		Opens:     "09:00",
	}))

	err := v.Struct(signup{Password: "weak", Phone: "x", Subdomain: "-", Opens: "25:00"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'password' tag")
	assert.Contains(t, err.Error(), "signup.phone")
}
