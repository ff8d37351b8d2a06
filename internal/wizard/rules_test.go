package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pharmahub/backend/internal/domain"
)

func TestRulesValidateField(t *testing.T) {
	rules := NewRules()

	tests := []struct {
		name  string
		path  string
		edit  func(f *domain.RegistrationForm)
		valid bool
	}{
		{name: "email ok", path: FieldEmail, edit: func(f *domain.RegistrationForm) { f.Email = "owner@pharmacy.com" }, valid: true},
		{name: "email malformed", path: FieldEmail, edit: func(f *domain.RegistrationForm) { f.Email = "owner@" }},
		{name: "email empty", path: FieldEmail, edit: func(f *domain.RegistrationForm) {}},
		{name: "password strong", path: FieldPassword, edit: func(f *domain.RegistrationForm) { f.Password = "Str0ng!Pass" }, valid: true},
		{name: "password no special", path: FieldPassword, edit: func(f *domain.RegistrationForm) { f.Password = "Str0ngPass" }},
		{name: "password short", path: FieldPassword, edit: func(f *domain.RegistrationForm) { f.Password = "S0!a" }},
		{name: "confirm matches", path: FieldConfirmPassword, edit: func(f *domain.RegistrationForm) {
			f.Password, f.ConfirmPassword = "Str0ng!Pass", "Str0ng!Pass"
		}, valid: true},
		{name: "confirm differs", path: FieldConfirmPassword, edit: func(f *domain.RegistrationForm) {
			f.Password, f.ConfirmPassword = "Str0ng!Pass", "Str0ng!Pas"
		}},
		{name: "phone with country code", path: FieldPhoneNumber, edit: func(f *domain.RegistrationForm) { f.PhoneNumber = "+855 12 345 678" }, valid: true},
		{name: "phone letters", path: FieldPhoneNumber, edit: func(f *domain.RegistrationForm) { f.PhoneNumber = "call me" }},
		{name: "phone too short", path: FieldPhoneNumber, edit: func(f *domain.RegistrationForm) { f.PhoneNumber = "12345" }},
		{name: "business type known", path: FieldBusinessType, edit: func(f *domain.RegistrationForm) { f.BusinessType = domain.BusinessRetailPharmacy }, valid: true},
		{name: "business type unknown", path: FieldBusinessType, edit: func(f *domain.RegistrationForm) { f.BusinessType = "bakery" }},
		{name: "description optional", path: FieldBusinessDescription, edit: func(f *domain.RegistrationForm) {}, valid: true},
		{name: "logo optional", path: FieldBusinessLogoURL, edit: func(f *domain.RegistrationForm) {}, valid: true},
		{name: "logo must be url", path: FieldBusinessLogoURL, edit: func(f *domain.RegistrationForm) { f.BusinessLogoURL = "logo.png" }},
		{name: "subdomain ok", path: FieldSubdomain, edit: func(f *domain.RegistrationForm) { f.Subdomain = "st-marys" }, valid: true},
		{name: "subdomain trailing hyphen", path: FieldSubdomain, edit: func(f *domain.RegistrationForm) { f.Subdomain = "st-marys-" }},
		{name: "subdomain too short", path: FieldSubdomain, edit: func(f *domain.RegistrationForm) { f.Subdomain = "ab" }},
		{name: "terms accepted", path: FieldAcceptTerms, edit: func(f *domain.RegistrationForm) { f.AcceptTerms = true }, valid: true},
		{name: "terms not accepted", path: FieldAcceptTerms, edit: func(f *domain.RegistrationForm) {}},
		{name: "services empty", path: FieldServicesOffered, edit: func(f *domain.RegistrationForm) {}},
		{name: "services known", path: FieldServicesOffered, edit: func(f *domain.RegistrationForm) {
			f.ServicesOffered = domain.NewServiceSet(domain.ServiceOTC)
		}, valid: true},
		{name: "plan unknown", path: FieldSubscriptionPlan, edit: func(f *domain.RegistrationForm) { f.SubscriptionPlan = "free" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := domain.NewRegistrationForm()
			tt.edit(&form)
			errs := rules.ValidateField(&form, tt.path)
			if tt.valid {
				assert.Empty(t, errs)
			} else {
				assert.Contains(t, errs, tt.path)
			}
		})
	}
}

func TestRulesUnknownField(t *testing.T) {
	form := domain.NewRegistrationForm()
	errs := NewRules().ValidateField(&form, "favouriteColour")
	assert.Contains(t, errs, "favouriteColour")
}

func TestRulesOperatingHours(t *testing.T) {
	rules := NewRules()

	t.Run("defaults are valid", func(t *testing.T) {
		form := domain.NewRegistrationForm()
		assert.Empty(t, rules.ValidateField(&form, FieldOperatingHours))
	})

	t.Run("out of range time on an open day fails", func(t *testing.T) {
		form := domain.NewRegistrationForm()
		form.OperatingHours[domain.Monday] = domain.DaySchedule{IsOpen: true, Open: "09:00", Close: "25:00"}
		errs := rules.ValidateField(&form, FieldOperatingHours)
		assert.Contains(t, errs, "operatingHours.monday.close")
	})

	t.Run("garbage on a closed day passes", func(t *testing.T) {
		form := domain.NewRegistrationForm()
		form.OperatingHours[domain.Sunday] = domain.DaySchedule{IsOpen: false, Open: "25:00", Close: "nope"}
		assert.Empty(t, rules.ValidateField(&form, FieldOperatingHours))
	})

	t.Run("overnight shift passes", func(t *testing.T) {
		form := domain.NewRegistrationForm()
		form.OperatingHours[domain.Friday] = domain.DaySchedule{IsOpen: true, Open: "18:00", Close: "02:00"}
		assert.Empty(t, rules.ValidateField(&form, FieldOperatingHours))
	})

	t.Run("missing day fails", func(t *testing.T) {
		form := domain.NewRegistrationForm()
		delete(form.OperatingHours, domain.Wednesday)
		errs := rules.ValidateField(&form, FieldOperatingHours)
		assert.Contains(t, errs, "operatingHours.wednesday")
	})
}

func TestFieldErrorsMessageIsSorted(t *testing.T) {
	errs := FieldErrors{"phoneNumber": "bad", "email": "bad"}
	assert.Equal(t, "validation failed: email: bad; phoneNumber: bad", errs.Error())
}
