package wizard

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pharmahub/backend/internal/domain"
	pkgvalidator "github.com/pharmahub/backend/pkg/validator"
)

// FieldErrors maps a field path to a human readable message.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	keys := make([]string, 0, len(e))
	for k := range e {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e FieldErrors) merge(other FieldErrors) {
	for k, v := range other {
		e[k] = v
	}
}

type rule struct {
	tag   string
	value func(f *domain.RegistrationForm) interface{}
	check func(r *Rules, f *domain.RegistrationForm, path string) FieldErrors
}

// Rules evaluates per field constraints against a form. It never mutates
// the form and never panics on user input.
type Rules struct {
	validate *validator.Validate
	table    map[string]rule
}

func NewRules() *Rules {
	r := &Rules{validate: pkgvalidator.New()}
	r.table = map[string]rule{
		FieldEmail:           {tag: "required,email", value: func(f *domain.RegistrationForm) interface{} { return f.Email }},
		FieldPassword:        {tag: "required," + pkgvalidator.TagPassword, value: func(f *domain.RegistrationForm) interface{} { return f.Password }},
		FieldConfirmPassword: {check: checkConfirmPassword},
		FieldFullName:        {tag: "required,min=2,max=100", value: func(f *domain.RegistrationForm) interface{} { return f.FullName }},
		FieldPhoneNumber:     {tag: "required," + pkgvalidator.TagPhoneNumber, value: func(f *domain.RegistrationForm) interface{} { return f.PhoneNumber }},

		FieldBusinessName:          {tag: "required,min=2,max=100", value: func(f *domain.RegistrationForm) interface{} { return f.BusinessName }},
		FieldBusinessType:          {tag: "required,oneof=" + joinEnum(domain.BusinessTypes), value: func(f *domain.RegistrationForm) interface{} { return string(f.BusinessType) }},
		FieldBusinessDescription:   {tag: "omitempty,max=500", value: func(f *domain.RegistrationForm) interface{} { return f.BusinessDescription }},
		FieldBusinessLogoURL:       {tag: "omitempty,url", value: func(f *domain.RegistrationForm) interface{} { return f.BusinessLogoURL }},
		FieldBusinessLicenseNumber: {tag: "required,min=3,max=50", value: func(f *domain.RegistrationForm) interface{} { return f.BusinessLicenseNumber }},
		FieldSubdomain:             {tag: "required," + pkgvalidator.TagSubdomain, value: func(f *domain.RegistrationForm) interface{} { return f.Subdomain }},
		FieldBusinessPhone:         {tag: "required," + pkgvalidator.TagPhoneNumber, value: func(f *domain.RegistrationForm) interface{} { return f.BusinessPhone }},
		FieldBusinessEmail:         {tag: "required,email", value: func(f *domain.RegistrationForm) interface{} { return f.BusinessEmail }},
		FieldProvince:              {tag: "required", value: func(f *domain.RegistrationForm) interface{} { return f.BusinessAddress.Province }},
		FieldDistrict:              {tag: "required", value: func(f *domain.RegistrationForm) interface{} { return f.BusinessAddress.District }},
		FieldCommune:               {tag: "required", value: func(f *domain.RegistrationForm) interface{} { return f.BusinessAddress.Commune }},
		FieldVillage:               {tag: "required", value: func(f *domain.RegistrationForm) interface{} { return f.BusinessAddress.Village }},
		FieldStreetAddress:         {tag: "required,min=5,max=200", value: func(f *domain.RegistrationForm) interface{} { return f.BusinessAddress.StreetAddress }},

		FieldPharmacyLicenseNumber:   {tag: "required,min=3,max=50", value: func(f *domain.RegistrationForm) interface{} { return f.PharmacyLicenseNumber }},
		FieldLicenseDocumentURL:      {tag: "required,url", value: func(f *domain.RegistrationForm) interface{} { return f.LicenseDocumentURL }},
		FieldPharmacistInCharge:      {tag: "required,min=2,max=100", value: func(f *domain.RegistrationForm) interface{} { return f.PharmacistInCharge }},
		FieldPharmacistLicenseNumber: {tag: "required,min=3,max=50", value: func(f *domain.RegistrationForm) interface{} { return f.PharmacistLicenseNumber }},

		FieldOperatingHours:  {check: checkOperatingHours},
		FieldServicesOffered: {check: checkServices},

		FieldSubscriptionPlan: {tag: "required,oneof=" + joinEnum(domain.SubscriptionPlans), value: func(f *domain.RegistrationForm) interface{} { return string(f.SubscriptionPlan) }},
		FieldAcceptTerms:      {check: checkAcceptTerms},
	}
	return r
}

// Known reports whether path names a validated field.
func (r *Rules) Known(path string) bool {
	_, ok := r.table[path]
	return ok
}

// ValidateField checks a single field. The result may carry sub paths, for
// example operatingHours.monday.close.
func (r *Rules) ValidateField(f *domain.RegistrationForm, path string) FieldErrors {
	rl, ok := r.table[path]
	if !ok {
		return FieldErrors{path: "unknown field"}
	}
	if rl.check != nil {
		return rl.check(r, f, path)
	}
	if msg, ok := r.checkTag(rl.value(f), rl.tag); !ok {
		return FieldErrors{path: msg}
	}
	return nil
}

// ValidateStep checks every field the step declares.
func (r *Rules) ValidateStep(f *domain.RegistrationForm, s Step) FieldErrors {
	errs := FieldErrors{}
	for _, path := range s.Fields {
		errs.merge(r.ValidateField(f, path))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

// ValidateForm checks all steps. It is what gates submission.
func (r *Rules) ValidateForm(f *domain.RegistrationForm) FieldErrors {
	errs := FieldErrors{}
	for _, s := range steps {
		errs.merge(r.ValidateStep(f, s))
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (r *Rules) checkTag(value interface{}, tag string) (string, bool) {
	err := r.validate.Var(value, tag)
	if err == nil {
		return "", true
	}

	var verr validator.ValidationErrors
	if errors.As(err, &verr) && len(verr) > 0 {
		return msgForTag(verr[0].Tag(), verr[0].Param()), false
	}
	return "Invalid value", false
}

func checkConfirmPassword(_ *Rules, f *domain.RegistrationForm, path string) FieldErrors {
	if f.ConfirmPassword == "" {
		return FieldErrors{path: msgForTag("required", "")}
	}
	if f.ConfirmPassword != f.Password {
		return FieldErrors{path: "Passwords do not match"}
	}
	return nil
}

func checkAcceptTerms(_ *Rules, f *domain.RegistrationForm, path string) FieldErrors {
	if !f.AcceptTerms {
		return FieldErrors{path: "You must accept the terms of service"}
	}
	return nil
}

func checkServices(_ *Rules, f *domain.RegistrationForm, path string) FieldErrors {
	if len(f.ServicesOffered) == 0 {
		return FieldErrors{path: "Select at least one service"}
	}
	for _, s := range f.ServicesOffered {
		if !domain.IsKnownService(s) {
			return FieldErrors{path: fmt.Sprintf("Unknown service %q", string(s))}
		}
	}
	return nil
}

// checkOperatingHours requires valid HH:MM open and close times on every day
// marked open. A close earlier than open is an overnight shift. Closed days
// pass whatever they hold.
func checkOperatingHours(r *Rules, f *domain.RegistrationForm, path string) FieldErrors {
	errs := FieldErrors{}
	for _, day := range domain.Weekdays {
		sched, ok := f.OperatingHours[day]
		dayPath := path + "." + string(day)
		if !ok {
			errs[dayPath] = "Opening hours are missing for this day"
			continue
		}
		if !sched.IsOpen {
			continue
		}

		if msg, ok := r.checkTag(sched.Open, "required,"+pkgvalidator.TagTime); !ok {
			errs[dayPath+".open"] = msg
		}
		if msg, ok := r.checkTag(sched.Close, "required,"+pkgvalidator.TagTime); !ok {
			errs[dayPath+".close"] = msg
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func joinEnum[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, " ")
}

func msgForTag(tag string, value string) string {
	switch tag {
	case "required":
		return "This field is required"
	case "email":
		return "Enter a valid email address"
	case "url":
		return "Enter a valid URL"
	case "min":
		return fmt.Sprintf("Must be at least %v characters", value)
	case "max":
		return fmt.Sprintf("Must be at most %v characters", value)
	case "oneof":
		return "Choose one of the available options"
	case pkgvalidator.TagPassword:
		return "Password must be at least 8 characters and contain an uppercase letter, a lowercase letter, a number and a special character"
	case pkgvalidator.TagPhoneNumber:
		return "Enter a valid phone number, for example +855 12 345 678"
	case pkgvalidator.TagSubdomain:
		return "Use 3-63 lowercase letters, digits or hyphens, starting and ending with a letter or digit"
	case pkgvalidator.TagTime:
		return "Use a 24-hour HH:MM time"
	}
	return tag
}
