package wizard

import "fmt"

type StepID string

const (
	StepAccount    StepID = "account"
	StepBusiness   StepID = "business"
	StepPharmacy   StepID = "pharmacy"
	StepOperations StepID = "operations"
	StepPlan       StepID = "plan"
)

// Field paths. Nested values are addressed with dots.
const (
	FieldEmail           = "email"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
	FieldFullName        = "fullName"
	FieldPhoneNumber     = "phoneNumber"

	FieldBusinessName          = "businessName"
	FieldBusinessType          = "businessType"
	FieldBusinessDescription   = "businessDescription"
	FieldBusinessLogoURL       = "businessLogoUrl"
	FieldBusinessLicenseNumber = "businessLicenseNumber"
	FieldSubdomain             = "subdomain"
	FieldBusinessPhone         = "businessPhone"
	FieldBusinessEmail         = "businessEmail"
	FieldProvince              = "businessAddress.province"
	FieldDistrict              = "businessAddress.district"
	FieldCommune               = "businessAddress.commune"
	FieldVillage               = "businessAddress.village"
	FieldStreetAddress         = "businessAddress.streetAddress"

	FieldPharmacyLicenseNumber   = "pharmacyLicenseNumber"
	FieldLicenseDocumentURL      = "licenseDocumentUrl"
	FieldPharmacistInCharge      = "pharmacistInCharge"
	FieldPharmacistLicenseNumber = "pharmacistLicenseNumber"

	FieldOperatingHours  = "operatingHours"
	FieldServicesOffered = "servicesOffered"

	FieldSubscriptionPlan = "subscriptionPlan"
	FieldAcceptTerms      = "acceptTerms"
)

// Step is one entry of the signup flow. Fields lists everything that has to
// pass validation before the wizard may leave the step.
type Step struct {
	ID          StepID   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Fields      []string `json:"fields"`
}

var steps = []Step{
	{
		ID:          StepAccount,
		Title:       "Account",
		Description: "Owner login and contact details",
		Fields: []string{
			FieldEmail,
			FieldPassword,
			FieldConfirmPassword,
			FieldFullName,
			FieldPhoneNumber,
		},
	},
	{
		ID:          StepBusiness,
		Title:       "Business",
		Description: "Pharmacy business profile, subdomain and address",
		Fields: []string{
			FieldBusinessName,
			FieldBusinessType,
			FieldBusinessDescription,
			FieldBusinessLogoURL,
			FieldBusinessLicenseNumber,
			FieldSubdomain,
			FieldBusinessPhone,
			FieldBusinessEmail,
			FieldProvince,
			FieldDistrict,
			FieldCommune,
			FieldVillage,
			FieldStreetAddress,
		},
	},
	{
		ID:          StepPharmacy,
		Title:       "Pharmacy license",
		Description: "License numbers, license document and pharmacist in charge",
		Fields: []string{
			FieldPharmacyLicenseNumber,
			FieldLicenseDocumentURL,
			FieldPharmacistInCharge,
			FieldPharmacistLicenseNumber,
		},
	},
	{
		ID:          StepOperations,
		Title:       "Operations",
		Description: "Opening hours and offered services",
		Fields: []string{
			FieldOperatingHours,
			FieldServicesOffered,
		},
	},
	{
		ID:          StepPlan,
		Title:       "Plan",
		Description: "Subscription plan and terms of service",
		Fields: []string{
			FieldSubscriptionPlan,
			FieldAcceptTerms,
		},
	},
}

// Steps returns a copy of the step table.
func Steps() []Step {
	out := make([]Step, len(steps))
	for i, s := range steps {
		s.Fields = append([]string(nil), s.Fields...)
		out[i] = s
	}
	return out
}

// StepByID looks a step up by its identifier.
func StepByID(id StepID) (Step, error) {
	i, err := id.Index()
	if err != nil {
		return Step{}, err
	}
	s := steps[i]
	s.Fields = append([]string(nil), s.Fields...)
	return s, nil
}

func StepCount() int {
	return len(steps)
}

func stepAt(i int) Step {
	return steps[i]
}

// Index returns the position of the step in the flow.
func (id StepID) Index() (int, error) {
	switch id {
	case StepAccount:
		return 0, nil
	case StepBusiness:
		return 1, nil
	case StepPharmacy:
		return 2, nil
	case StepOperations:
		return 3, nil
	case StepPlan:
		return 4, nil
	default:
		return -1, fmt.Errorf("unknown step %q", string(id))
	}
}

// fieldOrder ranks every field path by its position in the flow so batched
// edits are applied in a stable order (business name before subdomain,
// province before district).
var fieldOrder = func() map[string]int {
	order := make(map[string]int)
	n := 0
	for _, s := range steps {
		for _, f := range s.Fields {
			order[f] = n
			n++
		}
	}
	return order
}()
