package domain

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"sort"
)

type BusinessType string

const (
	BusinessRetailPharmacy   BusinessType = "retail_pharmacy"
	BusinessHospitalPharmacy BusinessType = "hospital_pharmacy"
	BusinessClinicPharmacy   BusinessType = "clinic_pharmacy"
	BusinessOnlinePharmacy   BusinessType = "online_pharmacy"
	BusinessWholesale        BusinessType = "wholesale"
)

var BusinessTypes = []BusinessType{
	BusinessRetailPharmacy,
	BusinessHospitalPharmacy,
	BusinessClinicPharmacy,
	BusinessOnlinePharmacy,
	BusinessWholesale,
}

type SubscriptionPlan string

const (
	PlanStarter      SubscriptionPlan = "starter"
	PlanProfessional SubscriptionPlan = "professional"
	PlanEnterprise   SubscriptionPlan = "enterprise"
)

var SubscriptionPlans = []SubscriptionPlan{PlanStarter, PlanProfessional, PlanEnterprise}

type ServiceID string

const (
	ServicePrescription    ServiceID = "prescription_dispensing"
	ServiceOTC             ServiceID = "otc_sales"
	ServiceConsultation    ServiceID = "consultation"
	ServiceHomeDelivery    ServiceID = "home_delivery"
	ServiceVaccination     ServiceID = "vaccination"
	ServiceHealthScreening ServiceID = "health_screening"
	ServiceCompounding     ServiceID = "compounding"
)

var Services = []ServiceID{
	ServicePrescription,
	ServiceOTC,
	ServiceConsultation,
	ServiceHomeDelivery,
	ServiceVaccination,
	ServiceHealthScreening,
	ServiceCompounding,
}

func IsKnownService(id ServiceID) bool {
	for _, s := range Services {
		if s == id {
			return true
		}
	}
	return false
}

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

// Weekdays is ordered Monday first.
var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

type DaySchedule struct {
	IsOpen bool   `json:"isOpen"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
}

// OperatingHours always carries one entry per weekday.
type OperatingHours map[Weekday]DaySchedule

// DefaultOperatingHours is 09:00-18:00 on weekdays, closed at weekends.
func DefaultOperatingHours() OperatingHours {
	hours := make(OperatingHours, len(Weekdays))
	for _, d := range Weekdays {
		hours[d] = DaySchedule{
			IsOpen: d != Saturday && d != Sunday,
			Open:   "09:00",
			Close:  "18:00",
		}
	}
	return hours
}

func (h OperatingHours) Clone() OperatingHours {
	if h == nil {
		return nil
	}
	out := make(OperatingHours, len(h))
	for k, v := range h {
		out[k] = v
	}
	return out
}

// Value stores the schedule as a JSON column.
func (h OperatingHours) Value() (driver.Value, error) {
	if h == nil {
		return nil, nil
	}
	return json.Marshal(h)
}

// Scan reads the JSON column back.
func (h *OperatingHours) Scan(value interface{}) error {
	return scanJSON(value, h, "OperatingHours")
}

// ServiceSet is a set of service identifiers kept sorted and unique.
type ServiceSet []ServiceID

func NewServiceSet(ids ...ServiceID) ServiceSet {
	seen := make(map[ServiceID]struct{}, len(ids))
	out := make(ServiceSet, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func (s ServiceSet) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *ServiceSet) Scan(value interface{}) error {
	return scanJSON(value, s, "ServiceSet")
}

func scanJSON(value interface{}, dst interface{}, typeName string) error {
	if value == nil {
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("unsupported type for %s: %T", typeName, value)
	}

	return json.Unmarshal(bytes, dst)
}

// BusinessAddress is a four level cascade plus a free text street line.
// Each level is only meaningful under the level above it.
type BusinessAddress struct {
	Province      string `json:"province"`
	District      string `json:"district"`
	Commune       string `json:"commune"`
	Village       string `json:"village"`
	StreetAddress string `json:"streetAddress"`
}

// RegistrationForm is the aggregate collected by the signup wizard. It lives
// in memory only; the password never leaves it except as a hash.
type RegistrationForm struct {
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	FullName        string `json:"fullName"`
	PhoneNumber     string `json:"phoneNumber"`

	BusinessName          string          `json:"businessName"`
	BusinessType          BusinessType    `json:"businessType"`
	BusinessDescription   string          `json:"businessDescription"`
	BusinessLogoURL       string          `json:"businessLogoUrl"`
	BusinessLicenseNumber string          `json:"businessLicenseNumber"`
	Subdomain             string          `json:"subdomain"`
	BusinessPhone         string          `json:"businessPhone"`
	BusinessEmail         string          `json:"businessEmail"`
	BusinessAddress       BusinessAddress `json:"businessAddress"`

	PharmacyLicenseNumber   string         `json:"pharmacyLicenseNumber"`
	LicenseDocumentURL      string         `json:"licenseDocumentUrl"`
	PharmacistInCharge      string         `json:"pharmacistInCharge"`
	PharmacistLicenseNumber string         `json:"pharmacistLicenseNumber"`
	OperatingHours          OperatingHours `json:"operatingHours"`
	ServicesOffered         ServiceSet     `json:"servicesOffered"`

	SubscriptionPlan SubscriptionPlan `json:"subscriptionPlan"`
	AcceptTerms      bool             `json:"acceptTerms"`
}

func NewRegistrationForm() RegistrationForm {
	return RegistrationForm{
		OperatingHours:  DefaultOperatingHours(),
		ServicesOffered: ServiceSet{},
	}
}

// Clone returns a deep copy; maps and slices are not shared.
func (f RegistrationForm) Clone() RegistrationForm {
	out := f
	out.OperatingHours = f.OperatingHours.Clone()
	if f.ServicesOffered != nil {
		out.ServicesOffered = append(ServiceSet{}, f.ServicesOffered...)
	}
	return out
}

// Redacted is the form with secrets blanked, safe to return to clients.
func (f RegistrationForm) Redacted() RegistrationForm {
	out := f.Clone()
	out.Password = ""
	out.ConfirmPassword = ""
	return out
}
