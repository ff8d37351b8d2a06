package domain

import (
	"time"

	"github.com/google/uuid"
)

type LicenseStatus string

const (
	LicensePending  LicenseStatus = "pending"
	LicenseVerified LicenseStatus = "verified"
	LicenseRejected LicenseStatus = "rejected"
)

// Tenant is the pharmacy profile created in the second phase of signup.
type Tenant struct {
	ID                      uuid.UUID        `db:"id" json:"id"`
	OwnerID                 uuid.UUID        `db:"owner_id" json:"owner_id"`
	BusinessName            string           `db:"business_name" json:"business_name"`
	BusinessType            BusinessType     `db:"business_type" json:"business_type"`
	BusinessDescription     string           `db:"business_description" json:"business_description"`
	BusinessLogoURL         string           `db:"business_logo_url" json:"business_logo_url"`
	BusinessLicenseNumber   string           `db:"business_license_number" json:"business_license_number"`
	Subdomain               string           `db:"subdomain" json:"subdomain"`
	BusinessPhone           string           `db:"business_phone" json:"business_phone"`
	BusinessEmail           string           `db:"business_email" json:"business_email"`
	Province                string           `db:"province" json:"province"`
	District                string           `db:"district" json:"district"`
	Commune                 string           `db:"commune" json:"commune"`
	Village                 string           `db:"village" json:"village"`
	StreetAddress           string           `db:"street_address" json:"street_address"`
	PharmacyLicenseNumber   string           `db:"pharmacy_license_number" json:"pharmacy_license_number"`
	LicenseDocumentURL      string           `db:"license_document_url" json:"license_document_url"`
	PharmacistInCharge      string           `db:"pharmacist_in_charge" json:"pharmacist_in_charge"`
	PharmacistLicenseNumber string           `db:"pharmacist_license_number" json:"pharmacist_license_number"`
	OperatingHours          OperatingHours   `db:"operating_hours" json:"operating_hours"`
	ServicesOffered         ServiceSet       `db:"services_offered" json:"services_offered"`
	SubscriptionPlan        SubscriptionPlan `db:"subscription_plan" json:"subscription_plan"`
	LicenseStatus           LicenseStatus    `db:"license_status" json:"license_status"`
	LicenseCheckedAt        *time.Time       `db:"license_checked_at" json:"license_checked_at,omitempty"`
	TermsAcceptedAt         time.Time        `db:"terms_accepted_at" json:"terms_accepted_at"`
	CreatedAt               time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt               time.Time        `db:"updated_at" json:"updated_at"`
}

// NewTenantFromForm maps the business, pharmacy and plan parts of a
// registration onto a tenant owned by ownerID.
func NewTenantFromForm(id, ownerID uuid.UUID, f RegistrationForm, now time.Time) *Tenant {
	return &Tenant{
		ID:                      id,
		OwnerID:                 ownerID,
		BusinessName:            f.BusinessName,
		BusinessType:            f.BusinessType,
		BusinessDescription:     f.BusinessDescription,
		BusinessLogoURL:         f.BusinessLogoURL,
		BusinessLicenseNumber:   f.BusinessLicenseNumber,
		Subdomain:               f.Subdomain,
		BusinessPhone:           f.BusinessPhone,
		BusinessEmail:           f.BusinessEmail,
		Province:                f.BusinessAddress.Province,
		District:                f.BusinessAddress.District,
		Commune:                 f.BusinessAddress.Commune,
		Village:                 f.BusinessAddress.Village,
		StreetAddress:           f.BusinessAddress.StreetAddress,
		PharmacyLicenseNumber:   f.PharmacyLicenseNumber,
		LicenseDocumentURL:      f.LicenseDocumentURL,
		PharmacistInCharge:      f.PharmacistInCharge,
		PharmacistLicenseNumber: f.PharmacistLicenseNumber,
		OperatingHours:          f.OperatingHours.Clone(),
		ServicesOffered:         NewServiceSet(f.ServicesOffered...),
		SubscriptionPlan:        f.SubscriptionPlan,
		LicenseStatus:           LicensePending,
		TermsAcceptedAt:         now,
		CreatedAt:               now,
		UpdatedAt:               now,
	}
}
