package wizard

import (
	"context"
	"errors"

	"github.com/stretchr/testify/mock"

	"github.com/pharmahub/backend/internal/domain"
)

type submitterMock struct {
	mock.Mock
}

func (m *submitterMock) CreateAccount(ctx context.Context, form domain.RegistrationForm) (*domain.UserIdentity, error) {
	args := m.Called(ctx, form)
	identity, _ := args.Get(0).(*domain.UserIdentity)
	return identity, args.Error(1)
}

type observerMock struct {
	mock.Mock
}

func (m *observerMock) StepValidated(step StepID, passed bool) {
	m.Called(step, passed)
}

func (m *observerMock) SubmissionFinished(err error) {
	m.Called(err)
}

// fakeAddresses is a two-province gazetteer. Missing keys yield empty lists.
type fakeAddresses struct {
	err error
}

var (
	fakeProvinces = []domain.AddressOption{{Code: "12", Name: "Phnom Penh"}, {Code: "17", Name: "Siem Reap"}}
	fakeDistricts = map[string][]domain.AddressOption{
		"12": {{Code: "1201", Name: "Chamkar Mon"}, {Code: "1202", Name: "Doun Penh"}},
		"17": {{Code: "1710", Name: "Siem Reap"}},
	}
	fakeCommunes = map[string][]domain.AddressOption{
		"1201": {{Code: "120101", Name: "Tonle Basak"}},
		"1202": {{Code: "120201", Name: "Phsar Thmei Ti Muoy"}},
		"1710": {{Code: "171001", Name: "Sla Kram"}},
	}
	fakeVillages = map[string][]domain.AddressOption{
		"120101": {{Code: "12010101", Name: "Phum 1"}},
		"120201": {{Code: "12020101", Name: "Phum 2"}},
		"171001": {{Code: "17100101", Name: "Phum Sla Kram"}},
	}
)

func (f fakeAddresses) Provinces(context.Context) ([]domain.AddressOption, error) {
	return fakeProvinces, f.err
}

func (f fakeAddresses) Districts(_ context.Context, province string) ([]domain.AddressOption, error) {
	return fakeDistricts[province], f.err
}

func (f fakeAddresses) Communes(_ context.Context, _, district string) ([]domain.AddressOption, error) {
	return fakeCommunes[district], f.err
}

func (f fakeAddresses) Villages(_ context.Context, _, _, commune string) ([]domain.AddressOption, error) {
	return fakeVillages[commune], f.err
}

var errAddressesDown = errors.New("gazetteer unavailable")

// validStepValues holds a passing set of inputs per step.
func validStepValues() [][]map[string]interface{} {
	return [][]map[string]interface{}{
		{{
			FieldEmail:           "owner@stmary-pharmacy.com",
			FieldPassword:        "Str0ng!Pass",
			FieldConfirmPassword: "Str0ng!Pass",
			FieldFullName:        "Sokha Chan",
			FieldPhoneNumber:     "+855 12 345 678",
		}},
		{{
			FieldBusinessName:          "St. Mary's Pharmacy!!",
			FieldBusinessType:          "retail_pharmacy",
			FieldBusinessLicenseNumber: "BL-2024-001",
			FieldBusinessPhone:         "+855 23 456 789",
			FieldBusinessEmail:         "contact@stmary-pharmacy.com",
			FieldProvince:              "12",
			FieldDistrict:              "1201",
			FieldCommune:               "120101",
			FieldVillage:               "12010101",
			FieldStreetAddress:         "No. 45, Street 271",
		}},
		{{
			FieldPharmacyLicenseNumber:   "PH-7781",
			FieldLicenseDocumentURL:      "https://files.pharmahub.com/license.pdf",
			FieldPharmacistInCharge:      "Dara Meas",
			FieldPharmacistLicenseNumber: "RPh-5521",
		}},
		{{
			FieldServicesOffered: []string{"prescription_dispensing", "otc_sales"},
		}},
		{{
			FieldSubscriptionPlan: "professional",
			FieldAcceptTerms:      true,
		}},
	}
}
