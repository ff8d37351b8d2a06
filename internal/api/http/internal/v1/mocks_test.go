package v1

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/service"
	"github.com/pharmahub/backend/internal/storage"
	"github.com/pharmahub/backend/internal/wizard"
)

type signupMock struct{ mock.Mock }

func (m *signupMock) Open(ctx context.Context) (uuid.UUID, wizard.State, error) {
	args := m.Called(ctx)
	return args.Get(0).(uuid.UUID), args.Get(1).(wizard.State), args.Error(2)
}

func (m *signupMock) State(id uuid.UUID) (wizard.State, error) {
	args := m.Called(id)
	return args.Get(0).(wizard.State), args.Error(1)
}

func (m *signupMock) SetFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (wizard.State, error) {
	args := m.Called(ctx, id, fields)
	return args.Get(0).(wizard.State), args.Error(1)
}

func (m *signupMock) Advance(id uuid.UUID) (wizard.State, error) {
	args := m.Called(id)
	return args.Get(0).(wizard.State), args.Error(1)
}

func (m *signupMock) Retreat(id uuid.UUID) (wizard.State, error) {
	args := m.Called(id)
	return args.Get(0).(wizard.State), args.Error(1)
}

func (m *signupMock) Submit(ctx context.Context, id uuid.UUID) (wizard.State, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(wizard.State), args.Error(1)
}

// Upload drains the reader so tests can assert on the received bytes.
func (m *signupMock) Upload(ctx context.Context, id uuid.UUID, endpoint domain.UploadEndpoint, file storage.File) (wizard.State, error) {
	data, _ := io.ReadAll(file.Reader)
	args := m.Called(ctx, id, endpoint, file.Name, string(data))
	return args.Get(0).(wizard.State), args.Error(1)
}

func (m *signupMock) Discard(id uuid.UUID) {
	m.Called(id)
}

func (m *signupMock) CheckSubdomain(ctx context.Context, name string) (*service.SubdomainCheck, error) {
	args := m.Called(ctx, name)
	res, _ := args.Get(0).(*service.SubdomainCheck)
	return res, args.Error(1)
}

func (m *signupMock) Registry() *wizard.Registry {
	return nil
}

type identitiesMock struct{ mock.Mock }

func (m *identitiesMock) SignUp(ctx context.Context, input service.SignUpInput) (*domain.UserIdentity, error) {
	args := m.Called(ctx, input)
	id, _ := args.Get(0).(*domain.UserIdentity)
	return id, args.Error(1)
}

func (m *identitiesMock) DeleteIdentity(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *identitiesMock) Login(ctx context.Context, input service.LoginInput) (*domain.Session, error) {
	args := m.Called(ctx, input)
	s, _ := args.Get(0).(*domain.Session)
	return s, args.Error(1)
}

func (m *identitiesMock) Logout(ctx context.Context, refreshToken string) error {
	return m.Called(ctx, refreshToken).Error(0)
}

func (m *identitiesMock) RequestPasswordReset(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *identitiesMock) ResetPassword(ctx context.Context, token string, newPassword string) error {
	return m.Called(ctx, token, newPassword).Error(0)
}

func (m *identitiesMock) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	return m.Called(ctx, userID, newPassword).Error(0)
}

func (m *identitiesMock) GetCurrentUser(ctx context.Context, accessToken string) *domain.UserIdentity {
	id, _ := m.Called(ctx, accessToken).Get(0).(*domain.UserIdentity)
	return id
}

func (m *identitiesMock) ResendVerification(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *identitiesMock) VerifyEmail(ctx context.Context, email string, code string) error {
	return m.Called(ctx, email, code).Error(0)
}

type addressesMock struct{ mock.Mock }

func (m *addressesMock) options(args mock.Arguments) ([]domain.AddressOption, error) {
	opts, _ := args.Get(0).([]domain.AddressOption)
	return opts, args.Error(1)
}

func (m *addressesMock) Provinces(ctx context.Context) ([]domain.AddressOption, error) {
	return m.options(m.Called(ctx))
}

func (m *addressesMock) Districts(ctx context.Context, province string) ([]domain.AddressOption, error) {
	return m.options(m.Called(ctx, province))
}

func (m *addressesMock) Communes(ctx context.Context, province, district string) ([]domain.AddressOption, error) {
	return m.options(m.Called(ctx, province, district))
}

func (m *addressesMock) Villages(ctx context.Context, province, district, commune string) ([]domain.AddressOption, error) {
	return m.options(m.Called(ctx, province, district, commune))
}

func (m *identitiesMock) IssueVerification(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}
