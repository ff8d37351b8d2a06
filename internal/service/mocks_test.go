package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"

	"github.com/pharmahub/backend/internal/domain"
)

type usersMock struct{ mock.Mock }

func (m *usersMock) Create(ctx context.Context, user *domain.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *usersMock) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *usersMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *usersMock) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *usersMock) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	return m.Called(ctx, id, passwordHash).Error(0)
}

func (m *usersMock) MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type refreshSessionsMock struct{ mock.Mock }

func (m *refreshSessionsMock) Create(ctx context.Context, session *domain.RefreshSession) error {
	return m.Called(ctx, session).Error(0)
}

func (m *refreshSessionsMock) DeleteByToken(ctx context.Context, token uuid.UUID) error {
	return m.Called(ctx, token).Error(0)
}

func (m *refreshSessionsMock) DeleteByUserID(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}

type verificationsMock struct{ mock.Mock }

func (m *verificationsMock) Create(ctx context.Context, v *domain.EmailVerification) error {
	return m.Called(ctx, v).Error(0)
}

func (m *verificationsMock) GetLatestByEmail(ctx context.Context, email string) (*domain.EmailVerification, error) {
	args := m.Called(ctx, email)
	v, _ := args.Get(0).(*domain.EmailVerification)
	return v, args.Error(1)
}

func (m *verificationsMock) IncrementAttempts(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *verificationsMock) Confirm(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type resetsMock struct{ mock.Mock }

func (m *resetsMock) Create(ctx context.Context, r *domain.PasswordReset) error {
	return m.Called(ctx, r).Error(0)
}

func (m *resetsMock) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.PasswordReset, error) {
	args := m.Called(ctx, tokenHash)
	r, _ := args.Get(0).(*domain.PasswordReset)
	return r, args.Error(1)
}

func (m *resetsMock) MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	return m.Called(ctx, id, at).Error(0)
}

type tenantsMock struct{ mock.Mock }

func (m *tenantsMock) Create(ctx context.Context, tenant *domain.Tenant) error {
	return m.Called(ctx, tenant).Error(0)
}

func (m *tenantsMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error) {
	args := m.Called(ctx, id)
	t, _ := args.Get(0).(*domain.Tenant)
	return t, args.Error(1)
}

func (m *tenantsMock) SubdomainExists(ctx context.Context, subdomain string) (bool, error) {
	args := m.Called(ctx, subdomain)
	return args.Bool(0), args.Error(1)
}

func (m *tenantsMock) UpdateLicenseStatus(ctx context.Context, id uuid.UUID, status domain.LicenseStatus, checkedAt time.Time) error {
	return m.Called(ctx, id, status, checkedAt).Error(0)
}

type queueMock struct{ mock.Mock }

func (m *queueMock) EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error) {
	args := m.Called(ctx, task)
	info, _ := args.Get(0).(*asynq.TaskInfo)
	return info, args.Error(1)
}

type cooldownsMock struct{ mock.Mock }

func (m *cooldownsMock) SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error) {
	args := m.Called(ctx, key, value, ttl)
	return args.Bool(0), args.Error(1)
}

type otpMock struct{ mock.Mock }

func (m *otpMock) RandomCode(length int) (string, error) {
	args := m.Called(length)
	return args.String(0), args.Error(1)
}

type identitiesMock struct{ mock.Mock }

func (m *identitiesMock) SignUp(ctx context.Context, input SignUpInput) (*domain.UserIdentity, error) {
	args := m.Called(ctx, input)
	id, _ := args.Get(0).(*domain.UserIdentity)
	return id, args.Error(1)
}

func (m *identitiesMock) DeleteIdentity(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *identitiesMock) Login(ctx context.Context, input LoginInput) (*domain.Session, error) {
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

type accountObserverMock struct{ mock.Mock }

func (m *accountObserverMock) AccountCreated() { m.Called() }

func (m *accountObserverMock) AccountFailed(reason domain.AccountCreationReason) { m.Called(reason) }

func (m *accountObserverMock) IdentityRolledBack(err error) { m.Called(err) }

func (m *identitiesMock) IssueVerification(ctx context.Context, userID uuid.UUID) error {
	return m.Called(ctx, userID).Error(0)
}
