package repository

import (
	"context"
	"time"

	"github.com/pharmahub/backend/internal/domain"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repositories struct {
	Users              Users
	RefreshSession     RefreshSession
	EmailVerifications EmailVerifications
	PasswordResets     PasswordResets
	Tenants            Tenants
	Documents          Documents
	Gazetteer          *Gazetteer
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		Users:              newUserRepository(db),
		RefreshSession:     newRefreshSessionRepository(db),
		EmailVerifications: newEmailVerificationRepository(db),
		PasswordResets:     newPasswordResetRepository(db),
		Tenants:            newTenantRepository(db),
		Documents:          newDocumentRepository(db),
		Gazetteer:          NewGazetteer(db),
	}
}

type Users interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	MarkEmailVerified(ctx context.Context, id uuid.UUID, at time.Time) error
}

type RefreshSession interface {
	Create(ctx context.Context, session *domain.RefreshSession) error
	DeleteByToken(ctx context.Context, token uuid.UUID) error
	DeleteByUserID(ctx context.Context, userID uuid.UUID) error
}

type EmailVerifications interface {
	Create(ctx context.Context, verification *domain.EmailVerification) error
	GetLatestByEmail(ctx context.Context, email string) (*domain.EmailVerification, error)
	IncrementAttempts(ctx context.Context, id uuid.UUID) error
	Confirm(ctx context.Context, id uuid.UUID, at time.Time) error
}

type PasswordResets interface {
	Create(ctx context.Context, reset *domain.PasswordReset) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.PasswordReset, error)
	MarkUsed(ctx context.Context, id uuid.UUID, at time.Time) error
}

type Tenants interface {
	Create(ctx context.Context, tenant *domain.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Tenant, error)
	SubdomainExists(ctx context.Context, subdomain string) (bool, error)
	UpdateLicenseStatus(ctx context.Context, id uuid.UUID, status domain.LicenseStatus, checkedAt time.Time) error
}

type Documents interface {
	Create(ctx context.Context, document *domain.UploadedDocument) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.UploadedDocument, error)
}
