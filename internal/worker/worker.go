package worker

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/pharmahub/backend/internal/config"
	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/service/licensecheck"
	emailProvider "github.com/pharmahub/backend/pkg/email"
)

type Workers struct {
	EmailSender    EmailSender
	LicenseChecker LicenseChecker
}

type Deps struct {
	EmailProvider   emailProvider.Sender
	Config          *config.Config
	LicenseRegistry LicenseRegistry
	Tenants         TenantLicenses
}

type EmailSender interface {
	SendVerificationEmail(ctx context.Context, email string, fullName string, verificationCode string) error
	SendPasswordResetEmail(ctx context.Context, email string, fullName string, resetLink string) error
}

type LicenseChecker interface {
	CheckTenantLicenses(ctx context.Context, input LicenseCheckInput) (domain.LicenseStatus, error)
}

// LicenseRegistry is the regulator lookup, licensecheck.Client in production.
type LicenseRegistry interface {
	Check(ctx context.Context, licenses []licensecheck.LicenseQuery) (*licensecheck.CheckResponse, error)
}

type TenantLicenses interface {
	UpdateLicenseStatus(ctx context.Context, id uuid.UUID, status domain.LicenseStatus, checkedAt time.Time) error
}

func NewWorkers(deps Deps) *Workers {
	return &Workers{
		EmailSender:    newEmailSender(deps.EmailProvider, deps.Config.Email),
		LicenseChecker: newLicenseChecker(deps.LicenseRegistry, deps.Tenants),
	}
}
