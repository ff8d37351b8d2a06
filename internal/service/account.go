package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/queue/task"
	"github.com/pharmahub/backend/internal/repository"
	"github.com/pharmahub/backend/internal/wizard"
	"github.com/pharmahub/backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AccountObserver is told how each account creation ended.
type AccountObserver interface {
	AccountCreated()
	AccountFailed(reason domain.AccountCreationReason)
	IdentityRolledBack(err error)
}

type nopAccountObserver struct{}

func (nopAccountObserver) AccountCreated()                            {}
func (nopAccountObserver) AccountFailed(domain.AccountCreationReason) {}
func (nopAccountObserver) IdentityRolledBack(error)                   {}

// AccountCreator turns a completed registration form into a login plus a
// tenant profile. The two are written in sequence; if the profile cannot be
// stored the login is deleted again so no orphan identity is left behind.
// Nothing leaves the process (verification mail, license check) until both
// writes have succeeded.
type AccountCreator struct {
	identities    Identities
	tenants       repository.Tenants
	queue         TaskEnqueuer
	observer      AccountObserver
	verifyLicense bool
	now           func() time.Time
}

func NewAccountCreator(identities Identities, tenants repository.Tenants, queue TaskEnqueuer, observer AccountObserver, verifyLicense bool) *AccountCreator {
	if observer == nil {
		observer = nopAccountObserver{}
	}
	return &AccountCreator{
		identities:    identities,
		tenants:       tenants,
		queue:         queue,
		observer:      observer,
		verifyLicense: verifyLicense,
		now:           time.Now,
	}
}

func (a *AccountCreator) CreateAccount(ctx context.Context, form domain.RegistrationForm) (*domain.UserIdentity, error) {
	identity, err := a.createAccount(ctx, form)
	if err != nil {
		var ace *domain.AccountCreationError
		if errors.As(err, &ace) {
			a.observer.AccountFailed(ace.Reason)
		}
		return nil, err
	}
	a.observer.AccountCreated()
	return identity, nil
}

func (a *AccountCreator) createAccount(ctx context.Context, form domain.RegistrationForm) (*domain.UserIdentity, error) {
	// The unique index is the real guard; this only saves a rollback in the
	// common case.
	taken, err := a.tenants.SubdomainExists(ctx, form.Subdomain)
	if err != nil {
		logger.Warn("subdomain pre-check failed", zap.Error(err))
	} else if taken {
		return nil, subdomainTaken(domain.ErrSubdomainTaken)
	}

	identity, err := a.identities.SignUp(ctx, SignUpInput{
		Email:       form.Email,
		Password:    form.Password,
		FullName:    form.FullName,
		PhoneNumber: form.PhoneNumber,

		DeferVerification: true,
	})
	if err != nil {
		return nil, identityFailure(err)
	}

	tenantID, err := uuid.NewV7()
	if err == nil {
		tenant := domain.NewTenantFromForm(tenantID, identity.ID, form, a.now())
		err = a.tenants.Create(ctx, tenant)
	}
	if err != nil {
		return nil, a.rollback(ctx, identity, profileFailure(err))
	}

	if err := a.identities.IssueVerification(ctx, identity.ID); err != nil {
		logger.Error("issue verification code failed", zap.String("user_id", identity.ID.String()), zap.Error(err))
	}

	if a.verifyLicense {
		a.enqueueLicenseCheck(ctx, tenantID, form)
	}

	return identity, nil
}

// rollback deletes the identity created for a failed signup. It runs even if
// ctx was cancelled, since leaving the identity behind is worse than a late
// delete.
func (a *AccountCreator) rollback(ctx context.Context, identity *domain.UserIdentity, cause *domain.AccountCreationError) error {
	err := a.identities.DeleteIdentity(context.WithoutCancel(ctx), identity.ID)
	a.observer.IdentityRolledBack(err)
	if err == nil {
		return cause
	}

	logger.Error("rollback of signup identity failed",
		zap.String("user_id", identity.ID.String()),
		zap.NamedError("cause", cause.Err),
		zap.Error(err),
	)
	return &domain.AccountCreationError{
		Reason:  domain.ReasonOrphanedIdentity,
		Message: "Your login was created but the pharmacy profile could not be saved. Please contact support before signing up again.",
		Err:     errors.Join(cause.Err, err),
	}
}

func (a *AccountCreator) enqueueLicenseCheck(ctx context.Context, tenantID uuid.UUID, form domain.RegistrationForm) {
	t, err := task.NewVerifyLicenseTask(task.VerifyLicense{
		TenantID:                tenantID,
		PharmacyLicenseNumber:   form.PharmacyLicenseNumber,
		PharmacistLicenseNumber: form.PharmacistLicenseNumber,
		BusinessLicenseNumber:   form.BusinessLicenseNumber,
	})
	if err == nil {
		_, err = a.queue.EnqueueContext(ctx, t)
	}
	if err != nil {
		logger.Error("enqueue license verification failed", zap.String("tenant_id", tenantID.String()), zap.Error(err))
	}
}

func identityFailure(err error) *domain.AccountCreationError {
	switch {
	case errors.Is(err, ErrEmailTaken):
		return &domain.AccountCreationError{
			Reason:  domain.ReasonEmailTaken,
			Field:   wizard.FieldEmail,
			Message: "An account with this email already exists",
			Err:     err,
		}
	case errors.Is(err, ErrPasswordRejected):
		return &domain.AccountCreationError{
			Reason:  domain.ReasonPasswordRejected,
			Field:   wizard.FieldPassword,
			Message: "This password was rejected, please choose a stronger one",
			Err:     err,
		}
	}
	return &domain.AccountCreationError{
		Reason:  domain.ReasonUnavailable,
		Message: "We could not create your account. Please try again.",
		Err:     fmt.Errorf("sign up failed: %w", err),
	}
}

func subdomainTaken(err error) *domain.AccountCreationError {
	return &domain.AccountCreationError{
		Reason:  domain.ReasonSubdomainTaken,
		Field:   wizard.FieldSubdomain,
		Message: "This subdomain is already taken",
		Err:     err,
	}
}

func profileFailure(err error) *domain.AccountCreationError {
	if errors.Is(err, domain.ErrSubdomainTaken) {
		return subdomainTaken(err)
	}
	return &domain.AccountCreationError{
		Reason:  domain.ReasonProfileFailed,
		Message: "We could not save your pharmacy profile. Please try again.",
		Err:     fmt.Errorf("create tenant failed: %w", err),
	}
}
