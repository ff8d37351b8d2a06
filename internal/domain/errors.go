package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateEntry = errors.New("duplicate entry")
	ErrNotFound       = errors.New("not found")
	ErrNoRowsAffected = errors.New("no rows affected")
	ErrSubdomainTaken = errors.New("subdomain taken")
)

type AccountCreationReason string

const (
	ReasonEmailTaken       AccountCreationReason = "email_taken"
	ReasonPasswordRejected AccountCreationReason = "password_rejected"
	ReasonSubdomainTaken   AccountCreationReason = "subdomain_taken"
	ReasonProfileFailed    AccountCreationReason = "profile_failed"
	ReasonOrphanedIdentity AccountCreationReason = "orphaned_identity"
	ReasonUnavailable      AccountCreationReason = "unavailable"
)

// AccountCreationError is the single failure type of account creation.
// Field is set when the failure can be pinned to one form field.
type AccountCreationError struct {
	Reason  AccountCreationReason
	Field   string
	Message string
	Err     error
}

func (e *AccountCreationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("account creation failed (%s): %s: %v", e.Reason, e.Message, e.Err)
	}
	return fmt.Sprintf("account creation failed (%s): %s", e.Reason, e.Message)
}

func (e *AccountCreationError) Unwrap() error {
	return e.Err
}

// AuthError reports rejected credentials or an invalid session.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	return e.Message
}

func IsAuthError(err error) bool {
	var authErr *AuthError
	return errors.As(err, &authErr)
}
