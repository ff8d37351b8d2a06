package service

import "errors"

var (
	ErrEmailTaken       = errors.New("email already registered")
	ErrPasswordRejected = errors.New("password does not meet the requirements")
	ErrUserNotFound     = errors.New("user not found")

	ErrVerificationCodeNotFound = errors.New("verification code not found")
	ErrVerificationCodeInvalid  = errors.New("verification code is invalid")
	ErrVerificationCodeExpired  = errors.New("verification code expired")
	ErrTooManyAttempts          = errors.New("too many verification attempts")
	ErrAlreadyVerified          = errors.New("email already verified")
	ErrResendCooldown           = errors.New("verification email was sent recently")

	ErrResetTokenInvalid = errors.New("password reset link is invalid or expired")

	ErrUnknownUploadEndpoint = errors.New("unknown upload endpoint")
)
