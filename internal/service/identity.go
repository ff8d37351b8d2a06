package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/pharmahub/backend/internal/config"
	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/queue/task"
	"github.com/pharmahub/backend/internal/repository"
	"github.com/pharmahub/backend/pkg/auth"
	"github.com/pharmahub/backend/pkg/hash"
	"github.com/pharmahub/backend/pkg/logger"
	"github.com/pharmahub/backend/pkg/otp"
	"github.com/pharmahub/backend/pkg/validator"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	resendCooldownKeyPrefix = "verification:resend:"
	resetTokenBytes         = 32
)

var errInvalidCredentials = &domain.AuthError{Message: "Invalid email or password"}

type identityService struct {
	userRepository              repository.Users
	refreshSessionRepository    repository.RefreshSession
	emailVerificationRepository repository.EmailVerifications
	passwordResetRepository     repository.PasswordResets
	hasher                      hash.PasswordHasher
	tokenManager                auth.TokenManager
	otpGenerator                otp.Generator
	queue                       TaskEnqueuer
	cooldowns                   Cooldowns
	authConfig                  config.AuthConfig
	now                         func() time.Time
}

func newIdentityService(userRepository repository.Users,
	refreshSessionRepository repository.RefreshSession,
	emailVerificationRepository repository.EmailVerifications,
	passwordResetRepository repository.PasswordResets,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	queue TaskEnqueuer,
	cooldowns Cooldowns,
	authConfig config.AuthConfig,
) *identityService {
	return &identityService{
		userRepository:              userRepository,
		refreshSessionRepository:    refreshSessionRepository,
		emailVerificationRepository: emailVerificationRepository,
		passwordResetRepository:     passwordResetRepository,
		hasher:                      hasher,
		tokenManager:                tokenManager,
		otpGenerator:                otpGenerator,
		queue:                       queue,
		cooldowns:                   cooldowns,
		authConfig:                  authConfig,
		now:                         time.Now,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SignUp creates an unverified identity and, unless deferred, sends it a
// verification code. Failing to queue the code does not fail the signup; the
// user can resend.
func (s *identityService) SignUp(ctx context.Context, input SignUpInput) (*domain.UserIdentity, error) {
	if !validator.IsStrongPassword(input.Password) {
		return nil, ErrPasswordRejected
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password failed: %w", err)
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate user id failed: %w", err)
	}

	now := s.now()
	user := &domain.User{
		ID:           userID,
		Email:        normalizeEmail(input.Email),
		PasswordHash: passwordHash,
		FullName:     input.FullName,
		PhoneNumber:  input.PhoneNumber,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("create user failed: %w", err)
	}

	if !input.DeferVerification {
		if err := s.issueVerification(ctx, user); err != nil {
			logger.Error("issue verification code failed", zap.String("user_id", user.ID.String()), zap.Error(err))
		}
	}

	return user.Identity(), nil
}

// IssueVerification sends a fresh code to an existing, unverified user.
func (s *identityService) IssueVerification(ctx context.Context, userID uuid.UUID) error {
	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("get user by id failed: %w", err)
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}
	return s.issueVerification(ctx, user)
}

func (s *identityService) issueVerification(ctx context.Context, user *domain.User) error {
	code, err := s.otpGenerator.RandomCode(s.authConfig.VerificationCodeLength)
	if err != nil {
		return fmt.Errorf("generate verification code failed: %w", err)
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate verification id failed: %w", err)
	}

	verification := &domain.EmailVerification{
		ID:        id,
		UserID:    user.ID,
		Email:     user.Email,
		Code:      code,
		ExpiresAt: s.now().Add(s.authConfig.VerificationCodeTTL),
	}
	if err := s.emailVerificationRepository.Create(ctx, verification); err != nil {
		return fmt.Errorf("create email verification failed: %w", err)
	}

	t, err := task.NewSendVerificationEmailTask(user.Email, user.FullName, code)
	if err != nil {
		return err
	}
	if _, err := s.queue.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue verification email failed: %w", err)
	}
	return nil
}

// DeleteIdentity hard deletes a user. A user that is already gone counts as
// deleted.
func (s *identityService) DeleteIdentity(ctx context.Context, id uuid.UUID) error {
	if err := s.userRepository.Delete(ctx, id); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete user failed: %w", err)
	}
	return nil
}

func (s *identityService) Login(ctx context.Context, input LoginInput) (*domain.Session, error) {
	user, err := s.userRepository.GetByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}

	if err := s.hasher.Compare(user.PasswordHash, input.Password); err != nil {
		if errors.Is(err, hash.ErrMismatchedPassword) {
			return nil, errInvalidCredentials
		}
		return nil, fmt.Errorf("compare password failed: %w", err)
	}

	return s.createSession(ctx, user.ID, input.UserAgent, input.IP)
}

func (s *identityService) createSession(ctx context.Context, userID uuid.UUID, userAgent string, userIP string) (*domain.Session, error) {
	var (
		res = domain.Session{UserID: userID}
		err error
	)

	res.AccessToken, res.AccessTTL, err = s.tokenManager.NewJWT(userID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	res.RefreshToken, res.RefreshTTL, err = s.tokenManager.NewRefreshToken()
	if err != nil {
		return nil, fmt.Errorf("generate refresh token failed: %w", err)
	}

	refreshSessionID, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("generate refresh session id failed: %w", err)
	}
	refreshSession := &domain.RefreshSession{
		ID:           refreshSessionID,
		UserID:       userID,
		RefreshToken: res.RefreshToken,
		UserAgent:    userAgent,
		IP:           userIP,
		ExpiresIn:    s.now().Add(res.RefreshTTL),
	}

	if err := s.refreshSessionRepository.Create(ctx, refreshSession); err != nil {
		return nil, fmt.Errorf("create refresh session failed: %w", err)
	}

	return &res, nil
}

// Logout revokes a refresh session. A malformed or unknown token is already
// signed out; only storage failures are reported.
func (s *identityService) Logout(ctx context.Context, refreshToken string) error {
	token, err := s.tokenManager.ValidateRefreshToken(refreshToken)
	if err != nil {
		logger.Debug("logout with malformed refresh token", zap.Error(err))
		return nil
	}

	if err := s.refreshSessionRepository.DeleteByToken(ctx, token); err != nil && !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("delete refresh session failed: %w", err)
	}
	return nil
}

// RequestPasswordReset never reports whether the address exists. Internal
// failures are logged and swallowed.
func (s *identityService) RequestPasswordReset(ctx context.Context, email string) error {
	if err := s.requestPasswordReset(ctx, normalizeEmail(email)); err != nil {
		logger.Error("password reset request failed", zap.Error(err))
	}
	return nil
}

func (s *identityService) requestPasswordReset(ctx context.Context, email string) error {
	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			logger.Debug("password reset for unknown email")
			return nil
		}
		return fmt.Errorf("get user by email failed: %w", err)
	}

	token, err := newResetToken()
	if err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("generate reset id failed: %w", err)
	}

	reset := &domain.PasswordReset{
		ID:        id,
		UserID:    user.ID,
		TokenHash: hashResetToken(token),
		ExpiresAt: s.now().Add(s.authConfig.PasswordResetTTL),
	}
	if err := s.passwordResetRepository.Create(ctx, reset); err != nil {
		return fmt.Errorf("create password reset failed: %w", err)
	}

	link, err := resetLink(s.authConfig.PasswordResetURL, token)
	if err != nil {
		return err
	}

	t, err := task.NewSendPasswordResetEmailTask(user.Email, user.FullName, link)
	if err != nil {
		return err
	}
	if _, err := s.queue.EnqueueContext(ctx, t); err != nil {
		return fmt.Errorf("enqueue password reset email failed: %w", err)
	}
	return nil
}

func newResetToken() (string, error) {
	buf := make([]byte, resetTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate reset token failed: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

// Only the digest is stored.
func hashResetToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func resetLink(base string, token string) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse password reset url failed: %w", err)
	}
	q := u.Query()
	q.Set("token", token)
	u.RawQuery = q.Encode()
	return u.String(), nil
}

// ResetPassword consumes a reset token and signs the user out everywhere.
func (s *identityService) ResetPassword(ctx context.Context, token string, newPassword string) error {
	if !validator.IsStrongPassword(newPassword) {
		return ErrPasswordRejected
	}

	reset, err := s.passwordResetRepository.GetByTokenHash(ctx, hashResetToken(token))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("get password reset failed: %w", err)
	}

	now := s.now()
	if reset.UsedAt != nil || now.After(reset.ExpiresAt) {
		return ErrResetTokenInvalid
	}

	if err := s.passwordResetRepository.MarkUsed(ctx, reset.ID, now); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			return ErrResetTokenInvalid
		}
		return fmt.Errorf("mark password reset used failed: %w", err)
	}

	if err := s.setPassword(ctx, reset.UserID, newPassword); err != nil {
		return err
	}

	if err := s.refreshSessionRepository.DeleteByUserID(ctx, reset.UserID); err != nil {
		logger.Error("revoke sessions after password reset failed", zap.String("user_id", reset.UserID.String()), zap.Error(err))
	}
	return nil
}

func (s *identityService) UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	if !validator.IsStrongPassword(newPassword) {
		return ErrPasswordRejected
	}
	return s.setPassword(ctx, userID, newPassword)
}

func (s *identityService) setPassword(ctx context.Context, userID uuid.UUID, newPassword string) error {
	passwordHash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	if err := s.userRepository.UpdatePassword(ctx, userID, passwordHash); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.AuthError{Message: "User not found"}
		}
		return fmt.Errorf("update password failed: %w", err)
	}
	return nil
}

// GetCurrentUser resolves an access token to its user, or nil.
func (s *identityService) GetCurrentUser(ctx context.Context, accessToken string) *domain.UserIdentity {
	userID, err := s.tokenManager.Parse(accessToken)
	if err != nil {
		return nil
	}

	user, err := s.userRepository.GetByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Warn("get current user failed", zap.Error(err))
		}
		return nil
	}
	return user.Identity()
}

// ResendVerification issues a fresh code. Unknown addresses are accepted
// silently; a second request inside the cooldown is rejected.
func (s *identityService) ResendVerification(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	ok, err := s.cooldowns.SetNX(ctx, resendCooldownKeyPrefix+email, []byte("1"), s.authConfig.ResendCooldown)
	if err != nil {
		return fmt.Errorf("check resend cooldown failed: %w", err)
	}
	if !ok {
		return ErrResendCooldown
	}

	user, err := s.userRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("get user by email failed: %w", err)
	}
	if user.EmailVerified {
		return ErrAlreadyVerified
	}

	return s.issueVerification(ctx, user)
}

func (s *identityService) VerifyEmail(ctx context.Context, email string, code string) error {
	verification, err := s.emailVerificationRepository.GetLatestByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return ErrVerificationCodeNotFound
		}
		return fmt.Errorf("get email verification failed: %w", err)
	}

	if verification.Confirmed {
		return ErrAlreadyVerified
	}
	if verification.Attempts >= s.authConfig.VerificationMaxAttempt {
		return ErrTooManyAttempts
	}

	now := s.now()
	if now.After(verification.ExpiresAt) {
		return ErrVerificationCodeExpired
	}

	if subtle.ConstantTimeCompare([]byte(verification.Code), []byte(strings.TrimSpace(code))) != 1 {
		if err := s.emailVerificationRepository.IncrementAttempts(ctx, verification.ID); err != nil {
			logger.Error("increment verification attempts failed", zap.Error(err))
		}
		return ErrVerificationCodeInvalid
	}

	if err := s.emailVerificationRepository.Confirm(ctx, verification.ID, now); err != nil {
		if errors.Is(err, domain.ErrNoRowsAffected) {
			return ErrAlreadyVerified
		}
		return fmt.Errorf("confirm email verification failed: %w", err)
	}

	if err := s.userRepository.MarkEmailVerified(ctx, verification.UserID, now); err != nil {
		return fmt.Errorf("mark email verified failed: %w", err)
	}
	return nil
}
