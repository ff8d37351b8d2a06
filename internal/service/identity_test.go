package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"github.com/pharmahub/backend/internal/config"
	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/queue/task"
	"github.com/pharmahub/backend/pkg/auth"
	"github.com/pharmahub/backend/pkg/hash"
)

type IdentitySuite struct {
	suite.Suite
	ctx      context.Context
	users    *usersMock
	sessions *refreshSessionsMock
	codes    *verificationsMock
	resets   *resetsMock
	queue    *queueMock
	cool     *cooldownsMock
	otp      *otpMock
	hasher   *hash.BcryptHasher
	tokens   *auth.Manager
	now      time.Time
	svc      *identityService
}

func TestIdentitySuite(t *testing.T) {
	suite.Run(t, new(IdentitySuite))
}

func (s *IdentitySuite) SetupTest() {
	s.ctx = context.Background()
	s.users = new(usersMock)
	s.sessions = new(refreshSessionsMock)
	s.codes = new(verificationsMock)
	s.resets = new(resetsMock)
	s.queue = new(queueMock)
	s.cool = new(cooldownsMock)
	s.otp = new(otpMock)
	s.hasher = hash.NewBcryptHasher("pepper", bcrypt.MinCost)

	var err error
	s.tokens, err = auth.NewManager(config.JWTConfig{
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
		SigningKey:      "test-signing-key",
	})
	s.Require().NoError(err)

	s.now = time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	s.svc = newIdentityService(s.users, s.sessions, s.codes, s.resets, s.hasher, s.tokens, s.otp, s.queue, s.cool, config.AuthConfig{
		VerificationCodeLength: 6,
		VerificationCodeTTL:    24 * time.Hour,
		VerificationMaxAttempt: 3,
		ResendCooldown:         time.Minute,
		PasswordResetTTL:       time.Hour,
		PasswordResetURL:       "https://app.pharmahub.com/reset-password",
	})
	s.svc.now = func() time.Time { return s.now }
}

func (s *IdentitySuite) existingUser(password string) *domain.User {
	h, err := s.hasher.Hash(password)
	s.Require().NoError(err)
	return &domain.User{ID: uuid.New(), Email: "owner@pharmacy.com", FullName: "Sokha Chan", PasswordHash: h}
}

func taskOfType(name string) interface{} {
	return mock.MatchedBy(func(t *asynq.Task) bool { return t.Type() == name })
}

func (s *IdentitySuite) TestSignUp() {
	s.users.On("Create", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "owner@pharmacy.com" && u.PasswordHash != "" && u.PasswordHash != "Str0ng!Pass" && !u.EmailVerified
	})).Return(nil).Once()
	s.otp.On("RandomCode", 6).Return("123456", nil).Once()
	s.codes.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.EmailVerification) bool {
		return v.Code == "123456" && v.ExpiresAt.Equal(s.now.Add(24*time.Hour))
	})).Return(nil).Once()
	s.queue.On("EnqueueContext", mock.Anything, taskOfType(task.SendVerificationEmailTaskName)).Return(&asynq.TaskInfo{}, nil).Once()

	identity, err := s.svc.SignUp(s.ctx, SignUpInput{
		Email:    "  Owner@Pharmacy.com ",
		Password: "Str0ng!Pass",
		FullName: "Sokha Chan",
	})
	s.Require().NoError(err)
	s.Equal("owner@pharmacy.com", identity.Email)
	s.False(identity.EmailVerified)

	mock.AssertExpectationsForObjects(s.T(), s.users, s.otp, s.codes, s.queue)
}

func (s *IdentitySuite) TestSignUpEmailTaken() {
	s.users.On("Create", mock.Anything, mock.Anything).Return(domain.ErrDuplicateEntry).Once()

	_, err := s.svc.SignUp(s.ctx, SignUpInput{Email: "owner@pharmacy.com", Password: "Str0ng!Pass"})
	s.ErrorIs(err, ErrEmailTaken)
	s.otp.AssertNotCalled(s.T(), "RandomCode", mock.Anything)
}

func (s *IdentitySuite) TestSignUpWeakPassword() {
	_, err := s.svc.SignUp(s.ctx, SignUpInput{Email: "owner@pharmacy.com", Password: "password"})
	s.ErrorIs(err, ErrPasswordRejected)
	s.users.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *IdentitySuite) TestSignUpSurvivesQueueFailure() {
	s.users.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	s.otp.On("RandomCode", 6).Return("123456", nil).Once()
	s.codes.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	s.queue.On("EnqueueContext", mock.Anything, mock.Anything).Return(nil, errors.New("redis down")).Once()

	identity, err := s.svc.SignUp(s.ctx, SignUpInput{Email: "owner@pharmacy.com", Password: "Str0ng!Pass"})
	s.NoError(err)
	s.NotNil(identity)
}

func (s *IdentitySuite) TestSignUpDeferredVerificationQueuesNothing() {
	s.users.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	identity, err := s.svc.SignUp(s.ctx, SignUpInput{
		Email:             "owner@pharmacy.com",
		Password:          "Str0ng!Pass",
		DeferVerification: true,
	})
	s.Require().NoError(err)
	s.NotNil(identity)

	s.otp.AssertNotCalled(s.T(), "RandomCode", mock.Anything)
	s.codes.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	s.queue.AssertNotCalled(s.T(), "EnqueueContext", mock.Anything, mock.Anything)
}

func (s *IdentitySuite) TestIssueVerification() {
	user := s.existingUser("Str0ng!Pass")
	s.users.On("GetByID", mock.Anything, user.ID).Return(user, nil).Once()
	s.otp.On("RandomCode", 6).Return("246810", nil).Once()
	s.codes.On("Create", mock.Anything, mock.MatchedBy(func(v *domain.EmailVerification) bool {
		return v.UserID == user.ID && v.Code == "246810"
	})).Return(nil).Once()
	s.queue.On("EnqueueContext", mock.Anything, taskOfType(task.SendVerificationEmailTaskName)).Return(&asynq.TaskInfo{}, nil).Once()

	s.NoError(s.svc.IssueVerification(s.ctx, user.ID))
	mock.AssertExpectationsForObjects(s.T(), s.users, s.otp, s.codes, s.queue)
}

func (s *IdentitySuite) TestIssueVerificationGuards() {
	missing := uuid.New()
	s.users.On("GetByID", mock.Anything, missing).Return(nil, domain.ErrNotFound).Once()
	s.ErrorIs(s.svc.IssueVerification(s.ctx, missing), ErrUserNotFound)

	verified := s.existingUser("Str0ng!Pass")
	verified.EmailVerified = true
	s.users.On("GetByID", mock.Anything, verified.ID).Return(verified, nil).Once()
	s.ErrorIs(s.svc.IssueVerification(s.ctx, verified.ID), ErrAlreadyVerified)

	s.queue.AssertNotCalled(s.T(), "EnqueueContext", mock.Anything, mock.Anything)
}

func (s *IdentitySuite) TestDeleteIdentity() {
	id := uuid.New()
	s.users.On("Delete", mock.Anything, id).Return(domain.ErrNotFound).Once()
	s.NoError(s.svc.DeleteIdentity(s.ctx, id))

	s.users.On("Delete", mock.Anything, id).Return(errors.New("lock wait timeout")).Once()
	s.Error(s.svc.DeleteIdentity(s.ctx, id))
}

func (s *IdentitySuite) TestLogin() {
	user := s.existingUser("Str0ng!Pass")
	s.users.On("GetByEmail", mock.Anything, "owner@pharmacy.com").Return(user, nil)
	s.sessions.On("Create", mock.Anything, mock.MatchedBy(func(rs *domain.RefreshSession) bool {
		return rs.UserID == user.ID && rs.UserAgent == "test" && rs.ExpiresIn.Equal(s.now.Add(time.Hour))
	})).Return(nil).Once()

	session, err := s.svc.Login(s.ctx, LoginInput{Email: "owner@pharmacy.com", Password: "Str0ng!Pass", UserAgent: "test", IP: "127.0.0.1"})
	s.Require().NoError(err)
	s.Equal(user.ID, session.UserID)

	parsed, err := s.tokens.Parse(session.AccessToken)
	s.Require().NoError(err)
	s.Equal(user.ID, parsed)

	_, err = s.svc.Login(s.ctx, LoginInput{Email: "owner@pharmacy.com", Password: "Wr0ng!Pass"})
	s.True(domain.IsAuthError(err))
}

func (s *IdentitySuite) TestLoginUnknownEmail() {
	s.users.On("GetByEmail", mock.Anything, "nobody@pharmacy.com").Return(nil, domain.ErrNotFound).Once()
	_, err := s.svc.Login(s.ctx, LoginInput{Email: "nobody@pharmacy.com", Password: "x"})
	s.True(domain.IsAuthError(err))
}

func (s *IdentitySuite) TestLogout() {
	token := uuid.New()
	s.sessions.On("DeleteByToken", mock.Anything, token).Return(domain.ErrNotFound).Once()
	s.NoError(s.svc.Logout(s.ctx, token.String()))

	s.sessions.On("DeleteByToken", mock.Anything, token).Return(errors.New("db down")).Once()
	s.Error(s.svc.Logout(s.ctx, token.String()))
}

func (s *IdentitySuite) TestLogoutMalformedTokenIsSignedOut() {
	for _, token := range []string{"", "not-a-token", "12345678-zzzz"} {
		err := s.svc.Logout(s.ctx, token)
		s.NoError(err, token)
		s.False(domain.IsAuthError(err), token)
	}
	s.sessions.AssertNotCalled(s.T(), "DeleteByToken", mock.Anything, mock.Anything)
}

func (s *IdentitySuite) TestRequestPasswordResetAlwaysSucceeds() {
	s.users.On("GetByEmail", mock.Anything, "nobody@pharmacy.com").Return(nil, domain.ErrNotFound).Once()
	s.NoError(s.svc.RequestPasswordReset(s.ctx, "nobody@pharmacy.com"))

	s.users.On("GetByEmail", mock.Anything, "broken@pharmacy.com").Return(nil, errors.New("db down")).Once()
	s.NoError(s.svc.RequestPasswordReset(s.ctx, "broken@pharmacy.com"))

	s.resets.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *IdentitySuite) TestPasswordResetRoundTrip() {
	user := s.existingUser("0ld!Passw")
	s.users.On("GetByEmail", mock.Anything, "owner@pharmacy.com").Return(user, nil).Once()

	var stored *domain.PasswordReset
	s.resets.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		stored = args.Get(1).(*domain.PasswordReset)
	}).Return(nil).Once()

	var link string
	s.queue.On("EnqueueContext", mock.Anything, taskOfType(task.SendPasswordResetEmailTaskName)).Run(func(args mock.Arguments) {
		var payload task.SendPasswordResetEmail
		s.Require().NoError(json.Unmarshal(args.Get(1).(*asynq.Task).Payload(), &payload))
		link = payload.ResetLink
	}).Return(&asynq.TaskInfo{}, nil).Once()

	s.Require().NoError(s.svc.RequestPasswordReset(s.ctx, "owner@pharmacy.com"))
	s.Require().NotNil(stored)

	u, err := url.Parse(link)
	s.Require().NoError(err)
	token := u.Query().Get("token")
	s.NotEmpty(token)
	s.NotEqual(token, stored.TokenHash)
	s.Equal(hashResetToken(token), stored.TokenHash)

	s.resets.On("GetByTokenHash", mock.Anything, stored.TokenHash).Return(stored, nil).Once()
	s.resets.On("MarkUsed", mock.Anything, stored.ID, s.now).Return(nil).Once()
	s.users.On("UpdatePassword", mock.Anything, user.ID, mock.Anything).Return(nil).Once()
	s.sessions.On("DeleteByUserID", mock.Anything, user.ID).Return(nil).Once()

	s.Require().NoError(s.svc.ResetPassword(s.ctx, token, "N3w!Passw"))
	mock.AssertExpectationsForObjects(s.T(), s.resets, s.users, s.sessions)
}

func (s *IdentitySuite) TestResetPasswordRejectsExpiredAndUsed() {
	expired := &domain.PasswordReset{ID: uuid.New(), ExpiresAt: s.now.Add(-time.Second)}
	s.resets.On("GetByTokenHash", mock.Anything, hashResetToken("expired")).Return(expired, nil).Once()
	s.ErrorIs(s.svc.ResetPassword(s.ctx, "expired", "N3w!Passw"), ErrResetTokenInvalid)

	usedAt := s.now.Add(-time.Minute)
	used := &domain.PasswordReset{ID: uuid.New(), ExpiresAt: s.now.Add(time.Hour), UsedAt: &usedAt}
	s.resets.On("GetByTokenHash", mock.Anything, hashResetToken("used")).Return(used, nil).Once()
	s.ErrorIs(s.svc.ResetPassword(s.ctx, "used", "N3w!Passw"), ErrResetTokenInvalid)

	s.resets.On("GetByTokenHash", mock.Anything, hashResetToken("unknown")).Return(nil, domain.ErrNotFound).Once()
	s.ErrorIs(s.svc.ResetPassword(s.ctx, "unknown", "N3w!Passw"), ErrResetTokenInvalid)

	s.ErrorIs(s.svc.ResetPassword(s.ctx, "whatever", "weak"), ErrPasswordRejected)
	s.users.AssertNotCalled(s.T(), "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func (s *IdentitySuite) TestUpdatePassword() {
	id := uuid.New()
	s.users.On("UpdatePassword", mock.Anything, id, mock.Anything).Return(domain.ErrNotFound).Once()
	s.True(domain.IsAuthError(s.svc.UpdatePassword(s.ctx, id, "N3w!Passw")))

	s.ErrorIs(s.svc.UpdatePassword(s.ctx, id, "short"), ErrPasswordRejected)
}

func (s *IdentitySuite) TestGetCurrentUser() {
	user := s.existingUser("Str0ng!Pass")
	token, _, err := s.tokens.NewJWT(user.ID)
	s.Require().NoError(err)

	s.users.On("GetByID", mock.Anything, user.ID).Return(user, nil).Once()
	got := s.svc.GetCurrentUser(s.ctx, token)
	s.Require().NotNil(got)
	s.Equal(user.ID, got.ID)

	s.Nil(s.svc.GetCurrentUser(s.ctx, "garbage"))

	s.users.On("GetByID", mock.Anything, user.ID).Return(nil, errors.New("db down")).Once()
	s.Nil(s.svc.GetCurrentUser(s.ctx, token))
}

func (s *IdentitySuite) TestResendVerification() {
	user := s.existingUser("Str0ng!Pass")
	key := resendCooldownKeyPrefix + "owner@pharmacy.com"

	s.cool.On("SetNX", mock.Anything, key, mock.Anything, time.Minute).Return(true, nil).Once()
	s.users.On("GetByEmail", mock.Anything, "owner@pharmacy.com").Return(user, nil).Once()
	s.otp.On("RandomCode", 6).Return("654321", nil).Once()
	s.codes.On("Create", mock.Anything, mock.Anything).Return(nil).Once()
	s.queue.On("EnqueueContext", mock.Anything, taskOfType(task.SendVerificationEmailTaskName)).Return(&asynq.TaskInfo{}, nil).Once()
	s.NoError(s.svc.ResendVerification(s.ctx, "Owner@Pharmacy.com"))

	s.cool.On("SetNX", mock.Anything, key, mock.Anything, time.Minute).Return(false, nil).Once()
	s.ErrorIs(s.svc.ResendVerification(s.ctx, "owner@pharmacy.com"), ErrResendCooldown)
}

func (s *IdentitySuite) TestResendVerificationAlreadyVerified() {
	user := s.existingUser("Str0ng!Pass")
	user.EmailVerified = true
	s.cool.On("SetNX", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
	s.users.On("GetByEmail", mock.Anything, "owner@pharmacy.com").Return(user, nil).Once()

	s.ErrorIs(s.svc.ResendVerification(s.ctx, "owner@pharmacy.com"), ErrAlreadyVerified)
}

func (s *IdentitySuite) TestVerifyEmail() {
	v := &domain.EmailVerification{ID: uuid.New(), UserID: uuid.New(), Code: "123456", ExpiresAt: s.now.Add(time.Hour)}
	s.codes.On("GetLatestByEmail", mock.Anything, "owner@pharmacy.com").Return(v, nil)

	s.codes.On("IncrementAttempts", mock.Anything, v.ID).Return(nil).Once()
	s.ErrorIs(s.svc.VerifyEmail(s.ctx, "owner@pharmacy.com", "000000"), ErrVerificationCodeInvalid)

	s.codes.On("Confirm", mock.Anything, v.ID, s.now).Return(nil).Once()
	s.users.On("MarkEmailVerified", mock.Anything, v.UserID, s.now).Return(nil).Once()
	s.NoError(s.svc.VerifyEmail(s.ctx, "owner@pharmacy.com", " 123456 "))

	mock.AssertExpectationsForObjects(s.T(), s.codes, s.users)
}

func (s *IdentitySuite) TestVerifyEmailGuards() {
	tests := []struct {
		name string
		v    *domain.EmailVerification
		err  error
	}{
		{name: "confirmed", v: &domain.EmailVerification{Confirmed: true, ExpiresAt: s.now.Add(time.Hour)}, err: ErrAlreadyVerified},
		{name: "attempts", v: &domain.EmailVerification{Attempts: 3, ExpiresAt: s.now.Add(time.Hour)}, err: ErrTooManyAttempts},
		{name: "expired", v: &domain.EmailVerification{ExpiresAt: s.now.Add(-time.Second)}, err: ErrVerificationCodeExpired},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.SetupTest()
			s.codes.On("GetLatestByEmail", mock.Anything, "owner@pharmacy.com").Return(tt.v, nil).Once()
			s.ErrorIs(s.svc.VerifyEmail(s.ctx, "owner@pharmacy.com", "123456"), tt.err)
		})
	}

	s.SetupTest()
	s.codes.On("GetLatestByEmail", mock.Anything, "owner@pharmacy.com").Return(nil, domain.ErrNotFound).Once()
	s.ErrorIs(s.svc.VerifyEmail(s.ctx, "owner@pharmacy.com", "123456"), ErrVerificationCodeNotFound)
}
