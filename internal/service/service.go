package service

import (
	"context"
	"time"

	"github.com/pharmahub/backend/internal/config"
	"github.com/pharmahub/backend/internal/domain"
	"github.com/pharmahub/backend/internal/repository"
	"github.com/pharmahub/backend/internal/storage"
	"github.com/pharmahub/backend/internal/wizard"
	"github.com/pharmahub/backend/pkg/auth"
	"github.com/pharmahub/backend/pkg/hash"
	"github.com/pharmahub/backend/pkg/otp"

	"github.com/google/uuid"
	"github.com/hibiken/asynq"
)

type Services struct {
	Identities Identities
	Accounts   *AccountCreator
	Signup     Signup
	Addresses  wizard.AddressBook
}

type Deps struct {
	Config       *config.Config
	Hasher       hash.PasswordHasher
	TokenManager auth.TokenManager
	OtpGenerator otp.Generator
	Repos        *repository.Repositories
	Queue        TaskEnqueuer
	Cooldowns    Cooldowns
	Addresses    wizard.AddressBook
	Uploader     *storage.Uploader
	Metrics      Metrics
}

func NewServices(deps Deps) *Services {
	identities := newIdentityService(
		deps.Repos.Users,
		deps.Repos.RefreshSession,
		deps.Repos.EmailVerifications,
		deps.Repos.PasswordResets,
		deps.Hasher,
		deps.TokenManager,
		deps.OtpGenerator,
		deps.Queue,
		deps.Cooldowns,
		deps.Config.Auth,
	)

	var observer wizard.Observer
	var accountObserver AccountObserver
	if deps.Metrics != nil {
		observer = deps.Metrics
		accountObserver = deps.Metrics
	}

	accounts := NewAccountCreator(identities, deps.Repos.Tenants, deps.Queue, accountObserver, deps.Config.LicenseCheck.Enabled)

	registry := wizard.NewRegistry(func() *wizard.Controller {
		return wizard.NewController(accounts, deps.Addresses, wizard.WithObserver(observer))
	}, deps.Config.Wizard.SessionTTL, deps.Config.Wizard.MaxSessions)

	return &Services{
		Identities: identities,
		Accounts:   accounts,
		Signup:     newSignupService(registry, deps.Uploader, deps.Repos.Tenants, deps.Metrics),
		Addresses:  deps.Addresses,
	}
}

// TaskEnqueuer is satisfied by *asynq.Client and queue/client.Enqueuer.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Cooldowns guards actions that may only happen once per window.
type Cooldowns interface {
	SetNX(ctx context.Context, key string, value []byte, ttl time.Duration) (bool, error)
}

// Metrics is what the service layer reports to.
type Metrics interface {
	wizard.Observer
	AccountObserver
	SessionOpened()
	SessionsExpired(n int)
}

type SignUpInput struct {
	Email       string
	Password    string
	FullName    string
	PhoneNumber string
	// DeferVerification leaves the code unsent; the caller issues it with
	// IssueVerification once the rest of the account exists.
	DeferVerification bool
}

type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IP        string
}

type Identities interface {
	SignUp(ctx context.Context, input SignUpInput) (*domain.UserIdentity, error)
	DeleteIdentity(ctx context.Context, id uuid.UUID) error
	Login(ctx context.Context, input LoginInput) (*domain.Session, error)
	Logout(ctx context.Context, refreshToken string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token string, newPassword string) error
	UpdatePassword(ctx context.Context, userID uuid.UUID, newPassword string) error
	GetCurrentUser(ctx context.Context, accessToken string) *domain.UserIdentity
	ResendVerification(ctx context.Context, email string) error
	VerifyEmail(ctx context.Context, email string, code string) error
	IssueVerification(ctx context.Context, userID uuid.UUID) error
}

type SubdomainCheck struct {
	Subdomain string `json:"subdomain"`
	Valid     bool   `json:"valid"`
	Available bool   `json:"available"`
}

type Signup interface {
	Open(ctx context.Context) (uuid.UUID, wizard.State, error)
	State(id uuid.UUID) (wizard.State, error)
	SetFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) (wizard.State, error)
	Advance(id uuid.UUID) (wizard.State, error)
	Retreat(id uuid.UUID) (wizard.State, error)
	Submit(ctx context.Context, id uuid.UUID) (wizard.State, error)
	Upload(ctx context.Context, id uuid.UUID, endpoint domain.UploadEndpoint, file storage.File) (wizard.State, error)
	Discard(id uuid.UUID)
	CheckSubdomain(ctx context.Context, name string) (*SubdomainCheck, error)
	Registry() *wizard.Registry
}
