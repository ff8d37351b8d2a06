package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env          string `env:"ENV" env-required:"true"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info" env-description:"logging level, debug, info, etc."`
	HttpServer   HttpServer
	Database     Database
	Limiter      Limiter
	Auth         AuthConfig
	SMTP         SMTPConfig
	Email        EmailConfig
	Cache        Cache
	Queue        QueueConfig
	Wizard       WizardConfig
	Storage      StorageConfig
	Address      AddressConfig
	LicenseCheck LicenseCheckConfig
}

type HttpServer struct {
	Port              string        `env:"HTTP_PORT" env-default:"8080"`
	Timeout           time.Duration `env:"HTTP_TIMEOUT" env-default:"10s"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"5s"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s"`
	MaxHeaderBytes    int           `env:"HTTP_MAX_HEADER_BYTES" env-default:"65536"`
	SwaggerEnabled    bool          `env:"HTTP_SWAGGER_ENABLED" env-default:"false"`
	AllowedOrigins    []string      `env:"HTTP_ALLOWED_ORIGINS" env-default:"http://localhost:3000"`
}

type Database struct {
	Net                string        `env:"DB_NET" env-default:"tcp"`
	Server             string        `env:"DB_SERVER" env-required:"true"`
	DBName             string        `env:"DB_NAME" env-required:"true"`
	User               string        `env:"DB_USER" env-required:"true"`
	Password           string        `env:"DB_PASSWORD" env-required:"true"`
	TimeZone           string        `env:"DB_TIMEZONE" env-default:"UTC"`
	Timeout            time.Duration `env:"DB_TIMEOUT" env-default:"2s"`
	MaxIdleConnections int           `env:"DB_MAX_IDLE_CONNECTIONS" env-default:"40"`
	MaxOpenConnections int           `env:"DB_MAX_OPEN_CONNECTIONS" env-default:"40"`
	ConnMaxLifetime    time.Duration `env:"DB_CONN_MAX_LIFETIME" env-default:"30m"`
	ConnMaxIdleTime    time.Duration `env:"DB_CONN_MAX_IDLE_TIME" env-default:"5m"`
}

type Limiter struct {
	RPS   int           `env:"LIMITER_RPS" env-default:"10"`
	Burst int           `env:"LIMITER_BURST" env-default:"20"`
	TTL   time.Duration `env:"LIMITER_TTL" env-default:"10m"`
}

type AuthConfig struct {
	JWT                    JWTConfig
	PasswordPepper         string        `env:"AUTH_PASSWORD_PEPPER" env-required:"true"`
	BcryptCost             int           `env:"AUTH_BCRYPT_COST" env-default:"12"`
	VerificationCodeLength int           `env:"AUTH_VERIFICATION_CODE_LENGTH" env-default:"6"`
	VerificationCodeTTL    time.Duration `env:"AUTH_VERIFICATION_CODE_TTL" env-default:"24h"`
	VerificationMaxAttempt int           `env:"AUTH_VERIFICATION_MAX_ATTEMPTS" env-default:"5"`
	ResendCooldown         time.Duration `env:"AUTH_RESEND_COOLDOWN" env-default:"60s"`
	PasswordResetTTL       time.Duration `env:"AUTH_PASSWORD_RESET_TTL" env-default:"1h"`
	PasswordResetURL       string        `env:"AUTH_PASSWORD_RESET_URL" env-default:"http://localhost:3000/reset-password"`
}

type JWTConfig struct {
	AccessTokenTTL  time.Duration `env:"JWT_ACCESS_TOKEN_TTL" env-default:"15m"`
	RefreshTokenTTL time.Duration `env:"JWT_REFRESH_TOKEN_TTL" env-default:"240h"`
	SigningKey      string        `env:"JWT_SIGNING_KEY" env-required:"true"`
}

type SMTPConfig struct {
	Host string `env:"SMTP_HOST" env-required:"true"`
	Port int    `env:"SMTP_PORT" env-required:"true"`
	From string `env:"SMTP_FROM" env-required:"true"`
	Pass string `env:"SMTP_PASS" env-required:"true"`
}

type EmailConfig struct {
	Enabled      bool   `env:"EMAIL_ENABLED" env-default:"false"`
	TemplatesDir string `env:"EMAIL_TEMPLATES_DIR" env-default:"./templates"`
	Templates    EmailTemplates
}

type EmailTemplates struct {
	Verification  string `env:"EMAIL_TEMPLATE_VERIFICATION" env-default:"verification.html"`
	PasswordReset string `env:"EMAIL_TEMPLATE_PASSWORD_RESET" env-default:"password_reset.html"`
}

type Cache struct {
	Type  string `env:"REDIS_TYPE" env-required:"true" env-description:"specifies provider, one of redis/redisCluster"`
	Redis struct {
		Address  string `env:"REDIS_ADDR" env-default:"" env-description:"redis host:port single instance"`
		Password string `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize int    `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	RedisCluster struct {
		Addresses []string `env:"REDIS_CLUSTER_ADDRS" env-default:"" env-description:"redis cluster nodes: ['172.27.29.90:7000','172.27.29.91:7001'', '172.27.29.92:7002'']"`
		Password  string   `env:"REDIS_PASSWORD" env-default:"" env-description:"redis password if exists"`
		PoolSize  int      `env:"REDIS_POOL_SIZE" env-default:"70" env-description:"max tcp connections pool size"`
	}
	AddressTTL time.Duration `env:"CACHE_ADDRESS_TTL" env-default:"24h"`
}

type QueueConfig struct {
	Concurrency int `env:"QUEUE_CONCURRENCY" env-default:"10"`
}

type WizardConfig struct {
	SessionTTL    time.Duration `env:"WIZARD_SESSION_TTL" env-default:"2h"`
	SweepInterval time.Duration `env:"WIZARD_SWEEP_INTERVAL" env-default:"5m"`
	MaxSessions   int           `env:"WIZARD_MAX_SESSIONS" env-default:"10000"`
}

type StorageConfig struct {
	Dir             string `env:"STORAGE_DIR" env-default:"./uploads"`
	PublicBaseURL   string `env:"STORAGE_PUBLIC_BASE_URL" env-default:"http://localhost:8080/uploads"`
	MaxLogoSize     int64  `env:"STORAGE_MAX_LOGO_SIZE" env-default:"2097152"`
	MaxDocumentSize int64  `env:"STORAGE_MAX_DOCUMENT_SIZE" env-default:"8388608"`
}

type AddressConfig struct {
	Source string `env:"ADDRESS_SOURCE" env-default:"embedded" env-description:"one of embedded/mysql"`
}

type LicenseCheckConfig struct {
	Enabled bool          `env:"LICENSE_CHECK_ENABLED" env-default:"false"`
	BaseURL string        `env:"LICENSE_CHECK_BASE_URL" env-default:"http://localhost:8090"`
	Timeout time.Duration `env:"LICENSE_CHECK_TIMEOUT" env-default:"30s"`
}

func MustLoad() *Config {
	var cfg Config

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Fatalf("cannot read config from environment: %s", err)
	}

	return &cfg
}
