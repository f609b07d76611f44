package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App      AppConfig
	DB       DBConfig
	JWT      JWTConfig
	Password PasswordConfig
	Login    LoginConfig
	Demo     DemoConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.validate(); err != nil {
		return nil, err
	}
	if err := cfg.JWT.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"GREENBITES_APP_ENV" default:"dev"`
	Port         string `envconfig:"GREENBITES_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"GREENBITES_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"GREENBITES_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	// Driver selects the embedded sqlite store (default) or postgres.
	Driver string `envconfig:"GREENBITES_DB_DRIVER" default:"sqlite"`
	// DSN is the sqlite file path, or a postgres URL when Driver is postgres.
	DSN string `envconfig:"GREENBITES_DB_DSN" default:"greenbites.db"`

	AutoMigrate bool `envconfig:"GREENBITES_DB_AUTO_MIGRATE" default:"true"`

	MaxOpenConns    int           `envconfig:"GREENBITES_DB_MAX_OPEN_CONNS" default:"1"`
	MaxIdleConns    int           `envconfig:"GREENBITES_DB_MAX_IDLE_CONNS" default:"1"`
	ConnMaxLifetime time.Duration `envconfig:"GREENBITES_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"GREENBITES_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

func (db DBConfig) validate() error {
	switch strings.ToLower(db.Driver) {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("unsupported db driver %q", db.Driver)
	}
	if strings.TrimSpace(db.DSN) == "" {
		return fmt.Errorf("%s is required", EnvDBDSN)
	}
	return nil
}

// IsSQLite reports whether the embedded sqlite store is selected.
func (db DBConfig) IsSQLite() bool {
	return strings.EqualFold(db.Driver, DriverSQLite)
}

type JWTConfig struct {
	Secret            string `envconfig:"GREENBITES_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"GREENBITES_JWT_ISSUER" default:"greenbites"`
	ExpirationMinutes int    `envconfig:"GREENBITES_JWT_EXPIRATION_MINUTES" default:"720"`
}

func (j JWTConfig) validate() error {
	// envconfig's required tag accepts a present-but-empty variable.
	if strings.TrimSpace(j.Secret) == "" {
		return fmt.Errorf("%s is required", EnvJWTSecret)
	}
	return nil
}

// AccessTokenTTL returns the access token lifetime.
func (j JWTConfig) AccessTokenTTL() time.Duration {
	if j.ExpirationMinutes <= 0 {
		return 0
	}
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"GREENBITES_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"GREENBITES_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"GREENBITES_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"GREENBITES_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"GREENBITES_ARGON_KEY_LEN" default:"32"`
}

// LoginConfig tunes the simulated credential-check latency. The delay is
// applied inside the authenticator and honors context cancellation.
type LoginConfig struct {
	Delay time.Duration `envconfig:"GREENBITES_LOGIN_DELAY" default:"800ms"`
}

// DemoConfig holds the two demo accounts bootstrapped at startup.
type DemoConfig struct {
	Bootstrap      bool   `envconfig:"GREENBITES_DEMO_BOOTSTRAP" default:"true"`
	DonorEmail     string `envconfig:"GREENBITES_DEMO_DONOR_EMAIL" default:"donor@example.com"`
	DonorPassword  string `envconfig:"GREENBITES_DEMO_DONOR_PASSWORD" default:"donor123"`
	DonorName      string `envconfig:"GREENBITES_DEMO_DONOR_NAME" default:"Food Donor"`
	SeekerEmail    string `envconfig:"GREENBITES_DEMO_SEEKER_EMAIL" default:"seeker@example.com"`
	SeekerPassword string `envconfig:"GREENBITES_DEMO_SEEKER_PASSWORD" default:"seeker123"`
	SeekerName     string `envconfig:"GREENBITES_DEMO_SEEKER_NAME" default:"Food Seeker"`
}
