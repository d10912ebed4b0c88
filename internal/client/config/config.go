package config

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Cache backends.
const (
	CacheNone   = "none"
	CacheMemory = "memory"
	CacheRedis  = "redis"
)

// Config holds runtime settings for the gallery CLI.
type Config struct {
	// APIURL is the base URL of the gallery backend.
	APIURL string `validate:"required,url"`

	Auth    AuthConfig
	Cache   CacheConfig
	Storage StorageConfig

	// DBPath is the SQLite file holding the local session. Ignored when
	// Ephemeral is set.
	DBPath    string `validate:"required_unless=Ephemeral true"`
	Ephemeral bool

	LogFormat string `validate:"oneof=console json text"`
	Debug     bool

	LoginTimeout        time.Duration `validate:"gt=0"`
	OnlineCheckInterval time.Duration `validate:"gt=0"`
}

// AuthConfig describes the hosted sign-in provider.
type AuthConfig struct {
	Domain      string `validate:"required,url"`
	ClientID    string `validate:"required"`
	RedirectURI string `validate:"required,url"`
	Scope       string `validate:"required"`
	LogoutURI   string `validate:"omitempty,url"`
}

// CacheConfig selects the response cache.
type CacheConfig struct {
	Kind          string        `validate:"oneof=none memory redis"`
	TTL           time.Duration `validate:"gte=0"`
	RedisAddr     string        `validate:"required_if=Kind redis"`
	RedisPassword string
	RedisDB       int `validate:"gte=0"`
	RedisPrefix   string
}

// StorageConfig points at the bucket images are downloaded from. Downloads
// are disabled while Bucket is empty.
type StorageConfig struct {
	Bucket      string
	Region      string `validate:"required_with=Bucket"`
	Endpoint    string `validate:"omitempty,url"`
	AccessKey   string
	SecretKey   string `validate:"required_with=AccessKey"`
	DownloadDir string `validate:"required"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:8000"

	c.Auth = AuthConfig{
		RedirectURI: "http://localhost:3000/callback",
		Scope:       "openid email profile",
	}

	c.Cache = CacheConfig{
		Kind:        CacheMemory,
		TTL:         time.Minute,
		RedisPrefix: "gallery:",
	}

	c.Storage = StorageConfig{
		Region:      "us-east-1",
		DownloadDir: "~/Downloads/gallery",
	}

	c.DBPath = "~/.gophgallery/session.db"
	c.LogFormat = "console"
	c.LoginTimeout = 2 * time.Minute
	c.OnlineCheckInterval = 3 * time.Second
}

// Validate checks the assembled configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment, the config file (if any) and command-line flags. Later
// sources take precedence over earlier ones.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := parseEnv(cfg); err != nil {
		return nil, err
	}
	if err := parseFile(cfg); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
