package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// dotenvFile is loaded before reading the environment. Variables already
// set in the process environment win over the file.
var dotenvFile = ".env"

// parseEnv overlays cfg with GALLERY_* environment variables.
func parseEnv(cfg *Config) error {
	if err := godotenv.Load(dotenvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", dotenvFile, err)
	}

	strs := map[string]*string{
		"GALLERY_API_URL":        &cfg.APIURL,
		"GALLERY_AUTH_DOMAIN":    &cfg.Auth.Domain,
		"GALLERY_CLIENT_ID":      &cfg.Auth.ClientID,
		"GALLERY_REDIRECT_URI":   &cfg.Auth.RedirectURI,
		"GALLERY_SCOPE":          &cfg.Auth.Scope,
		"GALLERY_LOGOUT_URI":     &cfg.Auth.LogoutURI,
		"GALLERY_DB_PATH":        &cfg.DBPath,
		"GALLERY_LOG_FORMAT":     &cfg.LogFormat,
		"GALLERY_CACHE":          &cfg.Cache.Kind,
		"GALLERY_REDIS_ADDR":     &cfg.Cache.RedisAddr,
		"GALLERY_REDIS_PASSWORD": &cfg.Cache.RedisPassword,
		"GALLERY_REDIS_PREFIX":   &cfg.Cache.RedisPrefix,
		"GALLERY_S3_BUCKET":      &cfg.Storage.Bucket,
		"GALLERY_S3_REGION":      &cfg.Storage.Region,
		"GALLERY_S3_ENDPOINT":    &cfg.Storage.Endpoint,
		"GALLERY_S3_ACCESS_KEY":  &cfg.Storage.AccessKey,
		"GALLERY_S3_SECRET_KEY":  &cfg.Storage.SecretKey,
		"GALLERY_DOWNLOAD_DIR":   &cfg.Storage.DownloadDir,
	}
	for name, dst := range strs {
		if v, ok := os.LookupEnv(name); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"GALLERY_EPHEMERAL": &cfg.Ephemeral,
		"GALLERY_DEBUG":     &cfg.Debug,
	}
	for name, dst := range bools {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = b
	}

	if v, ok := os.LookupEnv("GALLERY_REDIS_DB"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("GALLERY_REDIS_DB: %w", err)
		}
		cfg.Cache.RedisDB = n
	}

	durations := map[string]*time.Duration{
		"GALLERY_CACHE_TTL":             &cfg.Cache.TTL,
		"GALLERY_LOGIN_TIMEOUT":         &cfg.LoginTimeout,
		"GALLERY_ONLINE_CHECK_INTERVAL": &cfg.OnlineCheckInterval,
	}
	for name, dst := range durations {
		v, ok := os.LookupEnv(name)
		if !ok {
			continue
		}
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		*dst = d
	}

	return nil
}
