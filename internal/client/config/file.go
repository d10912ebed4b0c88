package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dmitrijs2005/gophgallery/internal/flagx"
	"github.com/dmitrijs2005/gophgallery/internal/timex"
)

// FileConfig is a DTO used exclusively for decoding config files. Intervals
// use timex.Duration so they can be written as "3s" or integer nanoseconds.
type FileConfig struct {
	APIURL              string         `json:"api_url" yaml:"api_url"`
	DBPath              string         `json:"db_path" yaml:"db_path"`
	Ephemeral           bool           `json:"ephemeral" yaml:"ephemeral"`
	LogFormat           string         `json:"log_format" yaml:"log_format"`
	Debug               bool           `json:"debug" yaml:"debug"`
	LoginTimeout        timex.Duration `json:"login_timeout" yaml:"login_timeout"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`

	Auth struct {
		Domain      string `json:"domain" yaml:"domain"`
		ClientID    string `json:"client_id" yaml:"client_id"`
		RedirectURI string `json:"redirect_uri" yaml:"redirect_uri"`
		Scope       string `json:"scope" yaml:"scope"`
		LogoutURI   string `json:"logout_uri" yaml:"logout_uri"`
	} `json:"auth" yaml:"auth"`

	Cache struct {
		Kind          string         `json:"kind" yaml:"kind"`
		TTL           timex.Duration `json:"ttl" yaml:"ttl"`
		RedisAddr     string         `json:"redis_addr" yaml:"redis_addr"`
		RedisPassword string         `json:"redis_password" yaml:"redis_password"`
		RedisDB       int            `json:"redis_db" yaml:"redis_db"`
		RedisPrefix   string         `json:"redis_prefix" yaml:"redis_prefix"`
	} `json:"cache" yaml:"cache"`

	Storage struct {
		Bucket      string `json:"bucket" yaml:"bucket"`
		Region      string `json:"region" yaml:"region"`
		Endpoint    string `json:"endpoint" yaml:"endpoint"`
		AccessKey   string `json:"access_key" yaml:"access_key"`
		SecretKey   string `json:"secret_key" yaml:"secret_key"`
		DownloadDir string `json:"download_dir" yaml:"download_dir"`
	} `json:"storage" yaml:"storage"`
}

// parseFile overlays cfg with the file named by -c or -config. Keys absent
// from the file keep their current values. Files ending in .yaml or .yml
// are decoded as YAML, everything else as JSON.
func parseFile(cfg *Config) error {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return nil
	}
	return loadFile(cfg, path)
}

func loadFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	fc := toFile(cfg)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, fc)
	default:
		err = json.Unmarshal(data, fc)
	}
	if err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	fromFile(cfg, fc)
	return nil
}

func toFile(c *Config) *FileConfig {
	fc := &FileConfig{
		APIURL:              c.APIURL,
		DBPath:              c.DBPath,
		Ephemeral:           c.Ephemeral,
		LogFormat:           c.LogFormat,
		Debug:               c.Debug,
		LoginTimeout:        timex.Duration{Duration: c.LoginTimeout},
		OnlineCheckInterval: timex.Duration{Duration: c.OnlineCheckInterval},
	}

	fc.Auth.Domain = c.Auth.Domain
	fc.Auth.ClientID = c.Auth.ClientID
	fc.Auth.RedirectURI = c.Auth.RedirectURI
	fc.Auth.Scope = c.Auth.Scope
	fc.Auth.LogoutURI = c.Auth.LogoutURI

	fc.Cache.Kind = c.Cache.Kind
	fc.Cache.TTL = timex.Duration{Duration: c.Cache.TTL}
	fc.Cache.RedisAddr = c.Cache.RedisAddr
	fc.Cache.RedisPassword = c.Cache.RedisPassword
	fc.Cache.RedisDB = c.Cache.RedisDB
	fc.Cache.RedisPrefix = c.Cache.RedisPrefix

	fc.Storage.Bucket = c.Storage.Bucket
	fc.Storage.Region = c.Storage.Region
	fc.Storage.Endpoint = c.Storage.Endpoint
	fc.Storage.AccessKey = c.Storage.AccessKey
	fc.Storage.SecretKey = c.Storage.SecretKey
	fc.Storage.DownloadDir = c.Storage.DownloadDir

	return fc
}

func fromFile(c *Config, fc *FileConfig) {
	c.APIURL = fc.APIURL
	c.DBPath = fc.DBPath
	c.Ephemeral = fc.Ephemeral
	c.LogFormat = fc.LogFormat
	c.Debug = fc.Debug
	c.LoginTimeout = fc.LoginTimeout.Duration
	c.OnlineCheckInterval = fc.OnlineCheckInterval.Duration

	c.Auth = AuthConfig{
		Domain:      fc.Auth.Domain,
		ClientID:    fc.Auth.ClientID,
		RedirectURI: fc.Auth.RedirectURI,
		Scope:       fc.Auth.Scope,
		LogoutURI:   fc.Auth.LogoutURI,
	}

	c.Cache = CacheConfig{
		Kind:          fc.Cache.Kind,
		TTL:           fc.Cache.TTL.Duration,
		RedisAddr:     fc.Cache.RedisAddr,
		RedisPassword: fc.Cache.RedisPassword,
		RedisDB:       fc.Cache.RedisDB,
		RedisPrefix:   fc.Cache.RedisPrefix,
	}

	c.Storage = StorageConfig{
		Bucket:      fc.Storage.Bucket,
		Region:      fc.Storage.Region,
		Endpoint:    fc.Storage.Endpoint,
		AccessKey:   fc.Storage.AccessKey,
		SecretKey:   fc.Storage.SecretKey,
		DownloadDir: fc.Storage.DownloadDir,
	}
}
