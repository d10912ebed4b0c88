package config

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/gophgallery/internal/flagx"
)

// flagNames lists the flags owned by this package. Anything else on the
// command line is left to other components.
var flagNames = []string{"-api", "-domain", "-client-id", "-redirect", "-db", "-ephemeral", "-cache", "-redis", "-bucket", "-log-format", "-debug", "-i"}

// parseFlags populates selected Config fields from command-line flags.
//
//	-api string        backend base URL
//	-domain string     sign-in provider domain
//	-client-id string  sign-in client id
//	-redirect string   redirect URI registered with the provider
//	-db string         session database file
//	-ephemeral         keep the session in memory only
//	-cache string      response cache: none, memory or redis
//	-redis string      redis address
//	-bucket string     image bucket for downloads
//	-log-format string console, json or text
//	-debug             debug logging
//	-i int             online check interval (in seconds)
func parseFlags(cfg *Config) error {
	return parseArgs(cfg, os.Args[1:])
}

func parseArgs(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.APIURL, "api", cfg.APIURL, "backend base URL")
	fs.StringVar(&cfg.Auth.Domain, "domain", cfg.Auth.Domain, "sign-in provider domain")
	fs.StringVar(&cfg.Auth.ClientID, "client-id", cfg.Auth.ClientID, "sign-in client id")
	fs.StringVar(&cfg.Auth.RedirectURI, "redirect", cfg.Auth.RedirectURI, "redirect URI registered with the provider")
	fs.StringVar(&cfg.DBPath, "db", cfg.DBPath, "session database file")
	fs.BoolVar(&cfg.Ephemeral, "ephemeral", cfg.Ephemeral, "keep the session in memory only")
	fs.StringVar(&cfg.Cache.Kind, "cache", cfg.Cache.Kind, "response cache: none, memory or redis")
	fs.StringVar(&cfg.Cache.RedisAddr, "redis", cfg.Cache.RedisAddr, "redis address")
	fs.StringVar(&cfg.Storage.Bucket, "bucket", cfg.Storage.Bucket, "image bucket for downloads")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "console, json or text")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "debug logging")
	onlineCheckInterval := fs.Int("i", int(cfg.OnlineCheckInterval.Seconds()), "online check interval (in seconds)")

	if err := fs.Parse(flagx.FilterArgs(args, flagNames)); err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	cfg.OnlineCheckInterval = time.Duration(*onlineCheckInterval) * time.Second
	return nil
}
