// Package config loads runtime configuration for the gallery CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A .env file in the working directory and GALLERY_* environment
//     variables (see parseEnv). Real environment variables win over .env.
//  3. Optional config file selected via -c or -config (see parseFile).
//     JSON by default, YAML when the name ends in .yaml or .yml.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// The result is checked with (*Config).Validate.
//
// # File schema
//
// Durations use timex.Duration, so they can be strings like "3s" or integer
// nanoseconds:
//
//	api_url: http://localhost:8000
//	auth:
//	  domain: https://gallery.auth.eu-west-1.amazoncognito.com
//	  client_id: 4v1exampleclient
//	  redirect_uri: http://localhost:3000/callback
//	cache:
//	  kind: redis
//	  redis_addr: localhost:6379
//	  ttl: 1m
//	storage:
//	  bucket: gallery-images
//	  region: eu-west-1
//	online_check_interval: 3s
package config
