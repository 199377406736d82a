// Package config loads runtime configuration for the users CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional YAML file selected with -c or -config.
//  3. Environment variables prefixed with USERS_, e.g. USERS_DATABASE_DSN.
//  4. Command-line flags, which override everything above.
//
// Supported flags
//
//	-driver string   database driver: sqlite or postgres
//	-d string        database DSN (file path for sqlite)
//	-l string        log level: debug, info, warn, error
//
// # YAML schema
//
//	database:
//	  driver: sqlite
//	  dsn: user_database.sqlite
//	log:
//	  level: info
//	  backend: slog   # or zerolog
//	  format: text    # or json, slog only
package config
