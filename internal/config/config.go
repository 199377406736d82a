package config

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/dmitrijs2005/useraccounts/internal/logging"
	"github.com/dmitrijs2005/useraccounts/internal/storage"
)

const (
	DefaultDatabaseDSN = "user_database.sqlite"

	EnvPrefix = "USERS_"
)

type Config struct {
	Database Database `koanf:"database"`
	Log      Log      `koanf:"log"`
}

type Database struct {
	Driver string `koanf:"driver" validate:"oneof=sqlite postgres"`
	DSN    string `koanf:"dsn" validate:"required"`
}

type Log struct {
	Level   string `koanf:"level" validate:"oneof=debug info warn error DEBUG INFO WARN ERROR"`
	Backend string `koanf:"backend" validate:"oneof=slog zerolog"`
	Format  string `koanf:"format" validate:"oneof=text json"`
}

// LoadDefaults populates c with defaults that open a local SQLite file.
func (c *Config) LoadDefaults() {
	c.Database.Driver = storage.DriverSQLite
	c.Database.DSN = DefaultDatabaseDSN
	c.Log.Level = "info"
	c.Log.Backend = logging.BackendSlog
	c.Log.Format = logging.FormatText
}

// Load builds a Config from defaults, the optional YAML file, the environment
// and args (usually os.Args[1:]), in that order of precedence.
func Load(args []string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	if err := loadFileAndEnv(cfg, args); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg, args); err != nil {
		return nil, err
	}
	if err := validator.New().Struct(cfg); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}
	return cfg, nil
}

// StorageOptions maps the database section onto storage.Open options.
func (c *Config) StorageOptions() storage.Options {
	return storage.Options{Driver: c.Database.Driver, DSN: c.Database.DSN}
}

// LoggingOptions maps the log section onto logging.New options.
func (c *Config) LoggingOptions() logging.Options {
	return logging.Options{Backend: c.Log.Backend, Level: c.Log.Level, Format: c.Log.Format}
}
