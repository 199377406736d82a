package config

import (
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"

	"github.com/dmitrijs2005/useraccounts/internal/flagx"
)

// loadFileAndEnv overlays cfg with the YAML file named by -c/-config, if any,
// and then with USERS_* environment variables. Keys absent from both sources
// keep their current values.
func loadFileAndEnv(cfg *Config, args []string) error {
	k := koanf.New(".")

	if path := flagx.ConfigFileFlag(args); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return errors.Wrapf(err, "read config file %s failed", path)
		}
	}

	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKey,
	}), nil); err != nil {
		return errors.Wrap(err, "load env variables failed")
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return errors.Wrap(err, "unmarshal config failed")
	}
	return nil
}

// envKey maps USERS_DATABASE_DSN to database.dsn. Only the first underscore
// after the prefix separates section from key.
func envKey(k, v string) (string, any) {
	k = strings.ToLower(strings.TrimPrefix(k, EnvPrefix))
	return strings.Replace(k, "_", ".", 1), v
}
