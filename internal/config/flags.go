package config

import (
	"flag"
	"io"

	"github.com/pkg/errors"

	"github.com/dmitrijs2005/useraccounts/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// The function filters args to the flags it knows about, using
// flagx.FilterArgs, so -c and unrelated arguments do not cause errors.
func parseFlags(cfg *Config, args []string) error {
	args = flagx.FilterArgs(args, []string{"-driver", "-d", "-l"})

	fs := flag.NewFlagSet("users", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&cfg.Database.Driver, "driver", cfg.Database.Driver, "database driver (sqlite or postgres)")
	fs.StringVar(&cfg.Database.DSN, "d", cfg.Database.DSN, "database DSN")
	fs.StringVar(&cfg.Log.Level, "l", cfg.Log.Level, "log level")

	if err := fs.Parse(args); err != nil {
		return errors.Wrap(err, "failed to parse flags")
	}
	return nil
}
