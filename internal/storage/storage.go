// Package storage opens the account database, applies embedded migrations and
// hands out the user repository bound to it. There is no process-wide handle:
// every Open returns an independent Storage the caller must Close.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/dmitrijs2005/useraccounts/internal/filex"
	"github.com/dmitrijs2005/useraccounts/internal/logging"
	"github.com/dmitrijs2005/useraccounts/internal/migrations"
	"github.com/dmitrijs2005/useraccounts/internal/repositories/users"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// sqlitePragmas are appended to every SQLite DSN.
const sqlitePragmas = "_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)"

type Options struct {
	Driver string
	DSN    string
}

type Storage struct {
	db    *sql.DB
	users users.Repository
}

// Open connects to the database described by opts and migrates it to the
// latest schema version.
func Open(ctx context.Context, opts Options, log logging.Logger) (*Storage, error) {
	var (
		db      *sql.DB
		dialect goose.Dialect
		repo    func(*sql.DB) users.Repository
		err     error
	)

	switch opts.Driver {
	case "", DriverSQLite:
		if isSQLiteFile(opts.DSN) {
			if _, err := filex.EnsureParentDir(opts.DSN); err != nil {
				return nil, fmt.Errorf("failed to prepare database directory: %w", err)
			}
		}
		db, err = sql.Open("sqlite", sqliteDSN(opts.DSN))
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
		// one shared handle; also keeps a :memory: database alive across calls
		db.SetMaxOpenConns(1)
		dialect = goose.DialectSQLite3
		repo = func(db *sql.DB) users.Repository { return users.NewSQLiteRepository(db) }
	case DriverPostgres:
		db, err = sql.Open("pgx", opts.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres database: %w", err)
		}
		dialect = goose.DialectPostgres
		repo = func(db *sql.DB) users.Repository { return users.NewPostgresRepository(db) }
	default:
		return nil, fmt.Errorf("unsupported database driver %q", opts.Driver)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := RunMigrations(ctx, db, dialect, log); err != nil {
		_ = db.Close()
		return nil, err
	}

	log.Info(ctx, "database ready", "driver", driverName(opts.Driver))
	return &Storage{db: db, users: repo(db)}, nil
}

// RunMigrations applies all pending migrations for dialect. Running it on an
// up-to-date database is a no-op.
func RunMigrations(ctx context.Context, db *sql.DB, dialect goose.Dialect, log logging.Logger) error {
	dir := "sqlite"
	if dialect == goose.DialectPostgres {
		dir = "postgres"
	}

	fsys, err := migrations.For(dir)
	if err != nil {
		return fmt.Errorf("failed to load %s migrations: %w", dir, err)
	}

	p, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := p.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	for _, r := range results {
		log.Info(ctx, "applied migration", "version", r.Source.Version, "duration", r.Duration)
	}
	return nil
}

func (s *Storage) Users() users.Repository {
	return s.users
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Close() error {
	return s.db.Close()
}

func sqliteDSN(dsn string) string {
	if dsn == "" {
		dsn = ":memory:"
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + sqlitePragmas
}

// isSQLiteFile reports whether dsn is a plain path rather than an in-memory
// database or a file: URI.
func isSQLiteFile(dsn string) bool {
	return dsn != "" && !strings.HasPrefix(dsn, ":memory:") && !strings.HasPrefix(dsn, "file:")
}

func driverName(d string) string {
	if d == "" {
		return DriverSQLite
	}
	return d
}
