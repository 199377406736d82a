// Package migrations embeds the goose SQL migrations, one directory per SQL
// dialect. Both directories describe the same logical "Users" schema.
package migrations

import (
	"embed"
	"io/fs"
)

//go:embed sqlite/*.sql postgres/*.sql
var Migrations embed.FS

// For returns the migration files for dir ("sqlite" or "postgres") rooted so
// that goose sees the .sql files at ".".
func For(dir string) (fs.FS, error) {
	return fs.Sub(Migrations, dir)
}
