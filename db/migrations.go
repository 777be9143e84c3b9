package db

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"
)

const (
	DialectPostgres = "postgres"
	DialectSqlite   = "sqlite"
)

//go:embed migrations/postgres/*.sql migrations/sqlite/*.sql
var migrationsFS embed.FS

// RunMigrations brings the metadata schema up to date. It opens its own connection from dsn and
// closes it when done.
func RunMigrations(dialect string, dsn string) error {
	source, err := iofs.New(migrationsFS, "migrations/"+dialect)
	if err != nil {
		return fmt.Errorf("no migrations for dialect %s: %w", dialect, err)
	}

	conn, err := sql.Open(dialect, dsn)
	if err != nil {
		return fmt.Errorf("failed to open %s for migrations: %w", dialect, err)
	}

	var driver database.Driver
	switch dialect {
	case DialectPostgres:
		driver, err = postgres.WithInstance(conn, &postgres.Config{})
	case DialectSqlite:
		driver, err = sqlite.WithInstance(conn, &sqlite.Config{})
	default:
		err = fmt.Errorf("unsupported dialect %s", dialect)
	}
	if err != nil {
		conn.Close()
		return err
	}

	m, err := migrate.NewWithInstance("iofs", source, dialect, driver)
	if err != nil {
		conn.Close()
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("%s migrations failed: %w", dialect, err)
	}

	version, dirty, _ := m.Version()
	log.Info().Str("dialect", dialect).Uint("version", version).Bool("dirty", dirty).Msg("Metadata migrations completed")
	return nil
}
