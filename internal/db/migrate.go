package db

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"

	// registers the mysql:// database URL scheme
	_ "github.com/golang-migrate/migrate/v4/database/mysql"

	"github.com/vibe-gaming/hbnb/internal/config"
)

//go:embed migrations
var migrationsFS embed.FS

// Migrate brings the schema of the configured database up to date.
// SQLite migrates through the open connection so that in-memory databases
// see the schema; MySQL uses a connection of its own.
func Migrate(cfg config.Database, dbConn *sqlx.DB) error {
	source, err := iofs.New(migrationsFS, "migrations/"+cfg.Driver)
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	var m *migrate.Migrate
	switch cfg.Driver {
	case config.DriverSQLite:
		driver, err := migratesqlite.WithInstance(dbConn.DB, &migratesqlite.Config{})
		if err != nil {
			return fmt.Errorf("migration driver: %w", err)
		}
		if m, err = migrate.NewWithInstance("iofs", source, "sqlite", driver); err != nil {
			return fmt.Errorf("migration instance: %w", err)
		}
	case config.DriverMySQL:
		conf, err := MySQLConfig(cfg)
		if err != nil {
			return err
		}
		if m, err = migrate.NewWithSourceInstance("iofs", source, "mysql://"+conf.FormatDSN()); err != nil {
			return fmt.Errorf("migration instance: %w", err)
		}
		defer m.Close()
	default:
		return fmt.Errorf("unsupported db driver %q", cfg.Driver)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}
