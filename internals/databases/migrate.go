package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/lib/pq"
	"gorm.io/gorm"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations brings the schema up to date. Postgres runs the embedded SQL
// through golang-migrate on its own connection; mysql falls back to AutoMigrate.
func RunMigrations(db *gorm.DB, models ...any) error {
	if Driver() == DriverMySQL {
		return AutoMigrate(db, models...)
	}

	conn, err := sql.Open("postgres", PostgresDSN())
	if err != nil {
		return fmt.Errorf("open migration connection: %w", err)
	}
	src, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("load migrations: %w", err)
	}
	drv, err := migratepg.WithInstance(conn, &migratepg.Config{})
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("migration driver: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, DriverPostgres, drv)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("migrate init: %w", err)
	}
	defer m.Close() // closes conn too

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	version, dirty, _ := m.Version()
	slog.Info("migrations applied", "version", version, "dirty", dirty)
	return nil
}

func AutoMigrate(db *gorm.DB, models ...any) error {
	if len(models) == 0 {
		return nil
	}
	if err := db.AutoMigrate(models...); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}
