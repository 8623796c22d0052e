package database

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"clubsocios_backend/internals/configs"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	DriverPostgres = "postgres"
	DriverMySQL    = "mysql"
)

var DB *gorm.DB

// Driver returns the configured DB_DRIVER, postgres unless mysql is asked for.
func Driver() string {
	if strings.EqualFold(strings.TrimSpace(configs.GetEnv("DB_DRIVER", DriverPostgres)), DriverMySQL) {
		return DriverMySQL
	}
	return DriverPostgres
}

// PostgresDSN builds the URL form DSN with a statement timeout.
func PostgresDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s&application_name=clubsocios&options=-c%%20statement_timeout=5000",
		configs.GetEnv("DB_USER"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "5432"),
		configs.GetEnv("DB_NAME", "club"),
		configs.GetEnv("DB_SSLMODE", "disable"),
	)
}

// MySQLDSN needs parseTime so DATE columns scan into time.Time.
func MySQLDSN() string {
	return fmt.Sprintf(
		"%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		configs.GetEnv("DB_USER", "root"),
		configs.GetEnv("DB_PASSWORD"),
		configs.GetEnv("DB_HOST", "localhost"),
		configs.GetEnv("DB_PORT", "3306"),
		configs.GetEnv("DB_NAME", "club"),
	)
}

func gormConfig() *gorm.Config {
	return &gorm.Config{
		Logger:         configs.NewGormLogger(),
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC() },
	}
}

// Open connects with the configured driver without touching the package DB.
func Open() (*gorm.DB, error) {
	switch Driver() {
	case DriverMySQL:
		return gorm.Open(mysql.Open(MySQLDSN()), gormConfig())
	default:
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  PostgresDSN(),
			PreferSimpleProtocol: true, // PgBouncer transaction pooling
		}), gormConfig())
	}
}

func ConnectDB() error {
	slog.Info("connecting database", "driver", Driver(), "host", configs.GetEnv("DB_HOST", "localhost"))
	db, err := Open()
	if err != nil {
		return fmt.Errorf("connect %s: %w", Driver(), err)
	}
	DB = db
	slog.Info("database connected")
	return nil
}

func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		slog.Warn("pool tune failed", "err", err)
		return
	}
	sqlDB.SetMaxOpenConns(configs.GetEnvInt("DB_MAX_OPEN_CONNS", 20))
	sqlDB.SetMaxIdleConns(configs.GetEnvInt("DB_MAX_IDLE_CONNS", 10))
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

func WarmUpQueries() {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(DB); err != nil {
			slog.Warn("warm-up ping failed", "err", err)
			return
		}
		// the member list is the dashboard landing page
		var n int64
		if err := DB.Table("socios").Count(&n).Error; err != nil {
			slog.Warn("warm-up query failed", "err", err)
		}
	}()
}

func Ping(db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database not initialised")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
