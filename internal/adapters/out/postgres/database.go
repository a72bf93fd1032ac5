package postgres

import (
	"fmt"
	"log/slog"
	"time"

	"foodly/internal/adapters/out/postgres/itemrepo"
	"foodly/internal/adapters/out/postgres/orderrepo"
	"foodly/internal/adapters/out/postgres/productrepo"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported values of the database driver setting.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ConnectionSettings describes how to reach the database.
type ConnectionSettings struct {
	Driver     string
	Host       string
	Port       string
	User       string
	Password   string
	Name       string
	SslMode    string
	SQLitePath string
}

// DSN builds the PostgreSQL connection string.
func (s ConnectionSettings) DSN() string {
	sslMode := s.SslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
		s.Host, s.Port, s.User, s.Password, s.Name, sslMode,
	)
}

// Open connects to the configured database. Driver errors are translated to
// gorm's portable errors (gorm.ErrDuplicatedKey, gorm.ErrForeignKeyViolated)
// so repositories can map them to domain error kinds.
func Open(settings ConnectionSettings, log *slog.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch settings.Driver {
	case "", DriverPostgres:
		dialector = postgresdriver.Open(settings.DSN())
	case DriverSQLite:
		path := settings.SQLitePath
		if path == "" {
			path = "foodly.db"
		}
		dialector = sqlite.Open(fmt.Sprintf("file:%s?_foreign_keys=1&_busy_timeout=5000", path))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", settings.Driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		NowFunc:        func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	if settings.Driver == DriverSQLite {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Info("database connected", "driver", db.Dialector.Name())
	return db, nil
}

// Migrate provisions the products, orders and items tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&itemrepo.ItemDTO{},
	)
}
