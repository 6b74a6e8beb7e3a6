package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"batepapo/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Supported values for the STORE_DRIVER setting backed by this package.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// DB is the gorm-backed document store holding the participants and
// messages collections.
type DB struct {
	*gorm.DB
}

func newLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags), // io writer
		logger.Config{
			SlowThreshold:             200 * time.Millisecond, // Slow SQL threshold
			LogLevel:                  logger.Warn,            // Log level
			IgnoreRecordNotFoundError: true,                   // Ignore ErrRecordNotFound error for logger
			Colorful:                  true,                   // Enable color
		},
	)
}

func dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case DriverPostgres:
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL is required for the %s driver", driver)
		}
		return postgres.Open(dsn), nil
	case DriverSQLite:
		if dsn == "" {
			dsn = "batepapo.db"
		}
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", driver)
	}
}

// Connect opens the database and runs migrations.
func Connect(driver, dsn string) (*DB, error) {
	dial, err := dialector(driver, dsn)
	if err != nil {
		return nil, err
	}

	gdb, err := gorm.Open(dial, &gorm.Config{
		Logger:         newLogger(),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if driver == DriverSQLite {
		// sqlite serializes writers; a single connection also keeps ":memory:" databases shared.
		sqlDB, err := gdb.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to access sql.DB: %w", err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	log.Println("Database connection established.")

	if err := gdb.AutoMigrate(&models.Participant{}, &models.Message{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Println("Database migrated successfully.")
	return &DB{gdb}, nil
}

// Close releases the underlying connection pool.
func (db *DB) Close() error {
	sqlDB, err := db.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
