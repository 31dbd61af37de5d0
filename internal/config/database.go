package config

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DB is the shared connection pool opened by InitDB.
var DB *gorm.DB

// OpenDB opens the configured store. Driver errors for unique violations are translated to
// gorm.ErrDuplicatedKey.
func OpenDB(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case DriverMySQL:
		dialector = mysql.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(withForeignKeys(dsn))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}
	if driver == DriverSQLite {
		// a single connection keeps in-memory databases shared and serialises sqlite writers
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}

func InitDB(cfg Config) error {
	db, err := OpenDB(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return err
	}
	DB = db
	Logger.Info("Database connected", zap.String("driver", cfg.DBDriver))
	return nil
}

// withForeignKeys turns on sqlite foreign key enforcement for every connection unless the
// DSN already sets it.
func withForeignKeys(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
