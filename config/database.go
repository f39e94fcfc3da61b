package config

import (
	"fmt"
	"strings"

	"github.com/yeremiapane/table-order-service/database"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DSN returns the connection string for the configured driver.
func (c Config) DSN() string {
	if c.DBDSN != "" {
		return c.DBDSN
	}
	if c.driver() == "mysql" {
		auth := c.DBUser
		if c.DBPass != "" {
			auth = fmt.Sprintf("%s:%s", c.DBUser, c.DBPass)
		}
		// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
		return fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
			auth, c.DBHost, c.DBPort, c.DBName)
	}
	return c.DBName + ".db?_busy_timeout=5000"
}

func (c Config) driver() string {
	return strings.ToLower(strings.TrimSpace(c.DBDriver))
}

// InitDB opens the configured database.
func InitDB(c Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch c.driver() {
	case "mysql":
		dialector = mysql.Open(c.DSN())
	case "sqlite", "":
		dialector = sqlite.Open(c.DSN())
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	db, err := database.Open(dialector)
	if err != nil {
		return nil, fmt.Errorf("open %s database: %w", c.driver(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if c.driver() == "mysql" {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
	} else {
		// sqlite allows one writer at a time
		sqlDB.SetMaxOpenConns(1)
	}
	return db, nil
}
