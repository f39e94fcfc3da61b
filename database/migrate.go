package database

import (
	"fmt"

	"github.com/yeremiapane/table-order-service/models"
	"github.com/yeremiapane/table-order-service/utils"
	"gorm.io/gorm"
)

// Migrate creates or updates the items, table_sessions, orders and
// order_items tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.Item{},
		&models.TableSession{},
		&models.Order{},
		&models.OrderItem{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	utils.InfoLogger.Println("AutoMigrate completed.")
	return nil
}
