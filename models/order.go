package models

import (
	"time"
)

type Order struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	TableSessionID uint        `gorm:"not null;index" json:"table_session_id"`
	Timestamp      time.Time   `gorm:"not null" json:"timestamp"`
	OrderItems     []OrderItem `gorm:"foreignKey:OrderID;references:ID" json:"order_items"`
}
