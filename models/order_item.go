package models

// OrderItem is a line of an order, addressed by (OrderID, ItemID).
// ItemID is not checked against the catalog.
type OrderItem struct {
	OrderID uint `gorm:"primaryKey;autoIncrement:false" json:"-"`
	ItemID  uint `gorm:"primaryKey;autoIncrement:false" json:"item_id"`
	Amount  uint `gorm:"not null" json:"amount"`
}
