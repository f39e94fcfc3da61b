package models

// Item is a catalog entry. The catalog is read-only for the ordering flow.
type Item struct {
	ID              uint   `gorm:"primaryKey" json:"id"`
	PreparationTime uint   `gorm:"not null;default:0" json:"preparation_time"`
	PriceYen        uint   `gorm:"not null;default:0" json:"price_yen"`
	Name            string `gorm:"type:varchar(255);not null" json:"name"`
}
