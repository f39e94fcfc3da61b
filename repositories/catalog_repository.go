package repositories

import (
	"context"
	"errors"

	"github.com/yeremiapane/table-order-service/models"
	"gorm.io/gorm"
)

type CatalogRepository struct {
	db *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

// ListItems returns every catalog item. Order is not guaranteed.
func (r *CatalogRepository) ListItems(ctx context.Context) ([]models.Item, error) {
	items := []models.Item{}
	if err := r.db.WithContext(ctx).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem reports found=false when no item has the given id.
func (r *CatalogRepository) GetItem(ctx context.Context, id uint) (models.Item, bool, error) {
	var item models.Item
	err := r.db.WithContext(ctx).Where("id = ?", id).Take(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Item{}, false, nil
	}
	if err != nil {
		return models.Item{}, false, err
	}
	return item, true, nil
}
