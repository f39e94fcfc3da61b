package database

import (
	"fmt"
	"os"

	"github.com/yeremiapane/table-order-service/models"
	"github.com/yeremiapane/table-order-service/utils"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
)

type catalogFile struct {
	Items []struct {
		Name            string `yaml:"name"`
		PreparationTime uint   `yaml:"preparation_time"`
		PriceYen        uint   `yaml:"price_yen"`
	} `yaml:"items"`
}

// LoadCatalogFile reads catalog items from a YAML file.
func LoadCatalogFile(path string) ([]models.Item, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse catalog file %s: %w", path, err)
	}

	items := make([]models.Item, 0, len(file.Items))
	for i, it := range file.Items {
		if it.Name == "" {
			return nil, fmt.Errorf("catalog file %s: item %d has no name", path, i)
		}
		items = append(items, models.Item{
			Name:            it.Name,
			PreparationTime: it.PreparationTime,
			PriceYen:        it.PriceYen,
		})
	}
	return items, nil
}

// SeedCatalog fills an empty items table from the YAML file at path and
// returns how many items were inserted. A non-empty catalog is left alone.
func SeedCatalog(db *gorm.DB, path string) (int, error) {
	var count int64
	if err := db.Model(&models.Item{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count items: %w", err)
	}
	if count > 0 {
		utils.InfoLogger.Printf("Catalog already has %d items, skipping seed", count)
		return 0, nil
	}

	items, err := LoadCatalogFile(path)
	if err != nil {
		return 0, err
	}
	if len(items) == 0 {
		return 0, nil
	}

	if err := db.Create(&items).Error; err != nil {
		return 0, fmt.Errorf("insert catalog items: %w", err)
	}
	utils.InfoLogger.Printf("Seeded %d catalog items from %s", len(items), path)
	return len(items), nil
}
