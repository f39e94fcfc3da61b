package database

import (
	"time"

	"github.com/yeremiapane/table-order-service/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open opens a gorm handle on the given dialector. Driver errors are
// translated so unique violations surface as gorm.ErrDuplicatedKey.
func Open(dialector gorm.Dialector) (*gorm.DB, error) {
	return gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger: logger.New(utils.InfoLogger, logger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		}),
	})
}
