package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/yeremiapane/table-order-service/models"
	"gorm.io/gorm"
)

// TableSessionRepository stores table sessions. Sessions are never deleted;
// ending one only flips it to inactive.
type TableSessionRepository struct {
	db *gorm.DB
}

func NewTableSessionRepository(db *gorm.DB) *TableSessionRepository {
	return &TableSessionRepository{db: db}
}

// WithTx returns a copy of the repository bound to tx.
func (r *TableSessionRepository) WithTx(tx *gorm.DB) *TableSessionRepository {
	return &TableSessionRepository{db: tx}
}

// Create inserts a new active session starting now. It does not look for an
// existing active session first; the unique index on active_table_nr
// rejects a second one with ErrActiveSessionExists.
func (r *TableSessionRepository) Create(ctx context.Context, tableNr, customers uint8) (models.TableSession, error) {
	slot := tableNr
	session := models.TableSession{
		TableNr:       tableNr,
		Customers:     customers,
		SessionStart:  time.Now().UTC(),
		Active:        true,
		ActiveTableNr: &slot,
	}

	db := r.db.WithContext(ctx)
	if err := db.Create(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.TableSession{}, ErrActiveSessionExists
		}
		return models.TableSession{}, err
	}

	var created models.TableSession
	if err := db.Where("id = ?", session.ID).Take(&created).Error; err != nil {
		return models.TableSession{}, err
	}
	return created, nil
}

// GetActive returns the active session of tableNr, found=false if there is none.
func (r *TableSessionRepository) GetActive(ctx context.Context, tableNr uint8) (models.TableSession, bool, error) {
	var session models.TableSession
	err := r.db.WithContext(ctx).
		Where("table_nr = ? AND active = ?", tableNr, true).
		Take(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.TableSession{}, false, nil
	}
	if err != nil {
		return models.TableSession{}, false, err
	}
	return session, true, nil
}

// ListByTable returns active and historical sessions of tableNr, oldest first.
func (r *TableSessionRepository) ListByTable(ctx context.Context, tableNr uint8) ([]models.TableSession, error) {
	sessions := []models.TableSession{}
	err := r.db.WithContext(ctx).
		Where("table_nr = ?", tableNr).
		Order("id").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *TableSessionRepository) ListActive(ctx context.Context) ([]models.TableSession, error) {
	sessions := []models.TableSession{}
	err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("table_nr").
		Find(&sessions).Error
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// Deactivate ends the session with the given id. It reports false when no
// active session with that id exists, so a session is ended at most once.
func (r *TableSessionRepository) Deactivate(ctx context.Context, sessionID uint) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&models.TableSession{}).
		Where("id = ? AND active = ?", sessionID, true).
		Updates(map[string]interface{}{
			"active":          false,
			"session_end":     time.Now().UTC(),
			"active_table_nr": nil,
		})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
