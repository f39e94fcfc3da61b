package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yeremiapane/table-order-service/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// errOrderChanged rolls back a delete whose order disappeared between the
// existence check and the delete.
var errOrderChanged = errors.New("order changed during delete")

// OrderRepository stores orders and their lines. Every lookup is scoped by
// the owning table session id.
type OrderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) WithTx(tx *gorm.DB) *OrderRepository {
	return &OrderRepository{db: tx}
}

// Create inserts the order row and one order_items row per line in a single
// transaction, then reads the order back. Only ItemID and Amount of each line
// are used. An empty line list creates an empty order. The session must still
// be active inside the transaction, otherwise ErrSessionNotActive.
func (r *OrderRepository) Create(ctx context.Context, sessionID uint, lines []models.OrderItem) (models.Order, error) {
	var orderID uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockActiveSession(tx, sessionID); err != nil {
			return err
		}

		order := models.Order{
			TableSessionID: sessionID,
			Timestamp:      time.Now().UTC(),
		}
		if err := tx.Omit(clause.Associations).Create(&order).Error; err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		if len(lines) > 0 {
			items := make([]models.OrderItem, 0, len(lines))
			for _, line := range lines {
				items = append(items, models.OrderItem{
					OrderID: order.ID,
					ItemID:  line.ItemID,
					Amount:  line.Amount,
				})
			}
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("insert order items: %w", err)
			}
		}

		orderID = order.ID
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	order, found, err := r.Get(ctx, sessionID, orderID)
	if err != nil {
		return models.Order{}, err
	}
	if !found {
		return models.Order{}, fmt.Errorf("order %d not readable after create", orderID)
	}
	return order, nil
}

// Get returns the order with orderID if it belongs to sessionID.
func (r *OrderRepository) Get(ctx context.Context, sessionID, orderID uint) (models.Order, bool, error) {
	var order models.Order
	err := r.db.WithContext(ctx).
		Preload("OrderItems", orderItemsByItemID).
		Where("id = ? AND table_session_id = ?", orderID, sessionID).
		Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Order{}, false, nil
	}
	if err != nil {
		return models.Order{}, false, err
	}
	return order, true, nil
}

// List returns all orders of sessionID. Items of all orders are loaded with
// one batched query.
func (r *OrderRepository) List(ctx context.Context, sessionID uint) ([]models.Order, error) {
	orders := []models.Order{}
	err := r.db.WithContext(ctx).
		Preload("OrderItems", orderItemsByItemID).
		Where("table_session_id = ?", sessionID).
		Order("id").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Delete removes the order and all of its lines in one transaction. It
// reports false, touching nothing, when the order does not belong to
// sessionID, and ErrSessionNotActive when the session has ended.
func (r *OrderRepository) Delete(ctx context.Context, sessionID, orderID uint) (bool, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockActiveSession(tx, sessionID); err != nil {
			return err
		}

		var count int64
		err := tx.Model(&models.Order{}).
			Where("id = ? AND table_session_id = ?", orderID, sessionID).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Where("order_id = ?", orderID).Delete(&models.OrderItem{}).Error; err != nil {
			return fmt.Errorf("delete order items: %w", err)
		}

		res := tx.Where("id = ? AND table_session_id = ?", orderID, sessionID).Delete(&models.Order{})
		if res.Error != nil {
			return fmt.Errorf("delete order: %w", res.Error)
		}
		if res.RowsAffected != 1 {
			return errOrderChanged
		}
		return nil
	})
	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, errOrderChanged) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// DeleteItem removes the (orderID, itemID) line if the order belongs to
// sessionID and the session is still active.
func (r *OrderRepository) DeleteItem(ctx context.Context, sessionID, orderID, itemID uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := lockActiveSession(tx, sessionID); err != nil {
			return err
		}

		owned := tx.Model(&models.Order{}).
			Select("id").
			Where("id = ? AND table_session_id = ?", orderID, sessionID)

		res := tx.
			Where("order_id = ? AND item_id = ?", orderID, itemID).
			Where("order_id IN (?)", owned).
			Delete(&models.OrderItem{})
		if res.Error != nil {
			return res.Error
		}
		deleted = res.RowsAffected == 1
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

// lockActiveSession checks inside tx that sessionID is still active and
// locks its row until tx ends, so a concurrent Deactivate waits for the
// order write. sqlite has no row locks; there the single writer covers it.
func lockActiveSession(tx *gorm.DB, sessionID uint) error {
	var session models.TableSession
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
		Select("id").
		Where("id = ? AND active = ?", sessionID, true).
		Take(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrSessionNotActive
	}
	if err != nil {
		return fmt.Errorf("lock session %d: %w", sessionID, err)
	}
	return nil
}

func orderItemsByItemID(db *gorm.DB) *gorm.DB {
	return db.Order("item_id")
}
