package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/yeremiapane/table-order-service/events"
	"github.com/yeremiapane/table-order-service/models"
	"github.com/yeremiapane/table-order-service/repositories"
	"github.com/yeremiapane/table-order-service/utils"
	"gorm.io/gorm"
)

// Catalog is the read side of the item catalog.
type Catalog interface {
	ListItems(ctx context.Context) ([]models.Item, error)
	GetItem(ctx context.Context, id uint) (models.Item, bool, error)
}

// OrderLine is one requested item of a new order.
type OrderLine struct {
	ItemID uint
	Amount uint
}

// TableService resolves a table number to its active session before any
// order operation. Session ids are never taken from callers.
type TableService struct {
	db       *gorm.DB
	catalog  Catalog
	sessions *repositories.TableSessionRepository
	orders   *repositories.OrderRepository
	notifier events.Notifier

	// one lock per table number serializes session and order writes on
	// the same table
	tableLocks [256]sync.Mutex
}

func NewTableService(db *gorm.DB, catalog Catalog, notifier events.Notifier) *TableService {
	if catalog == nil {
		catalog = repositories.NewCatalogRepository(db)
	}
	if notifier == nil {
		notifier = events.Nop{}
	}
	return &TableService{
		db:       db,
		catalog:  catalog,
		sessions: repositories.NewTableSessionRepository(db),
		orders:   repositories.NewOrderRepository(db),
		notifier: notifier,
	}
}

func (s *TableService) ListItems(ctx context.Context) ([]models.Item, error) {
	items, err := s.catalog.ListItems(ctx)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (s *TableService) GetItem(ctx context.Context, id uint) (models.Item, error) {
	item, found, err := s.catalog.GetItem(ctx, id)
	if err != nil {
		return models.Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	if !found {
		return models.Item{}, fmt.Errorf("%w: id %d", ErrItemNotFound, id)
	}
	return item, nil
}

// OpenSession starts a session for tableNr. The check for an existing active
// session and the insert run in one transaction under the table lock; the
// unique index on active sessions covers writers in other processes.
func (s *TableService) OpenSession(ctx context.Context, tableNr, customers uint8) (models.TableSession, error) {
	if customers == 0 {
		return models.TableSession{}, ErrInvalidCustomers
	}

	lock := &s.tableLocks[tableNr]
	lock.Lock()
	defer lock.Unlock()

	var session models.TableSession
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		sessions := s.sessions.WithTx(tx)

		_, found, err := sessions.GetActive(ctx, tableNr)
		if err != nil {
			return fmt.Errorf("lookup active session: %w", err)
		}
		if found {
			return alreadyActive(tableNr)
		}

		session, err = sessions.Create(ctx, tableNr, customers)
		if errors.Is(err, repositories.ErrActiveSessionExists) {
			return alreadyActive(tableNr)
		}
		if err != nil {
			return fmt.Errorf("create session: %w", err)
		}
		return nil
	})
	if err != nil {
		return models.TableSession{}, err
	}

	s.notify(ctx, events.Event{
		Type:      events.SessionOpened,
		TableNr:   tableNr,
		SessionID: session.ID,
		Data:      session,
	})
	return session, nil
}

func (s *TableService) ActiveSessions(ctx context.Context) ([]models.TableSession, error) {
	sessions, err := s.sessions.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active sessions: %w", err)
	}
	return sessions, nil
}

// TableSessions returns the active and historical sessions of tableNr.
func (s *TableService) TableSessions(ctx context.Context, tableNr uint8) ([]models.TableSession, error) {
	sessions, err := s.sessions.ListByTable(ctx, tableNr)
	if err != nil {
		return nil, fmt.Errorf("list sessions of table %d: %w", tableNr, err)
	}
	return sessions, nil
}

func (s *TableService) ActiveSession(ctx context.Context, tableNr uint8) (models.TableSession, error) {
	return s.activeSession(ctx, tableNr)
}

// EndSession deactivates the active session of tableNr. It returns false
// when the session was already ended by a concurrent call.
func (s *TableService) EndSession(ctx context.Context, tableNr uint8) (bool, error) {
	lock := &s.tableLocks[tableNr]
	lock.Lock()
	defer lock.Unlock()

	session, err := s.activeSession(ctx, tableNr)
	if err != nil {
		return false, err
	}

	ok, err := s.sessions.Deactivate(ctx, session.ID)
	if err != nil {
		return false, fmt.Errorf("deactivate session %d: %w", session.ID, err)
	}
	if ok {
		s.notify(ctx, events.Event{
			Type:      events.SessionClosed,
			TableNr:   tableNr,
			SessionID: session.ID,
		})
	}
	return ok, nil
}

// CreateOrder places an order on the active session of tableNr. An empty
// line list is allowed and item ids are not checked against the catalog.
// Lines with the same item id are merged.
func (s *TableService) CreateOrder(ctx context.Context, tableNr uint8, lines []OrderLine) (models.Order, error) {
	merged, err := mergeLines(lines)
	if err != nil {
		return models.Order{}, err
	}

	lock := &s.tableLocks[tableNr]
	lock.Lock()
	defer lock.Unlock()

	session, err := s.activeSession(ctx, tableNr)
	if err != nil {
		return models.Order{}, err
	}

	order, err := s.orders.Create(ctx, session.ID, merged)
	if errors.Is(err, repositories.ErrSessionNotActive) {
		return models.Order{}, noActiveSession(tableNr)
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("create order for session %d: %w", session.ID, err)
	}

	s.notify(ctx, events.Event{
		Type:      events.OrderCreated,
		TableNr:   tableNr,
		SessionID: session.ID,
		OrderID:   order.ID,
		Data:      order,
	})
	return order, nil
}

func (s *TableService) ListOrders(ctx context.Context, tableNr uint8) ([]models.Order, error) {
	session, err := s.activeSession(ctx, tableNr)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.List(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("list orders of session %d: %w", session.ID, err)
	}
	return orders, nil
}

func (s *TableService) GetOrder(ctx context.Context, tableNr uint8, orderID uint) (models.Order, error) {
	session, err := s.activeSession(ctx, tableNr)
	if err != nil {
		return models.Order{}, err
	}

	order, found, err := s.orders.Get(ctx, session.ID, orderID)
	if err != nil {
		return models.Order{}, fmt.Errorf("get order %d: %w", orderID, err)
	}
	if !found {
		return models.Order{}, fmt.Errorf("%w: id %d", ErrOrderNotFound, orderID)
	}
	return order, nil
}

// DeleteOrder removes an order of the active session together with its
// lines. False means the session has no such order.
func (s *TableService) DeleteOrder(ctx context.Context, tableNr uint8, orderID uint) (bool, error) {
	lock := &s.tableLocks[tableNr]
	lock.Lock()
	defer lock.Unlock()

	session, err := s.activeSession(ctx, tableNr)
	if err != nil {
		return false, err
	}

	ok, err := s.orders.Delete(ctx, session.ID, orderID)
	if errors.Is(err, repositories.ErrSessionNotActive) {
		return false, noActiveSession(tableNr)
	}
	if err != nil {
		return false, fmt.Errorf("delete order %d: %w", orderID, err)
	}
	if ok {
		s.notify(ctx, events.Event{
			Type:      events.OrderDeleted,
			TableNr:   tableNr,
			SessionID: session.ID,
			OrderID:   orderID,
		})
	}
	return ok, nil
}

// DeleteOrderItem removes one line from an order of the active session.
func (s *TableService) DeleteOrderItem(ctx context.Context, tableNr uint8, orderID, itemID uint) (bool, error) {
	lock := &s.tableLocks[tableNr]
	lock.Lock()
	defer lock.Unlock()

	session, err := s.activeSession(ctx, tableNr)
	if err != nil {
		return false, err
	}

	ok, err := s.orders.DeleteItem(ctx, session.ID, orderID, itemID)
	if errors.Is(err, repositories.ErrSessionNotActive) {
		return false, noActiveSession(tableNr)
	}
	if err != nil {
		return false, fmt.Errorf("delete item %d of order %d: %w", itemID, orderID, err)
	}
	if ok {
		s.notify(ctx, events.Event{
			Type:      events.OrderItemRemoved,
			TableNr:   tableNr,
			SessionID: session.ID,
			OrderID:   orderID,
			ItemID:    itemID,
		})
	}
	return ok, nil
}

func (s *TableService) activeSession(ctx context.Context, tableNr uint8) (models.TableSession, error) {
	session, found, err := s.sessions.GetActive(ctx, tableNr)
	if err != nil {
		return models.TableSession{}, fmt.Errorf("lookup active session of table %d: %w", tableNr, err)
	}
	if !found {
		return models.TableSession{}, noActiveSession(tableNr)
	}
	return session, nil
}

// notify never fails the request; delivery problems are only logged.
func (s *TableService) notify(ctx context.Context, evt events.Event) {
	if evt.At.IsZero() {
		evt.At = time.Now().UTC()
	}
	if err := s.notifier.Notify(ctx, evt); err != nil {
		utils.ErrorLogger.Errorf("notify %s (table %d): %v", evt.Type, evt.TableNr, err)
	}
}

func noActiveSession(tableNr uint8) error {
	return fmt.Errorf("%w #%d", ErrNoActiveSession, tableNr)
}

func alreadyActive(tableNr uint8) error {
	return fmt.Errorf("%w #%d", ErrSessionAlreadyActive, tableNr)
}

func mergeLines(lines []OrderLine) ([]models.OrderItem, error) {
	merged := make([]models.OrderItem, 0, len(lines))
	index := make(map[uint]int, len(lines))
	for _, line := range lines {
		if line.Amount == 0 {
			return nil, fmt.Errorf("%w (item %d)", ErrInvalidAmount, line.ItemID)
		}
		if i, ok := index[line.ItemID]; ok {
			merged[i].Amount += line.Amount
			continue
		}
		index[line.ItemID] = len(merged)
		merged = append(merged, models.OrderItem{ItemID: line.ItemID, Amount: line.Amount})
	}
	return merged, nil
}
