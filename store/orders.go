package store

import (
	"context"
	"encoding/json"
	"errors"

	"go-redstore/models"
)

const (
	ordersKey  = "pastOrders"
	addressKey = "orderAddress"
)

// orderDateLayout mirrors the locale date string the order history shows.
const orderDateLayout = "1/2/2006, 3:04:05 PM"

// ErrOrderNotFound reports a missing order id.
var ErrOrderNotFound = errors.New("order not found")

// Orders lists the session's order history, oldest first.
func (s *Session) Orders(ctx context.Context) ([]models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.orders(ctx)
}

// Order looks up one history entry by id.
func (s *Session) Order(ctx context.Context, id string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	history, err := s.orders(ctx)
	if err != nil {
		return models.Order{}, err
	}
	for _, o := range history {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// DeleteOrder removes one history entry. Unknown ids are a no-op.
func (s *Session) DeleteOrder(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	history, err := s.orders(ctx)
	if err != nil {
		return err
	}
	kept := history[:0]
	for _, o := range history {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	return s.save(ctx, ordersKey, kept)
}

// DeleteAllOrders wipes the history.
func (s *Session) DeleteAllOrders(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.kv.Delete(ctx, s.key(ordersKey))
}

// ShippingAddress returns the last address used at checkout, if any order
// was ever committed.
func (s *Session) ShippingAddress(ctx context.Context) (models.Address, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok, err := s.kv.Get(ctx, s.key(addressKey))
	if err != nil || !ok {
		return models.Address{}, false, err
	}
	var addr models.Address
	if err := json.Unmarshal(raw, &addr); err != nil {
		return models.Address{}, false, err
	}
	return addr, true, nil
}

func (s *Session) orders(ctx context.Context) ([]models.Order, error) {
	var history []models.Order
	err := s.load(ctx, ordersKey, &history)
	return history, err
}

func orderExists(history []models.Order, id string) bool {
	for _, o := range history {
		if o.ID == id {
			return true
		}
	}
	return false
}
