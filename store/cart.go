package store

import (
	"context"

	"go-redstore/models"
)

const cartKey = "cartItems"

// Cart returns the session's cart snapshot with its subtotal.
func (s *Session) Cart(ctx context.Context) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.cartItems(ctx)
	if err != nil {
		return models.Cart{}, err
	}
	if items == nil {
		items = []models.CartLine{}
	}
	return models.Cart{Items: items, Subtotal: subtotal(items)}, nil
}

// AddToCart merges the line into the cart: an existing line with the same id
// gets its quantity increased by the payload quantity, otherwise the line is
// appended. A missing or non-positive quantity counts as one.
func (s *Session) AddToCart(ctx context.Context, line models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.cartItems(ctx)
	if err != nil {
		return err
	}
	if line.Quantity <= 0 {
		line.Quantity = 1
	}
	merged := false
	for i := range items {
		if items[i].ID == line.ID {
			items[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, line)
	}
	return s.save(ctx, cartKey, items)
}

// Increment raises the line's quantity by one. Unknown ids are a no-op.
func (s *Session) Increment(ctx context.Context, id string) error {
	return s.adjustQuantity(ctx, id, 1)
}

// Decrement lowers the line's quantity by one and removes the line entirely
// when it would reach zero. Unknown ids are a no-op.
func (s *Session) Decrement(ctx context.Context, id string) error {
	return s.adjustQuantity(ctx, id, -1)
}

func (s *Session) adjustQuantity(ctx context.Context, id string, delta int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.cartItems(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		items[i].Quantity += delta
		if items[i].Quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		}
		return s.save(ctx, cartKey, items)
	}
	return nil
}

// RemoveFromCart deletes the line regardless of quantity.
func (s *Session) RemoveFromCart(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	items, err := s.cartItems(ctx)
	if err != nil {
		return err
	}
	kept := items[:0]
	for _, it := range items {
		if it.ID != id {
			kept = append(kept, it)
		}
	}
	return s.save(ctx, cartKey, kept)
}

// ClearCart empties the cart.
func (s *Session) ClearCart(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx, cartKey, []models.CartLine{})
}

func (s *Session) cartItems(ctx context.Context) ([]models.CartLine, error) {
	var items []models.CartLine
	err := s.load(ctx, cartKey, &items)
	return items, err
}

func subtotal(items []models.CartLine) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
