package store

import (
	"context"
	"errors"

	"go-redstore/models"
)

const appliedCouponKey = "appliedCoupon"

// ErrCouponNotApplicable rejects a product-restricted coupon whose product
// is not in the cart. The previously applied coupon stays untouched.
var ErrCouponNotApplicable = errors.New("coupon only valid for a specific product")

// The coupons offered on the cart page. APPLE50 only applies to the
// apple123 line.
var availableCoupons = []models.Coupon{
	{Code: "SAVE10", Type: "flat", Value: 10, Label: "SAVE10 - ₹10 off"},
	{Code: "OFF20", Type: "percent", Value: 20, Label: "OFF20 - 20% off total"},
	{Code: "APPLE50", Type: "percent", Value: 50, ProductID: "apple123", Label: "APPLE50 - 50% off on Apple only"},
}

// AvailableCoupons lists the static coupon table.
func AvailableCoupons() []models.Coupon {
	out := make([]models.Coupon, len(availableCoupons))
	copy(out, availableCoupons)
	return out
}

func findCoupon(code string) (models.Coupon, bool) {
	for _, c := range availableCoupons {
		if c.Code == code {
			return c, true
		}
	}
	return models.Coupon{}, false
}

// computeDiscount is the pure discount rule: a restricted coupon discounts
// against its own line's subtotal, everything else against the cart
// subtotal.
func computeDiscount(items []models.CartLine, cartSubtotal float64, c models.Coupon) (float64, error) {
	base := cartSubtotal
	if c.ProductID != "" {
		line, ok := findLine(items, c.ProductID)
		if !ok {
			return 0, ErrCouponNotApplicable
		}
		base = line.Price * float64(line.Quantity)
	}
	if c.Type == "percent" {
		return base * c.Value / 100, nil
	}
	return c.Value, nil
}

func findLine(items []models.CartLine, id string) (models.CartLine, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return models.CartLine{}, false
}

// ApplyCoupon resolves the code against the static table, computes the
// discount and persists the result so later pages can reuse it. An empty or
// unknown code clears the persisted record and yields a zero discount.
func (s *Session) ApplyCoupon(ctx context.Context, code string) (models.AppliedCoupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := findCoupon(code)
	if !ok {
		if err := s.kv.Delete(ctx, s.key(appliedCouponKey)); err != nil {
			return models.AppliedCoupon{}, err
		}
		return models.AppliedCoupon{}, nil
	}
	items, err := s.cartItems(ctx)
	if err != nil {
		return models.AppliedCoupon{}, err
	}
	discount, err := computeDiscount(items, subtotal(items), c)
	if err != nil {
		return models.AppliedCoupon{}, err
	}
	applied := models.AppliedCoupon{Code: c.Code, Discount: discount}
	if err := s.save(ctx, appliedCouponKey, applied); err != nil {
		return models.AppliedCoupon{}, err
	}
	return applied, nil
}

// AppliedCoupon returns the persisted coupon record, zero when none is
// applied.
func (s *Session) AppliedCoupon(ctx context.Context) (models.AppliedCoupon, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.appliedCoupon(ctx)
}

func (s *Session) appliedCoupon(ctx context.Context) (models.AppliedCoupon, error) {
	var applied models.AppliedCoupon
	err := s.load(ctx, appliedCouponKey, &applied)
	return applied, err
}
