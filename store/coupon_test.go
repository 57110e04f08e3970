package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyCoupon(t *testing.T) {
	ctx := context.Background()

	t.Run("FlatDiscount", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.AddToCart(ctx, line("1", 50, 2))) // subtotal 100

		applied, err := s.ApplyCoupon(ctx, "SAVE10")
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", applied.Code)
		assert.Equal(t, 10.0, applied.Discount)
	})

	t.Run("PercentDiscountOnSubtotal", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.AddToCart(ctx, line("1", 100, 2))) // subtotal 200

		applied, err := s.ApplyCoupon(ctx, "OFF20")
		require.NoError(t, err)
		assert.Equal(t, 40.0, applied.Discount)
	})

	t.Run("RestrictedCouponUsesOwnLineSubtotal", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.AddToCart(ctx, line("apple123", 100, 2)))
		require.NoError(t, s.AddToCart(ctx, line("other", 500, 1)))

		applied, err := s.ApplyCoupon(ctx, "APPLE50")
		require.NoError(t, err)
		assert.Equal(t, 100.0, applied.Discount) // 50% of 200, not of 700
	})

	t.Run("RestrictedCouponRejectedWhenProductAbsent", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.AddToCart(ctx, line("other", 100, 1)))

		// An earlier coupon stays applied after the rejection.
		_, err := s.ApplyCoupon(ctx, "SAVE10")
		require.NoError(t, err)

		_, err = s.ApplyCoupon(ctx, "APPLE50")
		require.ErrorIs(t, err, ErrCouponNotApplicable)

		applied, err := s.AppliedCoupon(ctx)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", applied.Code)
		assert.Equal(t, 10.0, applied.Discount)
	})

	t.Run("EmptyCodeClearsDiscount", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.AddToCart(ctx, line("1", 100, 1)))

		_, err := s.ApplyCoupon(ctx, "SAVE10")
		require.NoError(t, err)

		applied, err := s.ApplyCoupon(ctx, "")
		require.NoError(t, err)
		assert.Zero(t, applied.Discount)
		assert.Empty(t, applied.Code)

		applied, err = s.AppliedCoupon(ctx)
		require.NoError(t, err)
		assert.Empty(t, applied.Code)
	})

	t.Run("UnknownCodeClearsDiscount", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.AddToCart(ctx, line("1", 100, 1)))

		_, err := s.ApplyCoupon(ctx, "SAVE10")
		require.NoError(t, err)

		applied, err := s.ApplyCoupon(ctx, "NOSUCHCODE")
		require.NoError(t, err)
		assert.Zero(t, applied.Discount)
	})

	t.Run("PersistsAcrossReads", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.AddToCart(ctx, line("1", 50, 2)))

		_, err := s.ApplyCoupon(ctx, "SAVE10")
		require.NoError(t, err)

		applied, err := s.AppliedCoupon(ctx)
		require.NoError(t, err)
		assert.Equal(t, "SAVE10", applied.Code)
		assert.Equal(t, 10.0, applied.Discount)
	})
}

func TestAvailableCoupons(t *testing.T) {
	coupons := AvailableCoupons()
	require.Len(t, coupons, 3)

	// Mutating the returned slice must not touch the table.
	coupons[0].Code = "HACKED"
	assert.Equal(t, "SAVE10", AvailableCoupons()[0].Code)
}
