package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-redstore/models"
)

func validCheckout() CheckoutRequest {
	return CheckoutRequest{
		PaymentMethod: "card",
		Card: models.CardDetails{
			Name:     "Jane Customer",
			Number:   "1234567890123456",
			ExpiryMM: "09",
			ExpiryYY: "27",
			CVV:      "123",
		},
		Address: models.Address{
			Name:   "Jane Customer",
			Street: "1 Main St",
			City:   "Pune",
			State:  "MH",
			Zip:    "411001",
		},
	}
}

func TestValidatePayment(t *testing.T) {
	t.Run("CardNumberTooShort", func(t *testing.T) {
		req := validCheckout()
		req.Card.Number = "123"
		err := validatePayment(req)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)
		assert.Equal(t, "number", vErr.Field)
	})

	t.Run("CardValid", func(t *testing.T) {
		require.NoError(t, validatePayment(validCheckout()))
	})

	t.Run("CardExpiryMonthOutOfRange", func(t *testing.T) {
		req := validCheckout()
		req.Card.ExpiryMM = "13"
		var vErr *ValidationError
		require.ErrorAs(t, validatePayment(req), &vErr)
		assert.Equal(t, "expiryMM", vErr.Field)
	})

	t.Run("CardHolderNameTooShort", func(t *testing.T) {
		req := validCheckout()
		req.Card.Name = "Jo"
		var vErr *ValidationError
		require.ErrorAs(t, validatePayment(req), &vErr)
		assert.Equal(t, "name", vErr.Field)
	})

	t.Run("UPIMissingProvider", func(t *testing.T) {
		req := CheckoutRequest{PaymentMethod: "upi", UPIID: "no-at-sign"}
		var vErr *ValidationError
		require.ErrorAs(t, validatePayment(req), &vErr)
		assert.Equal(t, "upiId", vErr.Field)
	})

	t.Run("UPIValid", func(t *testing.T) {
		req := CheckoutRequest{PaymentMethod: "upi", UPIID: "jane.doe@okbank"}
		require.NoError(t, validatePayment(req))
	})

	t.Run("BankInvalidIFSC", func(t *testing.T) {
		req := CheckoutRequest{
			PaymentMethod: "bank",
			Bank:          models.BankDetails{AccountNumber: "123456789", IFSC: "bad", Name: "Jane Customer"},
		}
		var vErr *ValidationError
		require.ErrorAs(t, validatePayment(req), &vErr)
		assert.Equal(t, "ifsc", vErr.Field)
	})

	t.Run("BankValid", func(t *testing.T) {
		req := CheckoutRequest{
			PaymentMethod: "bank",
			Bank:          models.BankDetails{AccountNumber: "123456789012", IFSC: "HDFC0A1B2C3", Name: "Jane Customer"},
		}
		require.NoError(t, validatePayment(req))
	})

	t.Run("CODNeedsNothingExtra", func(t *testing.T) {
		require.NoError(t, validatePayment(CheckoutRequest{PaymentMethod: "cod"}))
	})

	t.Run("UnknownMethodRejected", func(t *testing.T) {
		var vErr *ValidationError
		require.ErrorAs(t, validatePayment(CheckoutRequest{PaymentMethod: "crypto"}), &vErr)
		assert.Equal(t, "paymentMethod", vErr.Field)
	})
}

func TestValidateAddress(t *testing.T) {
	t.Run("ZipTooShort", func(t *testing.T) {
		addr := validCheckout().Address
		addr.Zip = "12"
		var vErr *ValidationError
		require.ErrorAs(t, validateAddress(addr), &vErr)
		assert.Equal(t, "zip", vErr.Field)
	})

	t.Run("FiveAndSixDigitZipsAccepted", func(t *testing.T) {
		addr := validCheckout().Address
		addr.Zip = "12345"
		require.NoError(t, validateAddress(addr))
		addr.Zip = "123456"
		require.NoError(t, validateAddress(addr))
	})

	t.Run("BlankFieldsRejected", func(t *testing.T) {
		for _, field := range []string{"name", "street", "city", "state"} {
			addr := validCheckout().Address
			switch field {
			case "name":
				addr.Name = "  "
			case "street":
				addr.Street = ""
			case "city":
				addr.City = ""
			case "state":
				addr.State = ""
			}
			var vErr *ValidationError
			require.ErrorAs(t, validateAddress(addr), &vErr)
			assert.Equal(t, field, vErr.Field)
		}
	})
}

func TestPlaceOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("CommitsOrderAndClearsCart", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.AddToCart(ctx, line("1", 50, 2))) // subtotal 100

		order, err := s.PlaceOrder(ctx, validCheckout())
		require.NoError(t, err)
		require.NotEmpty(t, order.ID)
		assert.Equal(t, "card", order.PaymentMethod)
		assert.Equal(t, 100+9.0+1.5, order.Total)
		require.Len(t, order.Items, 1)

		cart, err := s.Cart(ctx)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)

		history, err := s.Orders(ctx)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, order.ID, history[0].ID)
	})

	t.Run("AppliedDiscountLowersTotal", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.AddToCart(ctx, line("1", 50, 2))) // subtotal 100
		_, err := s.ApplyCoupon(ctx, "SAVE10")
		require.NoError(t, err)

		order, err := s.PlaceOrder(ctx, validCheckout())
		require.NoError(t, err)
		assert.Equal(t, 100.50, order.Total) // 100 - 10 + 9.00 + 1.50
	})

	t.Run("EmptyCartRejected", func(t *testing.T) {
		s := newTestSession(t)
		_, err := s.PlaceOrder(ctx, validCheckout())
		require.ErrorIs(t, err, ErrEmptyCart)
	})

	t.Run("ValidationFailureWritesNothing", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.AddToCart(ctx, line("1", 50, 2)))

		req := validCheckout()
		req.Card.Number = "123"
		_, err := s.PlaceOrder(ctx, req)
		var vErr *ValidationError
		require.ErrorAs(t, err, &vErr)

		cart, err := s.Cart(ctx)
		require.NoError(t, err)
		assert.Len(t, cart.Items, 1)

		history, err := s.Orders(ctx)
		require.NoError(t, err)
		assert.Empty(t, history)

		_, ok, err := s.ShippingAddress(ctx)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("ConsecutiveOrdersGetUniqueIDs", func(t *testing.T) {
		s := newTestSession(t)
		seen := make(map[string]bool)
		for i := 0; i < 5; i++ {
			require.NoError(t, s.AddToCart(ctx, line("1", 50, 1)))
			order, err := s.PlaceOrder(ctx, validCheckout())
			require.NoError(t, err)
			assert.False(t, seen[order.ID], "duplicate order id %s", order.ID)
			seen[order.ID] = true
		}

		history, err := s.Orders(ctx)
		require.NoError(t, err)
		assert.Len(t, history, 5)
	})

	t.Run("RemembersShippingAddress", func(t *testing.T) {
		s := newTestSession(t)
		require.NoError(t, s.AddToCart(ctx, line("1", 50, 1)))

		req := validCheckout()
		_, err := s.PlaceOrder(ctx, req)
		require.NoError(t, err)

		addr, ok, err := s.ShippingAddress(ctx)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, req.Address, addr)
	})
}

func TestOrderHistory(t *testing.T) {
	ctx := context.Background()

	placeOne := func(t *testing.T, s *Session) models.Order {
		t.Helper()
		require.NoError(t, s.AddToCart(ctx, line("1", 50, 1)))
		order, err := s.PlaceOrder(ctx, validCheckout())
		require.NoError(t, err)
		return order
	}

	t.Run("LookupByID", func(t *testing.T) {
		s := newTestSession(t)
		order := placeOne(t, s)

		got, err := s.Order(ctx, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order, got)

		_, err = s.Order(ctx, "missing")
		require.ErrorIs(t, err, ErrOrderNotFound)
	})

	t.Run("DeleteOne", func(t *testing.T) {
		s := newTestSession(t)
		first := placeOne(t, s)
		second := placeOne(t, s)

		require.NoError(t, s.DeleteOrder(ctx, first.ID))

		history, err := s.Orders(ctx)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, second.ID, history[0].ID)
	})

	t.Run("DeleteUnknownIsNoOp", func(t *testing.T) {
		s := newTestSession(t)
		placeOne(t, s)
		require.NoError(t, s.DeleteOrder(ctx, "missing"))

		history, err := s.Orders(ctx)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("DeleteAll", func(t *testing.T) {
		s := newTestSession(t)
		placeOne(t, s)
		placeOne(t, s)

		require.NoError(t, s.DeleteAllOrders(ctx))

		history, err := s.Orders(ctx)
		require.NoError(t, err)
		assert.Empty(t, history)
	})
}
