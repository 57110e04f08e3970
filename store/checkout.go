package store

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go-redstore/models"
)

// Flat fees added to every order at checkout.
const (
	deliveryFee = 9.0
	serviceFee  = 1.5
)

var (
	cardNumberRe    = regexp.MustCompile(`^\d{16}$`)
	expiryMonthRe   = regexp.MustCompile(`^(0[1-9]|1[0-2])$`)
	expiryYearRe    = regexp.MustCompile(`^\d{2}$`)
	cvvRe           = regexp.MustCompile(`^\d{3,4}$`)
	upiRe           = regexp.MustCompile(`^[\w.\-]+@[\w.\-]+$`)
	accountNumberRe = regexp.MustCompile(`^\d{9,18}$`)
	ifscRe          = regexp.MustCompile(`^[A-Z]{4}0[A-Z0-9]{6}$`)
	zipRe           = regexp.MustCompile(`^\d{5,6}$`)
)

// ErrEmptyCart rejects checkout when there is nothing to order.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports one failed checkout field with its user-facing
// message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// CheckoutRequest carries the payment-method details and shipping address
// for one order commit. Only the block matching PaymentMethod is validated.
type CheckoutRequest struct {
	PaymentMethod string             `json:"paymentMethod"`
	Card          models.CardDetails `json:"card"`
	UPIID         string             `json:"upiId"`
	Bank          models.BankDetails `json:"bank"`
	Address       models.Address     `json:"address"`
}

func validatePayment(req CheckoutRequest) error {
	switch req.PaymentMethod {
	case "card":
		c := req.Card
		if len(strings.TrimSpace(c.Name)) < 3 {
			return invalid("name", "Cardholder name is required (min 3 chars)")
		}
		if !cardNumberRe.MatchString(c.Number) {
			return invalid("number", "Card number must be 16 digits")
		}
		if !expiryMonthRe.MatchString(c.ExpiryMM) {
			return invalid("expiryMM", "Expiry month must be 01-12")
		}
		if !expiryYearRe.MatchString(c.ExpiryYY) {
			return invalid("expiryYY", "Expiry year must be 2 digits")
		}
		if !cvvRe.MatchString(c.CVV) {
			return invalid("cvv", "CVV must be 3-4 digits")
		}
	case "upi":
		if strings.TrimSpace(req.UPIID) == "" {
			return invalid("upiId", "UPI ID is required")
		}
		if !upiRe.MatchString(req.UPIID) {
			return invalid("upiId", "Enter a valid UPI ID")
		}
	case "bank":
		b := req.Bank
		if !accountNumberRe.MatchString(b.AccountNumber) {
			return invalid("accNo", "Account number must be 9-18 digits")
		}
		if !ifscRe.MatchString(b.IFSC) {
			return invalid("ifsc", "Invalid IFSC code")
		}
		if len(strings.TrimSpace(b.Name)) < 3 {
			return invalid("name", "Account holder name must be at least 3 chars")
		}
	case "cod":
		// nothing extra to collect
	default:
		return invalid("paymentMethod", "Invalid payment method")
	}
	return nil
}

func validateAddress(a models.Address) error {
	if strings.TrimSpace(a.Name) == "" {
		return invalid("name", "Name is required")
	}
	if strings.TrimSpace(a.Street) == "" {
		return invalid("street", "Street is required")
	}
	if strings.TrimSpace(a.City) == "" {
		return invalid("city", "City is required")
	}
	if strings.TrimSpace(a.State) == "" {
		return invalid("state", "State is required")
	}
	if !zipRe.MatchString(a.Zip) {
		return invalid("zip", "ZIP must be 5-6 digits")
	}
	return nil
}

// PlaceOrder runs every validation gate and, only when all pass, commits the
// order: the cart snapshot becomes an immutable history entry, the shipping
// address is remembered for next time and the cart is cleared. Total is
// subtotal + delivery fee - applied discount + service fee. No state is
// written when any gate fails.
func (s *Session) PlaceOrder(ctx context.Context, req CheckoutRequest) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.cartItems(ctx)
	if err != nil {
		return models.Order{}, err
	}
	if len(items) == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if err := validatePayment(req); err != nil {
		return models.Order{}, err
	}
	if err := validateAddress(req.Address); err != nil {
		return models.Order{}, err
	}

	applied, err := s.appliedCoupon(ctx)
	if err != nil {
		return models.Order{}, err
	}
	history, err := s.orders(ctx)
	if err != nil {
		return models.Order{}, err
	}

	now := time.Now()
	order := models.Order{
		ID:            nextOrderID(now, history),
		Items:         items,
		Total:         subtotal(items) + deliveryFee - applied.Discount + serviceFee,
		Date:          now.Format(orderDateLayout),
		PaymentMethod: req.PaymentMethod,
	}

	if err := s.save(ctx, addressKey, req.Address); err != nil {
		return models.Order{}, err
	}
	if err := s.save(ctx, ordersKey, append(history, order)); err != nil {
		return models.Order{}, err
	}
	if err := s.save(ctx, cartKey, []models.CartLine{}); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// nextOrderID derives a history-unique id from the commit timestamp,
// bumping by a millisecond while it collides with an existing entry.
func nextOrderID(now time.Time, history []models.Order) string {
	ms := now.UnixMilli()
	for {
		id := strconv.FormatInt(ms, 10)
		if !orderExists(history, id) {
			return id
		}
		ms++
	}
}
