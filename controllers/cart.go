package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"go-redstore/middleware"
	"go-redstore/models"
	"go-redstore/store"
)

// CartController handles cart and coupon requests for the caller's session.
type CartController struct {
	Stores *store.Stores
}

// NewCartController creates a new CartController
func NewCartController(stores *store.Stores) *CartController {
	return &CartController{Stores: stores}
}

func (cc *CartController) session(r *http.Request) *store.Session {
	return cc.Stores.Session(middleware.SessionID(r))
}

// GetCart retrieves the session's cart
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := cc.session(r).Cart(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to load cart")
		http.Error(w, "Error loading cart", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

// AddToCart adds a product line to the session's cart
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var line models.CartLine
	if err := json.NewDecoder(r.Body).Decode(&line); err != nil || line.ID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := cc.session(r).AddToCart(r.Context(), line); err != nil {
		logrus.WithError(err).Error("failed to update cart")
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}
	writeMessage(w, http.StatusOK, "Item added to cart")
}

// Increment raises a line's quantity by one
func (cc *CartController) Increment(w http.ResponseWriter, r *http.Request) {
	cc.adjust(w, r, cc.session(r).Increment)
}

// Decrement lowers a line's quantity by one, removing the line at zero
func (cc *CartController) Decrement(w http.ResponseWriter, r *http.Request) {
	cc.adjust(w, r, cc.session(r).Decrement)
}

func (cc *CartController) adjust(w http.ResponseWriter, r *http.Request, op func(ctx context.Context, id string) error) {
	id := mux.Vars(r)["id"]
	if err := op(r.Context(), id); err != nil {
		logrus.WithError(err).Error("failed to update cart")
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}
	writeMessage(w, http.StatusOK, "Cart updated")
}

// RemoveFromCart removes a line from the session's cart
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := cc.session(r).RemoveFromCart(r.Context(), id); err != nil {
		logrus.WithError(err).Error("failed to update cart")
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}
	writeMessage(w, http.StatusOK, "Item removed from cart")
}

// ClearCart empties the session's cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	if err := cc.session(r).ClearCart(r.Context()); err != nil {
		logrus.WithError(err).Error("failed to clear cart")
		http.Error(w, "Error updating cart", http.StatusInternalServerError)
		return
	}
	writeMessage(w, http.StatusOK, "Cart cleared")
}

// ApplyCoupon applies a coupon code against the session's cart
func (cc *CartController) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	applied, err := cc.session(r).ApplyCoupon(r.Context(), body.Code)
	if errors.Is(err, store.ErrCouponNotApplicable) {
		writeMessage(w, http.StatusBadRequest, "Coupon only valid for a specific product")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to apply coupon")
		http.Error(w, "Error applying coupon", http.StatusInternalServerError)
		return
	}

	message := "No coupon selected"
	if applied.Code != "" {
		message = fmt.Sprintf("Coupon %s applied!", applied.Code)
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"code":     applied.Code,
		"discount": applied.Discount,
		"message":  message,
	})
}

// GetCoupon returns the session's persisted applied-coupon record
func (cc *CartController) GetCoupon(w http.ResponseWriter, r *http.Request) {
	applied, err := cc.session(r).AppliedCoupon(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to load applied coupon")
		http.Error(w, "Error loading coupon", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, applied)
}

// ListCoupons returns the static coupon table
func (cc *CartController) ListCoupons(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, store.AvailableCoupons())
}
