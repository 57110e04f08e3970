// controllers/order.go
package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"go-redstore/middleware"
	"go-redstore/models"
	"go-redstore/store"
	"go-redstore/utils"
)

// OrderController handles checkout, order history and the delivery tracking
// stepper.
type OrderController struct {
	Stores       *store.Stores
	EmailService *utils.EmailService
}

// NewOrderController creates a new OrderController
func NewOrderController(stores *store.Stores, emailService *utils.EmailService) *OrderController {
	return &OrderController{Stores: stores, EmailService: emailService}
}

func (oc *OrderController) session(r *http.Request) *store.Session {
	return oc.Stores.Session(middleware.SessionID(r))
}

// Checkout validates the payment details and shipping address, then commits
// the order from the session's cart
func (oc *OrderController) Checkout(w http.ResponseWriter, r *http.Request) {
	claims := middleware.UserClaims(r)
	if claims == nil {
		http.Error(w, "Please login to place your order", http.StatusUnauthorized)
		return
	}

	var req store.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	order, err := oc.session(r).PlaceOrder(r.Context(), req)
	var vErr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrEmptyCart):
		http.Error(w, "Cart is empty", http.StatusBadRequest)
		return
	case errors.As(err, &vErr):
		writeJSON(w, http.StatusBadRequest, map[string]string{
			"field":   vErr.Field,
			"message": vErr.Message,
		})
		return
	case err != nil:
		logrus.WithError(err).Error("failed to create order")
		http.Error(w, "Failed to create order", http.StatusInternalServerError)
		return
	}

	// Send confirmation email to user
	go func(email string, order models.Order) {
		if err := oc.EmailService.SendOrderConfirmation(email, order); err != nil {
			logrus.WithError(err).WithField("email", email).Error("failed to send order confirmation")
		}
	}(claims.Email, order)

	writeJSON(w, http.StatusCreated, map[string]any{
		"order":   order,
		"message": "Order placed successfully!",
	})
}

// GetOrders retrieves the session's order history
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := oc.session(r).Orders(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to load orders")
		http.Error(w, "Failed to retrieve orders", http.StatusInternalServerError)
		return
	}
	if orders == nil {
		orders = []models.Order{}
	}
	writeJSON(w, http.StatusOK, orders)
}

// GetOrderByID retrieves one order for the summary page
func (oc *OrderController) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	order, err := oc.session(r).Order(r.Context(), id)
	if errors.Is(err, store.ErrOrderNotFound) {
		writeMessage(w, http.StatusNotFound, "Order not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to load order")
		http.Error(w, "Failed to retrieve order", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, order)
}

// DeleteOrder removes one order from the history
func (oc *OrderController) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := oc.session(r).DeleteOrder(r.Context(), id); err != nil {
		logrus.WithError(err).Error("failed to delete order")
		http.Error(w, "Failed to delete order", http.StatusInternalServerError)
		return
	}
	writeMessage(w, http.StatusOK, "Order deleted")
}

// DeleteAllOrders wipes the session's order history
func (oc *OrderController) DeleteAllOrders(w http.ResponseWriter, r *http.Request) {
	if err := oc.session(r).DeleteAllOrders(r.Context()); err != nil {
		logrus.WithError(err).Error("failed to delete orders")
		http.Error(w, "Failed to delete orders", http.StatusInternalServerError)
		return
	}
	writeMessage(w, http.StatusOK, "All orders deleted")
}

// GetAddress returns the last shipping address used at checkout
func (oc *OrderController) GetAddress(w http.ResponseWriter, r *http.Request) {
	addr, ok, err := oc.session(r).ShippingAddress(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to load address")
		http.Error(w, "Failed to retrieve address", http.StatusInternalServerError)
		return
	}
	if !ok {
		writeMessage(w, http.StatusNotFound, "No address found")
		return
	}
	writeJSON(w, http.StatusOK, addr)
}

// GetTracking reports the session's delivery stepper
func (oc *OrderController) GetTracking(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, oc.session(r).Tracking().Status())
}

// AdvanceTracking moves the delivery stepper one step forward
func (oc *OrderController) AdvanceTracking(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, oc.session(r).Tracking().Advance())
}
