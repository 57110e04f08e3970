// routes/routes.go
package routes

import (
	"github.com/gorilla/mux"

	"go-redstore/controllers"
	"go-redstore/middleware"
)

// RegisterRoutes sets up all the routes for the application
func RegisterRoutes(
	router *mux.Router,
	userController *controllers.UserController,
	productController *controllers.ProductController,
	cartController *controllers.CartController,
	favoritesController *controllers.FavoritesController,
	orderController *controllers.OrderController,
) {
	api := router.PathPrefix("/api").Subrouter()

	// Public routes
	api.HandleFunc("/register", userController.Register).Methods("POST")
	api.HandleFunc("/login", userController.Login).Methods("POST")
	api.HandleFunc("/logout", userController.Logout).Methods("POST")

	// Catalog routes
	api.HandleFunc("/products", productController.GetProducts).Methods("GET")
	api.HandleFunc("/products/{id}", productController.GetProductByID).Methods("GET")

	// Cart routes
	api.HandleFunc("/cart", cartController.GetCart).Methods("GET")
	api.HandleFunc("/cart", cartController.AddToCart).Methods("POST")
	api.HandleFunc("/cart", cartController.ClearCart).Methods("DELETE")
	api.HandleFunc("/cart/coupon", cartController.ApplyCoupon).Methods("POST")
	api.HandleFunc("/cart/coupon", cartController.GetCoupon).Methods("GET")
	api.HandleFunc("/cart/{id}/increment", cartController.Increment).Methods("POST")
	api.HandleFunc("/cart/{id}/decrement", cartController.Decrement).Methods("POST")
	api.HandleFunc("/cart/{id}", cartController.RemoveFromCart).Methods("DELETE")
	api.HandleFunc("/coupons", cartController.ListCoupons).Methods("GET")

	// Favorites / watchlist routes
	api.HandleFunc("/favorites", favoritesController.GetFavorites).Methods("GET")
	api.HandleFunc("/favorites/toggle", favoritesController.ToggleFavorite).Methods("POST")
	api.HandleFunc("/watchlist", favoritesController.GetWatchlist).Methods("GET")
	api.HandleFunc("/watchlist/toggle", favoritesController.ToggleWatchlist).Methods("POST")

	// Order routes
	api.HandleFunc("/orders", orderController.GetOrders).Methods("GET")
	api.HandleFunc("/orders", orderController.DeleteAllOrders).Methods("DELETE")
	api.HandleFunc("/orders/{id}", orderController.GetOrderByID).Methods("GET")
	api.HandleFunc("/orders/{id}", orderController.DeleteOrder).Methods("DELETE")
	api.HandleFunc("/address", orderController.GetAddress).Methods("GET")
	api.HandleFunc("/track", orderController.GetTracking).Methods("GET")
	api.HandleFunc("/track/advance", orderController.AdvanceTracking).Methods("POST")

	// Protected routes
	protected := api.PathPrefix("/").Subrouter()
	protected.Use(middleware.RequireAuth)
	protected.HandleFunc("/profile", userController.GetProfile).Methods("GET")
	protected.HandleFunc("/checkout", orderController.Checkout).Methods("POST")
}
