package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"go-redstore/catalog"
	"go-redstore/models"
)

// ProductController serves the catalog endpoints.
type ProductController struct {
	Source catalog.Source
}

// NewProductController creates a new ProductController
func NewProductController(source catalog.Source) *ProductController {
	return &ProductController{Source: source}
}

// GetProducts returns the catalog list, optionally truncated by ?limit=N.
// A failing catalog source degrades to an empty list.
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			limit = n
		}
	}

	products, err := pc.Source.Products(r.Context(), limit)
	if err != nil {
		logrus.WithError(err).Error("failed to fetch products")
		products = nil
	}
	if products == nil {
		products = []models.Product{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

// GetProductByID retrieves a single product with its detail images.
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	params := mux.Vars(r)
	id, err := strconv.Atoi(params["id"])
	if err != nil {
		http.Error(w, "Invalid product ID", http.StatusBadRequest)
		return
	}

	detail, err := pc.Source.Product(r.Context(), id)
	if errors.Is(err, catalog.ErrNotFound) {
		writeMessage(w, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		logrus.WithError(err).Error("failed to fetch product")
		http.Error(w, "Error fetching product", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, detail)
}
