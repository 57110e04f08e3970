package controllers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"go-redstore/middleware"
	"go-redstore/models"
	"go-redstore/store"
)

// FavoritesController handles the favorites and watchlist toggle-sets.
type FavoritesController struct {
	Stores *store.Stores
}

// NewFavoritesController creates a new FavoritesController
func NewFavoritesController(stores *store.Stores) *FavoritesController {
	return &FavoritesController{Stores: stores}
}

func (fc *FavoritesController) session(r *http.Request) *store.Session {
	return fc.Stores.Session(middleware.SessionID(r))
}

// GetFavorites lists the session's favorites
func (fc *FavoritesController) GetFavorites(w http.ResponseWriter, r *http.Request) {
	fc.list(w, r, fc.session(r).Favorites)
}

// GetWatchlist lists the session's watchlist
func (fc *FavoritesController) GetWatchlist(w http.ResponseWriter, r *http.Request) {
	fc.list(w, r, fc.session(r).Watchlist)
}

// ToggleFavorite adds or removes a favorites entry
func (fc *FavoritesController) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	fc.toggle(w, r, fc.session(r).ToggleFavorite, fc.session(r).Favorites)
}

// ToggleWatchlist adds or removes a watchlist entry
func (fc *FavoritesController) ToggleWatchlist(w http.ResponseWriter, r *http.Request) {
	fc.toggle(w, r, fc.session(r).ToggleWatchlist, fc.session(r).Watchlist)
}

func (fc *FavoritesController) list(w http.ResponseWriter, r *http.Request, read func(context.Context) ([]models.ListEntry, error)) {
	entries, err := read(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to load list")
		http.Error(w, "Error loading list", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}

func (fc *FavoritesController) toggle(
	w http.ResponseWriter,
	r *http.Request,
	mutate func(context.Context, models.ListEntry) error,
	read func(context.Context) ([]models.ListEntry, error),
) {
	var entry models.ListEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil || entry.ID == "" {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if err := mutate(r.Context(), entry); err != nil {
		logrus.WithError(err).Error("failed to toggle entry")
		http.Error(w, "Error updating list", http.StatusInternalServerError)
		return
	}

	entries, err := read(r.Context())
	if err != nil {
		logrus.WithError(err).Error("failed to load list")
		http.Error(w, "Error loading list", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
