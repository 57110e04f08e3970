package store

import (
	"context"

	"go-redstore/models"
)

const (
	favoritesKey = "favorites"
	watchlistKey = "watchlist"
)

// ToggleFavorite adds the product to the favorites set when absent and
// removes it when present, persisting the full set either way.
func (s *Session) ToggleFavorite(ctx context.Context, e models.ListEntry) error {
	return s.toggle(ctx, favoritesKey, e)
}

// ToggleWatchlist does the same against the independent watchlist set.
func (s *Session) ToggleWatchlist(ctx context.Context, e models.ListEntry) error {
	return s.toggle(ctx, watchlistKey, e)
}

// Favorites lists the favorites set.
func (s *Session) Favorites(ctx context.Context) ([]models.ListEntry, error) {
	return s.entries(ctx, favoritesKey)
}

// Watchlist lists the watchlist set.
func (s *Session) Watchlist(ctx context.Context) ([]models.ListEntry, error) {
	return s.entries(ctx, watchlistKey)
}

func (s *Session) toggle(ctx context.Context, name string, e models.ListEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []models.ListEntry
	if err := s.load(ctx, name, &entries); err != nil {
		return err
	}
	for i := range entries {
		if entries[i].ID == e.ID {
			entries = append(entries[:i], entries[i+1:]...)
			return s.save(ctx, name, entries)
		}
	}
	img := e.ResolveImage()
	e.Image = img
	e.Thumbnail = img
	e.Images = nil
	return s.save(ctx, name, append(entries, e))
}

func (s *Session) entries(ctx context.Context, name string) ([]models.ListEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var entries []models.ListEntry
	if err := s.load(ctx, name, &entries); err != nil {
		return nil, err
	}
	if entries == nil {
		entries = []models.ListEntry{}
	}
	return entries, nil
}
