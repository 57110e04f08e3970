package store

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"go-redstore/models"
	"go-redstore/storage"
)

// ErrUserExists rejects registration with an already-taken email.
var ErrUserExists = errors.New("user already exists")

// Users is the registered-account store, shared across sessions and keyed by
// lower-cased email.
type Users struct {
	kv storage.KV
}

// NewUsers creates the account store over the shared backend.
func NewUsers(kv storage.KV) *Users {
	return &Users{kv: kv}
}

func userKey(email string) string {
	return "user:" + strings.ToLower(email)
}

// Create stores a new account record.
func (u *Users) Create(ctx context.Context, user models.User) error {
	key := userKey(user.Email)
	_, ok, err := u.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if ok {
		return ErrUserExists
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return u.kv.Set(ctx, key, raw)
}

// Get looks up an account by email.
func (u *Users) Get(ctx context.Context, email string) (models.User, bool, error) {
	raw, ok, err := u.kv.Get(ctx, userKey(email))
	if err != nil || !ok {
		return models.User{}, false, err
	}
	var user models.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return models.User{}, false, err
	}
	return user, true, nil
}
