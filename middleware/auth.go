package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"go-redstore/utils"
)

// Key type for context
type contextKey string

const (
	UserContextKey    = contextKey("user")
	SessionContextKey = contextKey("session")
)

// Cookie names: session identifies the browser's state namespace, user is
// the signed login token.
const (
	SessionCookie = "session"
	UserCookie    = "user"
)

// SessionMiddleware guarantees every request carries a session id, issuing a
// fresh cookie when the browser has none.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var id string
		if c, err := r.Cookie(SessionCookie); err == nil && c.Value != "" {
			id = c.Value
		} else {
			id = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    id,
				Path:     "/",
				HttpOnly: true,
			})
		}
		ctx := context.WithValue(r.Context(), SessionContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AuthMiddleware parses the user cookie when present and attaches the
// claims to the request context. Requests without a valid cookie stay
// anonymous rather than being rejected.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(UserCookie)
		if err != nil || c.Value == "" {
			next.ServeHTTP(w, r)
			return
		}
		claims, err := utils.ParseJWT(c.Value)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}
		ctx := context.WithValue(r.Context(), UserContextKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAuth blocks anonymous requests. Checkout and profile sit behind it.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(UserContextKey).(*utils.Claims); !ok {
			http.Error(w, "Please login to continue", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// SessionID returns the request's session id set by SessionMiddleware.
func SessionID(r *http.Request) string {
	id, _ := r.Context().Value(SessionContextKey).(string)
	return id
}

// UserClaims returns the authenticated user's claims, nil when anonymous.
func UserClaims(r *http.Request) *utils.Claims {
	claims, _ := r.Context().Value(UserContextKey).(*utils.Claims)
	return claims
}
