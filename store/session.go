// Package store holds the per-session storefront state machine: cart,
// coupons, favorites, watchlist, order history and the delivery tracking
// stepper. Every mutation writes the full snapshot through the injected
// storage.KV port, mirroring how the original client persisted to browser
// local storage after each action.
package store

import (
	"context"
	"encoding/json"
	"sync"

	"go-redstore/storage"
)

// Stores is the process-wide state root, constructed once and handed to the
// controllers. It owns one Session handle per browser session.
type Stores struct {
	kv       storage.KV
	mu       sync.Mutex
	sessions map[string]*Session
}

// New creates the state root over the given persistence backend.
func New(kv storage.KV) *Stores {
	return &Stores{kv: kv, sessions: make(map[string]*Session)}
}

// Session returns the state handle for one browser session, creating it on
// first use.
func (s *Stores) Session(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		sess = &Session{kv: s.kv, ns: "sess:" + id, tracker: NewTracker()}
		s.sessions[id] = sess
	}
	return sess
}

// Session is the per-browser state handle. Its mutex serializes the
// read-modify-write cycle of each mutation, so two concurrent requests of
// the same session cannot interleave against one snapshot.
type Session struct {
	mu      sync.Mutex
	kv      storage.KV
	ns      string
	tracker *Tracker
}

func (s *Session) key(name string) string {
	return s.ns + ":" + name
}

// load unmarshals the named snapshot into dst; a missing key leaves dst at
// its zero value.
func (s *Session) load(ctx context.Context, name string, dst any) error {
	raw, ok, err := s.kv.Get(ctx, s.key(name))
	if err != nil || !ok {
		return err
	}
	return json.Unmarshal(raw, dst)
}

func (s *Session) save(ctx context.Context, name string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, s.key(name), raw)
}
