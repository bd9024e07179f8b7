package session

import (
	"context"
	"errors"
)

// Data is the server-side state attached to one browser cookie.
type Data struct {
	LoggedIn   bool
	Username   string
	CardNumber string
}

var ErrNotFound = errors.New("session not found")

// Store persists session data by opaque id. Implementations must be safe
// for concurrent use.
type Store interface {
	Get(ctx context.Context, id string) (Data, error)
	Put(ctx context.Context, id string, data Data) error
	Destroy(ctx context.Context, id string) error
}

// Session is the per-request handle handlers work with.
type Session struct {
	ID   string
	Data Data

	store Store
}

func New(id string, data Data, store Store) *Session {
	return &Session{ID: id, Data: data, store: store}
}

func (s *Session) Save(ctx context.Context) error {
	return s.store.Put(ctx, s.ID, s.Data)
}

// Clear wipes identity state and persists the empty session. The logout
// flow uses this so a stale username or card number can never leak into a
// later request.
func (s *Session) Clear(ctx context.Context) error {
	s.Data = Data{}
	return s.store.Put(ctx, s.ID, s.Data)
}

type contextKey string

const sessionKey contextKey = "session"

func NewContext(ctx context.Context, s *Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// FromContext returns the request session. The middleware guarantees one
// exists on every routed request; the anonymous fallback covers handlers
// invoked outside the middleware chain.
func FromContext(ctx context.Context) *Session {
	if s, ok := ctx.Value(sessionKey).(*Session); ok {
		return s
	}
	return &Session{store: noopStore{}}
}

type noopStore struct{}

func (noopStore) Get(context.Context, string) (Data, error) { return Data{}, ErrNotFound }
func (noopStore) Put(context.Context, string, Data) error   { return nil }
func (noopStore) Destroy(context.Context, string) error     { return nil }
