package store

import (
	"context"
	"errors"

	"maskle/game"
)

// ErrNotFound is returned when no session exists for an id.
var ErrNotFound = errors.New("session not found")

// SessionStore persists the live session aggregate keyed by session id. The
// engine only needs create/get/update; writes are last-write-wins, so
// serializing mutations per session id is the implementation's concern.
type SessionStore interface {
	Create(ctx context.Context, session *game.Session) error
	Get(ctx context.Context, id string) (*game.Session, error)
	Update(ctx context.Context, session *game.Session) error
}
