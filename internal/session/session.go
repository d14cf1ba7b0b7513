// Package session owns the logged-in user. The Authenticator is the only
// writer; screens read the session from the context they are given.
package session

import (
	"context"
	"errors"
	"time"

	"github.com/hongminglow/yapekuna/internal/models"
)

// ErrNoSession is returned when nobody is logged in. Its text is shown to users.
var ErrNoSession = errors.New("you are not logged in")

type Session struct {
	UserID   models.UserID
	IssuedAt time.Time
}

type ctxKey struct{}

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session carried by ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	if !ok || s.UserID.IsZero() {
		return Session{}, false
	}
	return s, true
}

// UserID is the id of the logged-in user, or the zero id.
func UserID(ctx context.Context) models.UserID {
	s, _ := FromContext(ctx)
	return s.UserID
}

// Store persists the session between runs.
type Store interface {
	// Load returns ErrNoSession when nothing valid is stored.
	Load() (Session, error)
	Save(id models.UserID) (Session, error)
	Clear() error
}
