package session

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/hongminglow/yapekuna/internal/models"
	"github.com/hongminglow/yapekuna/internal/models/dto"
)

// Gateway is the part of the API client the Authenticator needs.
type Gateway interface {
	Login(ctx context.Context, req dto.LoginRequest) (models.UserID, error)
	Register(ctx context.Context, req dto.RegisterRequest) (models.UserID, error)
}

// Authenticator logs users in and out. It is the only code that writes the Store.
type Authenticator struct {
	gateway Gateway
	store   Store
	logger  zerolog.Logger
}

func NewAuthenticator(gateway Gateway, store Store, logger zerolog.Logger) *Authenticator {
	return &Authenticator{gateway: gateway, store: store, logger: logger}
}

var errNoAccountID = errors.New("login response carried no account id")

// Login resolves the phone to an account and stores the session.
func (a *Authenticator) Login(ctx context.Context, phone string) (Session, error) {
	id, err := a.gateway.Login(ctx, dto.LoginRequest{Phone: phone})
	if err != nil {
		return Session{}, err
	}
	if id.IsZero() {
		return Session{}, errNoAccountID
	}
	s, err := a.store.Save(id)
	if err != nil {
		return Session{}, err
	}
	a.logger.Info().Str("user_id", id.String()).Msg("logged in")
	return s, nil
}

// Register creates the account. It does not log the user in.
func (a *Authenticator) Register(ctx context.Context, name, phone string) error {
	id, err := a.gateway.Register(ctx, dto.RegisterRequest{Name: name, Phone: phone})
	if err != nil {
		return err
	}
	a.logger.Info().Str("user_id", id.String()).Msg("registered")
	return nil
}

func (a *Authenticator) Logout() error {
	if err := a.store.Clear(); err != nil {
		return err
	}
	a.logger.Info().Msg("logged out")
	return nil
}

// Current returns ctx carrying the stored session, or ErrNoSession.
func (a *Authenticator) Current(ctx context.Context) (context.Context, error) {
	s, err := a.store.Load()
	if err != nil {
		return ctx, err
	}
	return NewContext(ctx, s), nil
}
